package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/staffhub/staffhub-backend-go/internal/domain/employee"
	"github.com/staffhub/staffhub-backend-go/internal/domain/note"
	"github.com/staffhub/staffhub-backend-go/internal/domain/staffrole"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/response"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/timekit"
)

type EmployeeHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)

	CreateNote(w http.ResponseWriter, r *http.Request)
	ListNotes(w http.ResponseWriter, r *http.Request)
	DeleteNote(w http.ResponseWriter, r *http.Request)

	AssignRole(w http.ResponseWriter, r *http.Request)
	RemoveRole(w http.ResponseWriter, r *http.Request)
	ListRoles(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
	noteService     note.NoteService
	roleService     staffrole.RoleService
}

func NewEmployeeHandler(employeeService employee.EmployeeService, noteService note.NoteService, roleService staffrole.RoleService) EmployeeHandler {
	return &EmployeeHandlerImpl{
		employeeService: employeeService,
		noteService:     noteService,
		roleService:     roleService,
	}
}

// parseMonthParam reads a "2006-01" month query parameter, defaulting to
// the current month in the configured location.
func parseMonthParam(r *http.Request) (time.Time, error) {
	raw := r.URL.Query().Get("month")
	if raw == "" {
		return time.Now().In(timekit.Location), nil
	}
	month, err := time.ParseInLocation("2006-01", raw, timekit.Location)
	if err != nil {
		return time.Time{}, fmt.Errorf("month must be formatted as yyyy-mm")
	}
	return month, nil
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create employee error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Employee created successfully", resp)
}

// GetByID implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	resp, err := h.employeeService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	filter := employee.EmployeeFilter{}
	if name := r.URL.Query().Get("name"); name != "" {
		filter.Name = &name
	}
	filter.Page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	filter.Limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))

	resp, err := h.employeeService.List(r.Context(), filter)
	if err != nil {
		slog.Error("List employees error", "error", err)
		response.HandleError(w, err)
		return
	}

	totalPages := int((resp.TotalCount + int64(resp.Limit) - 1) / int64(resp.Limit))
	response.SuccessWithMeta(w, resp.Employees, &response.Meta{
		Page:       resp.Page,
		Limit:      resp.Limit,
		TotalItems: resp.TotalCount,
		TotalPages: totalPages,
	})
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.employeeService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Update employee error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee updated successfully", resp)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.employeeService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// Profile implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Profile(w http.ResponseWriter, r *http.Request) {
	month, err := parseMonthParam(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	resp, err := h.employeeService.Profile(r.Context(), chi.URLParam(r, "id"), month, time.Now())
	if err != nil {
		slog.Error("Employee profile error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// CreateNote implements EmployeeHandler.
func (h *EmployeeHandlerImpl) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req note.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.noteService.Create(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Note created successfully", resp)
}

// ListNotes implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ListNotes(w http.ResponseWriter, r *http.Request) {
	resp, err := h.noteService.ListByEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// DeleteNote implements EmployeeHandler.
func (h *EmployeeHandlerImpl) DeleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.noteService.Delete(r.Context(), chi.URLParam(r, "noteID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Note deleted successfully", nil)
}

// AssignRole implements EmployeeHandler.
func (h *EmployeeHandlerImpl) AssignRole(w http.ResponseWriter, r *http.Request) {
	err := h.roleService.Assign(r.Context(), chi.URLParam(r, "roleID"), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Role assigned successfully", nil)
}

// RemoveRole implements EmployeeHandler.
func (h *EmployeeHandlerImpl) RemoveRole(w http.ResponseWriter, r *http.Request) {
	err := h.roleService.Remove(r.Context(), chi.URLParam(r, "roleID"), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Role removed successfully", nil)
}

// ListRoles implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ListRoles(w http.ResponseWriter, r *http.Request) {
	resp, err := h.roleService.ListByEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
