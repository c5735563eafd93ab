package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffhub/staffhub-backend-go/internal/domain/shiftmodel"
	"github.com/staffhub/staffhub-backend-go/internal/domain/staffrole"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/response"
)

// MasterHandler serves the master-data endpoints: staff roles and shift
// models.
type MasterHandler interface {
	CreateRole(w http.ResponseWriter, r *http.Request)
	GetRole(w http.ResponseWriter, r *http.Request)
	ListRoles(w http.ResponseWriter, r *http.Request)
	UpdateRole(w http.ResponseWriter, r *http.Request)
	DeleteRole(w http.ResponseWriter, r *http.Request)

	CreateShiftModel(w http.ResponseWriter, r *http.Request)
	GetShiftModel(w http.ResponseWriter, r *http.Request)
	ListShiftModels(w http.ResponseWriter, r *http.Request)
	UpdateShiftModel(w http.ResponseWriter, r *http.Request)
	DeleteShiftModel(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	roleService       staffrole.RoleService
	shiftModelService shiftmodel.ShiftModelService
}

func NewMasterHandler(roleService staffrole.RoleService, shiftModelService shiftmodel.ShiftModelService) MasterHandler {
	return &MasterHandlerImpl{
		roleService:       roleService,
		shiftModelService: shiftModelService,
	}
}

// CreateRole implements MasterHandler.
func (h *MasterHandlerImpl) CreateRole(w http.ResponseWriter, r *http.Request) {
	var req staffrole.CreateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.roleService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create role error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Staff role created successfully", resp)
}

// GetRole implements MasterHandler.
func (h *MasterHandlerImpl) GetRole(w http.ResponseWriter, r *http.Request) {
	resp, err := h.roleService.GetByID(r.Context(), chi.URLParam(r, "roleID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// ListRoles implements MasterHandler.
func (h *MasterHandlerImpl) ListRoles(w http.ResponseWriter, r *http.Request) {
	resp, err := h.roleService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// UpdateRole implements MasterHandler.
func (h *MasterHandlerImpl) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req staffrole.UpdateRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.roleService.Update(r.Context(), chi.URLParam(r, "roleID"), req)
	if err != nil {
		slog.Error("Update role error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Staff role updated successfully", resp)
}

// DeleteRole implements MasterHandler.
func (h *MasterHandlerImpl) DeleteRole(w http.ResponseWriter, r *http.Request) {
	if err := h.roleService.Delete(r.Context(), chi.URLParam(r, "roleID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Staff role deleted successfully", nil)
}

// CreateShiftModel implements MasterHandler.
func (h *MasterHandlerImpl) CreateShiftModel(w http.ResponseWriter, r *http.Request) {
	var req shiftmodel.CreateShiftModelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.shiftModelService.Create(r.Context(), req)
	if err != nil {
		slog.Error("Create shift model error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Shift model created successfully", resp)
}

// GetShiftModel implements MasterHandler.
func (h *MasterHandlerImpl) GetShiftModel(w http.ResponseWriter, r *http.Request) {
	resp, err := h.shiftModelService.GetByID(r.Context(), chi.URLParam(r, "modelID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// ListShiftModels implements MasterHandler.
func (h *MasterHandlerImpl) ListShiftModels(w http.ResponseWriter, r *http.Request) {
	resp, err := h.shiftModelService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// UpdateShiftModel implements MasterHandler.
func (h *MasterHandlerImpl) UpdateShiftModel(w http.ResponseWriter, r *http.Request) {
	var req shiftmodel.UpdateShiftModelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.shiftModelService.Update(r.Context(), chi.URLParam(r, "modelID"), req)
	if err != nil {
		slog.Error("Update shift model error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift model updated successfully", resp)
}

// DeleteShiftModel implements MasterHandler.
func (h *MasterHandlerImpl) DeleteShiftModel(w http.ResponseWriter, r *http.Request) {
	if err := h.shiftModelService.Delete(r.Context(), chi.URLParam(r, "modelID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift model deleted successfully", nil)
}
