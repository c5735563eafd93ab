package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/staffhub/staffhub-backend-go/internal/domain/shift"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/response"
)

type ShiftHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	ListMonth(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService}
}

// Create implements ShiftHandler.
func (h *ShiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.shiftService.Create(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Create shift error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Shift created successfully", resp)
}

// GetByID implements ShiftHandler.
func (h *ShiftHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	resp, err := h.shiftService.GetByID(r.Context(), chi.URLParam(r, "shiftID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// ListMonth implements ShiftHandler.
func (h *ShiftHandlerImpl) ListMonth(w http.ResponseWriter, r *http.Request) {
	month, err := parseMonthParam(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	resp, err := h.shiftService.ListMonth(r.Context(), chi.URLParam(r, "id"), month)
	if err != nil {
		slog.Error("List month shifts error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Update implements ShiftHandler.
func (h *ShiftHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.shiftService.Update(r.Context(), chi.URLParam(r, "shiftID"), req)
	if err != nil {
		slog.Error("Update shift error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift updated successfully", resp)
}

// Delete implements ShiftHandler.
func (h *ShiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.shiftService.Delete(r.Context(), chi.URLParam(r, "shiftID")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift deleted successfully", nil)
}
