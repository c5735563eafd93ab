package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/staffhub/staffhub-backend-go/internal/domain/absence"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/response"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/validator"
)

type AbsenceHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Status(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type AbsenceHandlerImpl struct {
	absenceService absence.AbsenceService
}

func NewAbsenceHandler(absenceService absence.AbsenceService) AbsenceHandler {
	return &AbsenceHandlerImpl{absenceService: absenceService}
}

// Create implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req absence.CreateAbsenceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	resp, err := h.absenceService.Create(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		slog.Error("Create absence error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Absence created successfully", resp)
}

// List implements AbsenceHandler.
func (h *AbsenceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	var kind *absence.Kind
	if raw := r.URL.Query().Get("kind"); raw != "" {
		if !validator.IsInSlice(raw, absence.KindValues) {
			response.BadRequest(w, "kind must be vacation or sick", nil)
			return
		}
		k := absence.Kind(raw)
		kind = &k
	}

	resp, err := h.absenceService.ListByEmployee(r.Context(), chi.URLParam(r, "id"), kind)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Status implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Status(w http.ResponseWriter, r *http.Request) {
	resp, err := h.absenceService.Status(r.Context(), chi.URLParam(r, "id"), time.Now())
	if err != nil {
		slog.Error("Absence status error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Delete implements AbsenceHandler.
func (h *AbsenceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.absenceService.Delete(r.Context(), chi.URLParam(r, "absenceID")); err != nil {
		slog.Error("Delete absence error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Absence deleted successfully", nil)
}
