package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/staffhub/staffhub-backend-go/internal/domain/roster"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/response"
	"github.com/staffhub/staffhub-backend-go/internal/pkg/timekit"
)

type RosterHandler interface {
	SeedYear(w http.ResponseWriter, r *http.Request)
	MonthView(w http.ResponseWriter, r *http.Request)
}

type RosterHandlerImpl struct {
	rosterService roster.RosterService
}

func NewRosterHandler(rosterService roster.RosterService) RosterHandler {
	return &RosterHandlerImpl{rosterService: rosterService}
}

// SeedYear implements RosterHandler.
func (h *RosterHandlerImpl) SeedYear(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 1970 || year > 9999 {
		response.BadRequest(w, "year must be a four-digit year", nil)
		return
	}

	resp, err := h.rosterService.SeedYear(r.Context(), year)
	if err != nil {
		slog.Error("Seed year error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Calendar days seeded successfully", resp)
}

// MonthView implements RosterHandler.
func (h *RosterHandlerImpl) MonthView(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		response.BadRequest(w, "year must be numeric", nil)
		return
	}
	monthNum, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || monthNum < 1 || monthNum > 12 {
		response.BadRequest(w, "month must be between 1 and 12", nil)
		return
	}

	var employeeID *string
	if id := r.URL.Query().Get("employee_id"); id != "" {
		employeeID = &id
	}

	month := time.Date(year, time.Month(monthNum), 1, 0, 0, 0, 0, timekit.Location)
	resp, err := h.rosterService.MonthView(r.Context(), month, employeeID)
	if err != nil {
		slog.Error("Month view error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
