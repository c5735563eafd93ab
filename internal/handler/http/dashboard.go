package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/staffhub/staffhub-backend-go/internal/domain/dashboard"
	"github.com/staffhub/staffhub-backend-go/internal/handler/http/response"
)

type DashboardHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

// Overview implements DashboardHandler.
func (h *DashboardHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dashboardService.Overview(r.Context(), time.Now())
	if err != nil {
		slog.Error("Dashboard overview error", "error", err)
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}
