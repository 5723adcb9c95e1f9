package handler

import (
	"net/http"

	"github.com/pizza-nz/backoffice-service/internal/api"
	"github.com/pizza-nz/backoffice-service/internal/service"
)

// DashboardHandler serves the record totals
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

func (h *DashboardHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		api.MethodNotAllowed(w)
		return
	}

	summary, err := h.dashboardService.Summary(r.Context())
	if err != nil {
		api.Error(w, err)
		return
	}

	api.RespondJSON(w, http.StatusOK, summary)
}
