package http

import (
	"net/http"

	"github.com/attendly/hr-console-go/internal/domain/dashboard"
	"github.com/attendly/hr-console-go/internal/handler/http/response"
)

type DashboardHandler interface {
	GetStats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// GetStats implements DashboardHandler. An empty date query means today.
func (d *dashboardHandlerImpl) GetStats(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	result, err := d.dashboardService.GetDashboard(r.Context(), date)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
