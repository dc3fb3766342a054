package http

import (
	"net/http"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
	"github.com/casarosa-rh/hr-backend-go/internal/handler/http/response"
	dashboardsvc "github.com/casarosa-rh/hr-backend-go/internal/service/dashboard"
)

type DashboardHandler interface {
	Summary(w http.ResponseWriter, r *http.Request)
}

type DashboardHandlerImpl struct {
	dashboardService *dashboardsvc.Service
}

func NewDashboardHandler(dashboardService *dashboardsvc.Service) DashboardHandler {
	return &DashboardHandlerImpl{dashboardService: dashboardService}
}

func (h *DashboardHandlerImpl) Summary(w http.ResponseWriter, r *http.Request) {
	actor, err := user.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summary, err := h.dashboardService.Summary(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
