package http

import (
	"net/http"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
	"github.com/casarosa-rh/hr-backend-go/internal/handler/http/response"
	reportsvc "github.com/casarosa-rh/hr-backend-go/internal/service/report"
)

type ReportHandler interface {
	OvertimeCSV(w http.ResponseWriter, r *http.Request)
	OvertimeWorkbook(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService *reportsvc.Service
}

func NewReportHandler(reportService *reportsvc.Service) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

func (h *ReportHandlerImpl) OvertimeCSV(w http.ResponseWriter, r *http.Request) {
	actor, err := user.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	export, err := h.reportService.OvertimeCSV(r.Context(), actor, parseFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, export.FileName, export.ContentType, export.Content)
}

func (h *ReportHandlerImpl) OvertimeWorkbook(w http.ResponseWriter, r *http.Request) {
	actor, err := user.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	export, err := h.reportService.OvertimeWorkbook(r.Context(), actor, parseFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.File(w, export.FileName, export.ContentType, export.Content)
}
