package http

import (
	"net/http"
	"strconv"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
	"github.com/casarosa-rh/hr-backend-go/internal/handler/http/response"
	auditsvc "github.com/casarosa-rh/hr-backend-go/internal/service/audit"
)

type AuditHandler interface {
	List(w http.ResponseWriter, r *http.Request)
}

type AuditHandlerImpl struct {
	auditService *auditsvc.Service
}

func NewAuditHandler(auditService *auditsvc.Service) AuditHandler {
	return &AuditHandlerImpl{auditService: auditService}
}

func (h *AuditHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := user.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	entries, err := h.auditService.List(r.Context(), actor, limit)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
