package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/bonus"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
	"github.com/casarosa-rh/hr-backend-go/internal/handler/http/response"
	bonussvc "github.com/casarosa-rh/hr-backend-go/internal/service/bonus"
)

type BonusHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type BonusHandlerImpl struct {
	bonusService *bonussvc.Service
}

func NewBonusHandler(bonusService *bonussvc.Service) BonusHandler {
	return &BonusHandlerImpl{bonusService: bonusService}
}

func (h *BonusHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := user.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req bonus.CreateBonusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Bonus create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.bonusService.Create(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Bonus created", created)
}

func (h *BonusHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	actor, err := user.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filter := bonus.Filter{EmployeeUID: r.URL.Query().Get("employee_uid")}
	for _, raw := range splitQueryList(r.URL.Query().Get("status")) {
		filter.Statuses = append(filter.Statuses, bonus.Status(raw))
	}

	bonuses, err := h.bonusService.List(r.Context(), actor, filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, bonuses)
}

func (h *BonusHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	actor, err := user.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req bonus.DecideBonusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Bonus decide decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	decided, err := h.bonusService.Decide(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, decided)
}
