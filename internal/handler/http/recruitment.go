package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/recruitment"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
	"github.com/casarosa-rh/hr-backend-go/internal/handler/http/response"
	recruitmentsvc "github.com/casarosa-rh/hr-backend-go/internal/service/recruitment"
)

type RecruitmentHandler interface {
	CreateOpening(w http.ResponseWriter, r *http.Request)
	ListOpenings(w http.ResponseWriter, r *http.Request)
	CloseOpening(w http.ResponseWriter, r *http.Request)
	AddCandidate(w http.ResponseWriter, r *http.Request)
	ListCandidates(w http.ResponseWriter, r *http.Request)
	AdvanceCandidate(w http.ResponseWriter, r *http.Request)
}

type RecruitmentHandlerImpl struct {
	recruitmentService *recruitmentsvc.Service
}

func NewRecruitmentHandler(recruitmentService *recruitmentsvc.Service) RecruitmentHandler {
	return &RecruitmentHandlerImpl{recruitmentService: recruitmentService}
}

func (h *RecruitmentHandlerImpl) CreateOpening(w http.ResponseWriter, r *http.Request) {
	actor, err := user.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req recruitment.CreateOpeningRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Opening create decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	opening, err := h.recruitmentService.CreateOpening(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job opening created", opening)
}

func (h *RecruitmentHandlerImpl) ListOpenings(w http.ResponseWriter, r *http.Request) {
	actor, err := user.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	openings, err := h.recruitmentService.ListOpenings(r.Context(), actor)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, openings)
}

func (h *RecruitmentHandlerImpl) CloseOpening(w http.ResponseWriter, r *http.Request) {
	actor, err := user.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	opening, err := h.recruitmentService.CloseOpening(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job opening closed", opening)
}

func (h *RecruitmentHandlerImpl) AddCandidate(w http.ResponseWriter, r *http.Request) {
	actor, err := user.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req recruitment.AddCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Candidate add decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.OpeningID = chi.URLParam(r, "id")

	candidate, err := h.recruitmentService.AddCandidate(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Candidate added", candidate)
}

func (h *RecruitmentHandlerImpl) ListCandidates(w http.ResponseWriter, r *http.Request) {
	actor, err := user.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	candidates, err := h.recruitmentService.ListCandidates(r.Context(), actor, chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, candidates)
}

func (h *RecruitmentHandlerImpl) AdvanceCandidate(w http.ResponseWriter, r *http.Request) {
	actor, err := user.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req recruitment.AdvanceCandidateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Candidate advance decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.CandidateID = chi.URLParam(r, "candidateID")

	candidate, err := h.recruitmentService.AdvanceCandidate(r.Context(), actor, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, candidate)
}
