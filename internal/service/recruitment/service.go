package recruitment

import (
	"context"
	"time"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/audit"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/recruitment"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
)

// Service drives the hiring pipeline. Candidates move through a fixed
// stage graph; any attempt to skip a stage is rejected.
type Service struct {
	repo     recruitment.Repository
	recorder audit.Recorder
}

func NewService(repo recruitment.Repository, recorder audit.Recorder) *Service {
	return &Service{repo: repo, recorder: recorder}
}

func (s *Service) CreateOpening(ctx context.Context, actor user.Actor, req recruitment.CreateOpeningRequest) (recruitment.Opening, error) {
	if !actor.Role.IsHR() {
		return recruitment.Opening{}, user.ErrNotAllowed
	}
	if err := req.Validate(); err != nil {
		return recruitment.Opening{}, err
	}

	created, err := s.repo.CreateOpening(ctx, recruitment.Opening{
		Title:       req.Title,
		CostCenter:  req.CostCenter,
		Description: req.Description,
		Status:      recruitment.OpeningAberta,
		CreatedBy:   actor.UserID,
	})
	if err != nil {
		return recruitment.Opening{}, err
	}

	s.recorder.Record(ctx, actor, "recruitment.openingCreate", created.ID, map[string]interface{}{
		"title": created.Title,
	})

	return created, nil
}

func (s *Service) ListOpenings(ctx context.Context, actor user.Actor) ([]recruitment.Opening, error) {
	if actor.Role == user.RoleColaborador {
		return nil, user.ErrNotAllowed
	}
	return s.repo.ListOpenings(ctx)
}

func (s *Service) CloseOpening(ctx context.Context, actor user.Actor, id string) (recruitment.Opening, error) {
	if !actor.Role.IsHR() {
		return recruitment.Opening{}, user.ErrNotAllowed
	}

	opening, err := s.repo.GetOpeningByID(ctx, id)
	if err != nil {
		return recruitment.Opening{}, err
	}
	if opening.Status == recruitment.OpeningFechada {
		return opening, nil
	}

	if err := s.repo.SetOpeningStatus(ctx, opening.ID, recruitment.OpeningFechada); err != nil {
		return recruitment.Opening{}, err
	}
	opening.Status = recruitment.OpeningFechada

	s.recorder.Record(ctx, actor, "recruitment.openingClose", opening.ID, nil)

	return opening, nil
}

func (s *Service) AddCandidate(ctx context.Context, actor user.Actor, req recruitment.AddCandidateRequest) (recruitment.Candidate, error) {
	if !actor.Role.IsHR() {
		return recruitment.Candidate{}, user.ErrNotAllowed
	}
	if err := req.Validate(); err != nil {
		return recruitment.Candidate{}, err
	}

	opening, err := s.repo.GetOpeningByID(ctx, req.OpeningID)
	if err != nil {
		return recruitment.Candidate{}, err
	}
	if opening.Status != recruitment.OpeningAberta {
		return recruitment.Candidate{}, recruitment.ErrOpeningClosed
	}

	created, err := s.repo.CreateCandidate(ctx, recruitment.Candidate{
		OpeningID: opening.ID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Stage:     recruitment.StageTriagem,
		Notes:     req.Notes,
	})
	if err != nil {
		return recruitment.Candidate{}, err
	}

	s.recorder.Record(ctx, actor, "recruitment.candidateAdd", created.ID, map[string]interface{}{
		"opening_id": created.OpeningID,
	})

	return created, nil
}

func (s *Service) ListCandidates(ctx context.Context, actor user.Actor, openingID string) ([]recruitment.Candidate, error) {
	if actor.Role == user.RoleColaborador {
		return nil, user.ErrNotAllowed
	}
	if _, err := s.repo.GetOpeningByID(ctx, openingID); err != nil {
		return nil, err
	}
	return s.repo.ListCandidates(ctx, openingID)
}

func (s *Service) AdvanceCandidate(ctx context.Context, actor user.Actor, req recruitment.AdvanceCandidateRequest) (recruitment.Candidate, error) {
	if !actor.Role.IsHR() {
		return recruitment.Candidate{}, user.ErrNotAllowed
	}
	if err := req.Validate(); err != nil {
		return recruitment.Candidate{}, err
	}

	candidate, err := s.repo.GetCandidateByID(ctx, req.CandidateID)
	if err != nil {
		return recruitment.Candidate{}, err
	}

	next := recruitment.Stage(req.Stage)
	if !candidate.Stage.CanAdvanceTo(next) {
		return recruitment.Candidate{}, recruitment.ErrInvalidStageTransition
	}

	if err := s.repo.SetCandidateStage(ctx, candidate.ID, next, req.Notes); err != nil {
		return recruitment.Candidate{}, err
	}

	candidate.Stage = next
	if req.Notes != "" {
		candidate.Notes = req.Notes
	}
	candidate.UpdatedAt = time.Now()

	s.recorder.Record(ctx, actor, "recruitment.candidateStage", candidate.ID, map[string]interface{}{
		"stage": string(next),
	})

	return candidate, nil
}
