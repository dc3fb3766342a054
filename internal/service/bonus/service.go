package bonus

import (
	"context"
	"time"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/audit"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/bonus"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/employee"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
)

type Service struct {
	repo      bonus.Repository
	employees employee.EmployeeRepository
	recorder  audit.Recorder
}

func NewService(repo bonus.Repository, employees employee.EmployeeRepository, recorder audit.Recorder) *Service {
	return &Service{repo: repo, employees: employees, recorder: recorder}
}

func (s *Service) Create(ctx context.Context, actor user.Actor, req bonus.CreateBonusRequest) (bonus.Bonus, error) {
	if !actor.Role.IsHR() {
		return bonus.Bonus{}, user.ErrNotAllowed
	}
	if err := req.Validate(); err != nil {
		return bonus.Bonus{}, err
	}
	if _, err := s.employees.GetByUID(ctx, req.EmployeeUID); err != nil {
		return bonus.Bonus{}, err
	}

	created, err := s.repo.Create(ctx, bonus.Bonus{
		EmployeeUID: req.EmployeeUID,
		Amount:      req.Amount,
		Reason:      req.Reason,
		Status:      bonus.StatusPendente,
		AwardedBy:   actor.UserID,
	})
	if err != nil {
		return bonus.Bonus{}, err
	}

	s.recorder.Record(ctx, actor, "bonus.create", created.ID, map[string]interface{}{
		"employee_uid": created.EmployeeUID,
		"amount":       created.Amount,
	})

	return created, nil
}

func (s *Service) List(ctx context.Context, actor user.Actor, filter bonus.Filter) ([]bonus.Bonus, error) {
	if !actor.Role.IsHR() {
		if filter.EmployeeUID == "" {
			filter.EmployeeUID = actor.EmployeeUID
		} else if filter.EmployeeUID != actor.EmployeeUID {
			return nil, user.ErrNotAllowed
		}
	}
	return s.repo.List(ctx, filter)
}

// Decide is ADM-only: bonus money leaves the cost center budget.
func (s *Service) Decide(ctx context.Context, actor user.Actor, req bonus.DecideBonusRequest) (bonus.Bonus, error) {
	if actor.Role != user.RoleADM {
		return bonus.Bonus{}, user.ErrNotAllowed
	}
	if err := req.Validate(); err != nil {
		return bonus.Bonus{}, err
	}

	record, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return bonus.Bonus{}, err
	}
	if record.Status != bonus.StatusPendente {
		return bonus.Bonus{}, bonus.ErrNotPending
	}

	status := bonus.StatusRejeitado
	if req.Approve {
		status = bonus.StatusAprovado
	}
	now := time.Now()
	if err := s.repo.SetDecision(ctx, record.ID, status, req.DecisionNotes, actor.UserID, now); err != nil {
		return bonus.Bonus{}, err
	}

	record.Status = status
	record.DecisionNotes = &req.DecisionNotes
	record.DecidedBy = &actor.UserID
	record.DecidedAt = &now

	s.recorder.Record(ctx, actor, "bonus.decision", record.ID, map[string]interface{}{
		"approve": req.Approve,
	})

	return record, nil
}
