package goal

import (
	"context"
	"time"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/audit"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/employee"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/goal"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
)

type Service struct {
	repo      goal.Repository
	employees employee.EmployeeRepository
	recorder  audit.Recorder
}

func NewService(repo goal.Repository, employees employee.EmployeeRepository, recorder audit.Recorder) *Service {
	return &Service{repo: repo, employees: employees, recorder: recorder}
}

func (s *Service) Create(ctx context.Context, actor user.Actor, req goal.CreateGoalRequest) (goal.Goal, error) {
	if err := req.Validate(); err != nil {
		return goal.Goal{}, err
	}
	if !s.canManage(ctx, actor, req.EmployeeUID) {
		return goal.Goal{}, user.ErrNotAllowed
	}

	record := goal.Goal{
		EmployeeUID: req.EmployeeUID,
		Title:       req.Title,
		Description: req.Description,
		Progress:    0,
		Status:      goal.StatusAtiva,
		CreatedBy:   actor.UserID,
	}
	if req.DueDate != "" {
		due, _ := time.Parse("2006-01-02", req.DueDate)
		record.DueDate = &due
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return goal.Goal{}, err
	}

	s.recorder.Record(ctx, actor, "goal.create", created.ID, map[string]interface{}{
		"employee_uid": created.EmployeeUID,
	})

	return created, nil
}

func (s *Service) List(ctx context.Context, actor user.Actor, filter goal.Filter) ([]goal.Goal, error) {
	if !actor.Role.IsHR() && actor.Role != user.RoleGestor {
		if filter.EmployeeUID == "" {
			filter.EmployeeUID = actor.EmployeeUID
		} else if filter.EmployeeUID != actor.EmployeeUID {
			return nil, user.ErrNotAllowed
		}
	}
	return s.repo.List(ctx, filter)
}

// UpdateProgress clamps to [0, 100]; hitting 100 completes the goal.
func (s *Service) UpdateProgress(ctx context.Context, actor user.Actor, req goal.UpdateProgressRequest) (goal.Goal, error) {
	if err := req.Validate(); err != nil {
		return goal.Goal{}, err
	}

	record, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return goal.Goal{}, err
	}
	if record.Status != goal.StatusAtiva {
		return goal.Goal{}, goal.ErrGoalNotOpen
	}
	if !s.canManage(ctx, actor, record.EmployeeUID) && !actor.IsSelf(record.EmployeeUID, "") {
		return goal.Goal{}, user.ErrNotAllowed
	}

	progress := goal.ClampProgress(req.Progress)
	status := goal.StatusAtiva
	if progress == 100 {
		status = goal.StatusConcluida
	}

	if err := s.repo.SetProgress(ctx, record.ID, progress, status); err != nil {
		return goal.Goal{}, err
	}

	record.Progress = progress
	record.Status = status

	s.recorder.Record(ctx, actor, "goal.progress", record.ID, map[string]interface{}{
		"progress": progress,
	})

	return record, nil
}

func (s *Service) Complete(ctx context.Context, actor user.Actor, id string) (goal.Goal, error) {
	return s.UpdateProgress(ctx, actor, goal.UpdateProgressRequest{ID: id, Progress: 100})
}

func (s *Service) Cancel(ctx context.Context, actor user.Actor, id string) (goal.Goal, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return goal.Goal{}, err
	}
	if record.Status != goal.StatusAtiva {
		return goal.Goal{}, goal.ErrGoalNotOpen
	}
	if !s.canManage(ctx, actor, record.EmployeeUID) {
		return goal.Goal{}, user.ErrNotAllowed
	}

	if err := s.repo.SetProgress(ctx, record.ID, record.Progress, goal.StatusCancelada); err != nil {
		return goal.Goal{}, err
	}
	record.Status = goal.StatusCancelada

	s.recorder.Record(ctx, actor, "goal.cancel", record.ID, nil)

	return record, nil
}

func (s *Service) canManage(ctx context.Context, actor user.Actor, employeeUID string) bool {
	if actor.Role.IsHR() {
		return true
	}
	if actor.Role != user.RoleGestor {
		return false
	}
	emp, err := s.employees.GetByUID(ctx, employeeUID)
	if err != nil {
		return false
	}
	return emp.ManagerUID != nil && *emp.ManagerUID == actor.EmployeeUID
}
