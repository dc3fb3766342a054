package vacation

import (
	"context"
	"fmt"
	"time"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/audit"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/employee"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/vacation"
)

// defaultEntitledDays is the yearly allowance used when no collective
// agreement override exists.
const defaultEntitledDays = 30

type Service struct {
	repo      vacation.Repository
	employees employee.EmployeeRepository
	recorder  audit.Recorder
}

func NewService(repo vacation.Repository, employees employee.EmployeeRepository, recorder audit.Recorder) *Service {
	return &Service{repo: repo, employees: employees, recorder: recorder}
}

func (s *Service) Create(ctx context.Context, actor user.Actor, req vacation.CreateVacationRequest) (vacation.Vacation, error) {
	if err := req.Validate(); err != nil {
		return vacation.Vacation{}, err
	}
	// RH opens requests for anyone; everyone else only for themself.
	if !actor.Role.IsHR() && actor.EmployeeUID != req.EmployeeUID {
		return vacation.Vacation{}, user.ErrNotAllowed
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	if end.Before(start) {
		return vacation.Vacation{}, vacation.ErrInvalidPeriod
	}

	emp, err := s.employees.GetByUID(ctx, req.EmployeeUID)
	if err != nil {
		return vacation.Vacation{}, fmt.Errorf("failed to resolve employee: %w", err)
	}

	existing, err := s.repo.ListAll(ctx)
	if err != nil {
		return vacation.Vacation{}, err
	}
	for _, other := range existing {
		if other.EmployeeUID == emp.UID && other.OverlapsPeriod(start, end) {
			return vacation.Vacation{}, vacation.ErrPeriodOverlap
		}
	}

	managerUID := ""
	if emp.ManagerUID != nil {
		managerUID = *emp.ManagerUID
	}

	record := vacation.Vacation{
		EmployeeUID:   emp.UID,
		EmployeeName:  emp.Name,
		EmployeeEmail: emp.Email,
		ManagerUID:    managerUID,
		StartDate:     start,
		EndDate:       end,
		Days:          vacation.PeriodDays(start, end),
		Reason:        req.Reason,
		Status:        vacation.StatusPendente,
		CreatedBy:     actor.UserID,
	}

	created, err := s.repo.Create(ctx, record)
	if err != nil {
		return vacation.Vacation{}, err
	}

	s.recorder.Record(ctx, actor, "vacation.create", created.ID, map[string]interface{}{
		"employee_uid": created.EmployeeUID,
		"days":         created.Days,
	})

	return created, nil
}

func (s *Service) Get(ctx context.Context, actor user.Actor, id string) (vacation.Vacation, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return vacation.Vacation{}, err
	}
	if !s.canView(actor, record) {
		return vacation.Vacation{}, user.ErrNotAllowed
	}
	return record, nil
}

func (s *Service) List(ctx context.Context, actor user.Actor, filter vacation.Filter) ([]vacation.Vacation, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]vacation.Vacation, 0, len(all))
	for _, record := range all {
		if !s.canView(actor, record) {
			continue
		}
		if filter.EmployeeUID != "" && record.EmployeeUID != filter.EmployeeUID {
			continue
		}
		if filter.Year != 0 && record.StartDate.Year() != filter.Year {
			continue
		}
		if len(filter.Statuses) > 0 && !containsStatus(filter.Statuses, record.Status) {
			continue
		}
		out = append(out, record)
	}
	return out, nil
}

func (s *Service) Decide(ctx context.Context, actor user.Actor, req vacation.DecideVacationRequest) (vacation.Vacation, error) {
	if err := req.Validate(); err != nil {
		return vacation.Vacation{}, err
	}

	record, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return vacation.Vacation{}, err
	}
	if record.Status != vacation.StatusPendente {
		return vacation.Vacation{}, vacation.ErrNotPending
	}
	if !s.canDecide(actor, record) {
		return vacation.Vacation{}, user.ErrNotAllowed
	}

	status := vacation.StatusRejeitada
	if req.Approve {
		status = vacation.StatusAprovada
	}
	now := time.Now()
	if err := s.repo.UpdateByID(ctx, record.ID, vacation.UpdateFields{
		Status:        &status,
		DecisionNotes: &req.DecisionNotes,
		DecidedBy:     &actor.UserID,
		DecidedAt:     &now,
	}); err != nil {
		return vacation.Vacation{}, err
	}

	record.Status = status
	record.DecisionNotes = &req.DecisionNotes
	record.DecidedBy = &actor.UserID
	record.DecidedAt = &now

	s.recorder.Record(ctx, actor, "vacation.decision", record.ID, map[string]interface{}{
		"approve": req.Approve,
	})

	return record, nil
}

// Cancel withdraws a pending or approved request that has not started yet.
func (s *Service) Cancel(ctx context.Context, actor user.Actor, id string) (vacation.Vacation, error) {
	record, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return vacation.Vacation{}, err
	}
	if !actor.Role.IsHR() && !actor.IsSelf(record.EmployeeUID, record.EmployeeEmail) {
		return vacation.Vacation{}, user.ErrNotAllowed
	}
	if record.Status != vacation.StatusPendente && record.Status != vacation.StatusAprovada {
		return vacation.Vacation{}, vacation.ErrNotCancellable
	}
	if !record.StartDate.After(time.Now()) {
		return vacation.Vacation{}, vacation.ErrNotCancellable
	}

	status := vacation.StatusCancelada
	if err := s.repo.UpdateByID(ctx, record.ID, vacation.UpdateFields{Status: &status}); err != nil {
		return vacation.Vacation{}, err
	}
	record.Status = status

	s.recorder.Record(ctx, actor, "vacation.cancel", record.ID, nil)

	return record, nil
}

func (s *Service) Balance(ctx context.Context, actor user.Actor, employeeUID string, year int) (vacation.Balance, error) {
	if !actor.Role.IsHR() && actor.EmployeeUID != employeeUID && actor.Role != user.RoleGestor {
		return vacation.Balance{}, user.ErrNotAllowed
	}
	if year == 0 {
		year = time.Now().Year()
	}

	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return vacation.Balance{}, err
	}

	taken := 0
	for _, record := range all {
		if record.EmployeeUID != employeeUID {
			continue
		}
		if record.Status != vacation.StatusAprovada {
			continue
		}
		if record.StartDate.Year() != year {
			continue
		}
		taken += record.Days
	}

	return vacation.Balance{
		EmployeeUID: employeeUID,
		Year:        year,
		Entitled:    defaultEntitledDays,
		Taken:       taken,
		Remaining:   defaultEntitledDays - taken,
	}, nil
}

func (s *Service) canView(actor user.Actor, record vacation.Vacation) bool {
	switch actor.Role {
	case user.RoleADM, user.RoleRH:
		return true
	case user.RoleGestor:
		return record.ManagerUID == actor.EmployeeUID || actor.IsSelf(record.EmployeeUID, record.EmployeeEmail)
	default:
		return actor.IsSelf(record.EmployeeUID, record.EmployeeEmail)
	}
}

func (s *Service) canDecide(actor user.Actor, record vacation.Vacation) bool {
	if actor.Role == user.RoleADM {
		return true
	}
	return actor.Role == user.RoleGestor && record.ManagerUID == actor.EmployeeUID
}

func containsStatus(set []vacation.Status, status vacation.Status) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}
