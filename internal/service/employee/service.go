package employee

import (
	"context"
	"strings"
	"time"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/audit"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/employee"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
)

// Service implements the employee directory. Writes are restricted to
// ADM/RH; reads are scoped the same way overtime records are: a gestor
// sees their team, a colaborador sees only themself.
type Service struct {
	repo     employee.EmployeeRepository
	recorder audit.Recorder
}

func NewService(repo employee.EmployeeRepository, recorder audit.Recorder) *Service {
	return &Service{repo: repo, recorder: recorder}
}

func (s *Service) Create(ctx context.Context, actor user.Actor, req employee.CreateEmployeeRequest) (employee.Employee, error) {
	if !actor.Role.IsHR() {
		return employee.Employee{}, user.ErrNotAllowed
	}
	if err := req.Validate(); err != nil {
		return employee.Employee{}, err
	}

	emp := employee.Employee{
		UID:           strings.ToLower(strings.TrimSpace(req.UID)),
		Name:          req.Name,
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		ManagerUID:    req.ManagerUID,
		CostCenter:    req.CostCenter,
		Role:          user.Role(req.Role),
		MonthlySalary: req.MonthlySalary,
		Active:        true,
	}
	if req.AdmissionDate != "" {
		admission, _ := time.Parse("2006-01-02", req.AdmissionDate)
		emp.AdmissionDate = admission
	}

	created, err := s.repo.Create(ctx, emp)
	if err != nil {
		return employee.Employee{}, err
	}

	s.recorder.Record(ctx, actor, "employee.create", created.ID, map[string]interface{}{
		"uid":   created.UID,
		"email": created.Email,
	})

	return created, nil
}

func (s *Service) Get(ctx context.Context, actor user.Actor, id string) (employee.Employee, error) {
	emp, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return employee.Employee{}, err
	}
	if !s.canView(actor, emp) {
		return employee.Employee{}, user.ErrNotAllowed
	}
	return emp, nil
}

func (s *Service) GetByUID(ctx context.Context, actor user.Actor, uid string) (employee.Employee, error) {
	emp, err := s.repo.GetByUID(ctx, uid)
	if err != nil {
		return employee.Employee{}, err
	}
	if !s.canView(actor, emp) {
		return employee.Employee{}, user.ErrNotAllowed
	}
	return emp, nil
}

func (s *Service) List(ctx context.Context, actor user.Actor) ([]employee.Employee, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	scoped := make([]employee.Employee, 0, len(all))
	for _, emp := range all {
		if s.canView(actor, emp) {
			scoped = append(scoped, emp)
		}
	}
	return scoped, nil
}

func (s *Service) Update(ctx context.Context, actor user.Actor, req employee.UpdateEmployeeRequest) error {
	if !actor.Role.IsHR() {
		return user.ErrNotAllowed
	}
	if err := req.Validate(); err != nil {
		return err
	}
	if err := s.repo.Update(ctx, req); err != nil {
		return err
	}

	s.recorder.Record(ctx, actor, "employee.update", req.ID, nil)
	return nil
}

// Deactivate soft-deletes: the record stays for historical overtime and
// payroll references.
func (s *Service) Deactivate(ctx context.Context, actor user.Actor, id string) error {
	if !actor.Role.IsHR() {
		return user.ErrNotAllowed
	}
	if err := s.repo.Deactivate(ctx, id); err != nil {
		return err
	}

	s.recorder.Record(ctx, actor, "employee.deactivate", id, nil)
	return nil
}

func (s *Service) canView(actor user.Actor, emp employee.Employee) bool {
	switch actor.Role {
	case user.RoleADM, user.RoleRH:
		return true
	case user.RoleGestor:
		if emp.ManagerUID != nil && *emp.ManagerUID == actor.EmployeeUID {
			return true
		}
		return actor.IsSelf(emp.UID, emp.Email)
	default:
		return actor.IsSelf(emp.UID, emp.Email)
	}
}
