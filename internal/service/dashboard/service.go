package dashboard

import (
	"context"
	"math"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/casarosa-rh/hr-backend-go/internal/config"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/dashboard"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/employee"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/overtime"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/vacation"
	overtimesvc "github.com/casarosa-rh/hr-backend-go/internal/service/overtime"
)

const upcomingWindowDays = 30

// Service assembles the landing-page tiles. The three record sets load
// concurrently; one failed tile fails the whole summary.
type Service struct {
	employees employee.EmployeeRepository
	requests  overtime.Repository
	vacations vacation.Repository
	cfg       config.OvertimeConfig
}

func NewService(
	employees employee.EmployeeRepository,
	requests overtime.Repository,
	vacations vacation.Repository,
	cfg config.OvertimeConfig,
) *Service {
	return &Service{
		employees: employees,
		requests:  requests,
		vacations: vacations,
		cfg:       cfg,
	}
}

func (s *Service) Summary(ctx context.Context, actor user.Actor) (dashboard.Summary, error) {
	var (
		emps     []employee.Employee
		requests []overtime.Request
		vacs     []vacation.Vacation
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		emps, err = s.employees.ListAll(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		requests, err = s.requests.ListAll(gCtx)
		return err
	})
	g.Go(func() error {
		var err error
		vacs, err = s.vacations.ListAll(gCtx)
		return err
	})
	if err := g.Wait(); err != nil {
		return dashboard.Summary{}, err
	}

	scopedRequests := overtimesvc.ScopeForActor(actor, requests)

	summary := dashboard.Summary{}
	for _, emp := range emps {
		if emp.Active {
			summary.Headcount++
		}
	}

	salaries := map[string]float64{}
	for _, emp := range emps {
		salaries[emp.UID] = emp.MonthlySalary
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, 0)

	cost := 0.0
	for _, req := range scopedRequests {
		if req.Status == overtime.StatusPendenteGestao {
			summary.PendingOvertime++
		}
		if req.Status == overtime.StatusPendenteGestao || req.Status == overtime.StatusRejeitada {
			continue
		}
		if req.Date.Before(monthStart) || !req.Date.Before(monthEnd) {
			continue
		}
		summary.MonthOvertimeHrs += req.Hours.Total
		cost += overtimesvc.EstimateCost(req.Hours, salaries[req.EmployeeUID], s.cfg)
	}
	if actor.Role != user.RoleColaborador {
		cost = math.Round(cost*100) / 100
		summary.MonthOvertimeCost = &cost
	}

	windowEnd := now.AddDate(0, 0, upcomingWindowDays)
	for _, vac := range vacs {
		if vac.Status != vacation.StatusAprovada {
			continue
		}
		if vac.StartDate.Before(now) || vac.StartDate.After(windowEnd) {
			continue
		}
		if !s.canSeeVacation(actor, vac) {
			continue
		}
		summary.UpcomingVacations = append(summary.UpcomingVacations, dashboard.UpcomingVacation{
			EmployeeUID:  vac.EmployeeUID,
			EmployeeName: vac.EmployeeName,
			StartDate:    vac.StartDate,
			EndDate:      vac.EndDate,
			Days:         vac.Days,
		})
	}
	for _, vac := range vacs {
		if vac.Status == vacation.StatusPendente && s.canSeeVacation(actor, vac) {
			summary.PendingVacations++
		}
	}
	sort.Slice(summary.UpcomingVacations, func(i, j int) bool {
		return summary.UpcomingVacations[i].StartDate.Before(summary.UpcomingVacations[j].StartDate)
	})

	return summary, nil
}

func (s *Service) canSeeVacation(actor user.Actor, vac vacation.Vacation) bool {
	switch actor.Role {
	case user.RoleADM, user.RoleRH:
		return true
	case user.RoleGestor:
		return vac.ManagerUID == actor.EmployeeUID || actor.IsSelf(vac.EmployeeUID, vac.EmployeeEmail)
	default:
		return actor.IsSelf(vac.EmployeeUID, vac.EmployeeEmail)
	}
}
