package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/attendance"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/employee"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
)

type Service struct {
	repo      attendance.Repository
	employees employee.EmployeeRepository
}

func NewService(repo attendance.Repository, employees employee.EmployeeRepository) *Service {
	return &Service{repo: repo, employees: employees}
}

func (s *Service) ClockIn(ctx context.Context, actor user.Actor, req attendance.ClockInRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}
	if !actor.Role.IsHR() && actor.EmployeeUID != req.EmployeeUID {
		return attendance.Record{}, user.ErrNotAllowed
	}

	if _, err := s.employees.GetByUID(ctx, req.EmployeeUID); err != nil {
		return attendance.Record{}, fmt.Errorf("failed to resolve employee: %w", err)
	}

	ts, _ := time.Parse(time.RFC3339, req.Timestamp)
	date := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)

	_, err := s.repo.GetOpenForEmployee(ctx, req.EmployeeUID, date)
	if err == nil {
		return attendance.Record{}, attendance.ErrAlreadyClockedIn
	}
	if !errors.Is(err, attendance.ErrRecordNotFound) {
		return attendance.Record{}, err
	}

	return s.repo.Create(ctx, attendance.Record{
		EmployeeUID: req.EmployeeUID,
		Date:        date,
		ClockIn:     ts,
		Notes:       req.Notes,
	})
}

func (s *Service) ClockOut(ctx context.Context, actor user.Actor, req attendance.ClockOutRequest) (attendance.Record, error) {
	if err := req.Validate(); err != nil {
		return attendance.Record{}, err
	}
	if !actor.Role.IsHR() && actor.EmployeeUID != req.EmployeeUID {
		return attendance.Record{}, user.ErrNotAllowed
	}

	ts, _ := time.Parse(time.RFC3339, req.Timestamp)
	date := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)

	open, err := s.repo.GetOpenForEmployee(ctx, req.EmployeeUID, date)
	if err != nil {
		if errors.Is(err, attendance.ErrRecordNotFound) {
			return attendance.Record{}, attendance.ErrNotClockedIn
		}
		return attendance.Record{}, err
	}
	if !ts.After(open.ClockIn) {
		return attendance.Record{}, attendance.ErrClockOutTooEarly
	}

	if err := s.repo.SetClockOut(ctx, open.ID, ts, req.Notes); err != nil {
		return attendance.Record{}, err
	}

	open.ClockOut = &ts
	if req.Notes != "" {
		open.Notes = req.Notes
	}
	return open, nil
}

func (s *Service) List(ctx context.Context, actor user.Actor, filter attendance.Filter) ([]attendance.Record, error) {
	// Non-HR actors can only query their own punches; gestor rosters go
	// through the employee directory instead.
	if !actor.Role.IsHR() {
		if filter.EmployeeUID == "" {
			filter.EmployeeUID = actor.EmployeeUID
		} else if filter.EmployeeUID != actor.EmployeeUID {
			return nil, user.ErrNotAllowed
		}
	}
	return s.repo.List(ctx, filter)
}

func (s *Service) MonthlyTotals(ctx context.Context, actor user.Actor, employeeUID, month string) (attendance.MonthlyTotal, error) {
	if !actor.Role.IsHR() && actor.EmployeeUID != employeeUID {
		return attendance.MonthlyTotal{}, user.ErrNotAllowed
	}

	monthStart, err := time.Parse("2006-01", month)
	if err != nil {
		return attendance.MonthlyTotal{}, fmt.Errorf("month must be YYYY-MM: %w", err)
	}
	monthEnd := monthStart.AddDate(0, 1, 0).Add(-time.Nanosecond)

	records, err := s.repo.List(ctx, attendance.Filter{
		EmployeeUID: employeeUID,
		DateFrom:    &monthStart,
		DateTo:      &monthEnd,
	})
	if err != nil {
		return attendance.MonthlyTotal{}, err
	}

	total := attendance.MonthlyTotal{Month: month}
	seenDays := map[string]bool{}
	for _, rec := range records {
		day := rec.Date.Format("2006-01-02")
		if !seenDays[day] {
			seenDays[day] = true
			total.DaysPresent++
		}
		total.TotalHours += rec.WorkedHours()
	}
	return total, nil
}
