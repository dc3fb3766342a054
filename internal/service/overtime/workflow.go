package overtime

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/casarosa-rh/hr-backend-go/internal/config"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/audit"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/employee"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/overtime"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
)

// WorkflowService owns the overtime state machine. Validation and
// permission checks run before any persistence write; once a write is
// issued the persistence error, if any, surfaces untouched. Bulk
// operations issue one independent write per record with no atomicity
// across the batch.
type WorkflowService struct {
	requests  overtime.Repository
	employees employee.EmployeeRepository
	recorder  audit.Recorder
	gate      overtime.Gate
	cfg       config.OvertimeConfig
}

func NewWorkflowService(
	requests overtime.Repository,
	employees employee.EmployeeRepository,
	recorder audit.Recorder,
	gate overtime.Gate,
	cfg config.OvertimeConfig,
) *WorkflowService {
	if gate == nil {
		gate = overtime.DefaultGate
	}
	return &WorkflowService{
		requests:  requests,
		employees: employees,
		recorder:  recorder,
		gate:      gate,
		cfg:       cfg,
	}
}

func (s *WorkflowService) Create(ctx context.Context, actor user.Actor, req overtime.CreateRequestRequest) (overtime.Request, error) {
	if err := req.Validate(); err != nil {
		return overtime.Request{}, err
	}
	if err := s.gate(actor, overtime.CapCreate, nil); err != nil {
		return overtime.Request{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	startsAt, _ := time.Parse(time.RFC3339, req.StartsAt)
	endsAt, _ := time.Parse(time.RFC3339, req.EndsAt)

	if !endsAt.After(startsAt) {
		return overtime.Request{}, overtime.ErrInvalidInterval
	}

	hours := ComputeHours(startsAt, endsAt, req.BreakMinutes, Flags{
		Extra50:  req.Extra50,
		Extra100: req.Extra100,
		Night:    req.Night,
	})
	if hours.Total <= 0 {
		return overtime.Request{}, overtime.ErrNoNetHours
	}

	emp, err := s.employees.GetByUID(ctx, req.EmployeeUID)
	if err != nil {
		return overtime.Request{}, fmt.Errorf("failed to resolve employee: %w", err)
	}

	warnings, err := s.collectWarnings(ctx, emp.UID, date, startsAt, endsAt, hours)
	if err != nil {
		return overtime.Request{}, err
	}
	if len(warnings) > 0 && !req.Confirm {
		return overtime.Request{}, &overtime.ConfirmationRequiredError{Warnings: warnings}
	}

	managerUID := ""
	if emp.ManagerUID != nil {
		managerUID = *emp.ManagerUID
	}

	record := overtime.Request{
		EmployeeUID:   emp.UID,
		EmployeeEmail: emp.Email,
		EmployeeName:  emp.Name,
		ManagerUID:    managerUID,
		CostCenter:    emp.CostCenter,
		Date:          date,
		StartsAt:      startsAt,
		EndsAt:        endsAt,
		BreakMinutes:  req.BreakMinutes,
		Extra50:       !req.Extra100,
		Extra100:      req.Extra100,
		Night:         req.Night,
		Reason:        req.Reason,
		Attachments:   req.Attachments,
		Status:        overtime.StatusPendenteGestao,
		Hours:         hours,
		CreatedBy:     actor.UserID,
		CreatedByRole: actor.Role,
	}

	created, err := s.requests.Create(ctx, record)
	if err != nil {
		return overtime.Request{}, err
	}

	s.recorder.Record(ctx, actor, "overtime.create", created.ID, map[string]interface{}{
		"employee_uid": created.EmployeeUID,
		"date":         req.Date,
		"total_hours":  created.Hours.Total,
	})

	return created, nil
}

// collectWarnings gathers the non-blocking conditions that require an
// explicit confirmation: net hours above the daily limit and overlap
// with an existing non-rejected request for the same employee and date.
func (s *WorkflowService) collectWarnings(ctx context.Context, employeeUID string, date, startsAt, endsAt time.Time, hours overtime.HoursBreakdown) ([]string, error) {
	var warnings []string

	if s.cfg.DailyLimitHours > 0 && hours.Total > s.cfg.DailyLimitHours {
		warnings = append(warnings, fmt.Sprintf("net hours %.2f exceed the daily limit of %.2f", hours.Total, s.cfg.DailyLimitHours))
	}

	existing, err := s.requests.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check for overlapping requests: %w", err)
	}
	for _, other := range existing {
		if other.EmployeeUID != employeeUID {
			continue
		}
		if other.Overlaps(date, startsAt, endsAt) {
			warnings = append(warnings, fmt.Sprintf("interval overlaps request %s (%s)", other.ID, other.Status))
			break
		}
	}

	return warnings, nil
}

func (s *WorkflowService) Get(ctx context.Context, actor user.Actor, id string) (overtime.Request, error) {
	record, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return overtime.Request{}, err
	}
	if len(ScopeForActor(actor, []overtime.Request{record})) == 0 {
		return overtime.Request{}, user.ErrNotAllowed
	}
	return record, nil
}

func (s *WorkflowService) List(ctx context.Context, actor user.Actor, filter overtime.Filter) (overtime.ListResponse, error) {
	all, err := s.requests.ListAll(ctx)
	if err != nil {
		return overtime.ListResponse{}, err
	}

	scoped := ScopeForActor(actor, all)
	filtered := ApplyFilter(scoped, filter)

	includeCost := actor.Role != user.RoleColaborador
	salaries := map[string]float64{}
	if includeCost {
		employees, err := s.employees.ListAll(ctx)
		if err != nil {
			return overtime.ListResponse{}, fmt.Errorf("failed to load salaries: %w", err)
		}
		for _, emp := range employees {
			salaries[emp.UID] = emp.MonthlySalary
		}
	}

	return overtime.ListResponse{
		Items:   filtered,
		Summary: BuildSummary(scoped, filtered, salaries, s.cfg, includeCost),
	}, nil
}

func (s *WorkflowService) Decide(ctx context.Context, actor user.Actor, req overtime.DecideRequest) (overtime.Request, error) {
	if err := req.Validate(); err != nil {
		return overtime.Request{}, err
	}

	record, err := s.requests.GetByID(ctx, req.ID)
	if err != nil {
		return overtime.Request{}, err
	}
	if record.Status != overtime.StatusPendenteGestao {
		return overtime.Request{}, overtime.ErrNotPending
	}
	if err := s.gate(actor, overtime.CapDecide, &record); err != nil {
		return overtime.Request{}, err
	}

	now := time.Now()
	fields := overtime.UpdateFields{
		DecisionNotes: &req.DecisionNotes,
		DecidedBy:     &actor.UserID,
		DecidedAt:     &now,
	}

	next := record.Status
	switch {
	case !req.Approve:
		// Reject is the administrative shortcut out of PENDENTE_GESTAO;
		// adjust_only is ignored on this path.
		next = overtime.StatusRejeitada
	case req.AdjustOnly:
		// Same-state correction: the interval and notes change, the
		// request stays with the requester.
	default:
		next = overtime.StatusAprovada
	}
	if next != record.Status {
		fields.Status = &next
	}

	if req.NewInterval != nil && next != overtime.StatusRejeitada {
		startsAt, _ := time.Parse(time.RFC3339, req.NewInterval.StartsAt)
		endsAt, _ := time.Parse(time.RFC3339, req.NewInterval.EndsAt)
		if !endsAt.After(startsAt) {
			return overtime.Request{}, overtime.ErrInvalidInterval
		}
		breakMinutes := record.BreakMinutes
		if req.NewInterval.BreakMinutes != nil {
			breakMinutes = *req.NewInterval.BreakMinutes
		}
		hours := ComputeHours(startsAt, endsAt, breakMinutes, Flags{
			Extra50:  record.Extra50,
			Extra100: record.Extra100,
			Night:    record.Night,
		})
		if hours.Total <= 0 {
			return overtime.Request{}, overtime.ErrNoNetHours
		}

		fields.StartsAt = &startsAt
		fields.EndsAt = &endsAt
		fields.BreakMinutes = &breakMinutes
		fields.Hours = &hours

		record.StartsAt = startsAt
		record.EndsAt = endsAt
		record.BreakMinutes = breakMinutes
		record.Hours = hours
	}

	if err := s.requests.UpdateByID(ctx, record.ID, fields); err != nil {
		return overtime.Request{}, err
	}

	record.Status = next
	record.DecisionNotes = &req.DecisionNotes
	record.DecidedBy = &actor.UserID
	record.DecidedAt = &now

	s.recorder.Record(ctx, actor, "overtime.decision", record.ID, map[string]interface{}{
		"approve":     req.Approve,
		"adjust_only": req.AdjustOnly,
		"status":      string(record.Status),
	})

	return record, nil
}

func (s *WorkflowService) Execute(ctx context.Context, actor user.Actor, req overtime.ExecuteRequest) (overtime.Request, error) {
	if err := req.Validate(); err != nil {
		return overtime.Request{}, err
	}

	record, err := s.requests.GetByID(ctx, req.ID)
	if err != nil {
		return overtime.Request{}, err
	}
	if record.Status != overtime.StatusAprovada {
		return overtime.Request{}, overtime.ErrNotApproved
	}
	if err := s.gate(actor, overtime.CapExecute, &record); err != nil {
		return overtime.Request{}, err
	}

	execution := overtime.Execution{
		ActualHours: req.ActualHours,
		Notes:       req.Notes,
		Attachments: req.Attachments,
	}
	status := overtime.StatusExecutada
	if err := s.requests.UpdateByID(ctx, record.ID, overtime.UpdateFields{
		Status:    &status,
		Execution: &execution,
	}); err != nil {
		return overtime.Request{}, err
	}

	record.Status = status
	record.Execution = &execution

	s.recorder.Record(ctx, actor, "overtime.executed", record.ID, map[string]interface{}{
		"actual_hours":   req.ActualHours,
		"approved_hours": record.Hours.Total,
	})

	return record, nil
}

func (s *WorkflowService) Acknowledge(ctx context.Context, actor user.Actor, id string) (overtime.Request, error) {
	record, err := s.requests.GetByID(ctx, id)
	if err != nil {
		return overtime.Request{}, err
	}
	if record.Status != overtime.StatusExecutada {
		return overtime.Request{}, overtime.ErrNotExecuted
	}
	if err := s.gate(actor, overtime.CapAcknowledge, &record); err != nil {
		return overtime.Request{}, err
	}

	// Idempotent: re-acknowledging just overwrites the timestamp.
	now := time.Now()
	if err := s.requests.UpdateByID(ctx, record.ID, overtime.UpdateFields{
		AcknowledgedAt: &now,
	}); err != nil {
		return overtime.Request{}, err
	}

	if record.Execution != nil {
		record.Execution.AcknowledgedAt = &now
	}

	s.recorder.Record(ctx, actor, "overtime.acknowledged", record.ID, nil)

	return record, nil
}

func (s *WorkflowService) SendToPayroll(ctx context.Context, actor user.Actor, req overtime.SendToPayrollRequest) ([]overtime.BulkResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.gate(actor, overtime.CapPayroll, nil); err != nil {
		return nil, err
	}

	now := time.Now()
	results := s.forEachID(ctx, req.IDs, func(ctx context.Context, record overtime.Request) error {
		if record.Status == overtime.StatusEmFolha {
			return nil // already exported, no-op
		}
		if record.Status != overtime.StatusExecutada {
			return overtime.ErrNotExecuted
		}
		status := overtime.StatusEmFolha
		return s.requests.UpdateByID(ctx, record.ID, overtime.UpdateFields{
			Status:        &status,
			PayrollMonth:  &req.Month,
			PayrollSentAt: &now,
		})
	})

	s.recorder.Record(ctx, actor, "overtime.payroll", "", map[string]interface{}{
		"ids":   req.IDs,
		"month": req.Month,
	})

	return results, nil
}

func (s *WorkflowService) MassApprove(ctx context.Context, actor user.Actor, req overtime.MassApproveRequest) ([]overtime.BulkResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	status := overtime.StatusAprovada
	results := s.forEachID(ctx, req.IDs, func(ctx context.Context, record overtime.Request) error {
		if record.Status != overtime.StatusPendenteGestao {
			return overtime.ErrNotPending
		}
		if err := s.gate(actor, overtime.CapDecide, &record); err != nil {
			return err
		}
		return s.requests.UpdateByID(ctx, record.ID, overtime.UpdateFields{
			Status:        &status,
			DecisionNotes: &req.DecisionNotes,
			DecidedBy:     &actor.UserID,
			DecidedAt:     &now,
		})
	})

	s.recorder.Record(ctx, actor, "overtime.massApprove", "", map[string]interface{}{
		"ids": req.IDs,
	})

	return results, nil
}

func (s *WorkflowService) MassAdjust(ctx context.Context, actor user.Actor, req overtime.MassAdjustRequest) ([]overtime.BulkResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	ratio := 1 - req.ReductionFactor
	results := s.forEachID(ctx, req.IDs, func(ctx context.Context, record overtime.Request) error {
		if record.Status != overtime.StatusPendenteGestao && record.Status != overtime.StatusAprovada {
			return overtime.ErrNotPending
		}
		if err := s.gate(actor, overtime.CapDecide, &record); err != nil {
			return err
		}

		hours := overtime.HoursBreakdown{
			Total:  record.Hours.Total * ratio,
			H50:    record.Hours.H50 * ratio,
			H100:   record.Hours.H100 * ratio,
			HNight: record.Hours.HNight * ratio,
		}
		// The end timestamp follows the reduced total; the start is kept.
		span := time.Duration((hours.Total + float64(record.BreakMinutes)/60) * float64(time.Hour))
		endsAt := record.StartsAt.Add(span)

		return s.requests.UpdateByID(ctx, record.ID, overtime.UpdateFields{
			EndsAt:        &endsAt,
			Hours:         &hours,
			DecisionNotes: &req.Reason,
			DecidedBy:     &actor.UserID,
			DecidedAt:     &now,
		})
	})

	s.recorder.Record(ctx, actor, "overtime.massAdjust", "", map[string]interface{}{
		"ids":              req.IDs,
		"reduction_factor": req.ReductionFactor,
	})

	return results, nil
}

// forEachID runs op once per id, each as an independent write. Failures
// are reported per item and never roll back or block the others; the
// caller is expected to re-fetch afterwards to reconcile.
func (s *WorkflowService) forEachID(ctx context.Context, ids []string, op func(ctx context.Context, record overtime.Request) error) []overtime.BulkResult {
	results := make([]overtime.BulkResult, len(ids))

	g, gCtx := errgroup.WithContext(ctx)
	for i, id := range ids {
		g.Go(func() error {
			results[i] = overtime.BulkResult{ID: id, Success: true}
			record, err := s.requests.GetByID(gCtx, id)
			if err == nil {
				err = op(gCtx, record)
			}
			if err != nil {
				results[i].Success = false
				results[i].Error = err.Error()
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}
