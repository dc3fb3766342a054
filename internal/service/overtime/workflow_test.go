package overtime

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/employee"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/overtime"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
)

// ---- in-memory fakes -------------------------------------------------

type fakeOvertimeRepo struct {
	mu      sync.Mutex
	nextID  int
	records map[string]overtime.Request
	order   []string

	// failUpdates makes UpdateByID fail for specific ids, to exercise
	// partial batch failures.
	failUpdates map[string]error
}

func newFakeOvertimeRepo() *fakeOvertimeRepo {
	return &fakeOvertimeRepo{
		records:     make(map[string]overtime.Request),
		failUpdates: make(map[string]error),
	}
}

func (f *fakeOvertimeRepo) ListAll(ctx context.Context) ([]overtime.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]overtime.Request, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, f.records[id])
	}
	return out, nil
}

func (f *fakeOvertimeRepo) GetByID(ctx context.Context, id string) (overtime.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	record, ok := f.records[id]
	if !ok {
		return overtime.Request{}, overtime.ErrRequestNotFound
	}
	return record, nil
}

func (f *fakeOvertimeRepo) Create(ctx context.Context, req overtime.Request) (overtime.Request, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	req.ID = fmt.Sprintf("ot-%d", f.nextID)
	req.CreatedAt = time.Now()
	req.UpdatedAt = req.CreatedAt
	f.records[req.ID] = req
	f.order = append(f.order, req.ID)
	return req, nil
}

func (f *fakeOvertimeRepo) UpdateByID(ctx context.Context, id string, fields overtime.UpdateFields) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.failUpdates[id]; err != nil {
		return err
	}
	record, ok := f.records[id]
	if !ok {
		return overtime.ErrRequestNotFound
	}
	if fields.Status != nil {
		record.Status = *fields.Status
	}
	if fields.StartsAt != nil {
		record.StartsAt = *fields.StartsAt
	}
	if fields.EndsAt != nil {
		record.EndsAt = *fields.EndsAt
	}
	if fields.BreakMinutes != nil {
		record.BreakMinutes = *fields.BreakMinutes
	}
	if fields.Hours != nil {
		record.Hours = *fields.Hours
	}
	if fields.DecisionNotes != nil {
		record.DecisionNotes = fields.DecisionNotes
	}
	if fields.DecidedBy != nil {
		record.DecidedBy = fields.DecidedBy
	}
	if fields.DecidedAt != nil {
		record.DecidedAt = fields.DecidedAt
	}
	if fields.Execution != nil {
		execution := *fields.Execution
		record.Execution = &execution
	}
	if fields.AcknowledgedAt != nil {
		if record.Execution != nil {
			record.Execution.AcknowledgedAt = fields.AcknowledgedAt
		}
	}
	if fields.PayrollMonth != nil {
		record.PayrollMonth = fields.PayrollMonth
	}
	if fields.PayrollSentAt != nil {
		record.PayrollSentAt = fields.PayrollSentAt
	}
	record.UpdatedAt = time.Now()
	f.records[id] = record
	return nil
}

type fakeEmployeeRepo struct {
	byUID map[string]employee.Employee
}

func (f *fakeEmployeeRepo) ListAll(ctx context.Context) ([]employee.Employee, error) {
	out := make([]employee.Employee, 0, len(f.byUID))
	for _, emp := range f.byUID {
		out = append(out, emp)
	}
	return out, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByUID(ctx context.Context, uid string) (employee.Employee, error) {
	emp, ok := f.byUID[uid]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error {
	return nil
}

type recordedEvent struct {
	Action   string
	TargetID string
}

type fakeRecorder struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (f *fakeRecorder) Record(ctx context.Context, actor user.Actor, action, targetID string, metadata map[string]interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedEvent{Action: action, TargetID: targetID})
}

func (f *fakeRecorder) actions() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.events))
	for i, e := range f.events {
		out[i] = e.Action
	}
	return out
}

// ---- fixtures --------------------------------------------------------

var (
	actorRH      = user.Actor{UserID: "u-rh", EmployeeUID: "emp-rh", Email: "rh@casarosa.com", Role: user.RoleRH}
	actorADM     = user.Actor{UserID: "u-adm", EmployeeUID: "emp-adm", Email: "adm@casarosa.com", Role: user.RoleADM}
	actorManager = user.Actor{UserID: "u-bruno", EmployeeUID: "emp-bruno", Email: "bruno@casarosa.com", Role: user.RoleGestor}
	actorAna     = user.Actor{UserID: "u-ana", EmployeeUID: "emp-ana", Email: "ana@casarosa.com", Role: user.RoleColaborador}
)

func newTestWorkflow(t *testing.T) (*WorkflowService, *fakeOvertimeRepo, *fakeRecorder) {
	t.Helper()
	repo := newFakeOvertimeRepo()
	managerUID := "emp-bruno"
	employees := &fakeEmployeeRepo{byUID: map[string]employee.Employee{
		"emp-ana": {
			ID:            "e-1",
			UID:           "emp-ana",
			Name:          "Ana Lima",
			Email:         "ana@casarosa.com",
			ManagerUID:    &managerUID,
			CostCenter:    "Producao",
			Role:          user.RoleColaborador,
			MonthlySalary: 2200,
			Active:        true,
		},
	}}
	recorder := &fakeRecorder{}
	svc := NewWorkflowService(repo, employees, recorder, nil, testOvertimeConfig())
	return svc, repo, recorder
}

func validCreate() overtime.CreateRequestRequest {
	return overtime.CreateRequestRequest{
		EmployeeUID:  "emp-ana",
		Date:         "2025-03-10",
		StartsAt:     "2025-03-10T18:00:00-03:00",
		EndsAt:       "2025-03-10T20:00:00-03:00",
		BreakMinutes: 0,
		Extra50:      true,
		Reason:       "fechamento de inventario",
	}
}

// ---- create ----------------------------------------------------------

func TestWorkflow_Create(t *testing.T) {
	svc, _, recorder := newTestWorkflow(t)

	created, err := svc.Create(context.Background(), actorRH, validCreate())
	require.NoError(t, err)

	assert.Equal(t, overtime.StatusPendenteGestao, created.Status)
	assert.Equal(t, "emp-bruno", created.ManagerUID)
	assert.Equal(t, "Producao", created.CostCenter)
	assert.Equal(t, 2.0, created.Hours.Total)
	assert.Equal(t, 2.0, created.Hours.H50)
	assert.Equal(t, "u-rh", created.CreatedBy)
	assert.Contains(t, recorder.actions(), "overtime.create")
}

func TestWorkflow_CreateRoundTripHours(t *testing.T) {
	svc, _, _ := newTestWorkflow(t)

	created, err := svc.Create(context.Background(), actorRH, validCreate())
	require.NoError(t, err)

	fetched, err := svc.Get(context.Background(), actorRH, created.ID)
	require.NoError(t, err)

	recomputed := ComputeHours(fetched.StartsAt, fetched.EndsAt, fetched.BreakMinutes, Flags{
		Extra50:  fetched.Extra50,
		Extra100: fetched.Extra100,
		Night:    fetched.Night,
	})
	assert.Equal(t, recomputed, fetched.Hours)
}

func TestWorkflow_CreateRejectsInvalidInterval(t *testing.T) {
	svc, _, _ := newTestWorkflow(t)

	req := validCreate()
	req.StartsAt, req.EndsAt = req.EndsAt, req.StartsAt
	_, err := svc.Create(context.Background(), actorRH, req)

	assert.ErrorIs(t, err, overtime.ErrInvalidInterval)
}

func TestWorkflow_CreateRejectsZeroNetHours(t *testing.T) {
	svc, _, _ := newTestWorkflow(t)

	req := validCreate()
	req.BreakMinutes = 180
	_, err := svc.Create(context.Background(), actorRH, req)

	assert.ErrorIs(t, err, overtime.ErrNoNetHours)
}

func TestWorkflow_CreateRequiresReason(t *testing.T) {
	svc, _, _ := newTestWorkflow(t)

	req := validCreate()
	req.Reason = "  "
	_, err := svc.Create(context.Background(), actorRH, req)

	assert.Error(t, err)
}

func TestWorkflow_CreateRejectsBothDifferentials(t *testing.T) {
	svc, _, _ := newTestWorkflow(t)

	req := validCreate()
	req.Extra50 = true
	req.Extra100 = true
	_, err := svc.Create(context.Background(), actorRH, req)

	assert.ErrorIs(t, err, overtime.ErrExclusiveDifferential)
}

func TestWorkflow_CreateDeniedForColaborador(t *testing.T) {
	svc, _, _ := newTestWorkflow(t)

	_, err := svc.Create(context.Background(), actorAna, validCreate())

	assert.ErrorIs(t, err, user.ErrNotAllowed)
}

func TestWorkflow_CreateDailyLimitWarning(t *testing.T) {
	svc, _, _ := newTestWorkflow(t)

	req := validCreate()
	req.EndsAt = "2025-03-10T21:30:00-03:00" // 3.5h > 2h limit

	_, err := svc.Create(context.Background(), actorRH, req)
	var confirmErr *overtime.ConfirmationRequiredError
	require.ErrorAs(t, err, &confirmErr)
	assert.Len(t, confirmErr.Warnings, 1)

	// Explicit confirmation lets the same request through.
	req.Confirm = true
	created, err := svc.Create(context.Background(), actorRH, req)
	require.NoError(t, err)
	assert.Equal(t, 3.5, created.Hours.Total)
}

func TestWorkflow_CreateOverlapWarning(t *testing.T) {
	svc, _, _ := newTestWorkflow(t)

	_, err := svc.Create(context.Background(), actorRH, validCreate())
	require.NoError(t, err)

	// Same employee, same date, intersecting interval.
	req := validCreate()
	req.StartsAt = "2025-03-10T19:00:00-03:00"
	req.EndsAt = "2025-03-10T21:00:00-03:00"
	_, err = svc.Create(context.Background(), actorRH, req)

	var confirmErr *overtime.ConfirmationRequiredError
	require.ErrorAs(t, err, &confirmErr)

	req.Confirm = true
	_, err = svc.Create(context.Background(), actorRH, req)
	assert.NoError(t, err)
}

// ---- decide ----------------------------------------------------------

func createPending(t *testing.T, svc *WorkflowService) overtime.Request {
	t.Helper()
	// Confirm upfront so fixtures that stack requests on the same day do
	// not trip the overlap warning.
	req := validCreate()
	req.Confirm = true
	created, err := svc.Create(context.Background(), actorRH, req)
	require.NoError(t, err)
	return created
}

func TestWorkflow_DecideApprove(t *testing.T) {
	svc, _, recorder := newTestWorkflow(t)
	created := createPending(t, svc)

	decided, err := svc.Decide(context.Background(), actorManager, overtime.DecideRequest{
		ID:            created.ID,
		Approve:       true,
		DecisionNotes: "ok para o fechamento",
	})
	require.NoError(t, err)

	assert.Equal(t, overtime.StatusAprovada, decided.Status)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, "u-bruno", *decided.DecidedBy)
	assert.NotNil(t, decided.DecidedAt)
	assert.Contains(t, recorder.actions(), "overtime.decision")
}

func TestWorkflow_DecideReject(t *testing.T) {
	svc, _, _ := newTestWorkflow(t)
	created := createPending(t, svc)

	decided, err := svc.Decide(context.Background(), actorADM, overtime.DecideRequest{
		ID:            created.ID,
		Approve:       false,
		AdjustOnly:    true, // ignored on the reject path
		DecisionNotes: "sem orcamento",
	})
	require.NoError(t, err)

	assert.Equal(t, overtime.StatusRejeitada, decided.Status)
}

func TestWorkflow_DecideAdjustOnlyStaysPending(t *testing.T) {
	svc, repo, _ := newTestWorkflow(t)
	created := createPending(t, svc)

	decided, err := svc.Decide(context.Background(), actorManager, overtime.DecideRequest{
		ID:         created.ID,
		Approve:    true,
		AdjustOnly: true,
		NewInterval: &overtime.IntervalOverride{
			StartsAt: "2025-03-10T18:00:00-03:00",
			EndsAt:   "2025-03-10T19:00:00-03:00",
		},
		DecisionNotes: "reduzido para 1h",
	})
	require.NoError(t, err)

	assert.Equal(t, overtime.StatusPendenteGestao, decided.Status)
	assert.Equal(t, 1.0, decided.Hours.Total)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, overtime.StatusPendenteGestao, stored.Status)
	assert.Equal(t, 1.0, stored.Hours.Total)
}

func TestWorkflow_DecideApproveWithOverrideRecomputesHours(t *testing.T) {
	svc, _, _ := newTestWorkflow(t)
	created := createPending(t, svc)

	decided, err := svc.Decide(context.Background(), actorADM, overtime.DecideRequest{
		ID:      created.ID,
		Approve: true,
		NewInterval: &overtime.IntervalOverride{
			StartsAt: "2025-03-10T18:00:00-03:00",
			EndsAt:   "2025-03-10T19:30:00-03:00",
		},
		DecisionNotes: "aprovado com corte",
	})
	require.NoError(t, err)

	assert.Equal(t, overtime.StatusAprovada, decided.Status)
	assert.Equal(t, 1.5, decided.Hours.Total)
	assert.Equal(t, 1.5, decided.Hours.H50)
}

func TestWorkflow_DecideRequiresNotes(t *testing.T) {
	svc, _, _ := newTestWorkflow(t)
	created := createPending(t, svc)

	_, err := svc.Decide(context.Background(), actorADM, overtime.DecideRequest{
		ID:      created.ID,
		Approve: true,
	})

	assert.ErrorIs(t, err, overtime.ErrDecisionNotesRequired)
}

func TestWorkflow_DecideRejectsNonPending(t *testing.T) {
	svc, _, _ := newTestWorkflow(t)
	created := createPending(t, svc)

	_, err := svc.Decide(context.Background(), actorADM, overtime.DecideRequest{
		ID: created.ID, Approve: true, DecisionNotes: "ok",
	})
	require.NoError(t, err)

	_, err = svc.Decide(context.Background(), actorADM, overtime.DecideRequest{
		ID: created.ID, Approve: true, DecisionNotes: "de novo",
	})
	assert.ErrorIs(t, err, overtime.ErrNotPending)
}

func TestWorkflow_DecideDeniedForForeignManager(t *testing.T) {
	svc, _, _ := newTestWorkflow(t)
	created := createPending(t, svc)

	other := user.Actor{UserID: "u-duda", EmployeeUID: "emp-duda", Role: user.RoleGestor}
	_, err := svc.Decide(context.Background(), other, overtime.DecideRequest{
		ID: created.ID, Approve: true, DecisionNotes: "ok",
	})

	assert.ErrorIs(t, err, user.ErrNotAllowed)
}

// ---- execute / acknowledge -------------------------------------------

func createApproved(t *testing.T, svc *WorkflowService) overtime.Request {
	t.Helper()
	created := createPending(t, svc)
	decided, err := svc.Decide(context.Background(), actorManager, overtime.DecideRequest{
		ID: created.ID, Approve: true, DecisionNotes: "ok",
	})
	require.NoError(t, err)
	return decided
}

func TestWorkflow_Execute(t *testing.T) {
	svc, _, _ := newTestWorkflow(t)
	approved := createApproved(t, svc)

	executed, err := svc.Execute(context.Background(), actorManager, overtime.ExecuteRequest{
		ID:          approved.ID,
		ActualHours: 1.75,
		Notes:       "terminou mais cedo",
	})
	require.NoError(t, err)

	assert.Equal(t, overtime.StatusExecutada, executed.Status)
	require.NotNil(t, executed.Execution)
	assert.Equal(t, 1.75, executed.Execution.ActualHours)
	// Actual and approved hours are tracked separately.
	assert.Equal(t, 2.0, executed.Hours.Total)
}

func TestWorkflow_ExecuteRejectsNonApproved(t *testing.T) {
	svc, _, _ := newTestWorkflow(t)
	created := createPending(t, svc)

	_, err := svc.Execute(context.Background(), actorRH, overtime.ExecuteRequest{
		ID: created.ID, ActualHours: 2,
	})

	assert.ErrorIs(t, err, overtime.ErrNotApproved)
}

func TestWorkflow_AcknowledgeByOwnerIsIdempotent(t *testing.T) {
	svc, repo, _ := newTestWorkflow(t)
	approved := createApproved(t, svc)
	_, err := svc.Execute(context.Background(), actorRH, overtime.ExecuteRequest{ID: approved.ID, ActualHours: 2})
	require.NoError(t, err)

	first, err := svc.Acknowledge(context.Background(), actorAna, approved.ID)
	require.NoError(t, err)
	require.NotNil(t, first.Execution.AcknowledgedAt)
	assert.Equal(t, overtime.StatusExecutada, first.Status)

	second, err := svc.Acknowledge(context.Background(), actorAna, approved.ID)
	require.NoError(t, err)
	assert.False(t, second.Execution.AcknowledgedAt.Before(*first.Execution.AcknowledgedAt))

	stored, err := repo.GetByID(context.Background(), approved.ID)
	require.NoError(t, err)
	assert.Equal(t, overtime.StatusExecutada, stored.Status)
}

func TestWorkflow_AcknowledgeDeniedForOthers(t *testing.T) {
	svc, _, _ := newTestWorkflow(t)
	approved := createApproved(t, svc)
	_, err := svc.Execute(context.Background(), actorRH, overtime.ExecuteRequest{ID: approved.ID, ActualHours: 2})
	require.NoError(t, err)

	_, err = svc.Acknowledge(context.Background(), actorManager, approved.ID)
	assert.ErrorIs(t, err, user.ErrNotAllowed)
}

// ---- payroll / bulk --------------------------------------------------

func TestWorkflow_SendToPayrollMixedBatch(t *testing.T) {
	svc, repo, _ := newTestWorkflow(t)

	executed := createApproved(t, svc)
	_, err := svc.Execute(context.Background(), actorRH, overtime.ExecuteRequest{ID: executed.ID, ActualHours: 2})
	require.NoError(t, err)

	// Second record already exported.
	other := createApproved(t, svc)
	_, err = svc.Execute(context.Background(), actorRH, overtime.ExecuteRequest{ID: other.ID, ActualHours: 2})
	require.NoError(t, err)
	_, err = svc.SendToPayroll(context.Background(), actorRH, overtime.SendToPayrollRequest{
		IDs: []string{other.ID}, Month: "2025-03",
	})
	require.NoError(t, err)

	// Third record still pending.
	pending := createPending(t, svc)

	results, err := svc.SendToPayroll(context.Background(), actorRH, overtime.SendToPayrollRequest{
		IDs:   []string{executed.ID, other.ID, pending.ID},
		Month: "2025-03",
	})
	require.NoError(t, err)
	require.Len(t, results, 3)

	byID := map[string]overtime.BulkResult{}
	for _, r := range results {
		byID[r.ID] = r
	}
	assert.True(t, byID[executed.ID].Success)
	assert.True(t, byID[other.ID].Success) // already EM_FOLHA: no-op, not an error
	assert.False(t, byID[pending.ID].Success)

	stored, err := repo.GetByID(context.Background(), executed.ID)
	require.NoError(t, err)
	assert.Equal(t, overtime.StatusEmFolha, stored.Status)
	require.NotNil(t, stored.PayrollMonth)
	assert.Equal(t, "2025-03", *stored.PayrollMonth)

	untouched, err := repo.GetByID(context.Background(), pending.ID)
	require.NoError(t, err)
	assert.Equal(t, overtime.StatusPendenteGestao, untouched.Status)
}

func TestWorkflow_SendToPayrollDeniedForGestor(t *testing.T) {
	svc, _, _ := newTestWorkflow(t)

	_, err := svc.SendToPayroll(context.Background(), actorManager, overtime.SendToPayrollRequest{
		IDs: []string{"ot-1"}, Month: "2025-03",
	})

	assert.ErrorIs(t, err, user.ErrNotAllowed)
}

func TestWorkflow_MassApprovePartialFailureDoesNotRollBack(t *testing.T) {
	svc, repo, _ := newTestWorkflow(t)

	first := createPending(t, svc)
	second := createPending(t, svc)
	repo.failUpdates[second.ID] = errors.New("write refused")

	results, err := svc.MassApprove(context.Background(), actorManager, overtime.MassApproveRequest{
		IDs:           []string{first.ID, second.ID},
		DecisionNotes: "aprovacao em lote",
	})
	require.NoError(t, err)

	byID := map[string]overtime.BulkResult{}
	for _, r := range results {
		byID[r.ID] = r
	}
	assert.True(t, byID[first.ID].Success)
	assert.False(t, byID[second.ID].Success)
	assert.Contains(t, byID[second.ID].Error, "write refused")

	stored, err := repo.GetByID(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, overtime.StatusAprovada, stored.Status)
}

func TestWorkflow_MassAdjustScalesProportionally(t *testing.T) {
	svc, repo, _ := newTestWorkflow(t)

	// 10h net: 18:00 -> 04:00 next day, no break.
	req := validCreate()
	req.EndsAt = "2025-03-11T04:00:00-03:00"
	req.Confirm = true
	created, err := svc.Create(context.Background(), actorRH, req)
	require.NoError(t, err)
	require.Equal(t, 10.0, created.Hours.Total)

	results, err := svc.MassAdjust(context.Background(), actorManager, overtime.MassAdjustRequest{
		IDs:             []string{created.ID},
		ReductionFactor: 0.2,
		Reason:          "corte de 20%",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.True(t, results[0].Success, results[0].Error)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, stored.Hours.Total, 1e-9)
	assert.InDelta(t, 8.0, stored.Hours.H50, 1e-9)
	// End follows the reduced total, start is preserved.
	assert.Equal(t, created.StartsAt, stored.StartsAt)
	assert.InDelta(t, 8.0, stored.EndsAt.Sub(stored.StartsAt).Hours(), 1e-9)
	assert.Equal(t, overtime.StatusPendenteGestao, stored.Status)
}

func TestWorkflow_MassAdjustKeepsApprovedStatus(t *testing.T) {
	svc, repo, _ := newTestWorkflow(t)
	created := createPending(t, svc)

	_, err := svc.Decide(context.Background(), actorManager, overtime.DecideRequest{
		ID:            created.ID,
		Approve:       true,
		DecisionNotes: "ok",
	})
	require.NoError(t, err)

	// Adjust is a same-state mutation: an approved record stays approved
	// with the scaled hours.
	results, err := svc.MassAdjust(context.Background(), actorManager, overtime.MassAdjustRequest{
		IDs:             []string{created.ID},
		ReductionFactor: 0.5,
		Reason:          "corte de orcamento",
	})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.True(t, results[0].Success, results[0].Error)

	stored, err := repo.GetByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, overtime.StatusAprovada, stored.Status)
	assert.InDelta(t, created.Hours.Total*0.5, stored.Hours.Total, 1e-9)
}

func TestWorkflow_MassAdjustRejectsBadFactor(t *testing.T) {
	svc, _, _ := newTestWorkflow(t)

	_, err := svc.MassAdjust(context.Background(), actorADM, overtime.MassAdjustRequest{
		IDs: []string{"ot-1"}, ReductionFactor: 1.2, Reason: "x",
	})

	assert.ErrorIs(t, err, overtime.ErrInvalidReduction)
}

// ---- listing ---------------------------------------------------------

func TestWorkflow_ListScopesAndSummarizes(t *testing.T) {
	svc, _, _ := newTestWorkflow(t)
	created := createPending(t, svc)

	decided, err := svc.Decide(context.Background(), actorManager, overtime.DecideRequest{
		ID: created.ID, Approve: true, DecisionNotes: "ok",
	})
	require.NoError(t, err)
	require.Equal(t, overtime.StatusAprovada, decided.Status)

	resp, err := svc.List(context.Background(), actorRH, overtime.Filter{})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	require.NotNil(t, resp.Summary.TotalCost)
	assert.Equal(t, 30.0, *resp.Summary.TotalCost) // 2h * 10 * 1.5

	// Colaborador sees the record but never the cost.
	resp, err = svc.List(context.Background(), actorAna, overtime.Filter{})
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Nil(t, resp.Summary.TotalCost)
}

func TestWorkflow_GetDeniedOutsideScope(t *testing.T) {
	svc, _, _ := newTestWorkflow(t)
	created := createPending(t, svc)

	other := user.Actor{UserID: "u-x", EmployeeUID: "emp-x", Email: "x@casarosa.com", Role: user.RoleColaborador}
	_, err := svc.Get(context.Background(), other, created.ID)

	assert.ErrorIs(t, err, user.ErrNotAllowed)
}
