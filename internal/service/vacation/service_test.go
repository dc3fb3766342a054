package vacation

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/employee"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/vacation"
)

type fakeVacationRepo struct {
	records map[string]vacation.Vacation
	nextID  int
}

func newFakeVacationRepo() *fakeVacationRepo {
	return &fakeVacationRepo{records: map[string]vacation.Vacation{}}
}

func (r *fakeVacationRepo) ListAll(ctx context.Context) ([]vacation.Vacation, error) {
	out := make([]vacation.Vacation, 0, len(r.records))
	for _, v := range r.records {
		out = append(out, v)
	}
	return out, nil
}

func (r *fakeVacationRepo) GetByID(ctx context.Context, id string) (vacation.Vacation, error) {
	v, ok := r.records[id]
	if !ok {
		return vacation.Vacation{}, vacation.ErrVacationNotFound
	}
	return v, nil
}

func (r *fakeVacationRepo) Create(ctx context.Context, v vacation.Vacation) (vacation.Vacation, error) {
	r.nextID++
	v.ID = fmt.Sprintf("vac-%d", r.nextID)
	v.CreatedAt = time.Now()
	r.records[v.ID] = v
	return v, nil
}

func (r *fakeVacationRepo) UpdateByID(ctx context.Context, id string, fields vacation.UpdateFields) error {
	v, ok := r.records[id]
	if !ok {
		return vacation.ErrVacationNotFound
	}
	if fields.Status != nil {
		v.Status = *fields.Status
	}
	if fields.DecisionNotes != nil {
		v.DecisionNotes = fields.DecisionNotes
	}
	if fields.DecidedBy != nil {
		v.DecidedBy = fields.DecidedBy
	}
	if fields.DecidedAt != nil {
		v.DecidedAt = fields.DecidedAt
	}
	r.records[id] = v
	return nil
}

type fakeEmployeeRepo struct {
	byUID map[string]employee.Employee
}

func (r *fakeEmployeeRepo) ListAll(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (r *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (r *fakeEmployeeRepo) GetByUID(ctx context.Context, uid string) (employee.Employee, error) {
	emp, ok := r.byUID[uid]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (r *fakeEmployeeRepo) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	return emp, nil
}

func (r *fakeEmployeeRepo) Update(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	return nil
}

func (r *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error {
	return nil
}

type noopRecorder struct{}

func (noopRecorder) Record(ctx context.Context, actor user.Actor, action, targetID string, metadata map[string]interface{}) {
}

var (
	actorRH  = user.Actor{UserID: "u-rh", Role: user.RoleRH}
	actorAna = user.Actor{UserID: "u-ana", EmployeeUID: "emp-ana", Email: "ana@casarosa.com.br", Role: user.RoleColaborador}
)

func newTestService() (*Service, *fakeVacationRepo) {
	manager := "emp-bruno"
	repo := newFakeVacationRepo()
	employees := &fakeEmployeeRepo{byUID: map[string]employee.Employee{
		"emp-ana": {ID: "1", UID: "emp-ana", Name: "Ana Lima", Email: "ana@casarosa.com.br", ManagerUID: &manager, Active: true},
	}}
	return NewService(repo, employees, noopRecorder{}), repo
}

func futureDate(daysAhead int) string {
	return time.Now().AddDate(0, 0, daysAhead).Format("2006-01-02")
}

func TestCreate(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), actorAna, vacation.CreateVacationRequest{
		EmployeeUID: "emp-ana",
		StartDate:   futureDate(30),
		EndDate:     futureDate(39),
		Reason:      "ferias de julho",
	})
	require.NoError(t, err)

	assert.Equal(t, vacation.StatusPendente, created.Status)
	assert.Equal(t, 10, created.Days)
	assert.Equal(t, "emp-bruno", created.ManagerUID)
}

func TestCreateRejectsOverlap(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), actorAna, vacation.CreateVacationRequest{
		EmployeeUID: "emp-ana",
		StartDate:   futureDate(30),
		EndDate:     futureDate(39),
		Reason:      "ferias de julho",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), actorAna, vacation.CreateVacationRequest{
		EmployeeUID: "emp-ana",
		StartDate:   futureDate(35),
		EndDate:     futureDate(44),
		Reason:      "emenda",
	})
	assert.ErrorIs(t, err, vacation.ErrPeriodOverlap)
}

func TestCreateForOtherEmployeeDenied(t *testing.T) {
	svc, _ := newTestService()

	other := user.Actor{UserID: "u-caio", EmployeeUID: "emp-caio", Role: user.RoleColaborador}
	_, err := svc.Create(context.Background(), other, vacation.CreateVacationRequest{
		EmployeeUID: "emp-ana",
		StartDate:   futureDate(30),
		EndDate:     futureDate(39),
		Reason:      "ferias de julho",
	})
	assert.ErrorIs(t, err, user.ErrNotAllowed)
}

func TestDecide(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), actorAna, vacation.CreateVacationRequest{
		EmployeeUID: "emp-ana",
		StartDate:   futureDate(30),
		EndDate:     futureDate(39),
		Reason:      "ferias de julho",
	})
	require.NoError(t, err)

	manager := user.Actor{UserID: "u-bruno", EmployeeUID: "emp-bruno", Role: user.RoleGestor}
	decided, err := svc.Decide(context.Background(), manager, vacation.DecideVacationRequest{
		ID:            created.ID,
		Approve:       true,
		DecisionNotes: "periodo aprovado",
	})
	require.NoError(t, err)

	assert.Equal(t, vacation.StatusAprovada, decided.Status)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, "u-bruno", *decided.DecidedBy)

	// A decided request cannot be decided again.
	_, err = svc.Decide(context.Background(), manager, vacation.DecideVacationRequest{
		ID:            created.ID,
		Approve:       false,
		DecisionNotes: "mudei de ideia",
	})
	assert.ErrorIs(t, err, vacation.ErrNotPending)
}

func TestDecideByForeignManagerDenied(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), actorAna, vacation.CreateVacationRequest{
		EmployeeUID: "emp-ana",
		StartDate:   futureDate(30),
		EndDate:     futureDate(39),
		Reason:      "ferias de julho",
	})
	require.NoError(t, err)

	foreign := user.Actor{UserID: "u-dora", EmployeeUID: "emp-dora", Role: user.RoleGestor}
	_, err = svc.Decide(context.Background(), foreign, vacation.DecideVacationRequest{
		ID:            created.ID,
		Approve:       true,
		DecisionNotes: "ok",
	})
	assert.ErrorIs(t, err, user.ErrNotAllowed)
}

func TestCancel(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), actorAna, vacation.CreateVacationRequest{
		EmployeeUID: "emp-ana",
		StartDate:   futureDate(30),
		EndDate:     futureDate(39),
		Reason:      "ferias de julho",
	})
	require.NoError(t, err)

	cancelled, err := svc.Cancel(context.Background(), actorAna, created.ID)
	require.NoError(t, err)
	assert.Equal(t, vacation.StatusCancelada, cancelled.Status)

	_, err = svc.Cancel(context.Background(), actorAna, created.ID)
	assert.ErrorIs(t, err, vacation.ErrNotCancellable)
}

func TestCancelStartedVacationDenied(t *testing.T) {
	svc, repo := newTestService()

	started, err := repo.Create(context.Background(), vacation.Vacation{
		EmployeeUID: "emp-ana",
		StartDate:   time.Now().AddDate(0, 0, -2),
		EndDate:     time.Now().AddDate(0, 0, 5),
		Days:        8,
		Status:      vacation.StatusAprovada,
	})
	require.NoError(t, err)

	_, err = svc.Cancel(context.Background(), actorAna, started.ID)
	assert.ErrorIs(t, err, vacation.ErrNotCancellable)
}

func TestBalance(t *testing.T) {
	svc, _ := newTestService()

	created, err := svc.Create(context.Background(), actorAna, vacation.CreateVacationRequest{
		EmployeeUID: "emp-ana",
		StartDate:   futureDate(30),
		EndDate:     futureDate(39),
		Reason:      "ferias de julho",
	})
	require.NoError(t, err)

	year := created.StartDate.Year()

	// Pending requests do not consume the balance.
	balance, err := svc.Balance(context.Background(), actorRH, "emp-ana", year)
	require.NoError(t, err)
	assert.Equal(t, 30, balance.Entitled)
	assert.Equal(t, 0, balance.Taken)

	adm := user.Actor{UserID: "u-adm", Role: user.RoleADM}
	_, err = svc.Decide(context.Background(), adm, vacation.DecideVacationRequest{
		ID:            created.ID,
		Approve:       true,
		DecisionNotes: "ok",
	})
	require.NoError(t, err)

	balance, err = svc.Balance(context.Background(), actorRH, "emp-ana", year)
	require.NoError(t, err)
	assert.Equal(t, 10, balance.Taken)
	assert.Equal(t, 20, balance.Remaining)
}

func TestListScopedForOwner(t *testing.T) {
	svc, repo := newTestService()

	_, err := repo.Create(context.Background(), vacation.Vacation{
		EmployeeUID: "emp-ana", EmployeeEmail: "ana@casarosa.com.br",
		StartDate: time.Now(), EndDate: time.Now(), Days: 1, Status: vacation.StatusPendente,
	})
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), vacation.Vacation{
		EmployeeUID: "emp-caio", EmployeeEmail: "caio@casarosa.com.br",
		StartDate: time.Now(), EndDate: time.Now(), Days: 1, Status: vacation.StatusPendente,
	})
	require.NoError(t, err)

	mine, err := svc.List(context.Background(), actorAna, vacation.Filter{})
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "emp-ana", mine[0].EmployeeUID)

	all, err := svc.List(context.Background(), actorRH, vacation.Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
