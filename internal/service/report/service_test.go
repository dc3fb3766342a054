package report

import (
	"context"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/overtime"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
)

// fakeWorkflow serves a canned listing; only List is exercised here.
type fakeWorkflow struct {
	items []overtime.Request
}

func (f *fakeWorkflow) Create(ctx context.Context, actor user.Actor, req overtime.CreateRequestRequest) (overtime.Request, error) {
	return overtime.Request{}, nil
}

func (f *fakeWorkflow) Get(ctx context.Context, actor user.Actor, id string) (overtime.Request, error) {
	return overtime.Request{}, nil
}

func (f *fakeWorkflow) List(ctx context.Context, actor user.Actor, filter overtime.Filter) (overtime.ListResponse, error) {
	return overtime.ListResponse{Items: f.items}, nil
}

func (f *fakeWorkflow) Decide(ctx context.Context, actor user.Actor, req overtime.DecideRequest) (overtime.Request, error) {
	return overtime.Request{}, nil
}

func (f *fakeWorkflow) Execute(ctx context.Context, actor user.Actor, req overtime.ExecuteRequest) (overtime.Request, error) {
	return overtime.Request{}, nil
}

func (f *fakeWorkflow) Acknowledge(ctx context.Context, actor user.Actor, id string) (overtime.Request, error) {
	return overtime.Request{}, nil
}

func (f *fakeWorkflow) SendToPayroll(ctx context.Context, actor user.Actor, req overtime.SendToPayrollRequest) ([]overtime.BulkResult, error) {
	return nil, nil
}

func (f *fakeWorkflow) MassApprove(ctx context.Context, actor user.Actor, req overtime.MassApproveRequest) ([]overtime.BulkResult, error) {
	return nil, nil
}

func (f *fakeWorkflow) MassAdjust(ctx context.Context, actor user.Actor, req overtime.MassAdjustRequest) ([]overtime.BulkResult, error) {
	return nil, nil
}

var actorRH = user.Actor{UserID: "u-rh", Role: user.RoleRH}

func sampleRequest() overtime.Request {
	loc := time.FixedZone("-03", -3*3600)
	decidedBy := "u-bruno"
	decidedAt := time.Date(2025, 3, 11, 9, 0, 0, 0, loc)
	month := "2025-03"
	return overtime.Request{
		ID:            "ot-1",
		EmployeeUID:   "emp-ana",
		EmployeeName:  "Ana Lima",
		EmployeeEmail: "ana@casarosa.com.br",
		ManagerUID:    "emp-bruno",
		CostCenter:    "Producao",
		Date:          time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		StartsAt:      time.Date(2025, 3, 10, 18, 0, 0, 0, loc),
		EndsAt:        time.Date(2025, 3, 10, 20, 0, 0, 0, loc),
		BreakMinutes:  15,
		Reason:        "fechamento de inventario",
		Status:        overtime.StatusEmFolha,
		DecidedBy:     &decidedBy,
		DecidedAt:     &decidedAt,
		Hours:         overtime.HoursBreakdown{Total: 1.75, H50: 1.75, H100: 0, HNight: 0},
		PayrollMonth:  &month,
	}
}

// The column order and the semicolon delimiter are what the payroll
// bureau imports; a change here breaks their side silently.
func TestOvertimeCSVLayout(t *testing.T) {
	svc := NewService(&fakeWorkflow{items: []overtime.Request{sampleRequest()}})

	export, err := svc.OvertimeCSV(context.Background(), actorRH, overtime.Filter{})
	require.NoError(t, err)

	assert.Equal(t, "text/csv; charset=utf-8", export.ContentType)
	assert.True(t, strings.HasPrefix(export.FileName, "horas_extras_"))
	assert.True(t, strings.HasSuffix(export.FileName, ".csv"))

	content := string(export.Content)
	assert.Contains(t, content, ";", "rows must be semicolon-delimited")

	r := csv.NewReader(strings.NewReader(content))
	r.Comma = ';'
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, []string{
		"colaborador", "email", "gestor", "centro_custo", "data",
		"inicio", "fim", "intervalo_min", "h50", "h100", "h_noturno",
		"status", "motivo", "decidido_por", "decidido_em", "mes_folha",
	}, rows[0])

	row := rows[1]
	require.Len(t, row, 16)
	assert.Equal(t, "Ana Lima", row[0])
	assert.Equal(t, "ana@casarosa.com.br", row[1])
	assert.Equal(t, "emp-bruno", row[2])
	assert.Equal(t, "Producao", row[3])
	assert.Equal(t, "2025-03-10", row[4])
	assert.Equal(t, "18:00", row[5])
	assert.Equal(t, "20:00", row[6])
	assert.Equal(t, "15", row[7])
	assert.Equal(t, "1.75", row[8])
	assert.Equal(t, "0.00", row[9])
	assert.Equal(t, "0.00", row[10])
	assert.Equal(t, "EM_FOLHA", row[11])
	assert.Equal(t, "fechamento de inventario", row[12])
	assert.Equal(t, "u-bruno", row[13])
	assert.Equal(t, "2025-03-11T09:00:00-03:00", row[14])
	assert.Equal(t, "2025-03", row[15])
}

func TestOvertimeCSVEmptySetStillWritesHeader(t *testing.T) {
	svc := NewService(&fakeWorkflow{})

	export, err := svc.OvertimeCSV(context.Background(), actorRH, overtime.Filter{})
	require.NoError(t, err)

	r := csv.NewReader(strings.NewReader(string(export.Content)))
	r.Comma = ';'
	rows, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "colaborador", rows[0][0])
}

func TestOvertimeCSVDeniedForNonHR(t *testing.T) {
	svc := NewService(&fakeWorkflow{})

	gestor := user.Actor{UserID: "u-bruno", EmployeeUID: "emp-bruno", Role: user.RoleGestor}
	_, err := svc.OvertimeCSV(context.Background(), gestor, overtime.Filter{})
	assert.ErrorIs(t, err, user.ErrNotAllowed)
}
