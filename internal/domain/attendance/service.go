package attendance

import (
	"context"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
)

type AttendanceService interface {
	ClockIn(ctx context.Context, actor user.Actor, req ClockInRequest) (Record, error)
	ClockOut(ctx context.Context, actor user.Actor, req ClockOutRequest) (Record, error)
	List(ctx context.Context, actor user.Actor, filter Filter) ([]Record, error)
	MonthlyTotals(ctx context.Context, actor user.Actor, employeeUID, month string) (MonthlyTotal, error)
}
