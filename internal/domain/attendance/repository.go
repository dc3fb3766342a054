package attendance

import (
	"context"
	"time"
)

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Record, error)
	GetByID(ctx context.Context, id string) (Record, error)
	GetOpenForEmployee(ctx context.Context, employeeUID string, date time.Time) (Record, error)
	Create(ctx context.Context, rec Record) (Record, error)
	SetClockOut(ctx context.Context, id string, clockOut time.Time, notes string) error
}
