package overtime

import (
	"context"
	"time"
)

// Repository is the record-store adapter for overtime requests. It is a
// thin full-scan/create/partial-update surface; scoping, filtering and
// aggregation happen in memory above it.
type Repository interface {
	ListAll(ctx context.Context) ([]Request, error)
	GetByID(ctx context.Context, id string) (Request, error)
	Create(ctx context.Context, req Request) (Request, error)
	UpdateByID(ctx context.Context, id string, fields UpdateFields) error
}

// UpdateFields is the partial-update payload of Repository.UpdateByID.
// Nil pointers leave the column untouched.
type UpdateFields struct {
	Status       *Status
	StartsAt     *time.Time
	EndsAt       *time.Time
	BreakMinutes *int

	Hours *HoursBreakdown

	DecisionNotes *string
	DecidedBy     *string
	DecidedAt     *time.Time

	Execution      *Execution
	AcknowledgedAt *time.Time

	PayrollMonth  *string
	PayrollSentAt *time.Time
}
