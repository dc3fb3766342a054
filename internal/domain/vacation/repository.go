package vacation

import (
	"context"
	"time"
)

type Repository interface {
	ListAll(ctx context.Context) ([]Vacation, error)
	GetByID(ctx context.Context, id string) (Vacation, error)
	Create(ctx context.Context, v Vacation) (Vacation, error)
	UpdateByID(ctx context.Context, id string, fields UpdateFields) error
}

// UpdateFields is the partial-update payload; nil pointers leave the
// column untouched.
type UpdateFields struct {
	Status        *Status
	DecisionNotes *string
	DecidedBy     *string
	DecidedAt     *time.Time
}
