package bonus

import (
	"context"
	"time"
)

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Bonus, error)
	GetByID(ctx context.Context, id string) (Bonus, error)
	Create(ctx context.Context, b Bonus) (Bonus, error)
	SetDecision(ctx context.Context, id string, status Status, notes, decidedBy string, decidedAt time.Time) error
}
