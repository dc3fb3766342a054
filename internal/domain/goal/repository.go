package goal

import "context"

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Goal, error)
	GetByID(ctx context.Context, id string) (Goal, error)
	Create(ctx context.Context, g Goal) (Goal, error)
	SetProgress(ctx context.Context, id string, progress int, status Status) error
}
