package goal

import (
	"context"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
)

type GoalService interface {
	Create(ctx context.Context, actor user.Actor, req CreateGoalRequest) (Goal, error)
	List(ctx context.Context, actor user.Actor, filter Filter) ([]Goal, error)
	UpdateProgress(ctx context.Context, actor user.Actor, req UpdateProgressRequest) (Goal, error)
	Complete(ctx context.Context, actor user.Actor, id string) (Goal, error)
	Cancel(ctx context.Context, actor user.Actor, id string) (Goal, error)
}
