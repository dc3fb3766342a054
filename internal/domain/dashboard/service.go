package dashboard

import (
	"context"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
)

type DashboardService interface {
	Summary(ctx context.Context, actor user.Actor) (Summary, error)
}
