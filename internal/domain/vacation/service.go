package vacation

import (
	"context"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
)

type VacationService interface {
	Create(ctx context.Context, actor user.Actor, req CreateVacationRequest) (Vacation, error)
	Get(ctx context.Context, actor user.Actor, id string) (Vacation, error)
	List(ctx context.Context, actor user.Actor, filter Filter) ([]Vacation, error)
	Decide(ctx context.Context, actor user.Actor, req DecideVacationRequest) (Vacation, error)
	Cancel(ctx context.Context, actor user.Actor, id string) (Vacation, error)
	Balance(ctx context.Context, actor user.Actor, employeeUID string, year int) (Balance, error)
}
