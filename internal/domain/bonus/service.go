package bonus

import (
	"context"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
)

type BonusService interface {
	Create(ctx context.Context, actor user.Actor, req CreateBonusRequest) (Bonus, error)
	List(ctx context.Context, actor user.Actor, filter Filter) ([]Bonus, error)
	Decide(ctx context.Context, actor user.Actor, req DecideBonusRequest) (Bonus, error)
}
