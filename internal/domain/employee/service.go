package employee

import (
	"context"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
)

type EmployeeService interface {
	List(ctx context.Context, actor user.Actor) ([]Employee, error)
	Get(ctx context.Context, actor user.Actor, id string) (Employee, error)
	Create(ctx context.Context, actor user.Actor, req CreateEmployeeRequest) (Employee, error)
	Update(ctx context.Context, actor user.Actor, req UpdateEmployeeRequest) error
	Deactivate(ctx context.Context, actor user.Actor, id string) error
}
