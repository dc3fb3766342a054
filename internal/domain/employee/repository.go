package employee

import "context"

type EmployeeRepository interface {
	ListAll(ctx context.Context) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByUID(ctx context.Context, uid string) (Employee, error)
	Create(ctx context.Context, emp Employee) (Employee, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) error
	Deactivate(ctx context.Context, id string) error
}
