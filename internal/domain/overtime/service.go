package overtime

import (
	"context"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
)

// WorkflowService drives the overtime state machine. Every operation
// takes the acting user explicitly; the capability gate runs before any
// persistence write.
type WorkflowService interface {
	Create(ctx context.Context, actor user.Actor, req CreateRequestRequest) (Request, error)
	Get(ctx context.Context, actor user.Actor, id string) (Request, error)
	List(ctx context.Context, actor user.Actor, filter Filter) (ListResponse, error)
	Decide(ctx context.Context, actor user.Actor, req DecideRequest) (Request, error)
	Execute(ctx context.Context, actor user.Actor, req ExecuteRequest) (Request, error)
	Acknowledge(ctx context.Context, actor user.Actor, id string) (Request, error)
	SendToPayroll(ctx context.Context, actor user.Actor, req SendToPayrollRequest) ([]BulkResult, error)
	MassApprove(ctx context.Context, actor user.Actor, req MassApproveRequest) ([]BulkResult, error)
	MassAdjust(ctx context.Context, actor user.Actor, req MassAdjustRequest) ([]BulkResult, error)
}
