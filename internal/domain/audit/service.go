package audit

import (
	"context"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
)

// Recorder is the fire-and-forget activity-log sink. Record must never
// fail or block the operation that produced the entry.
type Recorder interface {
	Record(ctx context.Context, actor user.Actor, action, targetID string, metadata map[string]interface{})
}

type Service interface {
	Recorder
	List(ctx context.Context, actor user.Actor, limit int) ([]Entry, error)
}
