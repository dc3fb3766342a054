package audit

import (
	"context"
	"log/slog"
	"time"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/audit"
	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
)

const recordTimeout = 5 * time.Second

type Service struct {
	repo   audit.Repository
	logger *slog.Logger
}

func NewService(repo audit.Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, logger: logger}
}

// Record writes the entry asynchronously. The write is detached from the
// caller's context so a finished request cannot cancel it; a failed write
// is logged and dropped, never surfaced to the operation that produced it.
func (s *Service) Record(ctx context.Context, actor user.Actor, action, targetID string, metadata map[string]interface{}) {
	entry := audit.Entry{
		ActorUID:   actor.UserID,
		ActorEmail: actor.Email,
		Action:     action,
		TargetID:   targetID,
		Metadata:   metadata,
	}

	go func() {
		writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), recordTimeout)
		defer cancel()

		if err := s.repo.Create(writeCtx, entry); err != nil {
			s.logger.Error("failed to write audit entry",
				slog.String("action", action),
				slog.String("target_id", targetID),
				slog.Any("error", err))
		}
	}()
}

func (s *Service) List(ctx context.Context, actor user.Actor, limit int) ([]audit.Entry, error) {
	if actor.Role != user.RoleADM {
		return nil, user.ErrNotAllowed
	}
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.repo.List(ctx, limit)
}
