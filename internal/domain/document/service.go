package document

import (
	"context"

	"github.com/casarosa-rh/hr-backend-go/internal/domain/user"
)

type DocumentService interface {
	Upload(ctx context.Context, actor user.Actor, req UploadRequest) (Document, error)
	List(ctx context.Context, actor user.Actor, filter Filter) ([]Document, error)
	Get(ctx context.Context, actor user.Actor, id string) (Document, error)
	Delete(ctx context.Context, actor user.Actor, id string) error
}
