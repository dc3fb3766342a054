package document

import "context"

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Document, error)
	GetByID(ctx context.Context, id string) (Document, error)
	Create(ctx context.Context, doc Document) (Document, error)
	Delete(ctx context.Context, id string) error
}
