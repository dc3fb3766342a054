package audit

import "context"

type Repository interface {
	Create(ctx context.Context, entry Entry) error
	List(ctx context.Context, limit int) ([]Entry, error)
}
