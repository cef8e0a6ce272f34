package faq

import "context"

// Repository is the durable FAQ store. List returns records ordered by
// CreatedAt descending.
type Repository interface {
	Insert(ctx context.Context, record Record) error
	GetByID(ctx context.Context, id string) (Record, bool, error)
	Delete(ctx context.Context, id string) (bool, error)
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, offset, limit int) ([]Record, error)
}
