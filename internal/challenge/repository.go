package challenge

import "context"

// Repository stores the catalog in insertion order.
type Repository interface {
	// Create assigns the next sequential id and appends the challenge.
	Create(ctx context.Context, c Challenge) (Challenge, error)
	Get(ctx context.Context, id int64) (Challenge, error)
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Challenge, error)
	Count(ctx context.Context) (int, error)
}
