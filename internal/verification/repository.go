package verification

import "context"

// Repository keeps every request ever submitted, resolved ones included.
type Repository interface {
	// Append assigns the next 1-based id and stores the request.
	Append(ctx context.Context, req Request) (Request, error)
	Get(ctx context.Context, id int64) (Request, error)
	Update(ctx context.Context, req Request) error
	List(ctx context.Context) ([]Request, error)
}
