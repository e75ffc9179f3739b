package identity

import "context"

// Repository stores users. Implementations must report apperr.ErrNotFound for
// unknown emails and apperr.ErrConflict for duplicates.
type Repository interface {
	Create(ctx context.Context, user User) error
	FindByEmail(ctx context.Context, email string) (User, error)
	Update(ctx context.Context, user User) error
	// List returns users in registration order.
	List(ctx context.Context) ([]User, error)
	Count(ctx context.Context) (int, error)
}
