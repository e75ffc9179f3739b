package discussion

import "context"

// Repository stores posts newest first.
type Repository interface {
	// Create assigns the next sequential id and prepends the post.
	Create(ctx context.Context, p Post) (Post, error)
	Get(ctx context.Context, id int64) (Post, error)
	Update(ctx context.Context, p Post) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]Post, error)
}
