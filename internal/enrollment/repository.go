package enrollment

import "context"

// Repository stores enrollments keyed by (email, challenge id). Records are
// never deleted.
type Repository interface {
	Create(ctx context.Context, e Enrollment) error
	Find(ctx context.Context, email string, challengeID int64) (Enrollment, error)
	Exists(ctx context.Context, email string, challengeID int64) (bool, error)
	Update(ctx context.Context, e Enrollment) error
	// MarkVerified overwrites the verified distance and sets the verified flag.
	MarkVerified(ctx context.Context, email string, challengeID int64, distance float64) error
	// ListByUser returns a user's enrollments in join order.
	ListByUser(ctx context.Context, email string) ([]Enrollment, error)
	// CountByUser returns the number of enrollments per email.
	CountByUser(ctx context.Context) (map[string]int, error)
}
