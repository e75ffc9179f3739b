package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

// Execer is satisfied by *pgxpool.Pool and by pgxmock pools.
type Execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// PostgresNotifier appends messages to the notifications outbox table, from
// which a delivery worker outside this service picks them up.
type PostgresNotifier struct {
	db Execer
}

// NewPostgresNotifier builds an outbox-backed notifier.
func NewPostgresNotifier(db Execer) *PostgresNotifier {
	return &PostgresNotifier{db: db}
}

// Send inserts the message into the outbox.
func (n *PostgresNotifier) Send(ctx context.Context, message Message) error {
	createdAt := message.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err := n.db.Exec(ctx, `INSERT INTO notifications (id, kind, destination, body, created_at)
        VALUES ($1, $2, $3, $4, $5)`, uuid.New(), message.Kind, message.Destination, message.Body, createdAt.UTC())
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}
