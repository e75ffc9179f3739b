package infra

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Roosterfan/trailhub/internal/notification"
)

const notificationsSchema = `
CREATE TABLE IF NOT EXISTS notifications (
    id          UUID PRIMARY KEY,
    kind        TEXT NOT NULL,
    destination TEXT NOT NULL,
    body        TEXT NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL,
    delivered_at TIMESTAMPTZ
)`

// NewPostgresPool configures and returns a PostgreSQL connection pool. An empty
// url means Postgres is not configured and yields a nil pool.
func NewPostgresPool(ctx context.Context, url string) (*pgxpool.Pool, error) {
	if url == "" {
		return nil, nil
	}

	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse postgres config: %w", err)
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return pool, nil
}

// EnsureSchema creates the notification outbox table when missing.
func EnsureSchema(ctx context.Context, db notification.Execer) error {
	if _, err := db.Exec(ctx, notificationsSchema); err != nil {
		return fmt.Errorf("ensure notifications schema: %w", err)
	}
	return nil
}
