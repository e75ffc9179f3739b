package infra

import (
	"context"
	"errors"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/pashagolub/pgxmock/v3"
)

func TestOptionalBackendsReturnNilWhenUnset(t *testing.T) {
	ctx := context.Background()
	pool, err := NewPostgresPool(ctx, "")
	if err != nil || pool != nil {
		t.Fatalf("expected nil pool without url, got %v %v", pool, err)
	}
	client, err := NewRedisClient(ctx, "")
	if err != nil || client != nil {
		t.Fatalf("expected nil client without url, got %v %v", client, err)
	}
}

func TestNewPostgresPoolInvalidURL(t *testing.T) {
	if _, err := NewPostgresPool(context.Background(), "invalid-url"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestNewRedisClient(t *testing.T) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("start miniredis: %v", err)
	}
	defer mr.Close()

	client, err := NewRedisClient(context.Background(), "redis://"+mr.Addr())
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	defer client.Close()

	if _, err := NewRedisClient(context.Background(), "http://nope"); err == nil {
		t.Fatalf("expected scheme error")
	}
}

func TestEnsureSchema(t *testing.T) {
	mock, err := pgxmock.NewPool(pgxmock.QueryMatcherOption(pgxmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("mock pool: %v", err)
	}
	defer mock.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS notifications`).WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))
	if err := EnsureSchema(context.Background(), mock); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}

	boom := errors.New("permission denied")
	mock.ExpectExec(`CREATE TABLE`).WillReturnError(boom)
	if err := EnsureSchema(context.Background(), mock); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
