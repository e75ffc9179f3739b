package identity

import (
	"context"
	"errors"
	"os"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/Roosterfan/trailhub/internal/admin"
	"github.com/Roosterfan/trailhub/internal/apperr"
	"github.com/Roosterfan/trailhub/internal/logging"
	"github.com/Roosterfan/trailhub/internal/store"
)

func TestMain(m *testing.M) {
	hashCost = bcrypt.MinCost
	os.Exit(m.Run())
}

func newTestService() *Service {
	return NewService(NewMemoryRepository(), admin.NewSharedSecret("root-secret"), store.NewGate(), logging.Discard())
}

func TestRegisterAndAuthenticate(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	user, err := svc.Register(ctx, Registration{Email: " A@X.com ", Name: "Ann", Password: "secret1"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.Email != "a@x.com" {
		t.Fatalf("expected normalized email, got %s", user.Email)
	}
	if user.Points != 0 || user.Badges != 0 || user.TotalDistance != 0 {
		t.Fatalf("expected zeroed counters, got %+v", user)
	}

	session, err := svc.Authenticate(ctx, Credentials{Email: "a@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if session.IsAdmin {
		t.Fatalf("expected non-admin session without admin secret")
	}
	if session.User.Name != "Ann" {
		t.Fatalf("unexpected user %+v", session.User)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	if _, err := svc.Register(ctx, Registration{Email: "a@x.com", Name: "Ann", Password: "secret1"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	_, err := svc.Register(ctx, Registration{Email: "a@x.com", Name: "Other", Password: "secret2"})
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error on duplicate, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	cases := []Registration{
		{Email: "", Name: "Ann", Password: "secret1"},
		{Email: "a@x.com", Name: "", Password: "secret1"},
		{Email: "a@x.com", Name: "Ann", Password: ""},
		{Email: "not-an-email", Name: "Ann", Password: "secret1"},
		{Email: "a@x", Name: "Ann", Password: "secret1"},
		{Email: "a@x.com", Name: "Ann", Password: "short"},
	}
	for _, reg := range cases {
		if _, err := svc.Register(ctx, reg); !errors.Is(err, apperr.ErrValidation) {
			t.Fatalf("expected validation error for %+v, got %v", reg, err)
		}
	}
}

func TestAuthenticateFailures(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	if _, err := svc.Register(ctx, Registration{Email: "a@x.com", Name: "Ann", Password: "secret1"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Authenticate(ctx, Credentials{Email: "nobody@x.com", Password: "secret1"}); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, Credentials{Email: "a@x.com", Password: "wrong-secret"}); !errors.Is(err, apperr.ErrAuth) {
		t.Fatalf("expected auth error, got %v", err)
	}
	if _, err := svc.Authenticate(ctx, Credentials{Email: "a@x.com", Password: "wrong-secret", AdminSecret: "root-secret"}); !errors.Is(err, apperr.ErrAuth) {
		t.Fatalf("admin secret must not bypass the password, got %v", err)
	}
}

func TestAuthenticateAdminFlagIsPerRequest(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	if _, err := svc.Register(ctx, Registration{Email: "a@x.com", Name: "Ann", Password: "secret1"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	session, err := svc.Authenticate(ctx, Credentials{Email: "a@x.com", Password: "secret1", AdminSecret: "root-secret"})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if !session.IsAdmin {
		t.Fatalf("expected admin flag with correct admin secret")
	}

	session, err = svc.Authenticate(ctx, Credentials{Email: "a@x.com", Password: "secret1", AdminSecret: "guess"})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if session.IsAdmin {
		t.Fatalf("wrong admin secret must not grant admin")
	}

	session, err = svc.Authenticate(ctx, Credentials{Email: "a@x.com", Password: "secret1"})
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if session.IsAdmin {
		t.Fatalf("admin flag must not persist across logins")
	}
}

func TestMemoryRepositoryListKeepsRegistrationOrder(t *testing.T) {
	repo := NewMemoryRepository()
	ctx := context.Background()
	for _, email := range []string{"c@x.com", "a@x.com", "b@x.com"} {
		if err := repo.Create(ctx, User{Email: email}); err != nil {
			t.Fatalf("create %s: %v", email, err)
		}
	}
	if err := repo.Create(ctx, User{Email: "a@x.com"}); !errors.Is(err, apperr.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	users, _ := repo.List(ctx)
	if len(users) != 3 || users[0].Email != "c@x.com" || users[2].Email != "b@x.com" {
		t.Fatalf("unexpected order %+v", users)
	}
	if err := repo.Update(ctx, User{Email: "zzz@x.com"}); !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not found on update, got %v", err)
	}
}
