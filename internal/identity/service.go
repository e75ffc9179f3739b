package identity

import (
	"context"
	"errors"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Roosterfan/trailhub/internal/admin"
	"github.com/Roosterfan/trailhub/internal/apperr"
	"github.com/Roosterfan/trailhub/internal/store"
)

const minPasswordLength = 6

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// hashCost is lowered by tests.
var hashCost = bcrypt.DefaultCost

// NormalizeEmail is the canonical form used as the user key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Service manages the user directory.
type Service struct {
	repo   Repository
	authz  admin.Authorizer
	gate   *store.Gate
	logger *slog.Logger
}

// NewService creates a new identity service.
func NewService(repo Repository, authz admin.Authorizer, gate *store.Gate, logger *slog.Logger) *Service {
	return &Service{repo: repo, authz: authz, gate: gate, logger: logger}
}

// Register creates a user with zeroed counters. It does not log the user in.
func (s *Service) Register(ctx context.Context, reg Registration) (User, error) {
	email := NormalizeEmail(reg.Email)
	name := strings.TrimSpace(reg.Name)
	if email == "" || name == "" || reg.Password == "" {
		return User{}, apperr.Validation("email, name and password are required")
	}
	if !emailPattern.MatchString(email) {
		return User{}, apperr.Validation("invalid email address")
	}
	if len(reg.Password) < minPasswordLength {
		return User{}, apperr.Validation("password must be at least %d characters", minPasswordLength)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(reg.Password), hashCost)
	if err != nil {
		return User{}, err
	}

	user := User{
		Email:      email,
		Name:       name,
		SecretHash: hash,
		CreatedAt:  time.Now().UTC(),
	}

	err = s.gate.Run(ctx, func(ctx context.Context) error {
		if _, err := s.repo.FindByEmail(ctx, email); err == nil {
			return apperr.Validation("email already registered")
		} else if !errors.Is(err, apperr.ErrNotFound) {
			return err
		}
		return s.repo.Create(ctx, user)
	})
	if err != nil {
		return User{}, err
	}

	s.logger.Info("user.registered", slog.String("email", email))
	return user, nil
}

// Authenticate checks the credential and derives the admin flag for this
// response from the optional admin secret.
func (s *Service) Authenticate(ctx context.Context, creds Credentials) (Session, error) {
	email := NormalizeEmail(creds.Email)
	if email == "" || creds.Password == "" {
		return Session{}, apperr.Validation("email and password are required")
	}

	var user User
	err := s.gate.Run(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.repo.FindByEmail(ctx, email)
		return err
	})
	if err != nil {
		return Session{}, err
	}

	if err := bcrypt.CompareHashAndPassword(user.SecretHash, []byte(creds.Password)); err != nil {
		return Session{}, apperr.Auth("invalid password")
	}

	session := Session{User: user, IsAdmin: s.authz.Authorize(creds.AdminSecret)}
	s.logger.Info("user.login", slog.String("email", email), slog.Bool("admin", session.IsAdmin))
	return session, nil
}

// Get returns the user registered under email.
func (s *Service) Get(ctx context.Context, email string) (User, error) {
	var user User
	err := s.gate.Run(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.repo.FindByEmail(ctx, NormalizeEmail(email))
		return err
	})
	return user, err
}
