package discussion

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/Roosterfan/trailhub/internal/admin"
	"github.com/Roosterfan/trailhub/internal/apperr"
	"github.com/Roosterfan/trailhub/internal/identity"
	"github.com/Roosterfan/trailhub/internal/store"
)

// Service manages the discussion board.
type Service struct {
	repo   Repository
	authz  admin.Authorizer
	gate   *store.Gate
	logger *slog.Logger
}

// NewService builds a discussion service.
func NewService(repo Repository, authz admin.Authorizer, gate *store.Gate, logger *slog.Logger) *Service {
	return &Service{repo: repo, authz: authz, gate: gate, logger: logger}
}

// Post publishes a message at the top of the board.
func (s *Service) Post(ctx context.Context, input PostInput) (Post, error) {
	email := identity.NormalizeEmail(input.Email)
	message := strings.TrimSpace(input.Message)
	if email == "" || message == "" {
		return Post{}, apperr.Validation("email and message are required")
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		name = DefaultAuthorName
	}

	p := Post{
		Email:     email,
		Name:      name,
		Message:   message,
		Image:     strings.TrimSpace(input.Image),
		CreatedAt: time.Now().UTC(),
		Replies:   []Reply{},
	}
	err := s.gate.Run(ctx, func(ctx context.Context) error {
		var err error
		p, err = s.repo.Create(ctx, p)
		return err
	})
	if err != nil {
		return Post{}, err
	}
	s.logger.Info("discussion.posted", slog.Int64("post_id", p.ID), slog.String("email", email))
	return p, nil
}

// List returns posts newest first.
func (s *Service) List(ctx context.Context) ([]Post, error) {
	var out []Post
	err := s.gate.Run(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.repo.List(ctx)
		return err
	})
	return out, err
}

// Delete removes a post. Requires the admin secret.
func (s *Service) Delete(ctx context.Context, adminSecret string, id int64) error {
	if !s.authz.Authorize(adminSecret) {
		return apperr.Auth("admin access required")
	}
	err := s.gate.Run(ctx, func(ctx context.Context) error {
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return err
	}
	s.logger.Info("discussion.deleted", slog.Int64("post_id", id))
	return nil
}

// DeleteImage strips the image from a post. Requires the admin secret.
func (s *Service) DeleteImage(ctx context.Context, adminSecret string, id int64) (Post, error) {
	if !s.authz.Authorize(adminSecret) {
		return Post{}, apperr.Auth("admin access required")
	}
	var p Post
	err := s.gate.Run(ctx, func(ctx context.Context) error {
		var err error
		if p, err = s.repo.Get(ctx, id); err != nil {
			return err
		}
		if p.Image == "" {
			return apperr.NotFound("post has no image")
		}
		p.Image = ""
		return s.repo.Update(ctx, p)
	})
	if err != nil {
		return Post{}, err
	}
	s.logger.Info("discussion.image_deleted", slog.Int64("post_id", id))
	return p, nil
}
