package verification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/Roosterfan/trailhub/internal/admin"
	"github.com/Roosterfan/trailhub/internal/apperr"
	"github.com/Roosterfan/trailhub/internal/identity"
	"github.com/Roosterfan/trailhub/internal/notification"
	"github.com/Roosterfan/trailhub/internal/store"
)

// Enrollments is the part of the enrollment ledger an approval writes to.
type Enrollments interface {
	Exists(ctx context.Context, email string, challengeID int64) (bool, error)
	MarkVerified(ctx context.Context, email string, challengeID int64, distance float64) error
}

// Service resolves queued proof submissions.
type Service struct {
	repo        Repository
	users       identity.Repository
	enrollments Enrollments
	authz       admin.Authorizer
	gate        *store.Gate
	notifier    notification.Notifier
	logger      *slog.Logger
}

// NewService builds a verification service. notifier may be nil.
func NewService(repo Repository, users identity.Repository, enrollments Enrollments, authz admin.Authorizer, gate *store.Gate, notifier notification.Notifier, logger *slog.Logger) *Service {
	return &Service{
		repo:        repo,
		users:       users,
		enrollments: enrollments,
		authz:       authz,
		gate:        gate,
		notifier:    notifier,
		logger:      logger,
	}
}

// List returns the whole queue, resolved requests included.
func (s *Service) List(ctx context.Context, adminSecret string) ([]Request, error) {
	if !s.authz.Authorize(adminSecret) {
		return nil, apperr.Auth("admin access required")
	}
	var out []Request
	err := s.gate.Run(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.repo.List(ctx)
		return err
	})
	return out, err
}

// Approve credits the claimed distance to the user as verified distance, a
// second points award and a badge, marks the enrollment verified and closes
// the request.
func (s *Service) Approve(ctx context.Context, adminSecret string, id int64) (Request, error) {
	if !s.authz.Authorize(adminSecret) {
		return Request{}, apperr.Auth("admin access required")
	}

	var req Request
	err := s.gate.Run(ctx, func(ctx context.Context) error {
		var err error
		if req, err = s.pending(ctx, id); err != nil {
			return err
		}
		user, err := s.users.FindByEmail(ctx, req.Email)
		if err != nil {
			return err
		}
		ok, err := s.enrollments.Exists(ctx, req.Email, req.ChallengeID)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("enrollment not found")
		}

		if err := user.CreditVerified(req.Distance); err != nil {
			return err
		}
		if err := s.users.Update(ctx, user); err != nil {
			return err
		}
		if err := s.enrollments.MarkVerified(ctx, req.Email, req.ChallengeID, req.Distance); err != nil {
			return err
		}
		return s.resolve(ctx, &req, StatusApproved)
	})
	if err != nil {
		return Request{}, err
	}

	s.logger.Info("verification.approved",
		slog.Int64("request_id", req.ID),
		slog.String("email", req.Email),
		slog.Int64("challenge_id", req.ChallengeID),
		slog.Float64("distance", req.Distance),
	)
	s.notify(ctx, req, notification.KindVerificationApproved,
		fmt.Sprintf("Your %.2f km submission for challenge %d was approved. You earned a badge!", req.Distance, req.ChallengeID))
	return req, nil
}

// Reject closes the request without touching any other state.
func (s *Service) Reject(ctx context.Context, adminSecret string, id int64) (Request, error) {
	if !s.authz.Authorize(adminSecret) {
		return Request{}, apperr.Auth("admin access required")
	}

	var req Request
	err := s.gate.Run(ctx, func(ctx context.Context) error {
		var err error
		if req, err = s.pending(ctx, id); err != nil {
			return err
		}
		return s.resolve(ctx, &req, StatusRejected)
	})
	if err != nil {
		return Request{}, err
	}

	s.logger.Info("verification.rejected", slog.Int64("request_id", req.ID), slog.String("email", req.Email))
	s.notify(ctx, req, notification.KindVerificationRejected,
		fmt.Sprintf("Your %.2f km submission for challenge %d was rejected.", req.Distance, req.ChallengeID))
	return req, nil
}

func (s *Service) pending(ctx context.Context, id int64) (Request, error) {
	req, err := s.repo.Get(ctx, id)
	if err != nil {
		return Request{}, err
	}
	if req.Resolved() {
		return Request{}, apperr.Conflict("verification request %d already %s", id, req.Status)
	}
	return req, nil
}

func (s *Service) resolve(ctx context.Context, req *Request, status Status) error {
	now := time.Now().UTC()
	req.Status = status
	req.ResolvedAt = &now
	return s.repo.Update(ctx, *req)
}

func (s *Service) notify(ctx context.Context, req Request, kind, body string) {
	if s.notifier == nil {
		return
	}
	msg := notification.Message{Kind: kind, Destination: req.Email, Body: body, CreatedAt: time.Now().UTC()}
	if err := s.notifier.Send(ctx, msg); err != nil {
		s.logger.Warn("notification failed", slog.Int64("request_id", req.ID), slog.Any("error", err))
	}
}
