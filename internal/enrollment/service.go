package enrollment

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/Roosterfan/trailhub/internal/apperr"
	"github.com/Roosterfan/trailhub/internal/challenge"
	"github.com/Roosterfan/trailhub/internal/identity"
	"github.com/Roosterfan/trailhub/internal/store"
	"github.com/Roosterfan/trailhub/internal/units"
	"github.com/Roosterfan/trailhub/internal/verification"
)

// Service records challenge participation and progress.
type Service struct {
	repo       Repository
	users      identity.Repository
	challenges challenge.Repository
	queue      verification.Repository
	gate       *store.Gate
	logger     *slog.Logger
}

// NewService builds an enrollment service.
func NewService(repo Repository, users identity.Repository, challenges challenge.Repository, queue verification.Repository, gate *store.Gate, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		users:      users,
		challenges: challenges,
		queue:      queue,
		gate:       gate,
		logger:     logger,
	}
}

// Join enrolls a user in a challenge. The duplicate check runs before the
// catalog lookup so a stale enrollment still reports a conflict.
func (s *Service) Join(ctx context.Context, email string, challengeID int64) (Enrollment, error) {
	email = identity.NormalizeEmail(email)
	if email == "" {
		return Enrollment{}, apperr.Validation("email is required")
	}

	e := Enrollment{Email: email, ChallengeID: challengeID}
	err := s.gate.Run(ctx, func(ctx context.Context) error {
		if _, err := s.users.FindByEmail(ctx, email); err != nil {
			return err
		}
		exists, err := s.repo.Exists(ctx, email, challengeID)
		if err != nil {
			return err
		}
		if exists {
			return apperr.Conflict("already joined this challenge")
		}
		if _, err := s.challenges.Get(ctx, challengeID); err != nil {
			return err
		}
		e.JoinedAt = time.Now().UTC()
		return s.repo.Create(ctx, e)
	})
	if err != nil {
		return Enrollment{}, err
	}

	s.logger.Info("enrollment.joined", slog.String("email", email), slog.Int64("challenge_id", challengeID))
	return e, nil
}

// LogProgress overwrites the enrollment snapshot with this report and adds the
// resolved distance to the user's cumulative totals and points. A report with
// proof is also queued for verification.
func (s *Service) LogProgress(ctx context.Context, input ProgressInput) (ProgressResult, error) {
	email := identity.NormalizeEmail(input.Email)
	distance, steps, err := resolve(input.Distance, input.Steps)
	if err != nil {
		return ProgressResult{}, err
	}
	proof := strings.TrimSpace(input.ProofRef)

	result := ProgressResult{Distance: distance, Steps: steps}
	err = s.gate.Run(ctx, func(ctx context.Context) error {
		e, err := s.repo.Find(ctx, email, input.ChallengeID)
		if err != nil {
			return err
		}
		user, err := s.users.FindByEmail(ctx, email)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		e.Distance = distance
		e.Steps = steps
		e.LastSubmittedAt = &now
		if proof != "" {
			e.ProofRef = &proof
		}

		if err := user.CreditLogged(distance, steps); err != nil {
			return err
		}

		if err := s.repo.Update(ctx, e); err != nil {
			return err
		}
		if err := s.users.Update(ctx, user); err != nil {
			return err
		}
		result.Enrollment = e

		if proof == "" {
			return nil
		}
		req, err := s.queue.Append(ctx, verification.Request{
			Email:       email,
			ChallengeID: input.ChallengeID,
			Distance:    distance,
			Steps:       steps,
			ProofRef:    proof,
			Status:      verification.StatusPending,
			SubmittedAt: now,
		})
		if err != nil {
			return err
		}
		result.Request = &req
		return nil
	})
	if err != nil {
		return ProgressResult{}, err
	}

	attrs := []any{
		slog.String("email", email),
		slog.Int64("challenge_id", input.ChallengeID),
		slog.Float64("distance", distance),
		slog.Int64("steps", steps),
	}
	if result.Request != nil {
		attrs = append(attrs, slog.Int64("request_id", result.Request.ID))
	}
	s.logger.Info("enrollment.progress_logged", attrs...)
	return result, nil
}

// ListForUser returns a user's enrollments joined with their challenges.
func (s *Service) ListForUser(ctx context.Context, email string) ([]Summary, error) {
	email = identity.NormalizeEmail(email)
	var out []Summary
	err := s.gate.Run(ctx, func(ctx context.Context) error {
		if _, err := s.users.FindByEmail(ctx, email); err != nil {
			return err
		}
		items, err := s.repo.ListByUser(ctx, email)
		if err != nil {
			return err
		}
		out = make([]Summary, 0, len(items))
		for _, e := range items {
			summary := Summary{Enrollment: e}
			c, err := s.challenges.Get(ctx, e.ChallengeID)
			switch {
			case err == nil:
				summary.Challenge = &c
				summary.PercentComplete = PercentComplete(e.Distance, c.TargetDistance)
			case errors.Is(err, apperr.ErrNotFound):
			default:
				return err
			}
			out = append(out, summary)
		}
		return nil
	})
	return out, err
}

// PercentComplete is min(100, distance/target*100) rounded to 2 decimals.
func PercentComplete(distance, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return units.Round2(math.Min(100, distance/target*100))
}

func resolve(distance float64, steps int64) (float64, int64, error) {
	hasDistance := distance > 0
	if !hasDistance && steps <= 0 {
		return 0, 0, apperr.Validation("distance or steps must be a positive number")
	}
	if hasDistance && distance > units.MaxDistance {
		return 0, 0, apperr.Validation("distance must not exceed %d km", units.MaxDistance)
	}
	if steps > units.MaxSteps {
		return 0, 0, apperr.Validation("steps must not exceed %d", units.MaxSteps)
	}
	if !hasDistance {
		distance = units.StepsToDistance(steps)
	}
	if steps <= 0 {
		steps = units.DistanceToSteps(distance)
	}
	return distance, steps, nil
}
