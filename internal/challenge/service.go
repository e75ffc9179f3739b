package challenge

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"github.com/Roosterfan/trailhub/internal/admin"
	"github.com/Roosterfan/trailhub/internal/apperr"
	"github.com/Roosterfan/trailhub/internal/store"
	"github.com/Roosterfan/trailhub/internal/units"
)

const systemCreator = "system"

// Service manages the challenge catalog.
type Service struct {
	repo   Repository
	authz  admin.Authorizer
	gate   *store.Gate
	logger *slog.Logger
}

// NewService creates a catalog service.
func NewService(repo Repository, authz admin.Authorizer, gate *store.Gate, logger *slog.Logger) *Service {
	return &Service{repo: repo, authz: authz, gate: gate, logger: logger}
}

// Create validates and appends a challenge. Requires the admin secret.
func (s *Service) Create(ctx context.Context, adminSecret string, input CreateInput) (Challenge, error) {
	if !s.authz.Authorize(adminSecret) {
		return Challenge{}, apperr.Auth("admin access required")
	}
	c, err := build(input)
	if err != nil {
		return Challenge{}, err
	}

	err = s.gate.Run(ctx, func(ctx context.Context) error {
		var err error
		c, err = s.repo.Create(ctx, c)
		return err
	})
	if err != nil {
		return Challenge{}, err
	}

	s.logger.Info("challenge.created",
		slog.Int64("challenge_id", c.ID),
		slog.String("name", c.Name),
		slog.Float64("distance", c.TargetDistance),
	)
	return c, nil
}

// Seed appends the launch catalog. It bypasses authorization and is meant for startup.
func (s *Service) Seed(ctx context.Context) error {
	return s.gate.Run(ctx, func(ctx context.Context) error {
		for _, input := range launchCatalog {
			input.CreatedBy = systemCreator
			c, err := build(input)
			if err != nil {
				return err
			}
			if _, err := s.repo.Create(ctx, c); err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a challenge. Enrollments that reference it are left untouched.
func (s *Service) Delete(ctx context.Context, adminSecret string, id int64) (Challenge, error) {
	if !s.authz.Authorize(adminSecret) {
		return Challenge{}, apperr.Auth("admin access required")
	}
	var removed Challenge
	err := s.gate.Run(ctx, func(ctx context.Context) error {
		var err error
		if removed, err = s.repo.Get(ctx, id); err != nil {
			return err
		}
		return s.repo.Delete(ctx, id)
	})
	if err != nil {
		return Challenge{}, err
	}
	s.logger.Info("challenge.deleted", slog.Int64("challenge_id", id))
	return removed, nil
}

// List returns the catalog in insertion order.
func (s *Service) List(ctx context.Context) ([]Challenge, error) {
	var out []Challenge
	err := s.gate.Run(ctx, func(ctx context.Context) error {
		var err error
		out, err = s.repo.List(ctx)
		return err
	})
	return out, err
}

// Get returns a single challenge.
func (s *Service) Get(ctx context.Context, id int64) (Challenge, error) {
	var c Challenge
	err := s.gate.Run(ctx, func(ctx context.Context) error {
		var err error
		c, err = s.repo.Get(ctx, id)
		return err
	})
	return c, err
}

func build(input CreateInput) (Challenge, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return Challenge{}, apperr.Validation("challenge name is required")
	}
	if math.IsNaN(input.Distance) || math.IsInf(input.Distance, 0) || input.Distance <= 0 {
		return Challenge{}, apperr.Validation("distance must be a positive number")
	}
	if input.Distance > units.MaxDistance {
		return Challenge{}, apperr.Validation("distance must not exceed %d km", units.MaxDistance)
	}
	if input.Reward > MaxReward {
		return Challenge{}, apperr.Validation("reward must not exceed %d", MaxReward)
	}

	reward := DefaultReward
	if input.Reward > 0 {
		reward = int(math.Round(input.Reward))
	}
	difficulty := strings.TrimSpace(input.Difficulty)
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}

	return Challenge{
		Name:           name,
		Description:    strings.TrimSpace(input.Description),
		Cause:          strings.TrimSpace(input.Cause),
		TargetDistance: input.Distance,
		Difficulty:     difficulty,
		Reward:         reward,
		StepTarget:     units.DistanceToSteps(input.Distance),
		CreatedBy:      strings.TrimSpace(input.CreatedBy),
		CreatedAt:      time.Now().UTC(),
	}, nil
}
