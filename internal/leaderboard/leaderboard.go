package leaderboard

import (
	"context"
	"net/http"
	"sort"

	"github.com/gofiber/fiber/v2"

	"github.com/Roosterfan/trailhub/internal/challenge"
	"github.com/Roosterfan/trailhub/internal/enrollment"
	"github.com/Roosterfan/trailhub/internal/identity"
	"github.com/Roosterfan/trailhub/internal/store"
	"github.com/Roosterfan/trailhub/internal/units"
	"github.com/Roosterfan/trailhub/internal/verification"
	"github.com/Roosterfan/trailhub/internal/web"
)

// Limit caps the number of ranked entries.
const Limit = 50

// Entry is one ranked user.
type Entry struct {
	Rank             int     `json:"rank"`
	Name             string  `json:"name"`
	Email            string  `json:"email"`
	TotalDistance    float64 `json:"totalDistance"`
	TotalSteps       int64   `json:"totalSteps"`
	VerifiedDistance float64 `json:"verifiedDistance"`
	Points           float64 `json:"points"`
	Badges           int     `json:"badges"`
	ChallengesJoined int     `json:"challengesJoined"`
}

// Stats summarises the platform.
type Stats struct {
	Users                int     `json:"users"`
	Challenges           int     `json:"challenges"`
	Enrollments          int     `json:"enrollments"`
	TotalDistance        float64 `json:"totalDistance"`
	VerifiedDistance     float64 `json:"verifiedDistance"`
	BadgesAwarded        int     `json:"badgesAwarded"`
	PendingVerifications int     `json:"pendingVerifications"`
}

// Service derives read-only projections from the stores on every call.
type Service struct {
	users       identity.Repository
	enrollments enrollment.Repository
	challenges  challenge.Repository
	queue       verification.Repository
	gate        *store.Gate
}

// NewService builds a projection service.
func NewService(users identity.Repository, enrollments enrollment.Repository, challenges challenge.Repository, queue verification.Repository, gate *store.Gate) *Service {
	return &Service{users: users, enrollments: enrollments, challenges: challenges, queue: queue, gate: gate}
}

// Top ranks users by badges then points, both descending, keeping
// registration order for ties, and returns at most Limit entries.
func (s *Service) Top(ctx context.Context) ([]Entry, error) {
	var out []Entry
	err := s.gate.Run(ctx, func(ctx context.Context) error {
		users, err := s.users.List(ctx)
		if err != nil {
			return err
		}
		joined, err := s.enrollments.CountByUser(ctx)
		if err != nil {
			return err
		}
		out = make([]Entry, 0, len(users))
		for _, u := range users {
			out = append(out, Entry{
				Name:             u.Name,
				Email:            u.Email,
				TotalDistance:    units.Round2(u.TotalDistance),
				TotalSteps:       u.TotalSteps,
				VerifiedDistance: units.Round2(u.VerifiedDistance),
				Points:           units.Round2(u.Points),
				Badges:           u.Badges,
				ChallengesJoined: joined[u.Email],
			})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Badges != out[j].Badges {
			return out[i].Badges > out[j].Badges
		}
		return out[i].Points > out[j].Points
	})
	if len(out) > Limit {
		out = out[:Limit]
	}
	for i := range out {
		out[i].Rank = i + 1
	}
	return out, nil
}

// Stats computes platform totals.
func (s *Service) Stats(ctx context.Context) (Stats, error) {
	var st Stats
	err := s.gate.Run(ctx, func(ctx context.Context) error {
		users, err := s.users.List(ctx)
		if err != nil {
			return err
		}
		st.Users = len(users)
		for _, u := range users {
			st.TotalDistance += u.TotalDistance
			st.VerifiedDistance += u.VerifiedDistance
			st.BadgesAwarded += u.Badges
		}
		st.TotalDistance = units.Round2(st.TotalDistance)
		st.VerifiedDistance = units.Round2(st.VerifiedDistance)

		if st.Challenges, err = s.challenges.Count(ctx); err != nil {
			return err
		}
		joined, err := s.enrollments.CountByUser(ctx)
		if err != nil {
			return err
		}
		for _, n := range joined {
			st.Enrollments += n
		}
		requests, err := s.queue.List(ctx)
		if err != nil {
			return err
		}
		for _, r := range requests {
			if r.Status == verification.StatusPending {
				st.PendingVerifications++
			}
		}
		return nil
	})
	return st, err
}

// Handler exposes the projections over HTTP.
type Handler struct {
	service *Service
}

// NewHandler builds a leaderboard HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Leaderboard returns the ranked entries.
func (h *Handler) Leaderboard(c *fiber.Ctx) error {
	entries, err := h.service.Top(c.UserContext())
	if err != nil {
		return err
	}
	return web.OK(c, http.StatusOK, "", entries)
}

// Stats returns platform totals.
func (h *Handler) Stats(c *fiber.Ctx) error {
	st, err := h.service.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return web.OK(c, http.StatusOK, "", st)
}
