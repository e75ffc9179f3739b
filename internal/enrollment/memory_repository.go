package enrollment

import (
	"context"
	"sync"

	"github.com/Roosterfan/trailhub/internal/apperr"
)

type memoryRepository struct {
	mu     sync.RWMutex
	byUser map[string][]Enrollment
}

// NewMemoryRepository builds a process-local enrollment ledger.
func NewMemoryRepository() Repository {
	return &memoryRepository{byUser: make(map[string][]Enrollment)}
}

func (r *memoryRepository) index(email string, challengeID int64) int {
	for i, e := range r.byUser[email] {
		if e.ChallengeID == challengeID {
			return i
		}
	}
	return -1
}

func (r *memoryRepository) Create(_ context.Context, e Enrollment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.index(e.Email, e.ChallengeID) >= 0 {
		return apperr.Conflict("already joined this challenge")
	}
	r.byUser[e.Email] = append(r.byUser[e.Email], e)
	return nil
}

func (r *memoryRepository) Find(_ context.Context, email string, challengeID int64) (Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.index(email, challengeID)
	if i < 0 {
		return Enrollment{}, apperr.NotFound("enrollment not found")
	}
	return r.byUser[email][i], nil
}

func (r *memoryRepository) Exists(_ context.Context, email string, challengeID int64) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.index(email, challengeID) >= 0, nil
}

func (r *memoryRepository) Update(_ context.Context, e Enrollment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(e.Email, e.ChallengeID)
	if i < 0 {
		return apperr.NotFound("enrollment not found")
	}
	r.byUser[e.Email][i] = e
	return nil
}

func (r *memoryRepository) MarkVerified(_ context.Context, email string, challengeID int64, distance float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(email, challengeID)
	if i < 0 {
		return apperr.NotFound("enrollment not found")
	}
	r.byUser[email][i].VerifiedDistance = distance
	r.byUser[email][i].Verified = true
	return nil
}

func (r *memoryRepository) ListByUser(_ context.Context, email string) ([]Enrollment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Enrollment, len(r.byUser[email]))
	copy(out, r.byUser[email])
	return out, nil
}

func (r *memoryRepository) CountByUser(_ context.Context) (map[string]int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]int, len(r.byUser))
	for email, items := range r.byUser {
		out[email] = len(items)
	}
	return out, nil
}
