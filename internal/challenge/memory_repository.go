package challenge

import (
	"context"
	"sync"

	"github.com/Roosterfan/trailhub/internal/apperr"
)

type memoryRepository struct {
	mu     sync.RWMutex
	lastID int64
	items  []Challenge
}

// NewMemoryRepository builds a process-local catalog.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Create(_ context.Context, c Challenge) (Challenge, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	c.ID = r.lastID
	r.items = append(r.items, c)
	return c, nil
}

func (r *memoryRepository) Get(_ context.Context, id int64) (Challenge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.items {
		if c.ID == id {
			return c, nil
		}
	}
	return Challenge{}, apperr.NotFound("challenge not found")
}

func (r *memoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, c := range r.items {
		if c.ID == id {
			r.items = append(r.items[:i:i], r.items[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("challenge not found")
}

func (r *memoryRepository) List(_ context.Context) ([]Challenge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Challenge, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *memoryRepository) Count(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items), nil
}
