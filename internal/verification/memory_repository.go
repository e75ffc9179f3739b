package verification

import (
	"context"
	"sync"

	"github.com/Roosterfan/trailhub/internal/apperr"
)

type memoryRepository struct {
	mu    sync.RWMutex
	queue []Request
}

// NewMemoryRepository builds a process-local verification queue. Ids are
// positions in the queue, which is never pruned.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) Append(_ context.Context, req Request) (Request, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	req.ID = int64(len(r.queue)) + 1
	r.queue = append(r.queue, req)
	return req, nil
}

func (r *memoryRepository) Get(_ context.Context, id int64) (Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if id < 1 || id > int64(len(r.queue)) {
		return Request{}, apperr.NotFound("verification request not found")
	}
	return r.queue[id-1], nil
}

func (r *memoryRepository) Update(_ context.Context, req Request) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if req.ID < 1 || req.ID > int64(len(r.queue)) {
		return apperr.NotFound("verification request not found")
	}
	r.queue[req.ID-1] = req
	return nil
}

func (r *memoryRepository) List(_ context.Context) ([]Request, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Request, len(r.queue))
	copy(out, r.queue)
	return out, nil
}
