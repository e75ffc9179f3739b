package discussion

import (
	"context"
	"sync"

	"github.com/Roosterfan/trailhub/internal/apperr"
)

type memoryRepository struct {
	mu     sync.RWMutex
	lastID int64
	posts  []Post
}

// NewMemoryRepository builds a process-local discussion board.
func NewMemoryRepository() Repository {
	return &memoryRepository{}
}

func (r *memoryRepository) find(id int64) int {
	for i, p := range r.posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func (r *memoryRepository) Create(_ context.Context, p Post) (Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lastID++
	p.ID = r.lastID
	r.posts = append([]Post{p}, r.posts...)
	return p, nil
}

func (r *memoryRepository) Get(_ context.Context, id int64) (Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.find(id)
	if i < 0 {
		return Post{}, apperr.NotFound("post not found")
	}
	return r.posts[i], nil
}

func (r *memoryRepository) Update(_ context.Context, p Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.find(p.ID)
	if i < 0 {
		return apperr.NotFound("post not found")
	}
	r.posts[i] = p
	return nil
}

func (r *memoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.find(id)
	if i < 0 {
		return apperr.NotFound("post not found")
	}
	r.posts = append(r.posts[:i:i], r.posts[i+1:]...)
	return nil
}

func (r *memoryRepository) List(_ context.Context) ([]Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Post, len(r.posts))
	copy(out, r.posts)
	return out, nil
}
