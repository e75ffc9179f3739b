package store

import (
	"context"
	"sync"
)

// Gate serialises every operation touching the in-memory stores so that each
// one runs as a single atomic unit.
type Gate struct {
	mu sync.Mutex
}

// NewGate returns a ready Gate.
func NewGate() *Gate {
	return &Gate{}
}

// Run executes fn while holding the gate. fn must not call Run again.
func (g *Gate) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return fn(ctx)
}
