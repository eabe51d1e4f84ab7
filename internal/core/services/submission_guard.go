package services

import (
	"context"
	"sync"

	"github.com/Syed-Hadii/ERP-Software-sub003/internal/apperrors"
	portssvc "github.com/Syed-Hadii/ERP-Software-sub003/internal/core/ports/services"
)

// localSubmissionGuard is an in-process set of keys with a submission in flight.
type localSubmissionGuard struct {
	mu   sync.Mutex
	held map[string]struct{}
}

// NewLocalSubmissionGuard creates a guard that only coordinates within this process.
func NewLocalSubmissionGuard() portssvc.SubmissionGuard {
	return &localSubmissionGuard{held: map[string]struct{}{}}
}

func (g *localSubmissionGuard) Acquire(_ context.Context, key string) (func(), error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, busy := g.held[key]; busy {
		return nil, apperrors.ErrSubmissionInFlight
	}
	g.held[key] = struct{}{}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			delete(g.held, key)
			g.mu.Unlock()
		})
	}, nil
}
