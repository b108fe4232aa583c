package services

import (
	"sync"

	apperrors "github.com/antonkarev/healthhub/internal/errors"
)

// inflightGuard rejects a submit while the previous request of the same
// workflow is still outstanding, instead of relying on a disabled button.
type inflightGuard struct {
	mu     sync.Mutex
	active bool
}

func (g *inflightGuard) begin() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.active {
		return apperrors.ErrRequestInFlight
	}
	g.active = true
	return nil
}

func (g *inflightGuard) end() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.active = false
}

func (g *inflightGuard) isActive() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}
