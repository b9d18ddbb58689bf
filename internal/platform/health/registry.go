// Package health holds the readiness check registry. Checks run
// concurrently, each under its own deadline.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jsamuelsen11/ore-roller/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// DefaultCheckTimeout bounds a single check when no option overrides it.
const DefaultCheckTimeout = 2 * time.Second

// Registry is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
	timeout  time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout sets the per-check deadline. Non-positive values are ignored.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// New returns an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds checker.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every check and returns the results keyed by checker name;
// nil means healthy.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := append([]ports.HealthChecker(nil), r.checkers...)
	r.mu.RUnlock()

	out := make(map[string]error, len(checkers))
	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, c := range checkers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			ctx, cancel := context.WithTimeout(ctx, r.timeout)
			defer cancel()
			err := r.check(ctx, c)

			mu.Lock()
			out[c.Name()] = err
			mu.Unlock()
		}()
	}
	wg.Wait()

	return out
}

// check returns the checker's verdict or a timeout error, whichever comes
// first, so a hung checker cannot stall the probe.
func (r *Registry) check(ctx context.Context, c ports.HealthChecker) error {
	done := make(chan error, 1)
	go func() { done <- c.HealthCheck(ctx) }()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("%s: health check timed out: %w", c.Name(), ctx.Err())
	}
}
