package health

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// AggregatorConfig configures the health aggregator.
type AggregatorConfig struct {
	// Timeout is the maximum time to wait for all checks.
	// Default: 10 seconds
	Timeout time.Duration
}

// Aggregator combines multiple health checkers into a single composite check.
type Aggregator struct {
	config   AggregatorConfig
	mu       sync.RWMutex
	checkers map[string]Checker
	order    []string // Maintains registration order
}

// NewAggregator creates a new health aggregator.
func NewAggregator(config ...AggregatorConfig) *Aggregator {
	cfg := AggregatorConfig{Timeout: 10 * time.Second}
	if len(config) > 0 {
		cfg = config[0]
		if cfg.Timeout <= 0 {
			cfg.Timeout = 10 * time.Second
		}
	}

	return &Aggregator{
		config:   cfg,
		checkers: make(map[string]Checker),
		order:    make([]string, 0),
	}
}

// Register adds a health checker to the aggregator. Re-registering a name
// replaces the checker but keeps its original position.
func (a *Aggregator) Register(name string, checker Checker) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, exists := a.checkers[name]; !exists {
		a.order = append(a.order, name)
	}
	a.checkers[name] = checker
}

// CheckAll runs every registered checker concurrently and returns results
// keyed by checker name. Checks share a deadline from the configured timeout.
func (a *Aggregator) CheckAll(ctx context.Context) map[string]Result {
	a.mu.RLock()
	names := make([]string, len(a.order))
	copy(names, a.order)
	checkers := make(map[string]Checker, len(a.checkers))
	for k, v := range a.checkers {
		checkers[k] = v
	}
	a.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()

	var mu sync.Mutex
	results := make(map[string]Result, len(names))

	g, ctx := errgroup.WithContext(ctx)
	for _, name := range names {
		checker := checkers[name]
		g.Go(func() error {
			start := time.Now()
			res := checker.Check(ctx)
			res.Duration = time.Since(start)

			mu.Lock()
			results[name] = res
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// OverallStatus reduces a result set to a single status: the worst status
// present, or StatusOK for an empty set.
func (a *Aggregator) OverallStatus(results map[string]Result) Status {
	overall := StatusOK
	for _, res := range results {
		if res.Status > overall {
			overall = res.Status
		}
	}
	return overall
}
