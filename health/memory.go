package health

import (
	"context"
	"fmt"
	"runtime"
)

// MemoryCheckerConfig configures the memory health checker.
type MemoryCheckerConfig struct {
	// WarningThreshold is the fraction of MaxAlloc that triggers degraded
	// status. Between 0 and 1. Default: 0.8
	WarningThreshold float64

	// CriticalThreshold is the fraction of MaxAlloc that triggers unhealthy
	// status. Between 0 and 1. Default: 0.95
	CriticalThreshold float64

	// MaxAlloc is the maximum expected allocation in bytes.
	// Default: 0 (use the runtime's obtained memory as the bound)
	MaxAlloc uint64
}

// MemoryChecker checks process memory usage.
type MemoryChecker struct {
	config MemoryCheckerConfig
}

// NewMemoryChecker creates a new memory health checker.
func NewMemoryChecker(config MemoryCheckerConfig) *MemoryChecker {
	if config.WarningThreshold <= 0 || config.WarningThreshold >= 1 {
		config.WarningThreshold = 0.8
	}
	if config.CriticalThreshold <= 0 || config.CriticalThreshold >= 1 {
		config.CriticalThreshold = 0.95
	}
	if config.CriticalThreshold < config.WarningThreshold {
		config.CriticalThreshold = config.WarningThreshold
	}

	return &MemoryChecker{config: config}
}

// Name returns the name of this checker.
func (m *MemoryChecker) Name() string {
	return "memory"
}

// Check performs the memory health check.
func (m *MemoryChecker) Check(ctx context.Context) Result {
	select {
	case <-ctx.Done():
		return Unhealthy("context cancelled", ctx.Err())
	default:
	}

	var stats runtime.MemStats
	runtime.ReadMemStats(&stats)

	maxAlloc := m.config.MaxAlloc
	if maxAlloc == 0 {
		maxAlloc = stats.Sys
	}

	details := map[string]any{
		"alloc":  stats.Alloc,
		"sys":    stats.Sys,
		"num_gc": stats.NumGC,
	}

	if maxAlloc == 0 {
		return OK("memory stats unavailable").WithDetails(details)
	}

	usage := float64(stats.Alloc) / float64(maxAlloc)
	details["usage"] = usage

	switch {
	case usage >= m.config.CriticalThreshold:
		return Unhealthy(fmt.Sprintf("memory usage critical: %.0f%%", usage*100), nil).WithDetails(details)
	case usage >= m.config.WarningThreshold:
		return Degraded(fmt.Sprintf("memory usage high: %.0f%%", usage*100)).WithDetails(details)
	default:
		return OK("memory usage normal").WithDetails(details)
	}
}

// Ensure MemoryChecker implements Checker
var _ Checker = (*MemoryChecker)(nil)
