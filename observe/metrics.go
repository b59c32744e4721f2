package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records execution metrics for tools.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordExecution records a tool execution with duration and error status.
	RecordExecution(ctx context.Context, meta ToolMeta, duration time.Duration, err error)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter        metric.Meter
	totalCount   metric.Int64Counter
	errorCount   metric.Int64Counter
	durationHist metric.Float64Histogram
}

// newMetrics creates a new Metrics instance with the given meter.
func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	totalCount, err := meter.Int64Counter(
		"gateway.tool.executions",
		metric.WithDescription("Total number of tool executions"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"gateway.tool.errors",
		metric.WithDescription("Total number of failed tool executions"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"gateway.tool.duration_ms",
		metric.WithDescription("Tool execution duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:        meter,
		totalCount:   totalCount,
		errorCount:   errorCount,
		durationHist: durationHist,
	}, nil
}

// RecordExecution records metrics for a tool execution.
func (m *metricsImpl) RecordExecution(ctx context.Context, meta ToolMeta, duration time.Duration, err error) {
	opt := metric.WithAttributes(attribute.String("tool.name", meta.Name))

	m.totalCount.Add(ctx, 1, opt)
	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}
	m.durationHist.Record(ctx, float64(duration.Milliseconds()), opt)
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

func (m *noopMetrics) RecordExecution(ctx context.Context, meta ToolMeta, duration time.Duration, err error) {
}

// Ensure implementations satisfy Metrics
var (
	_ Metrics = (*metricsImpl)(nil)
	_ Metrics = (*noopMetrics)(nil)
)
