package observe

import (
	"context"
	"time"
)

// ExecuteFunc is the signature for tool execution functions wrapped by
// Middleware.
type ExecuteFunc func(ctx context.Context, meta ToolMeta, params map[string]any) (any, error)

// Middleware wraps tool execution with observability (tracing, metrics, logging).
//
// Contract:
//   - Concurrency: Wrap() returns a thread-safe ExecuteFunc.
//   - Context: propagates context through tracing spans.
//   - Errors: errors from the wrapped function are recorded and propagated
//     unchanged.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware with the given observability components.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Wrap wraps an ExecuteFunc with tracing, metrics, and logging.
func (m *Middleware) Wrap(fn ExecuteFunc) ExecuteFunc {
	return func(ctx context.Context, meta ToolMeta, params map[string]any) (any, error) {
		ctx, span := m.tracer.StartSpan(ctx, meta)

		start := time.Now()
		result, err := fn(ctx, meta, params)
		duration := time.Since(start)

		m.tracer.EndSpan(span, err)
		m.metrics.RecordExecution(ctx, meta, duration, err)

		toolLogger := m.logger.WithTool(meta)
		fields := []Field{
			{Key: "duration_ms", Value: float64(duration.Milliseconds())},
		}

		if err != nil {
			fields = append(fields, Field{Key: "error", Value: err.Error()})
			toolLogger.Error(ctx, "tool execution failed", fields...)
		} else {
			toolLogger.Info(ctx, "tool execution completed", fields...)
		}

		return result, err
	}
}

// MiddlewareFromObserver creates a Middleware from an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	tracer := newTracer(obs.Tracer())

	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewMiddleware(tracer, metrics, obs.Logger()), nil
}

// NoopMiddleware creates a Middleware that records nothing. Useful for tests.
func NoopMiddleware() *Middleware {
	return NewMiddleware(newNoopTracer(), &noopMetrics{}, &noopLogger{})
}
