package observe

import (
	"context"
	"errors"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		ServiceName: "toolgate",
		Tracing:     TracingConfig{Exporter: "none", SamplePct: 1.0},
		Metrics:     MetricsConfig{Exporter: "none"},
		Logging:     LoggingConfig{Level: "info"},
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid config should pass, got %v", err)
	}

	missing := valid
	missing.ServiceName = ""
	if err := missing.Validate(); !errors.Is(err, ErrMissingServiceName) {
		t.Errorf("got %v, want ErrMissingServiceName", err)
	}

	badSample := valid
	badSample.Tracing.SamplePct = 1.5
	if err := badSample.Validate(); !errors.Is(err, ErrInvalidSamplePct) {
		t.Errorf("got %v, want ErrInvalidSamplePct", err)
	}

	badTracer := valid
	badTracer.Tracing.Exporter = "zipkin"
	if err := badTracer.Validate(); !errors.Is(err, ErrInvalidTracingExporter) {
		t.Errorf("got %v, want ErrInvalidTracingExporter", err)
	}

	badMetrics := valid
	badMetrics.Metrics.Exporter = "statsd"
	if err := badMetrics.Validate(); !errors.Is(err, ErrInvalidMetricsExporter) {
		t.Errorf("got %v, want ErrInvalidMetricsExporter", err)
	}

	badLevel := valid
	badLevel.Logging.Level = "trace"
	if err := badLevel.Validate(); !errors.Is(err, ErrInvalidLogLevel) {
		t.Errorf("got %v, want ErrInvalidLogLevel", err)
	}
}

func TestNewObserver_Disabled(t *testing.T) {
	obs, err := NewObserver(context.Background(), Config{ServiceName: "toolgate"})
	if err != nil {
		t.Fatalf("NewObserver failed: %v", err)
	}
	defer obs.Shutdown(context.Background())

	if obs.Tracer() == nil {
		t.Error("Tracer should not be nil even when tracing is disabled")
	}
	if obs.Meter() == nil {
		t.Error("Meter should not be nil even when metrics are disabled")
	}
	if obs.Logger() == nil {
		t.Error("Logger should not be nil even when logging is disabled")
	}
}

func TestNewNoopObserver(t *testing.T) {
	obs := NewNoopObserver()
	if err := obs.Shutdown(context.Background()); err != nil {
		t.Errorf("noop Shutdown should not error, got %v", err)
	}
}
