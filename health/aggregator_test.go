package health

import (
	"context"
	"errors"
	"testing"
)

func TestAggregator_CheckAll(t *testing.T) {
	agg := NewAggregator()
	agg.Register("alpha", NewCheckerFunc("alpha", func(ctx context.Context) Result {
		return OK("fine")
	}))
	agg.Register("beta", NewCheckerFunc("beta", func(ctx context.Context) Result {
		return Degraded("slow")
	}))

	results := agg.CheckAll(context.Background())
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results["alpha"].Status != StatusOK {
		t.Errorf("alpha status = %v, want ok", results["alpha"].Status)
	}
	if results["beta"].Status != StatusDegraded {
		t.Errorf("beta status = %v, want degraded", results["beta"].Status)
	}
	if results["alpha"].Duration < 0 {
		t.Error("duration should be recorded")
	}
}

func TestAggregator_OverallStatus(t *testing.T) {
	agg := NewAggregator()

	if got := agg.OverallStatus(nil); got != StatusOK {
		t.Errorf("empty set: got %v, want ok", got)
	}

	results := map[string]Result{
		"a": OK(""),
		"b": Unhealthy("down", errors.New("boom")),
		"c": Degraded(""),
	}
	if got := agg.OverallStatus(results); got != StatusUnhealthy {
		t.Errorf("got %v, want unhealthy (worst status wins)", got)
	}
}

func TestAggregator_ReplaceKeepsPosition(t *testing.T) {
	agg := NewAggregator()
	agg.Register("x", NewCheckerFunc("x", func(ctx context.Context) Result { return OK("v1") }))
	agg.Register("x", NewCheckerFunc("x", func(ctx context.Context) Result { return OK("v2") }))

	results := agg.CheckAll(context.Background())
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	if results["x"].Message != "v2" {
		t.Errorf("message = %q, want v2 (replacement wins)", results["x"].Message)
	}
}

func TestStatusString(t *testing.T) {
	if StatusOK.String() != "ok" {
		t.Errorf("StatusOK = %q, want ok", StatusOK.String())
	}
	if StatusDegraded.String() != "degraded" {
		t.Errorf("StatusDegraded = %q", StatusDegraded.String())
	}
	if StatusUnhealthy.String() != "unhealthy" {
		t.Errorf("StatusUnhealthy = %q", StatusUnhealthy.String())
	}
}
