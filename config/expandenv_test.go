package config

import (
	"strings"
	"testing"
)

func TestExpandEnvStrict(t *testing.T) {
	t.Setenv("TOOLGATE_TEST_VAR", "value")

	got, err := ExpandEnvStrict("prefix-${TOOLGATE_TEST_VAR}-suffix")
	if err != nil {
		t.Fatalf("ExpandEnvStrict: %v", err)
	}
	if got != "prefix-value-suffix" {
		t.Errorf("got %q, want prefix-value-suffix", got)
	}
}

func TestExpandEnvStrict_Missing(t *testing.T) {
	_, err := ExpandEnvStrict("${TOOLGATE_DEFINITELY_UNSET_VAR}")
	if err == nil {
		t.Fatal("expected error for unset variable")
	}
	if !strings.Contains(err.Error(), "TOOLGATE_DEFINITELY_UNSET_VAR") {
		t.Errorf("error should name the missing variable: %v", err)
	}
}

func TestExpandEnvStrict_EscapedDollar(t *testing.T) {
	got, err := ExpandEnvStrict("cost: $$5")
	if err != nil {
		t.Fatalf("ExpandEnvStrict: %v", err)
	}
	if got != "cost: $5" {
		t.Errorf("got %q, want cost: $5", got)
	}
}
