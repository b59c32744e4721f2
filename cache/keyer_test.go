package cache

import "testing"

func TestTranslationKey_Format(t *testing.T) {
	got := TranslationKey("en", "es", "hello world")
	want := "en-es-hello world"
	if got != want {
		t.Errorf("TranslationKey = %q, want %q", got, want)
	}
}

func TestTranslationKey_Deterministic(t *testing.T) {
	a := TranslationKey("en", "fr", "good morning")
	b := TranslationKey("en", "fr", "good morning")
	if a != b {
		t.Errorf("identical tuples produced different keys: %q vs %q", a, b)
	}
}

func TestTranslationKey_DistinguishesTuples(t *testing.T) {
	keys := map[string]bool{
		TranslationKey("en", "es", "hello"): true,
		TranslationKey("es", "en", "hello"): true,
		TranslationKey("en", "fr", "hello"): true,
		TranslationKey("en", "es", "world"): true,
	}
	if len(keys) != 4 {
		t.Errorf("expected 4 distinct keys, got %d", len(keys))
	}
}
