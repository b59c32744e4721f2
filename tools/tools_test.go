package tools

import (
	"testing"

	"github.com/jonwraymond/toolgate/registry"
)

func TestRegisterAll(t *testing.T) {
	reg := registry.New()
	s := NewSet(Config{})

	if err := s.RegisterAll(reg); err != nil {
		t.Fatalf("RegisterAll failed: %v", err)
	}

	want := []string{
		"get-chuck-joke",
		"get-chuck-joke-by-category",
		"get-chuck-categories",
		"get-dad-joke",
		"lingva-translate",
		"mymemory-translate",
	}

	infos := reg.List()
	if len(infos) != len(want) {
		t.Fatalf("registered %d tools, want %d", len(infos), len(want))
	}
	for i, name := range want {
		if infos[i].Name != name {
			t.Errorf("List[%d].Name = %q, want %q", i, infos[i].Name, name)
		}
		if infos[i].Description == "" {
			t.Errorf("tool %q has an empty description", name)
		}
	}
}

func TestRegisterAll_Twice(t *testing.T) {
	reg := registry.New()
	s := NewSet(Config{})

	if err := s.RegisterAll(reg); err != nil {
		t.Fatalf("RegisterAll failed: %v", err)
	}
	if err := s.RegisterAll(reg); err != registry.ErrDuplicate {
		t.Errorf("second RegisterAll: got %v, want ErrDuplicate", err)
	}
}

func TestStringParam(t *testing.T) {
	params := map[string]any{
		"text":  "hello",
		"count": 3,
	}

	if got := stringParam(params, "text"); got != "hello" {
		t.Errorf("stringParam(text) = %q, want hello", got)
	}
	if got := stringParam(params, "missing"); got != "" {
		t.Errorf("stringParam(missing) = %q, want empty", got)
	}
	if got := stringParam(params, "count"); got != "" {
		t.Errorf("stringParam on non-string = %q, want empty", got)
	}
	if got := stringParamDefault(params, "sourceLang", "en"); got != "en" {
		t.Errorf("stringParamDefault = %q, want en", got)
	}
}

func TestStringParam_NilMap(t *testing.T) {
	if got := stringParam(nil, "text"); got != "" {
		t.Errorf("stringParam on nil map = %q, want empty", got)
	}
}
