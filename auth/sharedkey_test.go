package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSharedKeyAuthenticator_Defaults(t *testing.T) {
	a := NewSharedKeyAuthenticator(SharedKeyConfig{Key: "s3cret"})
	if a.HeaderName() != "x-api-key" {
		t.Errorf("HeaderName = %q, want x-api-key", a.HeaderName())
	}
}

func TestSharedKeyAuthenticator_Authenticate(t *testing.T) {
	a := NewSharedKeyAuthenticator(SharedKeyConfig{Key: "s3cret"})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if err := a.Authenticate(req); err != ErrMissingKey {
		t.Errorf("missing header: got %v, want ErrMissingKey", err)
	}

	req.Header.Set("x-api-key", "wrong")
	if err := a.Authenticate(req); err != ErrInvalidKey {
		t.Errorf("wrong key: got %v, want ErrInvalidKey", err)
	}

	req.Header.Set("x-api-key", "s3cret")
	if err := a.Authenticate(req); err != nil {
		t.Errorf("correct key: got %v, want nil", err)
	}
}

func TestMiddleware_RejectsWithEnvelope(t *testing.T) {
	a := NewSharedKeyAuthenticator(SharedKeyConfig{Key: "s3cret"})
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := Middleware(a, next)

	req := httptest.NewRequest(http.MethodGet, "/actions/tools", nil)
	req.Header.Set("x-api-key", "wrong")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("401 body is not JSON: %v", err)
	}
	if body["error"] != "Unauthorized" {
		t.Errorf("error = %q, want Unauthorized", body["error"])
	}
	if body["received"] != "wrong" {
		t.Errorf("received = %q, want wrong", body["received"])
	}
	if body["expected"] != "s3cret" {
		t.Errorf("expected = %q, want s3cret", body["expected"])
	}
}

func TestMiddleware_PassesThrough(t *testing.T) {
	a := NewSharedKeyAuthenticator(SharedKeyConfig{Key: "s3cret"})
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})
	h := Middleware(a, next)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("x-api-key", "s3cret")
	h.ServeHTTP(httptest.NewRecorder(), req)

	if !called {
		t.Error("valid key should reach the next handler")
	}
}
