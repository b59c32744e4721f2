package tools

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newChuckServer(t *testing.T) (*httptest.Server, *int) {
	t.Helper()
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/jokes/random":
			if cat := r.URL.Query().Get("category"); cat != "" {
				w.Write([]byte(`{"id":"c1","value":"joke about ` + cat + `","icon_url":"https://example.com/icon.png","categories":["` + cat + `"]}`))
				return
			}
			w.Write([]byte(`{"id":"r1","value":"a random joke","icon_url":"https://example.com/icon.png"}`))
		case "/jokes/categories":
			w.Write([]byte(`["animal","dev","movie"]`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestRandomChuckJoke(t *testing.T) {
	srv, _ := newChuckServer(t)
	s := NewSet(Config{ChuckBaseURL: srv.URL})

	joke, err := s.RandomChuckJoke(context.Background())
	if err != nil {
		t.Fatalf("RandomChuckJoke failed: %v", err)
	}
	if joke.Value != "a random joke" {
		t.Errorf("Value = %q", joke.Value)
	}
	if joke.IconURL == "" {
		t.Error("IconURL should be populated")
	}
}

func TestChuckJokeByCategory_RequiresCategory(t *testing.T) {
	srv, calls := newChuckServer(t)
	s := NewSet(Config{ChuckBaseURL: srv.URL})

	_, err := s.chuckJokeByCategoryHandler(context.Background(), map[string]any{})
	if err == nil {
		t.Fatal("missing category should fail")
	}
	if err.Error() != "Category parameter is required" {
		t.Errorf("error = %q, want %q", err.Error(), "Category parameter is required")
	}
	if *calls != 0 {
		t.Error("no upstream call should be made when the category is missing")
	}
}

func TestChuckJokeByCategory(t *testing.T) {
	srv, _ := newChuckServer(t)
	s := NewSet(Config{ChuckBaseURL: srv.URL})

	out, err := s.chuckJokeByCategoryHandler(context.Background(), map[string]any{"category": "dev"})
	if err != nil {
		t.Fatalf("handler failed: %v", err)
	}
	joke, ok := out.(*ChuckJoke)
	if !ok {
		t.Fatalf("result type = %T, want *ChuckJoke", out)
	}
	if !strings.Contains(joke.Value, "dev") {
		t.Errorf("Value = %q, want category joke", joke.Value)
	}
}

func TestChuckCategories(t *testing.T) {
	srv, _ := newChuckServer(t)
	s := NewSet(Config{ChuckBaseURL: srv.URL})

	categories, err := s.ChuckCategories(context.Background())
	if err != nil {
		t.Fatalf("ChuckCategories failed: %v", err)
	}
	if len(categories) != 3 || categories[1] != "dev" {
		t.Errorf("categories = %v", categories)
	}
}

func TestChuckJoke_UpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	s := NewSet(Config{ChuckBaseURL: srv.URL})

	_, err := s.RandomChuckJoke(context.Background())
	if err == nil {
		t.Fatal("upstream 500 should fail")
	}
	if !strings.Contains(err.Error(), "Chuck Norris API error") {
		t.Errorf("error = %q, want API-error message", err.Error())
	}
}
