package tools

import (
	"context"
	"errors"
	"fmt"
	"net/url"
)

// ChuckJoke is the chucknorris.io joke payload.
type ChuckJoke struct {
	ID         string   `json:"id"`
	Value      string   `json:"value"`
	IconURL    string   `json:"icon_url"`
	URL        string   `json:"url"`
	Categories []string `json:"categories"`
}

// RandomChuckJoke fetches a random joke.
func (s *Set) RandomChuckJoke(ctx context.Context) (*ChuckJoke, error) {
	var joke ChuckJoke
	if err := s.getJSON(ctx, s.chuckBaseURL+"/jokes/random", nil, &joke); err != nil {
		return nil, fmt.Errorf("Chuck Norris API error: %v", err)
	}
	return &joke, nil
}

// ChuckJokeByCategory fetches a random joke from the given category.
func (s *Set) ChuckJokeByCategory(ctx context.Context, category string) (*ChuckJoke, error) {
	var joke ChuckJoke
	u := s.chuckBaseURL + "/jokes/random?category=" + url.QueryEscape(category)
	if err := s.getJSON(ctx, u, nil, &joke); err != nil {
		return nil, fmt.Errorf("Chuck Norris API error: %v", err)
	}
	return &joke, nil
}

// ChuckCategories fetches the list of joke categories.
func (s *Set) ChuckCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := s.getJSON(ctx, s.chuckBaseURL+"/jokes/categories", nil, &categories); err != nil {
		return nil, fmt.Errorf("Chuck Norris API error: %v", err)
	}
	return categories, nil
}

func (s *Set) chuckJokeHandler(ctx context.Context, _ map[string]any) (any, error) {
	return s.RandomChuckJoke(ctx)
}

func (s *Set) chuckJokeByCategoryHandler(ctx context.Context, params map[string]any) (any, error) {
	category := stringParam(params, "category")
	if category == "" {
		return nil, errors.New("Category parameter is required")
	}
	return s.ChuckJokeByCategory(ctx, category)
}

func (s *Set) chuckCategoriesHandler(ctx context.Context, _ map[string]any) (any, error) {
	return s.ChuckCategories(ctx)
}
