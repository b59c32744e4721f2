package tools

import (
	"context"
	"fmt"
)

// DadJoke is the icanhazdadjoke.com joke payload.
type DadJoke struct {
	ID     string `json:"id"`
	Joke   string `json:"joke"`
	Status int    `json:"status"`
}

// RandomDadJoke fetches a random dad joke. The upstream returns HTML unless
// JSON is negotiated via the Accept header.
func (s *Set) RandomDadJoke(ctx context.Context) (*DadJoke, error) {
	var joke DadJoke
	headers := map[string]string{"Accept": "application/json"}
	if err := s.getJSON(ctx, s.dadJokeBaseURL+"/", headers, &joke); err != nil {
		return nil, fmt.Errorf("Dad Joke API error: %v", err)
	}
	return &joke, nil
}

func (s *Set) dadJokeHandler(ctx context.Context, _ map[string]any) (any, error) {
	return s.RandomDadJoke(ctx)
}
