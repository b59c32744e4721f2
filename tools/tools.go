package tools

import (
	"net/http"

	"github.com/jonwraymond/toolgate/cache"
	"github.com/jonwraymond/toolgate/registry"
)

// Default upstream endpoints.
const (
	DefaultChuckBaseURL    = "https://api.chucknorris.io"
	DefaultDadJokeBaseURL  = "https://icanhazdadjoke.com"
	DefaultLingvaBaseURL   = "https://lingva.ml/api/v1"
	DefaultMyMemoryBaseURL = "https://api.mymemory.translated.net"
)

// Default translation languages when the caller omits them.
const (
	DefaultSourceLang = "en"
	DefaultTargetLang = "es"
)

// Config configures the built-in tool set.
type Config struct {
	// Upstream base URLs. Empty values fall back to the public endpoints.
	ChuckBaseURL    string
	DadJokeBaseURL  string
	LingvaBaseURL   string
	MyMemoryBaseURL string

	// HTTPClient performs outbound calls. Default: http.DefaultClient.
	// No per-call timeout is imposed here; a hung upstream blocks only the
	// requesting goroutine.
	HTTPClient *http.Client

	// Cache holds MyMemory translation results. Nil disables caching.
	Cache cache.Cache

	// CachePolicy supplies the translation TTL.
	CachePolicy cache.Policy
}

// Set is the fixed collection of built-in tools.
type Set struct {
	chuckBaseURL    string
	dadJokeBaseURL  string
	lingvaBaseURL   string
	myMemoryBaseURL string
	client          *http.Client
	cache           cache.Cache
	policy          cache.Policy
}

// NewSet creates the built-in tool set with defaults applied.
func NewSet(cfg Config) *Set {
	if cfg.ChuckBaseURL == "" {
		cfg.ChuckBaseURL = DefaultChuckBaseURL
	}
	if cfg.DadJokeBaseURL == "" {
		cfg.DadJokeBaseURL = DefaultDadJokeBaseURL
	}
	if cfg.LingvaBaseURL == "" {
		cfg.LingvaBaseURL = DefaultLingvaBaseURL
	}
	if cfg.MyMemoryBaseURL == "" {
		cfg.MyMemoryBaseURL = DefaultMyMemoryBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}

	return &Set{
		chuckBaseURL:    cfg.ChuckBaseURL,
		dadJokeBaseURL:  cfg.DadJokeBaseURL,
		lingvaBaseURL:   cfg.LingvaBaseURL,
		myMemoryBaseURL: cfg.MyMemoryBaseURL,
		client:          cfg.HTTPClient,
		cache:           cfg.Cache,
		policy:          cfg.CachePolicy,
	}
}

// RegisterAll registers every built-in tool. Registration order is fixed and
// is the order reported by the tools listing.
func (s *Set) RegisterAll(reg *registry.Registry) error {
	all := []registry.Tool{
		{
			Name:        "get-chuck-joke",
			Description: "Get a random Chuck Norris joke",
			Handler:     s.chuckJokeHandler,
		},
		{
			Name:        "get-chuck-joke-by-category",
			Description: "Get a random Chuck Norris joke from a specific category",
			Handler:     s.chuckJokeByCategoryHandler,
		},
		{
			Name:        "get-chuck-categories",
			Description: "Get all available categories for Chuck Norris jokes",
			Handler:     s.chuckCategoriesHandler,
		},
		{
			Name:        "get-dad-joke",
			Description: "Get a random dad joke",
			Handler:     s.dadJokeHandler,
		},
		{
			Name:        "lingva-translate",
			Description: "Translate text using the Lingva Translate API",
			Handler:     s.lingvaTranslateHandler,
		},
		{
			Name:        "mymemory-translate",
			Description: "Translate text using the MyMemory API, with cached results",
			Handler:     s.myMemoryTranslateHandler,
		},
	}

	for _, tool := range all {
		if err := reg.Register(tool); err != nil {
			return err
		}
	}
	return nil
}

// stringParam extracts a string parameter. Returns "" when absent or not a
// string.
func stringParam(params map[string]any, key string) string {
	v, ok := params[key]
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return s
}

// stringParamDefault extracts a string parameter, falling back to def.
func stringParamDefault(params map[string]any, key, def string) string {
	if s := stringParam(params, key); s != "" {
		return s
	}
	return def
}
