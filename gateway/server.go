package gateway

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jonwraymond/toolgate/auth"
	"github.com/jonwraymond/toolgate/dispatch"
	"github.com/jonwraymond/toolgate/health"
	"github.com/jonwraymond/toolgate/observe"
	"github.com/jonwraymond/toolgate/registry"
	"github.com/jonwraymond/toolgate/tools"
)

// Config configures the HTTP surface.
type Config struct {
	// APIKey is the shared secret required on every request.
	APIKey string

	// KeyHeader is the header carrying the secret. Default: "x-api-key"
	KeyHeader string
}

// Server translates HTTP requests into dispatcher calls and dispatcher
// outcomes into HTTP responses.
type Server struct {
	authenticator *auth.SharedKeyAuthenticator
	registry      *registry.Registry
	dispatcher    *dispatch.Dispatcher
	tools         *tools.Set
	health        *health.Aggregator
	logger        observe.Logger
}

// NewServer creates the HTTP surface over the given collaborators.
// A nil logger disables access logging; a nil aggregator yields an empty
// (always ok) health check.
func NewServer(cfg Config, reg *registry.Registry, d *dispatch.Dispatcher, toolSet *tools.Set, agg *health.Aggregator, logger observe.Logger) *Server {
	if agg == nil {
		agg = health.NewAggregator()
	}
	if logger == nil {
		logger = observe.NewNoopObserver().Logger()
	}

	return &Server{
		authenticator: auth.NewSharedKeyAuthenticator(auth.SharedKeyConfig{
			HeaderName: cfg.KeyHeader,
			Key:        cfg.APIKey,
		}),
		registry:   reg,
		dispatcher: d,
		tools:      toolSet,
		health:     agg,
		logger:     logger,
	}
}

// Handler builds the route table and middleware chain. The shared-secret
// check runs before routing, so it covers every route, /health included.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /actions/echo", s.handleEcho)
	mux.HandleFunc("POST /actions/execute", s.handleExecute)
	mux.HandleFunc("GET /actions/tools", s.handleTools)
	mux.Handle("GET /health", health.Handler(s.health))
	mux.Handle("GET /health/details", health.DetailHandler(s.health))
	mux.Handle("GET /metrics", promhttp.Handler())

	var h http.Handler = mux
	h = s.logRequests(h)
	h = auth.Middleware(s.authenticator, h)
	h = withRequestID(h)
	return h
}
