package gateway

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonwraymond/toolgate/observe"
)

type contextKey string

// requestIDKey carries the per-request correlation ID in the context.
const requestIDKey contextKey = "gateway.requestID"

// RequestIDHeader is the response header carrying the correlation ID.
const RequestIDHeader = "X-Request-Id"

// RequestIDFromContext returns the correlation ID assigned to this
// request, or "" outside the middleware chain.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// withRequestID assigns a fresh ID to every request unless the caller
// already supplied one, and echoes it back on the response.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// statusRecorder captures the status code written by downstream handlers.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// logRequests emits one access log line per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		s.logger.Info(r.Context(), "request",
			observe.Field{Key: "method", Value: r.Method},
			observe.Field{Key: "path", Value: r.URL.Path},
			observe.Field{Key: "status", Value: rec.status},
			observe.Field{Key: "duration_ms", Value: time.Since(start).Milliseconds()},
			observe.Field{Key: "request_id", Value: RequestIDFromContext(r.Context())},
		)
	})
}
