package health

import (
	"encoding/json"
	"net/http"
	"time"
)

// Response is the JSON body for the liveness endpoint.
type Response struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

// DetailResponse is the JSON body for the detailed health endpoint.
type DetailResponse struct {
	Status    string                   `json:"status"`
	Timestamp string                   `json:"timestamp"`
	Checks    map[string]CheckResponse `json:"checks,omitempty"`
}

// CheckResponse is the JSON body for a single health check.
type CheckResponse struct {
	Status   string         `json:"status"`
	Message  string         `json:"message,omitempty"`
	Duration string         `json:"duration,omitempty"`
	Details  map[string]any `json:"details,omitempty"`
	Error    string         `json:"error,omitempty"`
}

// Handler returns the liveness endpoint: overall status plus a timestamp.
// Always responds 200 unless the aggregate is unhealthy.
func Handler(agg *Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results := agg.CheckAll(r.Context())
		status := agg.OverallStatus(results)

		writeJSON(w, statusCode(status), Response{
			Status:    status.String(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
	}
}

// DetailHandler returns the detailed endpoint with per-check results.
func DetailHandler(agg *Aggregator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results := agg.CheckAll(r.Context())
		status := agg.OverallStatus(results)

		resp := DetailResponse{
			Status:    status.String(),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Checks:    make(map[string]CheckResponse, len(results)),
		}
		for name, res := range results {
			check := CheckResponse{
				Status:   res.Status.String(),
				Message:  res.Message,
				Duration: res.Duration.String(),
				Details:  res.Details,
			}
			if res.Error != nil {
				check.Error = res.Error.Error()
			}
			resp.Checks[name] = check
		}

		writeJSON(w, statusCode(status), resp)
	}
}

func statusCode(s Status) int {
	if s == StatusUnhealthy {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
