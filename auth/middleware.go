package auth

import (
	"encoding/json"
	"net/http"
)

// unauthorizedResponse is the 401 envelope. It mirrors the legacy gateway
// envelope, which echoes the expected key back to the caller.
type unauthorizedResponse struct {
	Error    string `json:"error"`
	Received string `json:"received"`
	Expected string `json:"expected"`
}

// Middleware gates every request behind the shared-secret check. It runs
// before routing, so all routes are covered, the health endpoint included.
func Middleware(a *SharedKeyAuthenticator, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := a.Authenticate(r); err != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(unauthorizedResponse{
				Error:    "Unauthorized",
				Received: r.Header.Get(a.HeaderName()),
				Expected: a.Key(),
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
