package gateway

import (
	"encoding/json"
	"net/http"
)

// errorEnvelope is the uniform failure body.
type errorEnvelope struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, category, details string) {
	writeJSON(w, code, errorEnvelope{Error: category, Details: details})
}
