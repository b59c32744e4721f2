package gateway

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jonwraymond/toolgate/dispatch"
)

type executeRequest struct {
	Tool    string         `json:"tool"`
	Params  map[string]any `json:"params"`
	Message string         `json:"message"`
}

type echoRequest struct {
	Message string `json:"message"`
}

type echoResponse struct {
	OriginalMessage string `json:"originalMessage"`
	ChuckJoke       string `json:"chuckJoke"`
	IconURL         string `json:"iconUrl"`
	Timestamp       string `json:"timestamp"`
}

type toolsResponse struct {
	Tools any `json:"tools"`
}

// handleExecute extracts {tool, params, message} and delegates to the
// dispatcher. Outcomes map to 200, 400 (unknown tool or validation), or
// 500 (upstream failure).
func (s *Server) handleExecute(w http.ResponseWriter, r *http.Request) {
	var req executeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	result, err := s.dispatcher.Execute(r.Context(), req.Tool, req.Params, req.Message)
	if err != nil {
		de, ok := dispatch.AsError(err)
		if !ok {
			writeError(w, http.StatusInternalServerError, "Failed to process request", err.Error())
			return
		}

		switch de.Kind {
		case dispatch.KindNotFound:
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error":          "Tool not found",
				"availableTools": de.Available,
			})
		case dispatch.KindValidation:
			writeError(w, http.StatusBadRequest, "Failed to process request", de.Message)
		default:
			writeError(w, http.StatusInternalServerError, "Failed to process request", de.Message)
		}
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// handleEcho ignores tool/params and pairs the caller's message with one
// freshly fetched random joke.
func (s *Server) handleEcho(w http.ResponseWriter, r *http.Request) {
	var req echoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	joke, err := s.tools.RandomChuckJoke(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch Chuck Norris joke", err.Error())
		return
	}

	message := req.Message
	if message == "" {
		message = dispatch.NoMessagePlaceholder
	}

	writeJSON(w, http.StatusOK, echoResponse{
		OriginalMessage: message,
		ChuckJoke:       joke.Value,
		IconURL:         joke.IconURL,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
	})
}

// handleTools lists every registered tool in registration order.
func (s *Server) handleTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toolsResponse{Tools: s.registry.List()})
}
