package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// WriteResponse writes a JSON response with a specific status code. The
// CORS headers every response carries are applied by the middleware
// layer so success and failure paths stay uniform.
func WriteResponse(w http.ResponseWriter, statusCode int, response interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if response != nil {
		if err := json.NewEncoder(w).Encode(response); err != nil {
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
			return
		}
	}
}

// DecodeRequest reads and parses a JSON request body into out. The body
// is normalized here, once, so malformed input is rejected before any
// business logic runs.
func DecodeRequest(r *http.Request, out interface{}) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("failed to read request body: %w", err)
	}
	defer r.Body.Close()

	if len(body) == 0 {
		return fmt.Errorf("request body is empty")
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("invalid JSON payload: %w", err)
	}

	return nil
}
