// internal/api/handlers/responses.go
package handlers

import (
	"encoding/json"
	"net/http"

	"reelhub/internal/logging"
)

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse carries a plain confirmation message, used where an
// operation has no entity to return (logout, delete).
type MessageResponse struct {
	Message string `json:"message"`
}

// respondWithError sends an ErrorResponse with the given status code.
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON writes the payload as a JSON response. The status
// header goes out before encoding starts, so an encode failure can
// only be logged, not reported to the client.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Log.Errorf("Failed to encode response payload: %v", err)
	}
}
