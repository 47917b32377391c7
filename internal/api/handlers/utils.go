// filepath: internal/api/handlers/utils.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"reelhub/internal/logging"
	"reelhub/internal/shared"
)

// pathID extracts the {id} route variable as an int64.
func pathID(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, shared.ErrInvalidInput
	}
	return id, nil
}

// respondWithServiceError maps the error taxonomy onto HTTP statuses.
func respondWithServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrInvalidInput):
		respondWithError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, shared.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, shared.ErrNotFound):
		respondWithError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, shared.ErrUsernameTaken), errors.Is(err, shared.ErrEmailTaken):
		respondWithError(w, http.StatusConflict, err.Error())
	default:
		logging.Log.Errorf("Unhandled service error: %v", err)
		respondWithError(w, http.StatusInternalServerError, "internal error")
	}
}
