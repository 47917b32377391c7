// filepath: internal/api/handlers/auth_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"sort"

	"reelhub/internal/logging"
)

// RegisterRequest is the DTO for creating an account.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the DTO for obtaining a session token.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates a new user account.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.Auth.Register(req.Username, req.Email, req.Password)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, user)
}

// GetToken verifies credentials and issues a session token.
func (h *Handlers) GetToken(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session, err := h.Auth.Login(req.Username, req.Password)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, session)
}

// Logout invalidates the current session token.
func (h *Handlers) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := r.Context().Value(ctxToken).(string)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No session found")
		return
	}
	if err := h.Auth.Logout(token); err != nil {
		respondWithServiceError(w, err)
		return
	}
	logging.Log.Debugf("Logout: session ended for '%s'", contextActor(r))
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Logged out."})
}

// GetUserMe returns the currently authenticated user's details.
func (h *Handlers) GetUserMe(w http.ResponseWriter, r *http.Request) {
	user, ok := contextUser(r)
	if !ok {
		respondWithError(w, http.StatusUnauthorized, "No user found in context")
		return
	}
	// PasswordHash is tagged json:"-", so the response is already safe.
	respondWithJSON(w, http.StatusOK, user)
}

// GetUsers lists all accounts. Admin only.
func (h *Handlers) GetUsers(w http.ResponseWriter, r *http.Request) {
	users := h.Auth.Users()
	// Stable order for clients: the store returns map order.
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	respondWithJSON(w, http.StatusOK, users)
}
