// filepath: internal/api/handlers/celebrity_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"reelhub/internal/models"
)

// CreateCelebrity adds a new person to the celebrity registry.
func (h *Handlers) CreateCelebrity(w http.ResponseWriter, r *http.Request) {
	var person models.Person
	if err := json.NewDecoder(r.Body).Decode(&person); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.Celebrities.Create(r.Context(), contextActor(r), &person)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

// GetCelebrity returns a single person by identity.
func (h *Handlers) GetCelebrity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	person, err := h.Celebrities.Get(id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, person)
}

// GetCelebrities lists celebrities, optionally filtered by the "name"
// query parameter (case-insensitive substring of the full name).
func (h *Handlers) GetCelebrities(w http.ResponseWriter, r *http.Request) {
	if name := r.URL.Query().Get("name"); name != "" {
		respondWithJSON(w, http.StatusOK, h.Celebrities.FindByName(name))
		return
	}
	respondWithJSON(w, http.StatusOK, h.Celebrities.List())
}

// UpdateCelebrity replaces the person with the identity from the path.
func (h *Handlers) UpdateCelebrity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var person models.Person
	if err := json.NewDecoder(r.Body).Decode(&person); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	person.ID = id

	updated, err := h.Celebrities.Update(r.Context(), contextActor(r), &person)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}

// DeleteCelebrity removes a person by identity.
func (h *Handlers) DeleteCelebrity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.Celebrities.Delete(r.Context(), contextActor(r), id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Celebrity deleted."})
}
