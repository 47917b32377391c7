// filepath: internal/api/handlers/content_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"reelhub/internal/models"
	"reelhub/internal/search"
)

// CreateContent adds a new item to the catalog.
func (h *Handlers) CreateContent(w http.ResponseWriter, r *http.Request) {
	var item models.ContentItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.Content.Create(r.Context(), contextActor(r), &item)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

// GetContent returns a single item by identity.
func (h *Handlers) GetContent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	item, err := h.Content.Get(id)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, item)
}

// GetContents returns the full catalog in insertion order.
func (h *Handlers) GetContents(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, h.Content.List())
}

// UpdateContent replaces the item with the identity from the path.
func (h *Handlers) UpdateContent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	var item models.ContentItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	item.ID = id

	updated, err := h.Content.Update(r.Context(), contextActor(r), &item)
	if err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}

// DeleteContent removes an item by identity.
func (h *Handlers) DeleteContent(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid id")
		return
	}

	if err := h.Content.Delete(r.Context(), contextActor(r), id); err != nil {
		respondWithServiceError(w, err)
		return
	}
	respondWithJSON(w, http.StatusOK, MessageResponse{Message: "Content deleted."})
}

// SearchContent filters the catalog with the posted criteria.
func (h *Handlers) SearchContent(w http.ResponseWriter, r *http.Request) {
	var criteria search.Criteria
	if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	respondWithJSON(w, http.StatusOK, h.Content.Search(criteria))
}
