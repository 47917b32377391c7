// filepath: internal/services/content_service.go
package services

import (
	"context"
	"fmt"
	"strings"

	"reelhub/internal/audit"
	"reelhub/internal/logging"
	"reelhub/internal/models"
	"reelhub/internal/registry"
	"reelhub/internal/search"
	"reelhub/internal/shared"
)

// Compile-time check to ensure the interface is implemented.
var _ ContentService = (*contentService)(nil)

// contentService handles business logic for the content catalog.
type contentService struct {
	Registry *registry.Registry[*models.ContentItem]
	Auditor  audit.Auditor
}

// NewContentService creates a new ContentService.
func NewContentService(reg *registry.Registry[*models.ContentItem], auditor audit.Auditor) *contentService {
	return &contentService{Registry: reg, Auditor: auditor}
}

// Create validates and stores a new content item.
func (s *contentService) Create(ctx context.Context, actor string, item *models.ContentItem) (*models.ContentItem, error) {
	if item.ID != 0 {
		return nil, fmt.Errorf("%w: identity must be unset on create", shared.ErrInvalidInput)
	}
	if err := validateContent(item); err != nil {
		return nil, err
	}

	id, err := s.Registry.Save(item)
	if err != nil {
		return nil, err
	}
	logging.Log.Debugf("ContentService: created '%s' (ID: %d)", item.Title, id)
	s.Auditor.Log(ctx, "content.create", actor, fmt.Sprintf("Content:%d", id), map[string]interface{}{
		"title": item.Title,
	})
	return item.Clone(), nil
}

// Get retrieves a content item by identity.
func (s *contentService) Get(id int64) (*models.ContentItem, error) {
	return s.Registry.FindByID(id)
}

// List returns the full catalog in insertion order.
func (s *contentService) List() []*models.ContentItem {
	return s.Registry.All()
}

// Update replaces the item with the matching identity.
func (s *contentService) Update(ctx context.Context, actor string, item *models.ContentItem) (*models.ContentItem, error) {
	if item.ID == 0 {
		return nil, fmt.Errorf("%w: identity is required on update", shared.ErrInvalidInput)
	}
	if err := validateContent(item); err != nil {
		return nil, err
	}

	if _, err := s.Registry.Save(item); err != nil {
		return nil, err
	}
	s.Auditor.Log(ctx, "content.update", actor, fmt.Sprintf("Content:%d", item.ID), map[string]interface{}{
		"title": item.Title,
	})
	return item.Clone(), nil
}

// Delete removes the item with the given identity.
func (s *contentService) Delete(ctx context.Context, actor string, id int64) error {
	if err := s.Registry.Delete(id); err != nil {
		return err
	}
	s.Auditor.Log(ctx, "content.delete", actor, fmt.Sprintf("Content:%d", id), nil)
	return nil
}

// Search filters the catalog with the given criteria.
func (s *contentService) Search(criteria search.Criteria) []*models.ContentItem {
	return search.Filter(s.Registry.All(), criteria)
}

// validateContent checks the field constraints shared by create and update.
func validateContent(item *models.ContentItem) error {
	item.Title = strings.TrimSpace(item.Title)
	if item.Title == "" {
		return fmt.Errorf("%w: title is required", shared.ErrInvalidInput)
	}
	if item.Rating < 0 || item.Rating > 10 {
		return fmt.Errorf("%w: rating must be between 0.0 and 10.0", shared.ErrInvalidInput)
	}
	item.Genres = normalizeGenres(item.Genres)
	return nil
}

// normalizeGenres trims entries and drops empties and duplicates while
// keeping the original order.
func normalizeGenres(genres []string) []string {
	if len(genres) == 0 {
		return genres
	}
	seen := make(map[string]bool, len(genres))
	out := genres[:0]
	for _, g := range genres {
		g = strings.TrimSpace(g)
		if g == "" {
			continue
		}
		key := strings.ToLower(g)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, g)
	}
	return out
}
