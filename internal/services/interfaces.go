// filepath: internal/services/interfaces.go
package services

import (
	"context"

	"reelhub/internal/models"
	"reelhub/internal/search"
)

// ContentService defines the interface for the content catalog service.
type ContentService interface {
	Create(ctx context.Context, actor string, item *models.ContentItem) (*models.ContentItem, error)
	Get(id int64) (*models.ContentItem, error)
	List() []*models.ContentItem
	Update(ctx context.Context, actor string, item *models.ContentItem) (*models.ContentItem, error)
	Delete(ctx context.Context, actor string, id int64) error
	Search(criteria search.Criteria) []*models.ContentItem
}

// CelebrityService defines the interface for the celebrity catalog service.
type CelebrityService interface {
	Create(ctx context.Context, actor string, person *models.Person) (*models.Person, error)
	Get(id int64) (*models.Person, error)
	List() []*models.Person
	Update(ctx context.Context, actor string, person *models.Person) (*models.Person, error)
	Delete(ctx context.Context, actor string, id int64) error
	FindByName(name string) []*models.Person
}
