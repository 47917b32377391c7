// filepath: internal/services/content_service_test.go
package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"reelhub/internal/audit"
	"reelhub/internal/models"
	"reelhub/internal/registry"
	"reelhub/internal/search"
	"reelhub/internal/shared"
)

// MockAuditor records audit calls for assertions.
type MockAuditor struct {
	mock.Mock
}

func (m *MockAuditor) Log(ctx context.Context, action, actor, resource string, details map[string]interface{}) {
	m.Called(ctx, action, actor, resource, details)
}

func newContentService() *contentService {
	return NewContentService(registry.New[*models.ContentItem]("content"), audit.Nop{})
}

func TestContentCreate(t *testing.T) {
	s := newContentService()

	created, err := s.Create(context.Background(), "tester", &models.ContentItem{
		Title:  "  Heat ",
		Year:   1995,
		Rating: 8.3,
		Genres: []string{"Crime", "crime", " ", "Thriller"},
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "Heat", created.Title)
	// Genre set semantics: duplicates and blanks dropped, order kept.
	assert.Equal(t, []string{"Crime", "Thriller"}, created.Genres)
}

func TestContentCreateValidation(t *testing.T) {
	s := newContentService()
	ctx := context.Background()

	_, err := s.Create(ctx, "tester", &models.ContentItem{Title: "   "})
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))

	_, err = s.Create(ctx, "tester", &models.ContentItem{Title: "X", Rating: 10.5})
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))

	_, err = s.Create(ctx, "tester", &models.ContentItem{ID: 7, Title: "X"})
	assert.True(t, errors.Is(err, shared.ErrInvalidInput))
}

func TestContentUpdateAndDelete(t *testing.T) {
	s := newContentService()
	ctx := context.Background()

	created, err := s.Create(ctx, "tester", &models.ContentItem{Title: "Heat", Rating: 8.3})
	assert.NoError(t, err)

	created.Rating = 8.4
	updated, err := s.Update(ctx, "tester", created)
	assert.NoError(t, err)
	assert.Equal(t, 8.4, updated.Rating)

	_, err = s.Update(ctx, "tester", &models.ContentItem{ID: 99, Title: "Ghost"})
	assert.True(t, errors.Is(err, shared.ErrNotFound))

	assert.NoError(t, s.Delete(ctx, "tester", created.ID))
	_, err = s.Get(created.ID)
	assert.True(t, errors.Is(err, shared.ErrNotFound))

	err = s.Delete(ctx, "tester", created.ID)
	assert.True(t, errors.Is(err, shared.ErrNotFound))
}

func TestContentSearchDelegates(t *testing.T) {
	s := newContentService()
	ctx := context.Background()

	_, err := s.Create(ctx, "tester", &models.ContentItem{Title: "Heat", Rating: 8.3})
	assert.NoError(t, err)
	_, err = s.Create(ctx, "tester", &models.ContentItem{Title: "Paddington", Rating: 7.3})
	assert.NoError(t, err)

	min := 8.0
	got := s.Search(search.Criteria{MinRating: &min})
	assert.Len(t, got, 1)
	assert.Equal(t, "Heat", got[0].Title)
}

func TestContentMutationsEmitAuditEvents(t *testing.T) {
	auditor := new(MockAuditor)
	s := NewContentService(registry.New[*models.ContentItem]("content"), auditor)
	ctx := context.Background()

	auditor.On("Log", ctx, "content.create", "alice", "Content:1", mock.Anything).Once()
	auditor.On("Log", ctx, "content.delete", "alice", "Content:1", mock.Anything).Once()

	created, err := s.Create(ctx, "alice", &models.ContentItem{Title: "Heat"})
	assert.NoError(t, err)
	assert.NoError(t, s.Delete(ctx, "alice", created.ID))

	auditor.AssertExpectations(t)
}
