// filepath: internal/api/handlers/main.go
package handlers

import (
	"time"

	"reelhub/internal/auth"
	"reelhub/internal/config"
	"reelhub/internal/services"
)

// Handlers provides a struct to hold shared dependencies for API
// handlers, such as the catalog services and the auth store.
type Handlers struct {
	Content     services.ContentService
	Celebrities services.CelebrityService
	Auth        *auth.Store

	Cfg       *config.Config
	Version   string
	StartTime time.Time
}

// NewHandlers creates a new instance of Handlers with its dependencies.
func NewHandlers(
	content services.ContentService,
	celebrities services.CelebrityService,
	authStore *auth.Store,
	cfg *config.Config,
	version string,
	startTime time.Time,
) *Handlers {
	return &Handlers{
		Content:     content,
		Celebrities: celebrities,
		Auth:        authStore,
		Cfg:         cfg,
		Version:     version,
		StartTime:   startTime,
	}
}
