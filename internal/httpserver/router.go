// filepath: internal/httpserver/router.go
package httpserver

import (
	"github.com/gorilla/mux"

	"reelhub/internal/api/handlers"
)

// SetupRouter configures the main router and its sub-routers.
func SetupRouter(h *handlers.Handlers) *mux.Router {
	r := mux.NewRouter()

	// Public Endpoints
	r.HandleFunc("/health", handlers.HealthCheck).Methods("GET")
	r.HandleFunc("/api/register", h.Register).Methods("POST")
	r.HandleFunc("/api/token", h.GetToken).Methods("POST")

	// Authenticated API Routes
	apiRouter := r.PathPrefix("/api").Subrouter()
	apiRouter.Use(h.AuthMiddleware)

	apiRouter.HandleFunc("/logout", h.Logout).Methods("POST")
	apiRouter.HandleFunc("/me", h.GetUserMe).Methods("GET")

	addContentRoutes(apiRouter, h)
	addCelebrityRoutes(apiRouter, h)
	addAdminRoutes(apiRouter, h)

	return r
}

// addContentRoutes configures routes for the content catalog.
func addContentRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/content", h.GetContents).Methods("GET")
	r.HandleFunc("/content", h.CreateContent).Methods("POST")
	r.HandleFunc("/content/search", h.SearchContent).Methods("POST")
	r.HandleFunc("/content/{id}", h.GetContent).Methods("GET")
	r.HandleFunc("/content/{id}", h.UpdateContent).Methods("PUT")
	r.HandleFunc("/content/{id}", h.DeleteContent).Methods("DELETE")
}

// addCelebrityRoutes configures routes for the celebrity registry.
func addCelebrityRoutes(r *mux.Router, h *handlers.Handlers) {
	r.HandleFunc("/celebrities", h.GetCelebrities).Methods("GET")
	r.HandleFunc("/celebrities", h.CreateCelebrity).Methods("POST")
	r.HandleFunc("/celebrities/{id}", h.GetCelebrity).Methods("GET")
	r.HandleFunc("/celebrities/{id}", h.UpdateCelebrity).Methods("PUT")
	r.HandleFunc("/celebrities/{id}", h.DeleteCelebrity).Methods("DELETE")
}

// addAdminRoutes configures admin-only routes.
func addAdminRoutes(r *mux.Router, h *handlers.Handlers) {
	adminRouter := r.PathPrefix("/admin").Subrouter()
	adminRouter.Use(h.AdminMiddleware)
	adminRouter.HandleFunc("/users", h.GetUsers).Methods("GET")
}
