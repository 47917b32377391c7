// filepath: internal/cli/server.go
package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"reelhub/internal/api/handlers"
	"reelhub/internal/audit"
	"reelhub/internal/auth"
	"reelhub/internal/dataimport"
	"reelhub/internal/httpserver"
	"reelhub/internal/logging"
	"reelhub/internal/models"
	"reelhub/internal/registry"
	"reelhub/internal/services"
	"reelhub/internal/storage"
)

// runServer wires the full stack and serves the API until a signal
// arrives.
func runServer() error {
	persister := storage.NewUserFile(cfg.Storage.UsersFile)
	store, err := auth.NewStore(persister, cfg.SessionTimeout, cfg.SweepInterval)
	if err != nil {
		return fmt.Errorf("failed to initialize auth store: %w", err)
	}

	if err := store.BootstrapAdmin(cfg.AdminPassword, cfg.ResetAdminPassword); err != nil {
		return fmt.Errorf("failed to handle admin user: %w", err)
	}

	// Registries
	contentRegistry := registry.New[*models.ContentItem]("content")
	celebrityRegistry := registry.New[*models.Person]("celebrities")

	// Auditor Initialization
	var auditor audit.Auditor = audit.Nop{}
	if cfg.Logging.AuditEnabled {
		auditor = audit.NewStdoutAuditor(cfg.Logging.Level)
	}

	// Service Initialization
	contentService := services.NewContentService(contentRegistry, auditor)
	celebrityService := services.NewCelebrityService(celebrityRegistry, auditor)

	if cfg.Storage.ImportDir != "" {
		logging.Log.Infof("Loading sample data from %s", cfg.Storage.ImportDir)
		if err := runImport(contentRegistry, celebrityRegistry, cfg.Storage.ImportDir); err != nil {
			return err
		}
	}

	h := handlers.NewHandlers(
		contentService,
		celebrityService,
		store,
		cfg,
		Version,
		StartTime,
	)

	r := httpserver.SetupRouter(h)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	// --- Graceful Shutdown Setup ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	// Run server in a goroutine
	go func() {
		logging.Log.Infof("Server starting on %s (session timeout: %v)", serverAddr, cfg.SessionTimeout)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Block until a signal is received
	<-stop
	logging.Log.Info("Shutting down server...")

	// Create a deadline for existing requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}

// runImport loads the well-known sample files from a directory.
// Missing files are fine; the directory may carry either or both.
func runImport(content *registry.Registry[*models.ContentItem], celebrities *registry.Registry[*models.Person], dir string) error {
	imp := dataimport.NewImporter(content, celebrities)

	celebritiesFile := dir + "/celebrities.txt"
	if _, err := os.Stat(celebritiesFile); err == nil {
		if _, err := imp.ImportCelebrities(celebritiesFile); err != nil {
			return fmt.Errorf("importing celebrities: %w", err)
		}
	}

	contentFile := dir + "/content.txt"
	if _, err := os.Stat(contentFile); err == nil {
		if _, err := imp.ImportContent(contentFile); err != nil {
			return fmt.Errorf("importing content: %w", err)
		}
	}
	return nil
}
