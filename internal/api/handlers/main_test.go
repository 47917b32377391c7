// filepath: internal/api/handlers/main_test.go
package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"reelhub/internal/api/handlers"
	"reelhub/internal/audit"
	"reelhub/internal/auth"
	"reelhub/internal/config"
	"reelhub/internal/httpserver"
	"reelhub/internal/models"
	"reelhub/internal/registry"
	"reelhub/internal/services"
	"reelhub/internal/storage"
)

// setupServer wires a full stack against a temp users file.
func setupServer(t *testing.T) *httptest.Server {
	t.Helper()

	persister := storage.NewUserFile(filepath.Join(t.TempDir(), "users.json"))
	store, err := auth.NewStore(persister, time.Minute, time.Minute)
	if err != nil {
		t.Fatalf("Failed to create auth store: %v", err)
	}

	content := services.NewContentService(registry.New[*models.ContentItem]("content"), audit.Nop{})
	celebrities := services.NewCelebrityService(registry.New[*models.Person]("celebrities"), audit.Nop{})

	h := handlers.NewHandlers(content, celebrities, store, &config.Config{}, "test", time.Now())
	ts := httptest.NewServer(httpserver.SetupRouter(h))
	t.Cleanup(ts.Close)
	return ts
}

func doJSON(t *testing.T, method, url, token string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("Failed to encode body: %v", err)
		}
	}
	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var v T
	if err := json.NewDecoder(resp.Body).Decode(&v); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	return v
}

// registerAndLogin creates an account and returns a session token.
func registerAndLogin(t *testing.T, ts *httptest.Server, username string) string {
	t.Helper()

	resp := doJSON(t, "POST", ts.URL+"/api/register", "", handlers.RegisterRequest{
		Username: username,
		Email:    username + "@x.com",
		Password: "secret1",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, "POST", ts.URL+"/api/token", "", handlers.LoginRequest{
		Username: username,
		Password: "secret1",
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	session := decode[models.Session](t, resp)
	assert.NotEmpty(t, session.Token)
	return session.Token
}

func TestAuthFlow(t *testing.T) {
	ts := setupServer(t)

	token := registerAndLogin(t, ts, "alice")

	// Me
	resp := doJSON(t, "GET", ts.URL+"/api/me", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	me := decode[models.User](t, resp)
	assert.Equal(t, "alice", me.Username)
	assert.Empty(t, me.PasswordHash)

	// Bad credentials
	resp = doJSON(t, "POST", ts.URL+"/api/token", "", handlers.LoginRequest{Username: "alice", Password: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Duplicate registration
	resp = doJSON(t, "POST", ts.URL+"/api/register", "", handlers.RegisterRequest{
		Username: "alice", Email: "other@x.com", Password: "secret1",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Logout ends the session
	resp = doJSON(t, "POST", ts.URL+"/api/logout", token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, "GET", ts.URL+"/api/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestMiddlewareStatuses(t *testing.T) {
	ts := setupServer(t)

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{"No Auth", "", http.StatusUnauthorized},
		{"Wrong Scheme", "Basic dXNlcjpwdw==", http.StatusUnauthorized},
		{"Unknown Token", "Bearer not-a-session", http.StatusUnauthorized},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, _ := http.NewRequest("GET", ts.URL+"/api/content", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			resp, err := http.DefaultClient.Do(req)
			assert.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, tc.expectedStatus, resp.StatusCode)
		})
	}
}

func TestContentCRUDOverHTTP(t *testing.T) {
	ts := setupServer(t)
	token := registerAndLogin(t, ts, "carol")

	// Create
	resp := doJSON(t, "POST", ts.URL+"/api/content", token, models.ContentItem{
		Title: "Alien", Year: 1979, Rating: 8.5, Genres: []string{"Horror", "Sci-Fi"}, Director: "Ridley Scott",
	})
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[models.ContentItem](t, resp)
	assert.Equal(t, int64(1), created.ID)

	// Read
	resp = doJSON(t, "GET", fmt.Sprintf("%s/api/content/%d", ts.URL, created.ID), token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[models.ContentItem](t, resp)
	assert.Equal(t, "Alien", got.Title)

	// Update
	created.Rating = 8.6
	resp = doJSON(t, "PUT", fmt.Sprintf("%s/api/content/%d", ts.URL, created.ID), token, created)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	updated := decode[models.ContentItem](t, resp)
	assert.Equal(t, 8.6, updated.Rating)

	// Search
	minRating := 8.0
	resp = doJSON(t, "POST", ts.URL+"/api/content/search", token, map[string]interface{}{"min_rating": minRating})
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	results := decode[[]models.ContentItem](t, resp)
	assert.Len(t, results, 1)

	// Delete
	resp = doJSON(t, "DELETE", fmt.Sprintf("%s/api/content/%d", ts.URL, created.ID), token, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, "GET", fmt.Sprintf("%s/api/content/%d", ts.URL, created.ID), token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// Validation error surfaces as 400
	resp = doJSON(t, "POST", ts.URL+"/api/content", token, models.ContentItem{Title: "", Rating: 99})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	ts := setupServer(t)
	token := registerAndLogin(t, ts, "dave")

	resp := doJSON(t, "GET", ts.URL+"/api/admin/users", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}
