// filepath: internal/auth/store.go
// Package auth implements the user store: registration, login with
// opaque session tokens, and flat-file persistence of the user maps.
package auth

import (
	"crypto/rand"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"reelhub/internal/logging"
	"reelhub/internal/models"
	"reelhub/internal/shared"
)

// Persister saves and loads the two user index maps. Load must treat an
// absent file as a normal first-run state and return empty maps.
type Persister interface {
	Save(byUsername, byEmail map[string]*models.User) error
	Load() (map[string]*models.User, map[string]*models.User, error)
}

// Store holds the registered users and the active sessions.
//
// The mutex keeps multi-step sequences (check username, check email,
// persist) atomic with respect to other registrations. The session map
// is a go-cache with idle expiration; its janitor is the background
// sweep that purges idle sessions.
type Store struct {
	mu         sync.Mutex
	byUsername map[string]*models.User
	byEmail    map[string]*models.User
	nextID     int64

	sessions  *gocache.Cache
	persister Persister
}

// NewStore loads the persisted users and prepares the session cache.
// sessionTimeout is the idle timeout; sweepInterval drives the janitor.
func NewStore(persister Persister, sessionTimeout, sweepInterval time.Duration) (*Store, error) {
	byUsername, byEmail, err := persister.Load()
	if err != nil {
		return nil, fmt.Errorf("loading users: %w", err)
	}

	s := &Store{
		byUsername: byUsername,
		byEmail:    byEmail,
		sessions:   gocache.New(sessionTimeout, sweepInterval),
		persister:  persister,
	}
	for _, user := range byUsername {
		if user.ID > s.nextID {
			s.nextID = user.ID
		}
	}

	logging.Log.Infof("Auth store loaded %d user(s).", len(byUsername))
	return s, nil
}

// Register creates a new user account. The username and email must be
// unique; the password is stored as a PBKDF2 hash. A persistence
// failure rolls the in-memory insert back and fails loudly.
func (s *Store) Register(username, email, password string) (*models.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: username and a valid email are required", shared.ErrInvalidInput)
	}
	if len(password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", shared.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.byUsername[username]; taken {
		return nil, shared.ErrUsernameTaken
	}
	if _, taken := s.byEmail[email]; taken {
		return nil, shared.ErrEmailTaken
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrInternal, err)
	}

	user := &models.User{
		ID:           s.nextID + 1,
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Active:       true,
		CreatedAt:    time.Now(),
	}
	s.byUsername[username] = user
	s.byEmail[email] = user
	s.nextID++

	if err := s.persister.Save(s.byUsername, s.byEmail); err != nil {
		// Roll back so memory and disk stay consistent.
		delete(s.byUsername, username)
		delete(s.byEmail, email)
		s.nextID--
		return nil, fmt.Errorf("persisting users: %w", err)
	}

	logging.Log.Infof("Registered user '%s' (ID: %d)", username, user.ID)
	return user.Clone(), nil
}

// Login verifies the credentials and issues a fresh opaque session
// token. Unknown users, bad passwords and locked or inactive accounts
// all fail with ErrInvalidCredentials.
func (s *Store) Login(username, password string) (*models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byUsername[username]
	if !ok {
		return nil, shared.ErrInvalidCredentials
	}
	if !VerifyPassword(password, user.PasswordHash) {
		return nil, shared.ErrInvalidCredentials
	}
	if user.Locked || !user.Active {
		logging.Log.Warnf("Login attempt for locked/inactive user '%s'", username)
		return nil, shared.ErrInvalidCredentials
	}

	token := uuid.NewString()
	s.sessions.Set(token, username, gocache.DefaultExpiration)

	// Best-effort last-activity stamp; a persist failure must not fail
	// the login.
	user.LastActivity = time.Now()
	if err := s.persister.Save(s.byUsername, s.byEmail); err != nil {
		logging.Log.Warnf("Could not persist last-activity for '%s': %v", username, err)
	}

	logging.Log.Debugf("User '%s' logged in", username)
	return &models.Session{
		Token:     token,
		Username:  username,
		CreatedAt: time.Now(),
	}, nil
}

// CurrentUser resolves a session token to its user and slides the idle
// expiration of the session.
func (s *Store) CurrentUser(token string) (*models.User, error) {
	v, found := s.sessions.Get(token)
	if !found {
		return nil, fmt.Errorf("%w: session", shared.ErrNotFound)
	}
	username := v.(string)

	// Activity resets the idle timeout.
	s.sessions.Set(token, username, gocache.DefaultExpiration)

	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.byUsername[username]
	if !ok {
		// The account was removed while the session was live.
		s.sessions.Delete(token)
		return nil, fmt.Errorf("%w: user", shared.ErrNotFound)
	}
	return user.Clone(), nil
}

// Logout invalidates a session token.
func (s *Store) Logout(token string) error {
	if _, found := s.sessions.Get(token); !found {
		return fmt.Errorf("%w: session", shared.ErrNotFound)
	}
	s.sessions.Delete(token)
	return nil
}

// ActiveSessions returns the number of live session tokens, including
// expired entries the janitor has not swept yet.
func (s *Store) ActiveSessions() int {
	return s.sessions.ItemCount()
}

// Users returns a snapshot of all registered users.
func (s *Store) Users() []*models.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*models.User, 0, len(s.byUsername))
	for _, user := range s.byUsername {
		out = append(out, user.Clone())
	}
	return out
}

// BootstrapAdmin ensures an admin account exists on first run and
// handles password resets requested at startup.
func (s *Store) BootstrapAdmin(password string, reset bool) error {
	s.mu.Lock()
	empty := len(s.byUsername) == 0
	s.mu.Unlock()

	if empty {
		return s.createAdmin(password)
	}
	if reset {
		return s.resetAdminPassword(password)
	}
	return nil
}

// createAdmin synthesizes the initial admin account.
func (s *Store) createAdmin(password string) error {
	if password == "" {
		password = generateRandomPassword(10)
		logging.Log.Infof("No admin password provided. Generated a random password for 'admin': %s", password)
	}

	user, err := s.Register("admin", "admin@localhost", password)
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byUsername[user.Username].IsAdmin = true
	if err := s.persister.Save(s.byUsername, s.byEmail); err != nil {
		return fmt.Errorf("persisting admin user: %w", err)
	}
	logging.Log.Info("Admin user created successfully.")
	return nil
}

// resetAdminPassword updates the admin's password based on startup flags.
func (s *Store) resetAdminPassword(password string) error {
	if password == "" {
		return fmt.Errorf("%w: reset requested but no admin password was provided", shared.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.byUsername["admin"]
	if !ok {
		return fmt.Errorf("%w: admin user", shared.ErrNotFound)
	}
	hash, err := HashPassword(password)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInternal, err)
	}
	user.PasswordHash = hash
	if err := s.persister.Save(s.byUsername, s.byEmail); err != nil {
		return fmt.Errorf("persisting users: %w", err)
	}
	logging.Log.Info("Admin password has been reset.")
	return nil
}

// generateRandomPassword creates a cryptographically secure random password.
func generateRandomPassword(length int) string {
	const chars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		logging.Log.Fatalf("Failed to generate random password: %v", err)
	}
	for i := range b {
		b[i] = chars[int(b[i])%len(chars)]
	}
	return string(b)
}
