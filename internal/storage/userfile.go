// filepath: internal/storage/userfile.go
// Package storage persists the user index maps to a single flat file.
// The on-disk format is a versioned JSON document, written via a
// temporary file and an atomic rename so a crash mid-write can never
// leave a half-written target behind.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"reelhub/internal/logging"
	"reelhub/internal/models"
	"reelhub/internal/shared"
)

// formatVersion identifies the on-disk schema.
const formatVersion = 1

// userRecord is the persisted shape of a user. It exists separately
// from models.User because the password hash must be written to disk
// but is excluded from API responses.
type userRecord struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash"`
	IsAdmin      bool      `json:"is_admin"`
	Active       bool      `json:"active"`
	Locked       bool      `json:"locked"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
}

type userFileDoc struct {
	Version    int                    `json:"version"`
	ByUsername map[string]*userRecord `json:"by_username"`
	ByEmail    map[string]*userRecord `json:"by_email"`
}

// UserFile persists the user maps to a flat file at a fixed path.
type UserFile struct {
	path string
}

// NewUserFile creates a persister writing to the given path.
func NewUserFile(path string) *UserFile {
	return &UserFile{path: path}
}

// Save serializes both index maps and atomically replaces the target
// file. The temp file is cleaned up on every failure path.
func (f *UserFile) Save(byUsername, byEmail map[string]*models.User) error {
	doc := userFileDoc{
		Version:    formatVersion,
		ByUsername: toRecords(byUsername),
		ByEmail:    toRecords(byEmail),
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: creating directory %s: %v", shared.ErrPersistence, dir, err)
	}

	// The temp file lives in the target directory so the rename stays
	// on one filesystem and is atomic.
	tmp, err := os.CreateTemp(dir, ".users-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: creating temp file: %v", shared.ErrPersistence, err)
	}
	tmpName := tmp.Name()

	enc := json.NewEncoder(tmp)
	enc.SetIndent("", "  ")
	if err := enc.Encode(&doc); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: encoding users: %v", shared.ErrPersistence, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file: %v", shared.ErrPersistence, err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replacing %s: %v", shared.ErrPersistence, f.path, err)
	}
	return nil
}

// Load deserializes the maps. An absent file is the normal first-run
// state and a corrupt file is tolerated: both return empty maps.
func (f *UserFile) Load() (map[string]*models.User, map[string]*models.User, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]*models.User{}, map[string]*models.User{}, nil
		}
		return nil, nil, fmt.Errorf("%w: reading %s: %v", shared.ErrPersistence, f.path, err)
	}

	var doc userFileDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		logging.Log.Warnf("User file %s is corrupt, starting empty: %v", f.path, err)
		return map[string]*models.User{}, map[string]*models.User{}, nil
	}
	if doc.Version != formatVersion {
		logging.Log.Warnf("User file %s has unsupported version %d, starting empty", f.path, doc.Version)
		return map[string]*models.User{}, map[string]*models.User{}, nil
	}

	byUsername := fromRecords(doc.ByUsername)

	// The email index references the same user values.
	byEmail := make(map[string]*models.User, len(byUsername))
	for _, user := range byUsername {
		if user.Email != "" {
			byEmail[user.Email] = user
		}
	}
	return byUsername, byEmail, nil
}

func toRecords(users map[string]*models.User) map[string]*userRecord {
	out := make(map[string]*userRecord, len(users))
	for key, u := range users {
		out[key] = &userRecord{
			ID:           u.ID,
			Username:     u.Username,
			Email:        u.Email,
			PasswordHash: u.PasswordHash,
			IsAdmin:      u.IsAdmin,
			Active:       u.Active,
			Locked:       u.Locked,
			CreatedAt:    u.CreatedAt,
			LastActivity: u.LastActivity,
		}
	}
	return out
}

func fromRecords(records map[string]*userRecord) map[string]*models.User {
	out := make(map[string]*models.User, len(records))
	for key, r := range records {
		out[key] = &models.User{
			ID:           r.ID,
			Username:     r.Username,
			Email:        r.Email,
			PasswordHash: r.PasswordHash,
			IsAdmin:      r.IsAdmin,
			Active:       r.Active,
			Locked:       r.Locked,
			CreatedAt:    r.CreatedAt,
			LastActivity: r.LastActivity,
		}
	}
	return out
}
