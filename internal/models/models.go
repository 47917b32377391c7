// filepath: internal/models/models.go
// Package models contains the core data structures for the application.
package models

import (
	"time"
)

// PersonKind distinguishes the celebrity variants.
type PersonKind string

const (
	KindActor    PersonKind = "actor"
	KindDirector PersonKind = "director"
)

// Person represents a celebrity (actor or director variant).
type Person struct {
	ID          int64      `json:"id"`
	Kind        PersonKind `json:"kind"`
	FirstName   string     `json:"first_name"`
	LastName    string     `json:"last_name"`
	BirthDate   *time.Time `json:"birth_date,omitempty"`
	Gender      string     `json:"gender"` // single-character code, e.g. "M", "F"
	Nationality string     `json:"nationality"`
	// NotableWorks is ordered and may contain duplicates.
	NotableWorks []string `json:"notable_works,omitempty"`
}

// EntityID returns the assigned identity (0 means not yet saved).
func (p *Person) EntityID() int64 { return p.ID }

// SetEntityID assigns the identity. Called by the registry on first save.
func (p *Person) SetEntityID(id int64) { p.ID = id }

// FullName returns the display name.
func (p *Person) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	return p.FirstName + " " + p.LastName
}

// Clone returns a deep copy, so registry snapshots never share memory
// with caller-held values.
func (p *Person) Clone() *Person {
	cp := *p
	if p.BirthDate != nil {
		bd := *p.BirthDate
		cp.BirthDate = &bd
	}
	if p.NotableWorks != nil {
		cp.NotableWorks = append([]string(nil), p.NotableWorks...)
	}
	return &cp
}

// ContentItem represents a single catalog entry (movie or series).
type ContentItem struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	// Year is the explicit release year. 0 means unset; see EffectiveYear.
	Year        int        `json:"year,omitempty"`
	ReleaseDate *time.Time `json:"release_date,omitempty"`
	Rating      float64    `json:"rating"` // 0.0 - 10.0
	Genres      []string   `json:"genres,omitempty"`
	Director    string     `json:"director,omitempty"`
	Cast        []Person   `json:"cast,omitempty"` // ordered
	Summary     string     `json:"summary,omitempty"`
}

// EntityID returns the assigned identity (0 means not yet saved).
func (c *ContentItem) EntityID() int64 { return c.ID }

// SetEntityID assigns the identity. Called by the registry on first save.
func (c *ContentItem) SetEntityID(id int64) { c.ID = id }

// EffectiveYear resolves the year used by search filters: the explicit
// Year field wins, falling back to the release date when Year is unset.
func (c *ContentItem) EffectiveYear() int {
	if c.Year != 0 {
		return c.Year
	}
	if c.ReleaseDate != nil {
		return c.ReleaseDate.Year()
	}
	return 0
}

// HasGenre reports whether the item carries the given genre.
func (c *ContentItem) HasGenre(genre string) bool {
	for _, g := range c.Genres {
		if g == genre {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the item.
func (c *ContentItem) Clone() *ContentItem {
	cp := *c
	if c.ReleaseDate != nil {
		rd := *c.ReleaseDate
		cp.ReleaseDate = &rd
	}
	if c.Genres != nil {
		cp.Genres = append([]string(nil), c.Genres...)
	}
	if c.Cast != nil {
		cp.Cast = make([]Person, len(c.Cast))
		for i := range c.Cast {
			cp.Cast[i] = *c.Cast[i].Clone()
		}
	}
	return &cp
}

// User represents a user account in the system.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Omit from JSON responses
	IsAdmin      bool      `json:"is_admin"`
	Active       bool      `json:"active"`
	Locked       bool      `json:"locked"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity,omitempty"`
}

// Clone returns a copy of the user.
func (u *User) Clone() *User {
	cp := *u
	return &cp
}

// Session is the DTO returned to a caller after a successful login.
type Session struct {
	Token     string    `json:"token"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// ImportReport summarizes the results of a bulk sample-data import.
type ImportReport struct {
	File     string `json:"file"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
}
