// filepath: internal/search/search.go
// Package search implements the predicate-chain filtering over catalog
// snapshots. Every criteria field contributes one independent predicate
// and an item must pass all of them. There is no relevance scoring:
// results keep the insertion order of the snapshot.
package search

import (
	"strings"

	"reelhub/internal/models"
)

// Criteria describes a content search. Zero values / nil pointers mean
// "no constraint"; empty criteria match everything.
type Criteria struct {
	Query     string   `json:"query,omitempty"`      // case-insensitive substring of title or summary
	Genre     string   `json:"genre,omitempty"`      // genre membership
	MinYear   *int     `json:"min_year,omitempty"`   // inclusive, against the effective year
	MaxYear   *int     `json:"max_year,omitempty"`   // inclusive
	MinRating *float64 `json:"min_rating,omitempty"` // inclusive
	MaxRating *float64 `json:"max_rating,omitempty"` // inclusive
	Person    string   `json:"person,omitempty"`     // substring of director or any cast member name
}

type predicate func(*models.ContentItem) bool

// predicates builds the list of independent filters for the criteria.
func (c Criteria) predicates() []predicate {
	var preds []predicate

	if q := strings.TrimSpace(c.Query); q != "" {
		needle := strings.ToLower(q)
		preds = append(preds, func(item *models.ContentItem) bool {
			return strings.Contains(strings.ToLower(item.Title), needle) ||
				strings.Contains(strings.ToLower(item.Summary), needle)
		})
	}

	if genre := strings.TrimSpace(c.Genre); genre != "" {
		preds = append(preds, func(item *models.ContentItem) bool {
			for _, g := range item.Genres {
				if strings.EqualFold(g, genre) {
					return true
				}
			}
			return false
		})
	}

	if c.MinYear != nil {
		min := *c.MinYear
		preds = append(preds, func(item *models.ContentItem) bool {
			year := item.EffectiveYear()
			return year != 0 && year >= min
		})
	}
	if c.MaxYear != nil {
		max := *c.MaxYear
		preds = append(preds, func(item *models.ContentItem) bool {
			year := item.EffectiveYear()
			return year != 0 && year <= max
		})
	}

	if c.MinRating != nil {
		min := *c.MinRating
		preds = append(preds, func(item *models.ContentItem) bool {
			return item.Rating >= min
		})
	}
	if c.MaxRating != nil {
		max := *c.MaxRating
		preds = append(preds, func(item *models.ContentItem) bool {
			return item.Rating <= max
		})
	}

	if p := strings.TrimSpace(c.Person); p != "" {
		needle := strings.ToLower(p)
		preds = append(preds, func(item *models.ContentItem) bool {
			if strings.Contains(strings.ToLower(item.Director), needle) {
				return true
			}
			for i := range item.Cast {
				if strings.Contains(strings.ToLower(item.Cast[i].FullName()), needle) {
					return true
				}
			}
			return false
		})
	}

	return preds
}

// Filter applies the criteria to a snapshot and returns the items that
// pass every predicate, in snapshot order.
func Filter(items []*models.ContentItem, c Criteria) []*models.ContentItem {
	preds := c.predicates()
	if len(preds) == 0 {
		return items
	}

	out := make([]*models.ContentItem, 0, len(items))
	for _, item := range items {
		if matches(item, preds) {
			out = append(out, item)
		}
	}
	return out
}

func matches(item *models.ContentItem, preds []predicate) bool {
	for _, pred := range preds {
		if !pred(item) {
			return false
		}
	}
	return true
}
