// Package lineup holds the public listing's filter rules: one active genre
// (exact match, "all" disables it) composed with a case-insensitive name search.
package lineup

import (
	"strings"

	"festival-lineup/internal/model"
)

// AllGenres disables the genre filter.
const AllGenres = "all"

type Criteria struct {
	Genre  string
	Search string
}

// Filter returns the events matching c, preserving input order. The input is never modified.
func Filter(events []*model.Event, c Criteria) []*model.Event {
	search := strings.ToLower(c.Search)
	filterGenre := c.Genre != "" && c.Genre != AllGenres

	result := make([]*model.Event, 0, len(events))
	for _, e := range events {
		if filterGenre && e.Genre != c.Genre {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(e.Name), search) {
			continue
		}
		result = append(result, e)
	}
	return result
}

// Genres returns the distinct genres in first-seen order.
func Genres(events []*model.Event) []string {
	seen := make(map[string]struct{}, len(events))
	genres := make([]string, 0)
	for _, e := range events {
		if _, ok := seen[e.Genre]; ok {
			continue
		}
		seen[e.Genre] = struct{}{}
		genres = append(genres, e.Genre)
	}
	return genres
}
