// Package filter computes the visible subset of events for the current
// search inputs. It is pure: no state, no side effects, and the output
// is always an order-preserving subsequence of the input.
package filter

import (
	"strings"

	"github.com/AryanAbsalan/CityMeet/internal/domain"
)

// Match reports whether the event satisfies both filter inputs: the
// title must contain searchText and the city must contain cityFilter,
// each compared case-insensitively. An empty input matches everything.
func Match(e domain.Event, searchText, cityFilter string) bool {
	matchesTitle := strings.Contains(
		strings.ToLower(e.Title),
		strings.ToLower(searchText),
	)

	matchesCity := cityFilter == "" || strings.Contains(
		strings.ToLower(e.City),
		strings.ToLower(cityFilter),
	)

	return matchesTitle && matchesCity
}

// Apply returns the events matching both inputs, in their original
// relative order.
func Apply(events []domain.Event, searchText, cityFilter string) []domain.Event {
	out := make([]domain.Event, 0, len(events))
	for _, e := range events {
		if Match(e, searchText, cityFilter) {
			out = append(out, e)
		}
	}
	return out
}
