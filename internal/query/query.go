// Package query derives display-ordered views from a store snapshot.
// It is purely functional: same snapshot and spec, same result, no
// mutation of either.
package query

import (
	"cmp"
	"fmt"
	"sort"
	"strings"

	"github.com/anubhavsingh-123/festiflow-zone/internal/domain"
)

// SortKey selects the ordering of a derived view.
type SortKey string

const (
	SortDateAscending  SortKey = "date-asc"
	SortDateDescending SortKey = "date-desc"
	SortMostPopular    SortKey = "popular"
	SortMostAvailable  SortKey = "available"
)

// AllCategories is the sentinel meaning "no category filter".
const AllCategories = "All Categories"

// ParseSortKey maps a raw string onto a SortKey.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case SortDateAscending, SortDateDescending, SortMostPopular, SortMostAvailable:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnknownSortKey, s)
	}
}

// Spec describes a desired view: free-text term, category filter and
// sort key. An empty Category behaves like the AllCategories sentinel.
type Spec struct {
	Term     string
	Category string
	Sort     SortKey
}

// Run filters and sorts a snapshot. Filtering is a case-insensitive
// substring match over title, description and location, then an exact
// category match. The sort is stable: ties keep the snapshot's relative
// order. An unrecognized sort key is rejected rather than silently
// skipped.
func Run(snapshot []domain.Event, spec Spec) ([]domain.Event, error) {
	if _, err := ParseSortKey(string(spec.Sort)); err != nil {
		return nil, err
	}

	term := strings.ToLower(spec.Term)
	out := make([]domain.Event, 0, len(snapshot))
	for _, event := range snapshot {
		if term != "" && !matchesTerm(event, term) {
			continue
		}
		if spec.Category != "" && spec.Category != AllCategories &&
			string(event.Category) != spec.Category {
			continue
		}
		out = append(out, event)
	}

	sort.SliceStable(out, lessFunc(spec.Sort, out))
	return out, nil
}

func matchesTerm(event domain.Event, term string) bool {
	return strings.Contains(strings.ToLower(event.Title), term) ||
		strings.Contains(strings.ToLower(event.Description), term) ||
		strings.Contains(strings.ToLower(event.Location), term)
}

// dateKey combines date and time into one orderable value. Both fields
// are opaque strings; the ISO-style layouts the catalog uses order
// correctly lexicographically.
func dateKey(event domain.Event) string {
	return event.Date + " " + event.Time
}

func lessFunc(key SortKey, events []domain.Event) func(i, j int) bool {
	switch key {
	case SortDateDescending:
		return func(i, j int) bool {
			return cmp.Compare(dateKey(events[i]), dateKey(events[j])) > 0
		}
	case SortMostPopular:
		return func(i, j int) bool {
			return len(events[i].Attendees) > len(events[j].Attendees)
		}
	case SortMostAvailable:
		return func(i, j int) bool {
			return events[i].SpotsLeft() > events[j].SpotsLeft()
		}
	default: // SortDateAscending; Run has already rejected unknown keys.
		return func(i, j int) bool {
			return cmp.Compare(dateKey(events[i]), dateKey(events[j])) < 0
		}
	}
}
