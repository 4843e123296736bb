package query_test

import (
	"slices"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anubhavsingh-123/festiflow-zone/internal/domain"
	"github.com/anubhavsingh-123/festiflow-zone/internal/query"
)

func attendees(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = gofakeit.Username()
	}
	return out
}

// three-event fixture: A earliest-middle date with 3/10 seats taken,
// B earliest date with 9/10, C latest date with 1/5.
func fixture() []domain.Event {
	return []domain.Event{
		{ID: "A", Title: "Tech Summit", Description: "talks and workshops", Location: "San Francisco",
			Date: "2025-01-10", Time: "09:00", Capacity: 10, Attendees: attendees(3),
			Category: domain.CategoryTechnology},
		{ID: "B", Title: "Jazz Evening", Description: "live music outdoors", Location: "Central Park",
			Date: "2025-01-05", Time: "18:00", Capacity: 10, Attendees: attendees(9),
			Category: domain.CategoryMusic},
		{ID: "C", Title: "Pitch Night", Description: "startups pitch investors", Location: "Downtown",
			Date: "2025-01-20", Time: "19:00", Capacity: 5, Attendees: attendees(1),
			Category: domain.CategoryBusiness},
	}
}

func eventIDs(events []domain.Event) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.ID
	}
	return out
}

func TestRun_SortOrders(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		sort query.SortKey
		want []string
	}{
		{"date ascending", query.SortDateAscending, []string{"B", "A", "C"}},
		{"date descending", query.SortDateDescending, []string{"C", "A", "B"}},
		{"most popular", query.SortMostPopular, []string{"B", "A", "C"}},
		{"most available", query.SortMostAvailable, []string{"A", "C", "B"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := query.Run(fixture(), query.Spec{Sort: tc.sort})
			require.NoError(t, err)
			assert.Equal(t, tc.want, eventIDs(result))
		})
	}
}

func TestRun_SortIsStableOnTies(t *testing.T) {
	t.Parallel()

	snapshot := fixture()
	snapshot = append(snapshot,
		domain.Event{ID: "D", Title: "Morning Run", Date: "2025-01-10", Time: "09:00",
			Capacity: 10, Attendees: attendees(3), Category: domain.CategorySports},
	)

	// D ties with A on (date, time), attendee count and spots left; it
	// must stay behind A for every sort key.
	for _, key := range []query.SortKey{
		query.SortDateAscending, query.SortMostPopular, query.SortMostAvailable,
	} {
		result, err := query.Run(snapshot, query.Spec{Sort: key})
		require.NoError(t, err)
		ids := eventIDs(result)
		assert.Less(t, slices.Index(ids, "A"), slices.Index(ids, "D"), "sort %s", key)
	}
}

func TestRun_FilterByTerm(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		term string
		want []string
	}{
		{"title match", "summit", []string{"A"}},
		{"description match", "MUSIC", []string{"B"}},
		{"location match", "downtown", []string{"C"}},
		{"substring across events", "t", []string{"B", "A", "C"}},
		{"no match", "knitting", []string{}},
		{"empty term keeps everything", "", []string{"B", "A", "C"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := query.Run(fixture(), query.Spec{
				Term: tc.term,
				Sort: query.SortDateAscending,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.want, eventIDs(result))
		})
	}
}

func TestRun_FilterByCategory(t *testing.T) {
	t.Parallel()

	t.Run("exact match", func(t *testing.T) {
		result, err := query.Run(fixture(), query.Spec{
			Category: "Music",
			Sort:     query.SortDateAscending,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"B"}, eventIDs(result))
	})

	t.Run("match is case-sensitive", func(t *testing.T) {
		result, err := query.Run(fixture(), query.Spec{
			Category: "music",
			Sort:     query.SortDateAscending,
		})
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("sentinel disables the filter", func(t *testing.T) {
		result, err := query.Run(fixture(), query.Spec{
			Category: query.AllCategories,
			Sort:     query.SortDateAscending,
		})
		require.NoError(t, err)
		assert.Len(t, result, 3)
	})

	t.Run("combines with term filter", func(t *testing.T) {
		result, err := query.Run(fixture(), query.Spec{
			Term:     "park",
			Category: "Technology",
			Sort:     query.SortDateAscending,
		})
		require.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestRun_UnknownSortKey(t *testing.T) {
	t.Parallel()

	_, err := query.Run(fixture(), query.Spec{Sort: "alphabetical"})
	require.ErrorIs(t, err, domain.ErrUnknownSortKey)

	_, err = query.Run(fixture(), query.Spec{})
	require.ErrorIs(t, err, domain.ErrUnknownSortKey, "empty sort key is not silently defaulted")
}

func TestRun_EmptySnapshot(t *testing.T) {
	t.Parallel()

	result, err := query.Run(nil, query.Spec{Sort: query.SortMostPopular})
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestRun_Purity(t *testing.T) {
	t.Parallel()

	snapshot := fixture()
	original := slices.Clone(snapshot)
	spec := query.Spec{Term: "i", Sort: query.SortMostAvailable}

	first, err := query.Run(snapshot, spec)
	require.NoError(t, err)
	second, err := query.Run(snapshot, spec)
	require.NoError(t, err)

	assert.Equal(t, eventIDs(first), eventIDs(second), "same inputs, same output")
	assert.Equal(t, eventIDs(original), eventIDs(snapshot), "snapshot order untouched")
}

func TestParseSortKey(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"date-asc", "date-desc", "popular", "available"} {
		key, err := query.ParseSortKey(raw)
		require.NoError(t, err)
		assert.Equal(t, raw, string(key))
	}

	_, err := query.ParseSortKey("soonest")
	require.ErrorIs(t, err, domain.ErrUnknownSortKey)
}
