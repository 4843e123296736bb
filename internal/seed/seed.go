// Package seed provides a canonical demo catalog and a randomized event
// factory for tests.
package seed

import (
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/anubhavsingh-123/festiflow-zone/internal/domain"
	"github.com/anubhavsingh-123/festiflow-zone/internal/store"
)

type entry struct {
	draft     domain.Draft
	attendees []string
}

func catalog() []entry {
	return []entry{
		{
			draft: domain.Draft{
				Title:       "Tech Innovation Summit",
				Description: "A full day of tech talks, workshops and networking with industry leaders covering AI, blockchain and cloud computing.",
				Date:        "2025-01-15",
				Time:        "09:00",
				Location:    "Convention Center, San Francisco",
				Capacity:    500,
				Category:    domain.CategoryTechnology,
				CreatorID:   "org-1",
				CreatorName: "TechOrg",
			},
			attendees: []string{"user1", "user2", "user3"},
		},
		{
			draft: domain.Draft{
				Title:       "Music in the Park",
				Description: "An evening of live music under the stars, featuring local bands playing everything from jazz to indie rock.",
				Date:        "2025-01-20",
				Time:        "18:00",
				Location:    "Central Park Amphitheater",
				Capacity:    200,
				Category:    domain.CategoryMusic,
				CreatorID:   "org-2",
				CreatorName: "MusicLovers",
			},
			attendees: []string{"user1"},
		},
		{
			draft: domain.Draft{
				Title:       "Startup Pitch Night",
				Description: "Ten startups pitch their ideas to a panel of investors. Great networking for entrepreneurs and investors alike.",
				Date:        "2025-01-25",
				Time:        "19:00",
				Location:    "Innovation Hub, Downtown",
				Capacity:    100,
				Category:    domain.CategoryBusiness,
				CreatorID:   "org-3",
				CreatorName: "StartupCommunity",
			},
		},
		{
			draft: domain.Draft{
				Title:       "Yoga & Wellness Retreat",
				Description: "Relaxation, meditation and yoga sessions led by certified instructors. Healthy lunch included.",
				Date:        "2025-02-01",
				Time:        "07:00",
				Location:    "Serenity Resort & Spa",
				Capacity:    50,
				Category:    domain.CategoryHealth,
				CreatorID:   "org-1",
				CreatorName: "WellnessGroup",
			},
			attendees: []string{"user2", "user3"},
		},
		{
			draft: domain.Draft{
				Title:       "Art Gallery Opening",
				Description: "Opening night for the contemporary art exhibition featuring works from emerging artists around the world.",
				Date:        "2025-02-10",
				Time:        "17:00",
				Location:    "Modern Art Museum",
				Capacity:    150,
				Category:    domain.CategoryArt,
				CreatorID:   "org-2",
				CreatorName: "ArtCollective",
			},
			attendees: []string{"user1", "user2"},
		},
		{
			draft: domain.Draft{
				Title:       "Food & Wine Festival",
				Description: "Sample cuisines from thirty local restaurants and taste wines from renowned vineyards, with live cooking demos all day.",
				Date:        "2025-02-15",
				Time:        "12:00",
				Location:    "Riverside Plaza",
				Capacity:    300,
				Category:    domain.CategoryFood,
				CreatorID:   "org-3",
				CreatorName: "FoodieNetwork",
			},
			attendees: []string{"user1", "user2", "user3"},
		},
	}
}

// Apply loads the demo catalog into the store, including its initial
// reservations.
func Apply(s *store.EventStore) error {
	for _, e := range catalog() {
		event, err := s.Create(e.draft)
		if err != nil {
			return fmt.Errorf("seed %q: %w", e.draft.Title, err)
		}
		for _, user := range e.attendees {
			if res := s.Reserve(event.ID, user); !res.Granted {
				return fmt.Errorf("seed rsvp %s on %q: %s", user, e.draft.Title, res.Reason)
			}
		}
	}
	return nil
}

// RandomDraft returns a valid draft with randomized fields.
func RandomDraft() domain.Draft {
	categories := domain.Categories()
	day := gofakeit.DateRange(
		time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
	)
	return domain.Draft{
		Title:       gofakeit.Sentence(3),
		Description: gofakeit.Sentence(12),
		Date:        day.Format("2006-01-02"),
		Time:        fmt.Sprintf("%02d:00", gofakeit.Number(7, 21)),
		Location:    gofakeit.City(),
		Capacity:    gofakeit.Number(1, 300),
		Category:    categories[gofakeit.Number(0, len(categories)-1)],
		CreatorID:   gofakeit.UUID(),
		CreatorName: gofakeit.Username(),
	}
}
