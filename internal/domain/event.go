package domain

import (
	"fmt"
	"slices"
	"time"
)

// Category classifies an event into one of the fixed catalog groups.
type Category string

const (
	CategoryTechnology Category = "Technology"
	CategoryMusic      Category = "Music"
	CategoryBusiness   Category = "Business"
	CategoryHealth     Category = "Health"
	CategoryArt        Category = "Art"
	CategoryFood       Category = "Food"
	CategorySports     Category = "Sports"
	CategoryEducation  Category = "Education"
)

// Categories returns the full enumeration in display order.
func Categories() []Category {
	return []Category{
		CategoryTechnology,
		CategoryMusic,
		CategoryBusiness,
		CategoryHealth,
		CategoryArt,
		CategoryFood,
		CategorySports,
		CategoryEducation,
	}
}

// ParseCategory maps a raw string onto the enumeration. The match is
// case-sensitive; anything outside the enumeration is a validation error.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if slices.Contains(Categories(), c) {
		return c, nil
	}
	return "", fmt.Errorf("%w: unknown category %q", ErrInvalidDraft, s)
}

// Event represents a capacity-bounded gathering with its reservation state.
// Date and Time are opaque orderable strings in the creator's locale
// ("2025-01-15", "09:00"); the store never normalizes timezones.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Location    string    `json:"location"`
	Capacity    int       `json:"capacity"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatorID   string    `json:"creatorId"`
	CreatorName string    `json:"creatorName"`
	Attendees   []string  `json:"attendees"`
	Category    Category  `json:"category"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SpotsLeft reports the remaining reservation capacity.
func (e Event) SpotsLeft() int {
	return e.Capacity - len(e.Attendees)
}

// IsFull reports whether the event has no remaining capacity.
func (e Event) IsFull() bool {
	return e.SpotsLeft() <= 0
}

// HasAttendee reports whether userID already holds a seat.
func (e Event) HasAttendee(userID string) bool {
	return slices.Contains(e.Attendees, userID)
}

// Clone returns a deep copy detached from any mutable state, safe for a
// caller to hold across later store mutations.
func (e Event) Clone() Event {
	out := e
	out.Attendees = slices.Clone(e.Attendees)
	return out
}

// Draft carries everything a creator supplies at event creation. The
// store assigns ID and CreatedAt and starts the attendee set empty.
type Draft struct {
	Title       string   `validate:"required"`
	Description string   `validate:"required"`
	Date        string   `validate:"required"`
	Time        string   `validate:"required"`
	Location    string   `validate:"required"`
	Capacity    int      `validate:"required,gt=0"`
	Category    Category `validate:"required,oneof=Technology Music Business Health Art Food Sports Education"`
	ImageURL    string
	CreatorID   string `validate:"required"`
	CreatorName string `validate:"required"`
}

// Patch is a partial update to an event's editable fields. Nil fields are
// left untouched. Identity fields (ID, CreatorID, CreatorName, CreatedAt)
// are deliberately absent: they cannot be patched.
type Patch struct {
	Title       *string
	Description *string
	Date        *string
	Time        *string
	Location    *string
	Capacity    *int
	ImageURL    *string
	Category    *Category
}
