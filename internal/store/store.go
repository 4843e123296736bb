// Package store owns the canonical event collection. All mutation goes
// through an EventStore and every invariant — capacity never exceeded,
// no duplicate attendees, unique ids — is enforced here.
package store

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/anubhavsingh-123/festiflow-zone/internal/clock"
	"github.com/anubhavsingh-123/festiflow-zone/internal/domain"
	"github.com/anubhavsingh-123/festiflow-zone/internal/ids"
	"github.com/anubhavsingh-123/festiflow-zone/internal/logger/sl"
)

// EventStore is the single source of truth for the event collection.
// Construct one with New and inject it into whatever boundary layer
// needs it; it is safe for concurrent use.
type EventStore struct {
	log      *slog.Logger
	clock    clock.Clock
	ids      ids.Generator
	validate *validator.Validate

	// mu guards the index and creation-order slice; each record carries
	// its own mutex so a mutation never locks more than one event.
	mu      sync.RWMutex
	records map[string]*record
	order   []string
}

type record struct {
	mu      sync.Mutex
	deleted bool
	event   domain.Event
}

// Option configures an EventStore.
type Option func(*EventStore)

// WithClock overrides the timestamp source.
func WithClock(clk clock.Clock) Option {
	return func(s *EventStore) {
		if clk != nil {
			s.clock = clk
		}
	}
}

// WithIDs overrides the identifier source.
func WithIDs(gen ids.Generator) Option {
	return func(s *EventStore) {
		if gen != nil {
			s.ids = gen
		}
	}
}

// WithLogger attaches a structured logger for store activity.
func WithLogger(log *slog.Logger) Option {
	return func(s *EventStore) {
		if log != nil {
			s.log = log
		}
	}
}

// New constructs an empty EventStore with system clock and UUID ids
// unless overridden.
func New(opts ...Option) *EventStore {
	s := &EventStore{
		log:      slog.New(slog.DiscardHandler),
		clock:    clock.NewSystem(),
		ids:      ids.NewUUID(),
		validate: validator.New(),
		records:  make(map[string]*record),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create validates the draft, assigns a fresh id and creation timestamp,
// and makes the event visible to readers. The attendee set starts empty.
func (s *EventStore) Create(draft domain.Draft) (domain.Event, error) {
	if err := s.validate.Struct(draft); err != nil {
		return domain.Event{}, fmt.Errorf("%w: %v", domain.ErrInvalidDraft, err)
	}

	event := domain.Event{
		ID:          s.ids.NewID(),
		Title:       draft.Title,
		Description: draft.Description,
		Date:        draft.Date,
		Time:        draft.Time,
		Location:    draft.Location,
		Capacity:    draft.Capacity,
		ImageURL:    draft.ImageURL,
		CreatorID:   draft.CreatorID,
		CreatorName: draft.CreatorName,
		Attendees:   []string{},
		Category:    draft.Category,
		CreatedAt:   s.clock.Now(),
	}

	s.mu.Lock()
	s.records[event.ID] = &record{event: event}
	s.order = append(s.order, event.ID)
	s.mu.Unlock()

	s.log.Info("event created",
		slog.String("event_id", event.ID),
		slog.String("category", string(event.Category)),
		slog.Int("capacity", event.Capacity),
	)
	return event.Clone(), nil
}

// Update applies a partial patch to an existing event. Lowering capacity
// below the current attendee count fails with ErrCapacityConflict and
// leaves the record untouched; attendees are never evicted.
func (s *EventStore) Update(id string, patch domain.Patch) (domain.Event, error) {
	rec, ok := s.lookup(id)
	if !ok {
		return domain.Event{}, fmt.Errorf("%w: %s", domain.ErrEventNotFound, id)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.deleted {
		return domain.Event{}, fmt.Errorf("%w: %s", domain.ErrEventNotFound, id)
	}

	if patch.Capacity != nil {
		if *patch.Capacity <= 0 {
			return domain.Event{}, fmt.Errorf("%w: capacity must be positive", domain.ErrInvalidDraft)
		}
		if *patch.Capacity < len(rec.event.Attendees) {
			err := fmt.Errorf("%w: capacity %d, attendees %d",
				domain.ErrCapacityConflict, *patch.Capacity, len(rec.event.Attendees))
			s.log.Warn("capacity change rejected", slog.String("event_id", id), sl.Err(err))
			return domain.Event{}, err
		}
	}
	if patch.Category != nil {
		if _, err := domain.ParseCategory(string(*patch.Category)); err != nil {
			return domain.Event{}, err
		}
	}

	applyPatch(&rec.event, patch)
	return rec.event.Clone(), nil
}

func applyPatch(event *domain.Event, patch domain.Patch) {
	if patch.Title != nil {
		event.Title = *patch.Title
	}
	if patch.Description != nil {
		event.Description = *patch.Description
	}
	if patch.Date != nil {
		event.Date = *patch.Date
	}
	if patch.Time != nil {
		event.Time = *patch.Time
	}
	if patch.Location != nil {
		event.Location = *patch.Location
	}
	if patch.Capacity != nil {
		event.Capacity = *patch.Capacity
	}
	if patch.ImageURL != nil {
		event.ImageURL = *patch.ImageURL
	}
	if patch.Category != nil {
		event.Category = *patch.Category
	}
}

// Delete removes the event and all its reservation state. Deleting an
// unknown (or already deleted) id reports ErrEventNotFound.
func (s *EventStore) Delete(id string) error {
	s.mu.Lock()
	rec, ok := s.records[id]
	if !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", domain.ErrEventNotFound, id)
	}
	delete(s.records, id)
	if i := slices.Index(s.order, id); i >= 0 {
		s.order = slices.Delete(s.order, i, i+1)
	}
	s.mu.Unlock()

	// Mark the detached record so an in-flight reservation that already
	// fetched it observes not-found instead of mutating orphaned state.
	rec.mu.Lock()
	rec.deleted = true
	rec.event.Attendees = nil
	rec.mu.Unlock()

	s.log.Info("event deleted", slog.String("event_id", id))
	return nil
}

// Get returns a point-in-time copy of one event.
func (s *EventStore) Get(id string) (domain.Event, bool) {
	rec, ok := s.lookup(id)
	if !ok {
		return domain.Event{}, false
	}
	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.deleted {
		return domain.Event{}, false
	}
	return rec.event.Clone(), true
}

// ListByCreator returns all live events created by userID, in creation order.
func (s *EventStore) ListByCreator(userID string) []domain.Event {
	return s.collect(func(e domain.Event) bool { return e.CreatorID == userID })
}

// ListByAttendee returns all live events where userID holds a seat, in
// creation order.
func (s *EventStore) ListByAttendee(userID string) []domain.Event {
	return s.collect(func(e domain.Event) bool { return e.HasAttendee(userID) })
}

// Snapshot returns a consistent point-in-time copy of the full collection
// in creation order, suitable as Query Engine input. The copy shares no
// mutable state with the store.
func (s *EventStore) Snapshot() []domain.Event {
	return s.collect(func(domain.Event) bool { return true })
}

// Len reports the number of live events.
func (s *EventStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func (s *EventStore) lookup(id string) (*record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.records[id]
	return rec, ok
}

func (s *EventStore) collect(keep func(domain.Event) bool) []domain.Event {
	s.mu.RLock()
	ordered := make([]*record, 0, len(s.order))
	for _, id := range s.order {
		if rec, ok := s.records[id]; ok {
			ordered = append(ordered, rec)
		}
	}
	s.mu.RUnlock()

	out := make([]domain.Event, 0, len(ordered))
	for _, rec := range ordered {
		rec.mu.Lock()
		if !rec.deleted && keep(rec.event) {
			out = append(out, rec.event.Clone())
		}
		rec.mu.Unlock()
	}
	return out
}
