package store

import (
	"log/slog"
	"slices"

	"github.com/anubhavsingh-123/festiflow-zone/internal/domain"
)

// Reason explains a declined reservation attempt.
type Reason string

const (
	ReasonAlreadyReserved Reason = "already_reserved"
	ReasonEventFull       Reason = "event_full"
	ReasonNotFound        Reason = "not_found"
)

// ReserveResult is the outcome of a reservation attempt. Declines are
// ordinary values, not errors: they are expected and frequent.
type ReserveResult struct {
	Granted bool
	Reason  Reason
	// Event is the post-grant state of the record; zero unless Granted.
	Event domain.Event
}

// Reserve claims a seat for userID. The membership check, capacity check
// and insertion run under the event's mutex so concurrent attempts can
// never admit the same user twice or exceed capacity.
func (s *EventStore) Reserve(eventID, userID string) ReserveResult {
	rec, ok := s.lookup(eventID)
	if !ok {
		return ReserveResult{Reason: ReasonNotFound}
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.deleted {
		return ReserveResult{Reason: ReasonNotFound}
	}
	if slices.Contains(rec.event.Attendees, userID) {
		return ReserveResult{Reason: ReasonAlreadyReserved}
	}
	if len(rec.event.Attendees) >= rec.event.Capacity {
		return ReserveResult{Reason: ReasonEventFull}
	}

	rec.event.Attendees = append(rec.event.Attendees, userID)
	s.log.Info("seat reserved",
		slog.String("event_id", eventID),
		slog.String("user_id", userID),
		slog.Int("spots_left", rec.event.SpotsLeft()),
	)
	return ReserveResult{Granted: true, Event: rec.event.Clone()}
}

// Cancel releases userID's seat. It is always safe to retry: a user who
// never reserved, or an event that no longer exists, is a silent no-op.
func (s *EventStore) Cancel(eventID, userID string) {
	rec, ok := s.lookup(eventID)
	if !ok {
		return
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.deleted {
		return
	}
	i := slices.Index(rec.event.Attendees, userID)
	if i < 0 {
		return
	}
	rec.event.Attendees = slices.Delete(rec.event.Attendees, i, i+1)
	s.log.Info("seat released",
		slog.String("event_id", eventID),
		slog.String("user_id", userID),
	)
}
