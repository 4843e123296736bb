package domain

import "errors"

var (
	ErrInvalidDraft     = errors.New("invalid event draft")
	ErrEventNotFound    = errors.New("event not found")
	ErrCapacityConflict = errors.New("capacity below current attendance")
	ErrUnknownSortKey   = errors.New("unknown sort key")
)
