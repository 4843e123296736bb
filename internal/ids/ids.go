package ids

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator produces unique, never-reused event identifiers.
type Generator interface {
	NewID() string
}

type uuidGenerator struct{}

// NewUUID returns a generator backed by random UUIDv4 strings.
func NewUUID() Generator {
	return uuidGenerator{}
}

func (uuidGenerator) NewID() string {
	return uuid.NewString()
}

type sequence struct {
	prefix string
	n      atomic.Uint64
}

// NewSequence returns a deterministic generator yielding "prefix-1",
// "prefix-2", ... (useful for tests).
func NewSequence(prefix string) Generator {
	return &sequence{prefix: prefix}
}

func (s *sequence) NewID() string {
	return fmt.Sprintf("%s-%d", s.prefix, s.n.Add(1))
}
