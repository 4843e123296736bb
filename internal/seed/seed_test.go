package seed_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anubhavsingh-123/festiflow-zone/internal/seed"
	"github.com/anubhavsingh-123/festiflow-zone/internal/store"
)

func TestApply(t *testing.T) {
	t.Parallel()

	s := store.New()
	require.NoError(t, seed.Apply(s))
	assert.Equal(t, 6, s.Len())

	going := s.ListByAttendee("user1")
	assert.Len(t, going, 4)
}

func TestRandomDraft_IsValid(t *testing.T) {
	t.Parallel()

	s := store.New()
	for i := 0; i < 20; i++ {
		draft := seed.RandomDraft()
		_, err := s.Create(draft)
		require.NoError(t, err, "draft %+v", draft)
	}
}
