package ids

import "testing"

func TestSequence(t *testing.T) {
	t.Parallel()

	gen := NewSequence("evt")
	if got := gen.NewID(); got != "evt-1" {
		t.Fatalf("expected evt-1, got %s", got)
	}
	if got := gen.NewID(); got != "evt-2" {
		t.Fatalf("expected evt-2, got %s", got)
	}
}

func TestUUID_Unique(t *testing.T) {
	t.Parallel()

	gen := NewUUID()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := gen.NewID()
		if id == "" {
			t.Fatalf("empty id")
		}
		if seen[id] {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = true
	}
}
