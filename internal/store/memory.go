package store

import (
	"context"
	"sync"
)

// MemoryStore keeps the latest snapshot in process memory.  It is the
// fallback when no Redis server is reachable and the store used by
// tests.  State does not survive a restart, which matches the
// engine's contract: persistence is best-effort snapshotting, not a
// correctness requirement.
type MemoryStore struct {
	mu   sync.Mutex
	snap Snapshot
}

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Save retains the given snapshot, replacing any previous one.
func (s *MemoryStore) Save(_ context.Context, snap Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snap = snap
	return nil
}

// Load returns the last saved snapshot, or an empty one.
func (s *MemoryStore) Load(_ context.Context) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap, nil
}
