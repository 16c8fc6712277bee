package memory

import (
	"context"
	"sync"

	"github.com/aretw0/sift/pkg/automaton"
	"github.com/aretw0/sift/pkg/ports"
)

// Store implements ports.StateStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*automaton.Snapshot
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*automaton.Snapshot),
	}
}

// Save persists the snapshot in memory.
func (s *Store) Save(ctx context.Context, sessionID string, snap *automaton.Snapshot) error {
	copied := copySnapshot(snap)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[sessionID] = copied
	return nil
}

// Load retrieves the snapshot from memory.
func (s *Store) Load(ctx context.Context, sessionID string) (*automaton.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap, ok := s.data[sessionID]
	if !ok {
		return nil, ports.ErrSessionNotFound
	}

	// Copy on read so the caller can't reach into the store by pointer.
	return copySnapshot(snap), nil
}

// Delete removes the snapshot.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, sessionID)
	return nil
}

// List returns active sessions.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]string, 0, len(s.data))
	for id := range s.data {
		sessions = append(sessions, id)
	}
	return sessions, nil
}

func copySnapshot(snap *automaton.Snapshot) *automaton.Snapshot {
	out := &automaton.Snapshot{
		State:   copyState(snap.State),
		History: make([]automaton.State, 0, len(snap.History)),
	}
	for _, st := range snap.History {
		out.History = append(out.History, copyState(st))
	}
	return out
}

func copyState(st automaton.State) automaton.State {
	info := make(map[string]any, len(st.Information))
	for k, v := range st.Information {
		info[k] = v
	}
	return automaton.State{Location: st.Location, Information: info}
}
