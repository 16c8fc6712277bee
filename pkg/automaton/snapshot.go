package automaton

import (
	"fmt"

	"github.com/aretw0/sift/pkg/schema"
)

// Snapshot is the serializable image of one automaton's session: the
// current state plus the full history. It is what state stores persist.
type Snapshot struct {
	State   State   `json:"state"`
	History []State `json:"history,omitempty"`
}

// Snapshot captures the automaton's session as a deep copy.
func (a *Automaton) Snapshot() *Snapshot {
	history := make([]State, 0, len(a.history))
	for _, s := range a.history {
		history = append(history, s.clone())
	}
	return &Snapshot{State: a.state.clone(), History: history}
}

// Restore starts an automaton over index positioned at a previously
// captured snapshot. It fails if the snapshot's location does not
// resolve in the index, which happens when the schema changed between
// runs.
func Restore(index *schema.Index, snap *Snapshot, opts ...Option) (*Automaton, error) {
	if _, err := index.Resolve(snap.State.Location); err != nil {
		return nil, fmt.Errorf("snapshot location %q: %w", snap.State.Location, err)
	}

	a := NewWithIndex(index, opts...)
	a.state = snap.State.clone()
	a.history = make([]State, 0, len(snap.History))
	for _, s := range snap.History {
		a.history = append(a.history, s.clone())
	}
	return a, nil
}
