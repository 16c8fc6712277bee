package ports

import (
	"context"
	"errors"

	"github.com/aretw0/sift/pkg/automaton"
)

// ErrSessionNotFound is returned when a session id cannot be found in
// the store.
var ErrSessionNotFound = errors.New("session not found")

// StateStore persists automaton snapshots, enabling stop-and-resume
// sessions.
type StateStore interface {
	// Save persists the snapshot for a given session id.
	Save(ctx context.Context, sessionID string, snap *automaton.Snapshot) error

	// Load retrieves the snapshot for a given session id.
	// Returns ErrSessionNotFound if the session does not exist.
	Load(ctx context.Context, sessionID string) (*automaton.Snapshot, error)

	// Delete removes the snapshot for a given session id.
	Delete(ctx context.Context, sessionID string) error

	// List returns the ids of the stored sessions.
	List(ctx context.Context) ([]string, error)
}
