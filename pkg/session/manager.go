package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/aretw0/sift/internal/logging"
	"github.com/aretw0/sift/pkg/automaton"
	"github.com/aretw0/sift/pkg/ports"
	"github.com/aretw0/sift/pkg/schema"
)

// lockEntry holds the mutex and the reference count.
type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// Manager orchestrates session access, ensuring safe concurrent
// operations over a shared StateStore. Locks are per session id and
// garbage collected by reference counting.
type Manager struct {
	store ports.StateStore
	index *schema.Index

	mu    sync.Mutex
	locks map[string]*lockEntry

	logger *slog.Logger
}

// Option configures the Manager.
type Option func(*Manager)

// WithLogger configures a logger for the Manager.
func WithLogger(logger *slog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// NewManager creates a session manager over the store. The index is the
// shared schema all sessions run against; it is used to validate
// snapshots on load and to start fresh sessions.
func NewManager(store ports.StateStore, index *schema.Index, opts ...Option) *Manager {
	m := &Manager{
		store:  store,
		index:  index,
		locks:  make(map[string]*lockEntry),
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// acquire gets or creates a lock entry and increments its reference
// count. The caller must Lock entry.mu and call release(sessionID)
// after unlocking.
func (m *Manager) acquire(sessionID string) *lockEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		entry = &lockEntry{}
		m.locks[sessionID] = entry
	}
	entry.refs++
	return entry
}

// release decrements the reference count and deletes the entry once it
// reaches zero.
func (m *Manager) release(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.locks[sessionID]
	if !exists {
		return
	}

	entry.refs--
	if entry.refs <= 0 {
		delete(m.locks, sessionID)
	}
}

// Load restores an automaton for an existing session.
func (m *Manager) Load(ctx context.Context, sessionID string) (*automaton.Automaton, error) {
	var a *automaton.Automaton
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		snap, err := m.store.Load(ctx, sessionID)
		if err != nil {
			return err
		}
		a, err = automaton.Restore(m.index, snap)
		return err
	})
	return a, err
}

// LoadOrStart tries to load a session. If not found, it starts a fresh
// one at the schema root and persists it immediately to reserve the id.
func (m *Manager) LoadOrStart(ctx context.Context, sessionID string) (*automaton.Automaton, error) {
	var a *automaton.Automaton
	err := m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		snap, err := m.store.Load(ctx, sessionID)
		if err == nil {
			a, err = automaton.Restore(m.index, snap)
			return err
		}
		if !errors.Is(err, ports.ErrSessionNotFound) {
			return fmt.Errorf("failed to check session existence: %w", err)
		}

		a = automaton.NewWithIndex(m.index)
		snap = a.Snapshot()
		if err := m.store.Save(ctx, sessionID, snap); err != nil {
			return fmt.Errorf("failed to initialize session: %w", err)
		}
		m.logger.Debug("session started", "session_id", sessionID, "location", snap.State.Location)
		return nil
	})
	return a, err
}

// Save persists the automaton's current snapshot.
func (m *Manager) Save(ctx context.Context, sessionID string, a *automaton.Automaton) error {
	return m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		return m.store.Save(ctx, sessionID, a.Snapshot())
	})
}

// Delete removes the session from the store.
func (m *Manager) Delete(ctx context.Context, sessionID string) error {
	return m.WithLock(ctx, sessionID, func(ctx context.Context) error {
		return m.store.Delete(ctx, sessionID)
	})
}

// List delegates to the store.
func (m *Manager) List(ctx context.Context) ([]string, error) {
	return m.store.List(ctx)
}

// Store returns the underlying state store.
func (m *Manager) Store() ports.StateStore {
	return m.store
}

// Index returns the shared schema index.
func (m *Manager) Index() *schema.Index {
	return m.index
}

// WithLock executes fn while holding the lock for the session.
func (m *Manager) WithLock(ctx context.Context, sessionID string, fn func(context.Context) error) error {
	entry := m.acquire(sessionID)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		m.release(sessionID)
	}()

	return fn(ctx)
}
