package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/sift/pkg/automaton"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunStateStoreContract runs a suite of tests to verify that a
// StateStore implementation adheres to the defined interface contract.
func RunStateStoreContract(t *testing.T, store StateStore) {
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		snap := &automaton.Snapshot{
			State: automaton.State{
				Location:    "do",
				Information: map[string]any{"do": "eat", "count": 42},
			},
			History: []automaton.State{automaton.NewState("do")},
		}

		err := store.Save(ctx, sessionID, snap)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, "do", loaded.State.Location)
		assert.Equal(t, "eat", loaded.State.Information["do"])
		// JSON persistence may turn ints into floats; existence is what the
		// contract guarantees.
		assert.NotNil(t, loaded.State.Information["count"])
		assert.Len(t, loaded.History, 1)
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, sessionID, &automaton.Snapshot{State: automaton.NewState("do")})
		require.NoError(t, err)

		err = store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		_ = store.Save(ctx, id1, &automaton.Snapshot{State: automaton.NewState("do")})
		_ = store.Save(ctx, id2, &automaton.Snapshot{State: automaton.NewState("do")})

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}
