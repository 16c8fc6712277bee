package session

import (
	"context"
	"sync"
	"testing"

	"github.com/aretw0/sift/pkg/adapters/memory"
	"github.com/aretw0/sift/pkg/automaton"
	"github.com/aretw0/sift/pkg/ports"
	"github.com/aretw0/sift/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIndex(t *testing.T) *schema.Index {
	t.Helper()
	index, err := schema.NewIndex(schema.NewSelection("do", "What to do?",
		schema.NewOption("eat", "Have a meal"),
		schema.NewOption("sleep", "Take a nap"),
	))
	require.NoError(t, err)
	return index
}

func TestManager_LoadOrStart(t *testing.T) {
	m := NewManager(memory.NewStore(), testIndex(t))
	ctx := context.Background()

	a, err := m.LoadOrStart(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "do", a.State().Location)

	// Starting reserves the id: a plain Load now succeeds.
	a2, err := m.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, a.State(), a2.State())
}

func TestManager_SaveAndReload(t *testing.T) {
	m := NewManager(memory.NewStore(), testIndex(t))
	ctx := context.Background()

	a, err := m.LoadOrStart(ctx, "s1")
	require.NoError(t, err)

	a.Update(&automaton.UpdateIntent{
		LocationID:  "do",
		Information: map[string]any{"do": "eat"},
	})
	require.NoError(t, m.Save(ctx, "s1", a))

	reloaded, err := m.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "eat", reloaded.State().Information["do"])
	assert.Len(t, reloaded.History(), 1)
}

func TestManager_LoadMissing(t *testing.T) {
	m := NewManager(memory.NewStore(), testIndex(t))

	_, err := m.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestManager_Delete(t *testing.T) {
	m := NewManager(memory.NewStore(), testIndex(t))
	ctx := context.Background()

	_, err := m.LoadOrStart(ctx, "s1")
	require.NoError(t, err)
	require.NoError(t, m.Delete(ctx, "s1"))

	_, err = m.Load(ctx, "s1")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestManager_ConcurrentStarts(t *testing.T) {
	m := NewManager(memory.NewStore(), testIndex(t))
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := m.LoadOrStart(ctx, "shared")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	sessions, err := m.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"shared"}, sessions)
}

func TestManager_WithLockSerializes(t *testing.T) {
	m := NewManager(memory.NewStore(), testIndex(t))
	ctx := context.Background()

	counter := 0
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.WithLock(ctx, "s1", func(context.Context) error {
				counter++
				return nil
			})
		}()
	}
	wg.Wait()
	assert.Equal(t, 32, counter)
}
