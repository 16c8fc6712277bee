package sift_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sift"
	"github.com/aretw0/sift/pkg/ports"
	"github.com/aretw0/sift/pkg/schema"
)

func pickFirst() ports.CompleterFunc {
	return func(ctx context.Context, prompt string, allowed []string) (string, error) {
		if len(allowed) > 0 {
			return allowed[0], nil
		}
		return "{}", nil
	}
}

func eveningForm() *schema.Form {
	return schema.NewForm("evening", "Plan the evening",
		schema.NewSelection("do", "What to do?",
			schema.NewOption("eat", "Have a meal"),
			schema.NewOption("sleep", "Take a nap"),
		),
		schema.NewSelection("watch", "What to watch?",
			schema.NewOption("alien", "A scary movie"),
			schema.NewOption("bond", "A spy movie"),
		),
	)
}

func TestSession_ResumeRoundTrip(t *testing.T) {
	ctx := context.Background()

	session, err := sift.NewSession(eveningForm(), pickFirst())
	require.NoError(t, err)

	msg, err := session.Interact(ctx, "anything")
	require.NoError(t, err)
	require.True(t, msg.Success)
	require.False(t, session.Complete())

	// Persist and resume mid-form, with a fresh index as a new process
	// would build it.
	snap := session.Snapshot()
	index, err := schema.NewIndex(eveningForm())
	require.NoError(t, err)

	resumed, err := sift.ResumeSession(index, snap, pickFirst())
	require.NoError(t, err)
	assert.Equal(t, "watch", resumed.State().Location)
	assert.Equal(t, "eat", resumed.State().Information["do"])

	msg, err = resumed.Interact(ctx, "anything")
	require.NoError(t, err)
	assert.True(t, msg.Success)
	assert.True(t, resumed.Complete())
	assert.Equal(t, "alien", resumed.State().Information["watch"])
}

func TestSession_StateMessage(t *testing.T) {
	session, err := sift.NewSession(eveningForm(), pickFirst())
	require.NoError(t, err)

	msg, err := session.StateMessage()
	require.NoError(t, err)
	assert.Contains(t, msg.Content, "do")
}
