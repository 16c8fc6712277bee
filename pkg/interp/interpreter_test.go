package interp

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aretw0/sift/pkg/automaton"
	"github.com/aretw0/sift/pkg/ports"
	"github.com/aretw0/sift/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doSelection() *schema.Selection {
	return schema.NewSelection("do", "What do you want to do?",
		schema.NewOption("eat", "Have a meal", "I'm hungry"),
		schema.NewOption("drink", "Have a drink"),
		schema.NewOption("sleep", "Take a nap"),
	)
}

// scriptedCompleter returns canned completions keyed by a substring of
// the prompt's user-input line. Only that line is inspected, since the
// prompt body carries option examples that could shadow the input.
func scriptedCompleter(script map[string]string) ports.CompleterFunc {
	return func(ctx context.Context, prompt string, allowed []string) (string, error) {
		_, input, _ := strings.Cut(prompt, "User input:")
		for needle, completion := range script {
			if strings.Contains(input, needle) {
				return completion, nil
			}
		}
		return "{}", nil
	}
}

func TestInteract_ResolvesSelection(t *testing.T) {
	a, err := automaton.New(doSelection())
	require.NoError(t, err)

	i := New(a, scriptedCompleter(map[string]string{"I'm hungry": "eat"}))

	msg, err := i.Interact(context.Background(), "I'm hungry")
	require.NoError(t, err)
	assert.True(t, msg.Success)
	assert.Equal(t, map[string]any{"do": "eat"}, a.State().Information)
}

func TestInteract_NoMatchLeavesStateUnchanged(t *testing.T) {
	a, err := automaton.New(doSelection())
	require.NoError(t, err)

	i := New(a, scriptedCompleter(nil))

	msg, err := i.Interact(context.Background(), "asdkjfh")
	require.NoError(t, err)
	assert.False(t, msg.Success)
	assert.Empty(t, a.State().Information)
	assert.Empty(t, a.History(), "a failed turn must not grow the history")

	// Retrying keeps prior progress intact and is repeatable.
	msg, err = i.Interact(context.Background(), "asdkjfh")
	require.NoError(t, err)
	assert.False(t, msg.Success)
	assert.Empty(t, a.State().Information)
}

func TestInteract_StructuredFallback(t *testing.T) {
	a, err := automaton.New(doSelection())
	require.NoError(t, err)

	// The completion names no option directly, but carries a JSON body.
	completion := "Sure thing! <json>{\"do\": \"drink\"}</json>"
	i := New(a, ports.CompleterFunc(func(ctx context.Context, prompt string, allowed []string) (string, error) {
		return completion, nil
	}))

	var extracted bool
	i.hooks.OnExtraction = func(e ExtractionEvent) { extracted = true }

	msg, err := i.Interact(context.Background(), "something wet")
	require.NoError(t, err)
	assert.True(t, msg.Success)
	assert.True(t, extracted, "resolver should have fallen through to extraction")
	assert.Equal(t, "drink", a.State().Information["do"])
}

func TestInteract_CompleterFailurePropagates(t *testing.T) {
	a, err := automaton.New(doSelection())
	require.NoError(t, err)

	boom := errors.New("connection refused")
	i := New(a, ports.CompleterFunc(func(ctx context.Context, prompt string, allowed []string) (string, error) {
		return "", boom
	}))

	_, err = i.Interact(context.Background(), "anything")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, a.State().Information, "a failed call must not touch state")
}

func TestInteract_FormCompletion(t *testing.T) {
	form := schema.NewForm("stuff", "Things to sort out",
		doSelection(),
		schema.NewSelection("watch", "What do you want to watch?",
			schema.NewOption("bond", "A spy movie"),
			schema.NewOption("alien", "A scary movie"),
		),
		schema.NewSelection("mood", "How do you feel?",
			schema.NewOption("happy", "Feeling good"),
			schema.NewOption("grumpy", "Not so good"),
		),
	)
	a, err := automaton.New(form)
	require.NoError(t, err)
	require.Equal(t, "do", a.State().Location, "a form session starts on its first element")

	i := New(a, scriptedCompleter(map[string]string{
		"I'm hungry":  "eat",
		"spy movie":   "bond",
		"feeling off": "grumpy",
	}))

	var transitions []TransitionEvent
	i.hooks.OnTransition = func(e TransitionEvent) { transitions = append(transitions, e) }

	ctx := context.Background()
	for _, input := range []string{"I'm hungry", "a spy movie please", "feeling off today"} {
		msg, err := i.Interact(ctx, input)
		require.NoError(t, err)
		require.True(t, msg.Success, "input %q should resolve", input)
	}

	assert.True(t, a.Complete())
	assert.Equal(t, map[string]any{"do": "eat", "watch": "bond", "mood": "grumpy"}, a.State().Information)
	assert.Equal(t, "stuff", a.State().Location, "a completed form returns to its root")
	require.Len(t, transitions, 3)
	assert.Equal(t, TransitionEvent{From: "do", To: "watch"}, transitions[0])
	assert.Equal(t, TransitionEvent{From: "watch", To: "mood"}, transitions[1])
	assert.Equal(t, TransitionEvent{From: "mood", To: "stuff"}, transitions[2])
}

func TestStateMessage(t *testing.T) {
	t.Run("selection lists sorted options", func(t *testing.T) {
		a, err := automaton.New(doSelection())
		require.NoError(t, err)

		msg, err := New(a, scriptedCompleter(nil)).StateMessage()
		require.NoError(t, err)
		assert.True(t, msg.Success)
		assert.Contains(t, msg.Content, "do")
		assert.Contains(t, msg.Content, "drink, eat, sleep")
	})

	t.Run("form summarizes remaining elements", func(t *testing.T) {
		form := schema.NewForm("stuff", "Things to sort out",
			doSelection(),
			schema.NewSelection("watch", "What to watch?",
				schema.NewOption("bond", "A spy movie"),
			),
		)
		a, err := automaton.New(form)
		require.NoError(t, err)
		i := New(a, scriptedCompleter(map[string]string{"hungry": "eat", "movie": "bond"}))

		_, err = i.Interact(context.Background(), "hungry")
		require.NoError(t, err)
		_, err = i.Interact(context.Background(), "movie")
		require.NoError(t, err)

		msg, err := i.StateMessage()
		require.NoError(t, err)
		assert.Contains(t, msg.Content, "every element is filled in")
	})
}

func TestDefaultResolver(t *testing.T) {
	allowed := []string{"drink", "eat", "sleep"}

	tests := []struct {
		name       string
		completion string
		want       string
		ok         bool
	}{
		{"exact", "eat", "eat", true},
		{"exact case-insensitive", "  EAT \n", "eat", true},
		{"substring", "I would go with eat here.", "eat", true},
		{"no match", "asdkjfh", "", false},
		{"empty", "   ", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DefaultResolver(tt.completion, allowed)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("empty allowed never matches", func(t *testing.T) {
		_, ok := DefaultResolver("eat", nil)
		assert.False(t, ok)
	})
}

func TestDefaultPromptBuilder(t *testing.T) {
	prompt := DefaultPromptBuilder(doSelection(), "I'm hungry")
	assert.Contains(t, prompt, `"do"`)
	assert.Contains(t, prompt, "eat")
	assert.Contains(t, prompt, "I'm hungry")
}
