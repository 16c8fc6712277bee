package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sift/pkg/automaton"
	"github.com/aretw0/sift/pkg/interp"
	"github.com/aretw0/sift/pkg/ports"
)

// fakeCompleter keys off the user-input line only; the rest of the
// prompt carries option examples that would otherwise shadow it.
func fakeCompleter() ports.CompleterFunc {
	return func(ctx context.Context, prompt string, allowed []string) (string, error) {
		_, input, _ := strings.Cut(prompt, "User input:")
		switch {
		case strings.Contains(input, "hungry"):
			return "eat", nil
		case strings.Contains(input, "scary"):
			return "alien", nil
		default:
			return "{}", nil
		}
	}
}

func TestRunREPL_QuitSentinel(t *testing.T) {
	a, err := automaton.New(DemoForm())
	require.NoError(t, err)
	i := interp.New(a, fakeCompleter())

	var out bytes.Buffer
	err = RunREPL(context.Background(), i, strings.NewReader("q\n"), &out, nil)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Goodbye!")
	assert.Empty(t, a.State().Information)
}

func TestRunREPL_CompletesForm(t *testing.T) {
	a, err := automaton.New(DemoForm())
	require.NoError(t, err)
	i := interp.New(a, fakeCompleter())

	input := "I'm hungry\nsomething scary\n"
	var out bytes.Buffer
	err = RunREPL(context.Background(), i, strings.NewReader(input), &out, nil)
	require.NoError(t, err)

	assert.True(t, a.Complete())
	assert.Equal(t, "eat", a.State().Information["do"])
	assert.Equal(t, "alien", a.State().Information["watch"])
	assert.Contains(t, out.String(), "All done.")
}

func TestRunREPL_IgnoresEmptyAndRetries(t *testing.T) {
	a, err := automaton.New(DemoForm())
	require.NoError(t, err)
	i := interp.New(a, fakeCompleter())

	input := "\n\nasdkjfh\nq\n"
	var out bytes.Buffer
	err = RunREPL(context.Background(), i, strings.NewReader(input), &out, nil)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "didn't catch that")
	assert.Empty(t, a.State().Information)
}
