package schema_test

import (
	"errors"
	"testing"

	"github.com/aretw0/sift/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const demoYAML = `
id: stuff
kind: form
description: form to specify what to do and what to watch
elements:
  - id: do
    kind: selection
    description: select what you want to do
    options:
      - id: eat
        description: Specify that you want to eat
        examples: ["I'm hungry", "I want to eat"]
      - id: drink
        description: Specify that you want to drink
  - id: watch
    kind: selection
    description: select which movie you want to watch
    options:
      - id: bond
        description: James Bond 007
`

func TestParse_YAMLDocument(t *testing.T) {
	node, err := schema.Parse([]byte(demoYAML))
	require.NoError(t, err)

	form, ok := node.(*schema.Form)
	require.True(t, ok, "expected *Form, got %T", node)
	require.Len(t, form.Elements, 2)

	sel, ok := form.Elements[0].(*schema.Selection)
	require.True(t, ok)
	assert.Equal(t, "do", sel.ID)
	require.Len(t, sel.Options, 2)
	assert.Equal(t, []string{"I'm hungry", "I want to eat"}, sel.Options[0].Examples)

	ix, err := schema.NewIndex(node)
	require.NoError(t, err)
	assert.Equal(t, 6, ix.Len())
}

func TestParse_JSONDocument(t *testing.T) {
	doc := `{"id": "do", "kind": "selection", "description": "pick one",
		"options": [{"id": "eat", "description": "eat"}]}`

	node, err := schema.Parse([]byte(doc))
	require.NoError(t, err)

	sel, ok := node.(*schema.Selection)
	require.True(t, ok)
	assert.Equal(t, "pick one", sel.Description)
}

func TestParse_UnknownKind(t *testing.T) {
	_, err := schema.Parse([]byte(`{"id": "x", "kind": "wizard"}`))
	var serr *schema.Error
	assert.True(t, errors.As(err, &serr), "expected *schema.Error, got %v", err)
}

func TestParse_SelectionWithNonOptionChild(t *testing.T) {
	doc := `
id: do
kind: selection
options:
  - id: nested
    kind: form
`
	_, err := schema.Parse([]byte(doc))
	var serr *schema.Error
	assert.True(t, errors.As(err, &serr), "expected *schema.Error, got %v", err)
}

func TestBuilder_FluentForm(t *testing.T) {
	ix, err := schema.NewBuilder("signup", "new user signup").
		Selection("plan", "choose a plan").
		Option("free", "the free tier").
		Option("pro", "the paid tier", "I want to pay").
		Done().
		Selection("region", "choose a region").
		Option("eu", "Europe").
		Option("us", "United States").
		Done().
		Build()
	require.NoError(t, err)
	assert.Equal(t, 7, ix.Len())
	assert.True(t, ix.Contains("pro"))
}
