package encode_test

import (
	"testing"

	"github.com/aretw0/sift/pkg/encode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON_Decode(t *testing.T) {
	enc := encode.NewJSON()

	t.Run("object", func(t *testing.T) {
		data, err := enc.Decode(`{"do": "eat"}`)
		require.NoError(t, err)
		assert.Equal(t, "eat", data["do"])
	})

	t.Run("blank input is empty not error", func(t *testing.T) {
		for _, text := range []string{"", "   ", "\n\t", "{}", "null"} {
			data, err := enc.Decode(text)
			require.NoError(t, err, "input %q", text)
			assert.Empty(t, data, "input %q", text)
		}
	})

	t.Run("malformed is ParseError", func(t *testing.T) {
		_, err := enc.Decode(`{"do":`)
		require.Error(t, err)
		assert.True(t, encode.IsParseError(err), "expected ParseError, got %v", err)
	})

	t.Run("non-object is ParseError", func(t *testing.T) {
		_, err := enc.Decode(`["eat"]`)
		assert.True(t, encode.IsParseError(err))
	})
}

func TestTagBlock_Decode(t *testing.T) {
	enc := encode.NewTagBlock("json", encode.NewJSON())

	cases := []struct {
		name string
		text string
	}{
		{"xml tags", "Sure!\n<json>{\"do\": \"eat\"}</json>\nAnything else?"},
		{"markdown fence", "```json\n{\"do\": \"eat\"}\n```"},
		{"bare fence", "```\n{\"do\": \"eat\"}\n```"},
		{"no fence", `{"do": "eat"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			data, err := enc.Decode(tc.text)
			require.NoError(t, err)
			assert.Equal(t, "eat", data["do"])
		})
	}

	t.Run("prose around malformed payload", func(t *testing.T) {
		_, err := enc.Decode("here you go: <json>{oops</json>")
		assert.True(t, encode.IsParseError(err))
	})
}
