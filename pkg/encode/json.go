package encode

import (
	"strings"

	"github.com/bytedance/sonic"
)

// JSON decodes model text as a JSON object keyed by schema ids.
type JSON struct{}

// NewJSON creates a JSON decoder.
func NewJSON() *JSON {
	return &JSON{}
}

// Decode parses text as a JSON object. Blank input and the empty object
// both yield an empty mapping.
func (e *JSON) Decode(text string) (map[string]any, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return map[string]any{}, nil
	}

	var data map[string]any
	if err := sonic.UnmarshalString(trimmed, &data); err != nil {
		return nil, &ParseError{Reason: "text is not a JSON object", Err: err}
	}
	if data == nil {
		return map[string]any{}, nil
	}
	return data, nil
}
