package encode

import "strings"

// TagBlock unwraps a payload fenced inside tags or a Markdown code fence
// before handing it to an inner decoder. Chat models routinely wrap the
// structured part of an answer in ```json fences or <json>...</json>
// tags; the fencing itself carries no data.
type TagBlock struct {
	inner Encoder
	tag   string
}

// NewTagBlock creates a tag-block decoder around inner. tag is the bare
// tag name (e.g. "json").
func NewTagBlock(tag string, inner Encoder) *TagBlock {
	return &TagBlock{inner: inner, tag: tag}
}

// Decode extracts the fenced payload and decodes it with the inner
// decoder. Text without any fence is passed through as-is, so unfenced
// answers still decode.
func (e *TagBlock) Decode(text string) (map[string]any, error) {
	return e.inner.Decode(e.unwrap(text))
}

func (e *TagBlock) unwrap(text string) string {
	if body, ok := cut(text, "<"+e.tag+">", "</"+e.tag+">"); ok {
		return body
	}
	if body, ok := cut(text, "```"+e.tag, "```"); ok {
		return body
	}
	if body, ok := cut(text, "```", "```"); ok {
		return body
	}
	return text
}

// cut returns the text between the first open marker and the next close
// marker after it.
func cut(text, open, close string) (string, bool) {
	start := strings.Index(text, open)
	if start < 0 {
		return "", false
	}
	rest := text[start+len(open):]
	end := strings.Index(rest, close)
	if end < 0 {
		return "", false
	}
	return strings.TrimSpace(rest[:end]), true
}
