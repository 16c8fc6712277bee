// Package encode defines the decoder contract between raw model text and
// the semantic mapping the extraction pipeline consumes, plus the
// built-in JSON and tag-block decoders.
package encode

import "errors"

// Encoder decodes raw model text into a mapping keyed by schema ids.
// Well-formed-but-empty input must decode to an empty map, not an error;
// malformed input must fail with a *ParseError.
type Encoder interface {
	Decode(text string) (map[string]any, error)
}

// ParseError reports model text that could not be decoded in the expected
// format. It is always recoverable: the extraction pipeline downgrades it
// into the result's error list.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return "decode failed: " + e.Reason + ": " + e.Err.Error()
	}
	return "decode failed: " + e.Reason
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err is (or wraps) a ParseError.
func IsParseError(err error) bool {
	var perr *ParseError
	return errors.As(err, &perr)
}
