package interp

import "strings"

// Resolver maps raw completion text onto one of the allowed option ids.
// It returns the matched id and whether a match was found. An empty
// allowed set never matches.
type Resolver func(completion string, allowed []string) (string, bool)

// DefaultResolver trims the completion, tries a case-insensitive exact
// match against the allowed ids first, then falls back to a substring
// scan. The first allowed id found inside the completion wins, so the
// scan order follows the (sorted) allowed set.
func DefaultResolver(completion string, allowed []string) (string, bool) {
	text := strings.ToLower(strings.TrimSpace(completion))
	if text == "" {
		return "", false
	}

	for _, id := range allowed {
		if text == strings.ToLower(id) {
			return id, true
		}
	}
	for _, id := range allowed {
		if strings.Contains(text, strings.ToLower(id)) {
			return id, true
		}
	}
	return "", false
}
