// Package extract composes an encoder and an optional validator into the
// pipeline that turns raw model text into a typed, error-annotated result
// for one schema node.
package extract

// Extraction is the result of parsing one piece of model text against a
// schema node. All four fields are always present; Errors is empty on
// full success. Values are never mutated after construction.
type Extraction struct {
	// Data is the full decoded mapping, possibly empty.
	Data map[string]any `json:"data"`
	// Raw preserves the original text verbatim for debugging and audit.
	Raw string `json:"raw"`
	// Errors lists recoverable problems in the order they were found.
	Errors []string `json:"errors"`
	// ValidatedData is the mapping after validator cleaning. Empty when no
	// validator is configured or when extraction failed before that stage.
	ValidatedData map[string]any `json:"validated_data"`
}

// Ok reports whether the extraction produced data without any errors.
func (e Extraction) Ok() bool {
	return len(e.Errors) == 0 && len(e.Data) > 0
}
