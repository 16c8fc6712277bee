package schema

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Kind names used in serialized schema documents.
const (
	KindOption    = "option"
	KindSelection = "selection"
	KindForm      = "form"
)

// nodeDoc is the transport shape of one node in a YAML or JSON document.
// It uses mapstructure tags so the same DTO serves both formats.
type nodeDoc struct {
	ID          string    `mapstructure:"id"`
	Kind        string    `mapstructure:"kind"`
	Description string    `mapstructure:"description"`
	Examples    []string  `mapstructure:"examples"`
	Options     []nodeDoc `mapstructure:"options"`
	Elements    []nodeDoc `mapstructure:"elements"`
}

// Parse decodes a schema document (YAML or JSON; JSON is a YAML subset)
// into a node tree. The result still needs NewIndex to be usable, which
// is where id uniqueness is enforced.
func Parse(data []byte) (Node, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse schema document: %w", err)
	}

	var doc nodeDoc
	if err := mapstructure.Decode(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode schema document: %w", err)
	}

	return doc.toNode()
}

// LoadFile reads and parses a schema document from disk.
func LoadFile(path string) (Node, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema file: %w", err)
	}
	return Parse(data)
}

func (d nodeDoc) toNode() (Node, error) {
	switch d.Kind {
	case KindOption:
		return &Option{ID: d.ID, Description: d.Description, Examples: d.Examples}, nil

	case KindSelection:
		options := make([]*Option, 0, len(d.Options))
		for _, od := range d.Options {
			// Options nested under a selection may omit their kind.
			if od.Kind != "" && od.Kind != KindOption {
				return nil, &Error{Reason: fmt.Sprintf("selection %q holds non-option child %q", d.ID, od.ID)}
			}
			options = append(options, &Option{ID: od.ID, Description: od.Description, Examples: od.Examples})
		}
		return &Selection{ID: d.ID, Description: d.Description, Examples: d.Examples, Options: options}, nil

	case KindForm:
		elements := make([]Node, 0, len(d.Elements))
		for _, ed := range d.Elements {
			child, err := ed.toNode()
			if err != nil {
				return nil, err
			}
			elements = append(elements, child)
		}
		return &Form{ID: d.ID, Description: d.Description, Examples: d.Examples, Elements: elements}, nil

	default:
		return nil, &Error{Reason: fmt.Sprintf("unsupported node kind %q (id %q)", d.Kind, d.ID)}
	}
}
