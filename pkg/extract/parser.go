package extract

import (
	"github.com/aretw0/sift/pkg/encode"
	"github.com/aretw0/sift/pkg/schema"
	"github.com/aretw0/sift/pkg/validate"
)

// schemaMismatchMsg is surfaced when the model returned structured data
// that does not contain the expected node id. Providing more examples in
// the schema usually improves the next attempt.
const schemaMismatchMsg = "the model returned structured data which does not match the expected schema; " +
	"providing additional examples may help improve the parse"

// Parser runs the decode-validate-extract pipeline for one schema node.
type Parser struct {
	node      schema.Node
	encoder   encode.Encoder
	validator validate.Validator
}

// Option configures a Parser.
type Option func(*Parser)

// WithValidator attaches a validator that cleans the extracted sub-value.
func WithValidator(v validate.Validator) Option {
	return func(p *Parser) {
		p.validator = v
	}
}

// NewParser creates a pipeline for node using the given encoder.
func NewParser(node schema.Node, encoder encode.Encoder, opts ...Option) *Parser {
	p := &Parser{node: node, encoder: encoder}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse decodes text, checks it against the node's id and runs the
// validator over the extracted sub-value. It never returns a Go error:
// every failure mode is expressed through the result's Errors field or
// the emptiness of its data fields, and Raw always carries the input
// verbatim.
func (p *Parser) Parse(text string) Extraction {
	data, err := p.encoder.Decode(text)
	if err != nil {
		return Extraction{
			Data:          map[string]any{},
			Raw:           text,
			Errors:        []string{err.Error()},
			ValidatedData: map[string]any{},
		}
	}

	value, present := data[p.node.NodeID()]
	if !present {
		var errs []string
		if len(data) > 0 {
			// Something parsed, but not for this node.
			errs = []string{schemaMismatchMsg}
		}
		return Extraction{
			Data:          map[string]any{},
			Raw:           text,
			Errors:        errs,
			ValidatedData: map[string]any{},
		}
	}

	validated := map[string]any{}
	var errs []string
	if p.validator != nil {
		cleaned, fieldErrs := p.validator.Clean(asMapping(p.node.NodeID(), value))
		validated = cleaned
		for _, ferr := range fieldErrs {
			errs = append(errs, ferr.Error())
		}
	}

	return Extraction{
		Data:          data,
		Raw:           text,
		Errors:        errs,
		ValidatedData: validated,
	}
}

// asMapping normalizes the extracted sub-value for the validator: a
// composite value validates field by field, a scalar validates under the
// node's own id.
func asMapping(id string, value any) map[string]any {
	if m, ok := value.(map[string]any); ok {
		return m
	}
	return map[string]any{id: value}
}
