package validate

import "fmt"

// Validator cleans a decoded mapping. Clean returns the fields that
// passed (possibly coerced) and one error per field that failed. It never
// fails the call as a whole: field-level problems are data problems, not
// programmer errors.
type Validator interface {
	Clean(data map[string]any) (map[string]any, []error)
}

// FieldError describes one field that failed validation.
type FieldError struct {
	Key    string
	Reason string
	Value  any
}

func (e *FieldError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("field %q: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("field %q: %s (got %T)", e.Key, e.Reason, e.Value)
}

// SchemaValidator validates fields against a map of declared types.
// Fields absent from the declaration pass through untouched unless the
// validator is strict, in which case they are dropped with an error.
type SchemaValidator struct {
	fields map[string]Type
	strict bool
}

// Option configures a SchemaValidator.
type Option func(*SchemaValidator)

// Strict makes undeclared fields a validation error instead of passing
// them through.
func Strict() Option {
	return func(v *SchemaValidator) {
		v.strict = true
	}
}

// NewSchemaValidator creates a validator over the declared field types.
// A nil Type for a declared field is a configuration mistake and panics.
func NewSchemaValidator(fields map[string]Type, opts ...Option) *SchemaValidator {
	for name, typ := range fields {
		if typ == nil {
			panic(fmt.Sprintf("validate: field %q declared with nil type", name))
		}
	}
	v := &SchemaValidator{fields: fields}
	for _, opt := range opts {
		opt(v)
	}
	return v
}

// Clean validates every field of data independently. One bad field never
// halts extraction of the others.
func (v *SchemaValidator) Clean(data map[string]any) (map[string]any, []error) {
	cleaned := make(map[string]any, len(data))
	var errs []error

	for key, value := range data {
		typ, declared := v.fields[key]
		if !declared {
			if v.strict {
				errs = append(errs, &FieldError{Key: key, Reason: "not declared in schema", Value: value})
			} else {
				cleaned[key] = value
			}
			continue
		}

		converted, err := typ.Convert(value)
		if err != nil {
			errs = append(errs, &FieldError{Key: key, Reason: err.Error(), Value: value})
			continue
		}
		cleaned[key] = converted
	}

	return cleaned, errs
}
