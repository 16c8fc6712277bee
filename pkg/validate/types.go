package validate

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// Type converts a raw decoded value into its canonical form, or reports
// why it cannot. Conversion covers the coercions model output commonly
// needs (JSON numbers arriving as float64, numerics quoted as strings).
type Type interface {
	// Name returns the human-readable name of the type (e.g. "string", "int").
	Name() string
	// Convert returns the canonical value, or an error if it does not conform.
	Convert(value any) (any, error)
}

// --- Built-in Type Implementations ---

// StringType accepts strings.
type StringType struct{}

func (t *StringType) Name() string { return "string" }

func (t *StringType) Convert(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("expected string, got %T", value)
	}
	return s, nil
}

// IntType accepts integers, whole floats and numeric strings.
type IntType struct{}

func (t *IntType) Name() string { return "int" }

func (t *IntType) Convert(value any) (any, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int8, int16, int32:
		return reflect.ValueOf(v).Int(), nil
	case int64:
		return v, nil
	case float64:
		// JSON unmarshaling yields float64 for all numbers.
		if v == float64(int64(v)) {
			return int64(v), nil
		}
		return nil, fmt.Errorf("expected int, got float (not a whole number)")
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("expected int, got string %q", v)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("expected int, got %T", value)
	}
}

// FloatType accepts floats, integers and numeric strings.
type FloatType struct{}

func (t *FloatType) Name() string { return "float" }

func (t *FloatType) Convert(value any) (any, error) {
	switch v := value.(type) {
	case float32:
		return float64(v), nil
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return nil, fmt.Errorf("expected float, got string %q", v)
		}
		return f, nil
	default:
		return nil, fmt.Errorf("expected float, got %T", value)
	}
}

// BoolType accepts booleans and "true"/"false" strings.
type BoolType struct{}

func (t *BoolType) Name() string { return "bool" }

func (t *BoolType) Convert(value any) (any, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		b, err := strconv.ParseBool(strings.TrimSpace(strings.ToLower(v)))
		if err != nil {
			return nil, fmt.Errorf("expected bool, got string %q", v)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("expected bool, got %T", value)
	}
}

// EnumType accepts only values from a fixed set of strings.
type EnumType struct {
	values []string
}

func (t *EnumType) Name() string {
	return fmt.Sprintf("enum(%s)", strings.Join(t.values, "|"))
}

func (t *EnumType) Convert(value any) (any, error) {
	s, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("expected string, got %T", value)
	}
	for _, v := range t.values {
		if strings.EqualFold(s, v) {
			return v, nil
		}
	}
	return nil, fmt.Errorf("value %q not in enum %v", s, t.values)
}

// RangeType accepts numbers within [min, max].
type RangeType struct {
	inner    Type
	min, max float64
}

func (t *RangeType) Name() string {
	return fmt.Sprintf("%s[%v..%v]", t.inner.Name(), t.min, t.max)
}

func (t *RangeType) Convert(value any) (any, error) {
	converted, err := t.inner.Convert(value)
	if err != nil {
		return nil, err
	}

	var f float64
	switch v := converted.(type) {
	case int64:
		f = float64(v)
	case float64:
		f = v
	default:
		return nil, fmt.Errorf("range check requires a numeric type, got %T", converted)
	}

	if f < t.min || f > t.max {
		return nil, fmt.Errorf("value %v out of range [%v, %v]", f, t.min, t.max)
	}
	return converted, nil
}

// SliceType accepts slices whose elements all convert with elemType.
type SliceType struct {
	elemType Type
}

func (t *SliceType) Name() string {
	return fmt.Sprintf("[%s]", t.elemType.Name())
}

func (t *SliceType) Convert(value any) (any, error) {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("expected slice, got %T", value)
	}

	out := make([]any, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elem, err := t.elemType.Convert(rv.Index(i).Interface())
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
		out = append(out, elem)
	}
	return out, nil
}

// CustomType applies a user-defined conversion function.
type CustomType struct {
	name    string
	convert func(any) (any, error)
}

func (t *CustomType) Name() string { return t.name }

func (t *CustomType) Convert(value any) (any, error) {
	return t.convert(value)
}

// --- Factory Functions ---

// String creates a string type.
func String() Type { return &StringType{} }

// Int creates an integer type.
func Int() Type { return &IntType{} }

// Float creates a float type.
func Float() Type { return &FloatType{} }

// Bool creates a boolean type.
func Bool() Type { return &BoolType{} }

// Enum creates a type accepting only the given string values.
func Enum(values ...string) Type { return &EnumType{values: values} }

// IntRange creates an integer type bounded to [min, max].
func IntRange(min, max int64) Type {
	return &RangeType{inner: Int(), min: float64(min), max: float64(max)}
}

// FloatRange creates a float type bounded to [min, max].
func FloatRange(min, max float64) Type {
	return &RangeType{inner: Float(), min: min, max: max}
}

// Slice creates a slice type for elements of the given type.
func Slice(elemType Type) Type { return &SliceType{elemType: elemType} }

// Custom creates a type with a user-defined conversion function.
func Custom(name string, convert func(any) (any, error)) Type {
	return &CustomType{name: name, convert: convert}
}
