package lspwire

import "fmt"

// FieldError reports a required field that is missing from a wire object or
// present with the wrong shape. Type is the entity being decoded and Field
// the wire key that failed. Raw holds the offending raw JSON when the field
// was present but malformed; it is empty when the field was missing.
type FieldError struct {
	Type  string
	Field string
	Raw   string
}

// Error implements the error interface.
func (e *FieldError) Error() string {
	if e.Raw == "" {
		return fmt.Sprintf("%s: missing required field %q", e.Type, e.Field)
	}
	return fmt.Sprintf("%s: invalid field %q: %s", e.Type, e.Field, e.Raw)
}

// EnumError reports a wire number that does not map to any variant of a
// closed enumeration. Decoding never falls back to a default variant;
// an unknown code always surfaces as an EnumError.
type EnumError struct {
	Type string
	Raw  string
}

// Error implements the error interface.
func (e *EnumError) Error() string {
	return fmt.Sprintf("%s: invalid enum value %s", e.Type, e.Raw)
}

// ShapeError reports a wire value whose shape matches no known encoding of
// the target type: a non-object handed to a record decoder, or a value that
// is neither of the two MarkedString shapes.
type ShapeError struct {
	Type string
	Raw  string
}

// Error implements the error interface.
func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: unrecognized shape: %s", e.Type, e.Raw)
}
