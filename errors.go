package toon

import (
	"errors"
	"fmt"
	"reflect"
)

// Sentinel errors reported by Parse. Match them with errors.Is; the error
// returned by Parse is always a *ParseError wrapping one of these.
var (
	// ErrEmptyContent means the input had no non-blank lines.
	ErrEmptyContent = errors.New("empty content")

	// ErrMissingHeader means no header line remained after the optional
	// name line.
	ErrMissingHeader = errors.New("missing header line")

	// ErrRowArity means a row's field count differed from the header's
	// column count. Parse reports it only under StrictArity; Serialize
	// reports it whenever a row does not match the header.
	ErrRowArity = errors.New("row field count does not match header")
)

// A ParseError reports a failure to parse TOON text. Line is the 1-based
// source line at fault, or 0 when the whole input is.
type ParseError struct {
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("toon: line %d: %v", e.Line, e.Err)
	}
	return "toon: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error { return e.Err }

// An UnmarshalTypeError describes a TOON value that could not be stored in
// the Go struct field Unmarshal matched it to.
type UnmarshalTypeError struct {
	Kind   Kind         // the TOON variant of the offending value
	Type   reflect.Type // the Go type it could not be stored in
	Row    int          // 0-based row index
	Column string       // column name
}

func (e *UnmarshalTypeError) Error() string {
	return fmt.Sprintf("toon: cannot unmarshal %s value into Go type %s (row %d, column %q)",
		e.Kind, e.Type, e.Row, e.Column)
}
