package toon

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies which of the five scalar variants a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
)

// String returns the lowercase name of the kind, for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	}
	return "invalid"
}

// Value is one scalar cell of a Document: a tagged union over exactly five
// variants (null, bool, int64, float64, string). The zero Value is null.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
}

// Null returns the null Value.
func Null() Value { return Value{} }

// Bool returns a boolean Value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an integer Value.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Float returns a floating-point Value.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String returns a string Value. The text is kept verbatim; TOON has no
// escaping, so a string containing the field delimiter or a line break will
// corrupt row structure when serialized. See the package documentation.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null Value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean payload, or false if v is not a bool.
func (v Value) Bool() bool { return v.b }

// Int returns the integer payload, or 0 if v is not an int.
func (v Value) Int() int64 { return v.i }

// Float returns the floating-point payload, or 0 if v is not a float.
func (v Value) Float() float64 { return v.f }

// String renders v as TOON field text, the exact inverse of Infer: null and
// NaN render as the empty string, booleans as lowercase true/false, numbers
// in decimal notation, and strings verbatim. Re-inferring the result yields
// an equal Value for every variant except strings that themselves look like
// another variant.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return ""
	case KindBool:
		if v.b {
			return "true"
		}
		return "false"
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindString:
		return v.s
	}
	return ""
}

// Equal reports whether two Values hold the same variant and payload.
func (v Value) Equal(w Value) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == w.b
	case KindInt:
		return v.i == w.i
	case KindFloat:
		return v.f == w.f || (math.IsNaN(v.f) && math.IsNaN(w.f))
	case KindString:
		return v.s == w.s
	}
	return true
}

// formatFloat renders f so that the result re-infers as a float: integral
// values keep a trailing ".0". NaN renders as the empty string (null).
func formatFloat(f float64) string {
	if math.IsNaN(f) {
		return ""
	}
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !math.IsInf(f, 0) && !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
