package toon

import (
	"strconv"
	"strings"
)

// nullWords are the null keyword spellings, compared case-insensitively.
var nullWords = map[string]bool{
	"null": true,
	"none": true,
	"na":   true,
	"nan":  true,
}

// Infer maps a raw text token to a typed Value. It is a total function:
// tokens that fit no other variant degrade to a string, never an error.
//
// The rule, first match wins:
//  1. trim surrounding whitespace
//  2. empty, or a null keyword (null, none, na, nan) -> null
//  3. true / false -> bool
//  4. no decimal point or exponent marker: integer parse -> int
//  5. otherwise: floating-point parse -> float
//  6. anything left -> string, verbatim after trimming
//
// Keyword matching is case-insensitive. The punctuation check at step 4 keeps
// integers out of scientific notation and floats out of the integer parser;
// a failed numeric parse falls through to string rather than a float retry,
// so tokens like "inf" stay strings.
func Infer(token string) Value {
	tok := strings.TrimSpace(token)
	if tok == "" {
		return Null()
	}

	switch lower := strings.ToLower(tok); {
	case nullWords[lower]:
		return Null()
	case lower == "true":
		return Bool(true)
	case lower == "false":
		return Bool(false)
	}

	if !strings.ContainsAny(tok, ".eE") {
		if i, err := strconv.ParseInt(tok, 10, 64); err == nil {
			return Int(i)
		}
		return String(tok)
	}
	if f, err := strconv.ParseFloat(tok, 64); err == nil {
		return Float(f)
	}
	return String(tok)
}
