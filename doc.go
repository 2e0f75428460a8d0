/*
Package toon parses and serializes TOON, a compact line-based notation for
tabular data designed to keep token counts low when tables are embedded in
text consumed by language models.

A TOON document is an optional @name line, a header line of |-delimited
column names, an optional --- separator, and one data row per line:

	@employees
	name|department|salary
	---
	Alice|Engineering|95000.0
	Bob|Marketing|75000.0

The format carries no schema. Types are recovered by inference: each field
is read as null (empty, or one of null/none/na/nan), a boolean, an integer,
a float, or falls back to a verbatim string. Serialization applies the exact
inverse, so a document round-trips with its int/float distinction intact.

The package offers two workflows:

1. Document-oriented

Parse and Serialize convert between TOON text and a Document, the ordered
columns-and-rows value model. Decoder and Encoder wrap them for streams,
ReadFile and WriteFile for .toon files:

	doc, err := toon.Parse(src)
	if err != nil {
		// handle error
	}
	out, err := toon.Serialize(doc)

2. Struct binding

Marshal and Unmarshal bind rows onto slices of Go structs, with `toon:"name"`
field tags, in the manner of encoding/json:

	type Employee struct {
		Name   string  `toon:"name"`
		Dept   string  `toon:"department"`
		Salary float64 `toon:"salary"`
	}

	var rows []Employee
	if err := toon.Unmarshal(src, &rows); err != nil {
		// handle error
	}

Strings are emitted verbatim: TOON has no quoting or escaping, so a string
value containing "|" or a line break corrupts row structure on a later
parse. That is a limitation of the format itself, not of this package, and
callers embedding arbitrary text must guard against it.

By default the parser does not require every row to match the header width;
the StrictArity option turns that leniency off.
*/
package toon
