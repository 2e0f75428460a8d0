package toon

import (
	"fmt"
	"io"
	"strings"

	"github.com/toonfmt/go-toon/internal/lexer"
	"github.com/toonfmt/go-toon/internal/token"
)

// Parse reads TOON text into a Document.
//
// The grammar is line-oriented: an optional @name line, a mandatory header
// line of |-delimited column names, an optional --- separator line, then one
// data row per non-blank line. Blank lines between rows are dropped. Each
// field is typed by Infer.
//
// Parse fails with a *ParseError wrapping ErrEmptyContent when the input has
// no non-blank content, and ErrMissingHeader when no header line follows the
// name line. Individual fields never fail; unparseable tokens degrade to
// strings.
func Parse(text string, opts ...Option) (*Document, error) {
	var o options
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	if strings.TrimSpace(text) == "" {
		return nil, &ParseError{Err: ErrEmptyContent}
	}

	doc := &Document{}
	l := lexer.New(text)
	sawHeader := false

	for {
		tok := l.NextToken()
		switch tok.Kind {
		case token.EOF:
			if !sawHeader {
				return nil, &ParseError{Err: ErrMissingHeader}
			}
			return doc, nil

		case token.BLANK, token.SEPARATOR:
			// Structurally insignificant; dropped, not kept as empty rows.

		case token.NAME:
			name := strings.TrimSpace(tok.Literal)
			name = strings.TrimPrefix(name, token.NameMarker)
			doc.Name = strings.TrimSpace(name)

		case token.HEADER:
			doc.Columns = splitFields(tok.Literal)
			sawHeader = true

		case token.DATA:
			fields := splitFields(tok.Literal)
			if o.strictArity && len(fields) != len(doc.Columns) {
				return nil, &ParseError{
					Line: tok.Line,
					Err:  fmt.Errorf("row has %d fields, header has %d: %w", len(fields), len(doc.Columns), ErrRowArity),
				}
			}
			row := make([]Value, len(fields))
			for i, f := range fields {
				row[i] = Infer(f)
			}
			doc.Rows = append(doc.Rows, row)
		}
	}
}

// splitFields splits a header or data line on the field delimiter and trims
// each field.
func splitFields(line string) []string {
	fields := strings.Split(line, token.Delimiter)
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
	return fields
}

// Decoder reads a TOON document from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r. Functional options such
// as StrictArity apply to every Decode call.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads a TOON document from the stream.
//
// Note: this is a non-streaming implementation. It reads the entire reader
// into memory before parsing.
func (d *Decoder) Decode() (*Document, error) {
	if d.r == nil {
		return nil, fmt.Errorf("toon: Decode(nil reader)")
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, err
	}
	return Parse(string(data), d.opts...)
}
