package toon

import (
	"fmt"
	"io"
	"strings"

	"github.com/toonfmt/go-toon/internal/token"
)

// Serialize renders doc as normative TOON text: the name line when the
// document has a name, the header line, the --- separator, then one line per
// row with values rendered by Value.String. Lines are joined with \n and the
// result carries no trailing newline.
//
// Every row must have exactly as many values as the document has columns;
// a mismatched row is a caller error and Serialize reports it, wrapping
// ErrRowArity, rather than repairing it.
//
// String values are emitted verbatim. The format has no quoting, so a string
// containing the field delimiter or a line break corrupts row structure on a
// later parse; callers own that constraint.
func Serialize(doc *Document) (string, error) {
	lines := make([]string, 0, len(doc.Rows)+3)

	if doc.Name != "" {
		lines = append(lines, token.NameMarker+doc.Name)
	}
	lines = append(lines, strings.Join(doc.Columns, token.Delimiter))
	lines = append(lines, token.Separator)

	for i, row := range doc.Rows {
		if len(row) != len(doc.Columns) {
			return "", fmt.Errorf("toon: row %d has %d values, header has %d: %w",
				i, len(row), len(doc.Columns), ErrRowArity)
		}
		fields := make([]string, len(row))
		for j, v := range row {
			fields[j] = v.String()
		}
		lines = append(lines, strings.Join(fields, token.Delimiter))
	}

	return strings.Join(lines, "\n"), nil
}

// Encoder writes TOON documents to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the TOON encoding of doc to the stream.
func (e *Encoder) Encode(doc *Document) error {
	s, err := Serialize(doc)
	if err != nil {
		return err
	}
	_, err = io.WriteString(e.w, s)
	return err
}
