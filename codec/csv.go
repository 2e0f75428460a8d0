package codec

import (
	"bytes"
	"encoding/csv"
	"fmt"

	toon "github.com/toonfmt/go-toon"
)

// CSV returns a codec that reads and writes RFC 4180 CSV. Fields are typed
// with the same inference TOON uses, so a numeric or boolean column survives
// a format change instead of arriving as text. CSV has no slot for a table
// name; serializing drops it.
func CSV() Codec {
	return Codec{
		Name:       "csv",
		Extensions: []string{".csv"},
		Parse:      parseCSV,
		Serialize:  serializeCSV,
	}
}

func parseCSV(data []byte) (*toon.Document, error) {
	r := csv.NewReader(bytes.NewReader(data))
	// Keep the engine's row-width leniency; arity is the caller's call.
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("codec: csv: %w", err)
	}
	if len(records) == 0 {
		return nil, &toon.ParseError{Err: toon.ErrEmptyContent}
	}

	doc := &toon.Document{Columns: records[0]}
	doc.Rows = make([][]toon.Value, 0, len(records)-1)
	for _, rec := range records[1:] {
		row := make([]toon.Value, len(rec))
		for i, field := range rec {
			row[i] = toon.Infer(field)
		}
		doc.Rows = append(doc.Rows, row)
	}
	return doc, nil
}

func serializeCSV(doc *toon.Document) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(doc.Columns); err != nil {
		return nil, fmt.Errorf("codec: csv: %w", err)
	}
	for i, row := range doc.Rows {
		if len(row) != len(doc.Columns) {
			return nil, fmt.Errorf("codec: csv: row %d has %d values, header has %d: %w",
				i, len(row), len(doc.Columns), toon.ErrRowArity)
		}
		fields := make([]string, len(row))
		for j, v := range row {
			fields[j] = v.String()
		}
		if err := w.Write(fields); err != nil {
			return nil, fmt.Errorf("codec: csv: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("codec: csv: %w", err)
	}
	return buf.Bytes(), nil
}
