package toon

// Document is the in-memory representation of one TOON table. It is a plain
// value object: Parse builds one from text, Serialize renders one back, and
// neither mutates a Document it was given.
type Document struct {
	// Name is the optional table name. Empty means the source carried no
	// name line and none will be emitted.
	Name string

	// Columns holds the column names in order. Duplicates are permitted and
	// preserved.
	Columns []string

	// Rows holds the data rows in source order. The parser does not force
	// every row to match the header width (see StrictArity); Serialize does.
	Rows [][]Value
}

// Equal reports whether two Documents have the same name, columns and rows.
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	if d.Name != o.Name || len(d.Columns) != len(o.Columns) || len(d.Rows) != len(o.Rows) {
		return false
	}
	for i, c := range d.Columns {
		if o.Columns[i] != c {
			return false
		}
	}
	for i, row := range d.Rows {
		if len(row) != len(o.Rows[i]) {
			return false
		}
		for j, v := range row {
			if !v.Equal(o.Rows[i][j]) {
				return false
			}
		}
	}
	return true
}
