package toon

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"sync"
)

// Marshal returns the TOON encoding of v.
//
// v may be a *Document, which is serialized as-is, or a slice (or array) of
// structs or struct pointers, one row per element. Columns come from exported
// field names, overridden by a `toon:"name"` tag; fields tagged `toon:"-"`
// and embedded fields are skipped. Supported field types are the five TOON
// variants: strings, bools, signed and unsigned integers, floats, plus
// pointers to any of those (nil encodes as null).
//
// The TableName option sets the document's name line.
func Marshal(v any, opts ...Option) ([]byte, error) {
	var o options
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return nil, err
		}
	}

	doc, err := buildDocument(v)
	if err != nil {
		return nil, err
	}
	if o.tableName != "" {
		doc.Name = o.tableName
	}

	s, err := Serialize(doc)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// Unmarshal parses TOON-encoded data and stores the result in the value
// pointed to by v.
//
// v may be a **Document or *Document to receive the parsed table directly,
// or a *[]T where T is a struct or struct pointer. Columns are matched to
// fields by `toon:` tag, then by case-insensitive field name; columns with
// no matching field are ignored. Null stores the field's zero value (nil for
// pointer fields). Integers widen into float fields; any other variant
// mismatch fails with an *UnmarshalTypeError.
//
// Rows wider than the header simply have their extra fields dropped here;
// use StrictArity to reject them during parsing instead.
func Unmarshal(data []byte, v any, opts ...Option) error {
	doc, err := Parse(string(data), opts...)
	if err != nil {
		return err
	}

	switch out := v.(type) {
	case **Document:
		*out = doc
		return nil
	case *Document:
		*out = *doc
		return nil
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return fmt.Errorf("toon: Unmarshal(non-pointer %T or nil)", v)
	}
	if rv.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("toon: cannot unmarshal rows into %s", rv.Elem().Type())
	}
	return bindRows(doc, rv.Elem())
}

func buildDocument(v any) (*Document, error) {
	if doc, ok := v.(*Document); ok {
		if doc == nil {
			return nil, fmt.Errorf("toon: Marshal(nil *Document)")
		}
		out := *doc
		return &out, nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("toon: Marshal(nil %T)", v)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, fmt.Errorf("toon: cannot marshal %s as rows, want a slice of structs", rv.Type())
	}

	elem := rv.Type().Elem()
	for elem.Kind() == reflect.Pointer {
		elem = elem.Elem()
	}
	if elem.Kind() != reflect.Struct {
		return nil, fmt.Errorf("toon: cannot marshal %s as rows, want a slice of structs", rv.Type())
	}

	fields := cachedFields(elem)
	doc := &Document{Columns: make([]string, len(fields))}
	for i, f := range fields {
		doc.Columns[i] = f.name
	}

	doc.Rows = make([][]Value, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		ev := rv.Index(i)
		for ev.Kind() == reflect.Pointer {
			if ev.IsNil() {
				return nil, fmt.Errorf("toon: cannot marshal nil element at row %d", i)
			}
			ev = ev.Elem()
		}
		row := make([]Value, len(fields))
		for j, f := range fields {
			val, err := valueOf(ev.FieldByIndex(f.idx))
			if err != nil {
				return nil, fmt.Errorf("toon: row %d, column %q: %w", i, f.name, err)
			}
			row[j] = val
		}
		doc.Rows = append(doc.Rows, row)
	}
	return doc, nil
}

func bindRows(doc *Document, rv reflect.Value) error {
	elem := rv.Type().Elem()
	base := elem
	for base.Kind() == reflect.Pointer {
		base = base.Elem()
	}
	if base.Kind() != reflect.Struct {
		return fmt.Errorf("toon: cannot unmarshal rows into %s", rv.Type())
	}

	fields := cachedFields(base)

	// Resolve each column to a field once, not per row.
	targets := make([]*structField, len(doc.Columns))
	for i, col := range doc.Columns {
		targets[i] = findField(fields, col)
	}

	out := reflect.MakeSlice(rv.Type(), len(doc.Rows), len(doc.Rows))
	for i, row := range doc.Rows {
		ev := out.Index(i)
		for ev.Kind() == reflect.Pointer {
			if ev.IsNil() {
				ev.Set(reflect.New(ev.Type().Elem()))
			}
			ev = ev.Elem()
		}
		for j, val := range row {
			if j >= len(targets) || targets[j] == nil {
				continue
			}
			fv := ev.FieldByIndex(targets[j].idx)
			if err := setValue(val, fv, i, doc.Columns[j]); err != nil {
				return err
			}
		}
	}
	rv.Set(out)
	return nil
}

// valueOf converts a Go struct field into a Value.
func valueOf(rv reflect.Value) (Value, error) {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Null(), nil
		}
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Value{}, fmt.Errorf("uint64 %d overflows int64", u)
		}
		return Int(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	default:
		return Value{}, fmt.Errorf("unsupported field type %s", rv.Type())
	}
}

// setValue stores a Value into a Go struct field.
func setValue(val Value, rv reflect.Value, row int, column string) error {
	if val.IsNull() {
		rv.Set(reflect.Zero(rv.Type()))
		return nil
	}
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		rv = rv.Elem()
	}

	mismatch := func() error {
		return &UnmarshalTypeError{Kind: val.Kind(), Type: rv.Type(), Row: row, Column: column}
	}

	switch val.Kind() {
	case KindString:
		if rv.Kind() != reflect.String {
			return mismatch()
		}
		rv.SetString(val.String())
	case KindBool:
		if rv.Kind() != reflect.Bool {
			return mismatch()
		}
		rv.SetBool(val.Bool())
	case KindInt:
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if rv.OverflowInt(val.Int()) {
				return fmt.Errorf("toon: integer %d overflows Go type %s (row %d, column %q)",
					val.Int(), rv.Type(), row, column)
			}
			rv.SetInt(val.Int())
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			i := val.Int()
			if i < 0 || rv.OverflowUint(uint64(i)) {
				return fmt.Errorf("toon: integer %d overflows Go type %s (row %d, column %q)",
					i, rv.Type(), row, column)
			}
			rv.SetUint(uint64(i))
		case reflect.Float32, reflect.Float64:
			rv.SetFloat(float64(val.Int()))
		default:
			return mismatch()
		}
	case KindFloat:
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			if rv.OverflowFloat(val.Float()) {
				return fmt.Errorf("toon: float %g overflows Go type %s (row %d, column %q)",
					val.Float(), rv.Type(), row, column)
			}
			rv.SetFloat(val.Float())
		default:
			return mismatch()
		}
	default:
		return mismatch()
	}
	return nil
}

// structField is one cached column-producing field of a struct type.
type structField struct {
	name string
	idx  []int
}

// fieldCache caches the parsed field list per struct type, so tags are not
// re-parsed on every call.
var fieldCache sync.Map // reflect.Type -> []structField

func cachedFields(t reflect.Type) []structField {
	if f, ok := fieldCache.Load(t); ok {
		return f.([]structField)
	}

	fields := []structField{}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous || !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get("toon")
		if tag == "-" {
			continue
		}
		f := structField{idx: sf.Index}
		name, _, _ := strings.Cut(tag, ",")
		if name != "" {
			f.name = name
		} else {
			f.name = sf.Name
		}
		fields = append(fields, f)
	}

	fieldCache.Store(t, fields)
	return fields
}

// findField resolves a column name to a field: exact match on the tag/field
// name first, then case-insensitive.
func findField(fields []structField, column string) *structField {
	for i := range fields {
		if fields[i].name == column {
			return &fields[i]
		}
	}
	for i := range fields {
		if strings.EqualFold(fields[i].name, column) {
			return &fields[i]
		}
	}
	return nil
}
