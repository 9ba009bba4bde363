package csvframe

import (
	"fmt"
	"io"
	"reflect"

	"github.com/jszwec/csvutil"
)

// recordBuffer collects records written by a csvutil.Encoder.
type recordBuffer struct {
	records [][]string
}

func (b *recordBuffer) Write(rec []string) error {
	b.records = append(b.records, append([]string(nil), rec...))
	return nil
}

// recordSource replays rows to a csvutil.Decoder.
type recordSource struct {
	records [][]string
	next    int
}

func (s *recordSource) Read() ([]string, error) {
	if s.next >= len(s.records) {
		return nil, io.EOF
	}
	rec := s.records[s.next]
	s.next++
	return rec, nil
}

// FromStructs builds a table from a slice of structs. Columns follow the
// struct's csv tags; cell types are inferred as for a loaded file.
func FromStructs(v any) (*Table, error) {
	val := reflect.ValueOf(v)
	for val.Kind() == reflect.Ptr && !val.IsNil() {
		val = val.Elem()
	}
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		return nil, fmt.Errorf("csvframe: FromStructs needs a slice of structs, got %T", v)
	}

	elem := val.Type().Elem()
	for elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}
	header, err := csvutil.Header(reflect.New(elem).Elem().Interface(), "")
	if err != nil {
		return nil, err
	}

	var buf recordBuffer
	enc := csvutil.NewEncoder(&buf)
	enc.AutoHeader = false
	for i := 0; i < val.Len(); i++ {
		if err := enc.Encode(val.Index(i).Interface()); err != nil {
			return nil, fmt.Errorf("csvframe: encode row %d: %w", i, err)
		}
	}

	names := columnNames(header)
	na := newNASet(nil, true)
	columns := make([]*Column, len(names))
	for j, name := range names {
		raw := make([]string, len(buf.records))
		for i, rec := range buf.records {
			raw[i] = rec[j]
		}
		if len(raw) == 0 {
			columns[j] = &Column{name: name, typ: ColumnTypeString, values: []any{}}
			continue
		}
		columns[j] = inferColumn(name, raw, na)
	}
	return NewTable(columns...)
}

// DecodeRows decodes every row into dst, a pointer to a slice of structs,
// matching columns to fields by csv tag. Missing cells decode from "", so
// nullable columns need pointer fields, which stay nil. dst is only assigned
// when every row decodes.
func (t *Table) DecodeRows(dst any) error {
	if t == nil {
		return ErrNilTable
	}
	if len(t.columns) == 0 {
		return ErrNoColumns
	}
	out := reflect.ValueOf(dst)
	if out.Kind() != reflect.Ptr || out.IsNil() || out.Elem().Kind() != reflect.Slice {
		return fmt.Errorf("csvframe: DecodeRows needs a pointer to a slice, got %T", dst)
	}

	src := &recordSource{records: make([][]string, 0, t.rows)}
	for i := 0; i < t.rows; i++ {
		rec := make([]string, len(t.columns))
		for j, c := range t.columns {
			text, ok := formatCell(c.values[i], "")
			if !ok {
				return &SerializationError{Column: c.name, Row: i, Value: c.values[i]}
			}
			rec[j] = text
		}
		src.records = append(src.records, rec)
	}

	dec, err := csvutil.NewDecoder(src, t.Names()...)
	if err != nil {
		return err
	}
	rows := reflect.New(out.Elem().Type())
	if err := dec.Decode(rows.Interface()); err != nil && err != io.EOF {
		return err
	}
	out.Elem().Set(rows.Elem())
	return nil
}
