package csvframe

import "math"

// ColumnType names the inferred type of a column's cells.
type ColumnType string

const (
	ColumnTypeInt    ColumnType = "int64"
	ColumnTypeFloat  ColumnType = "float64"
	ColumnTypeBool   ColumnType = "bool"
	ColumnTypeString ColumnType = "string"
	// ColumnTypeObject holds cells of mixed or non-scalar Go types.
	ColumnTypeObject ColumnType = "object"
)

// Column is a named sequence of cells. A nil cell is missing.
type Column struct {
	name   string
	typ    ColumnType
	values []any
}

// NewColumn builds a column from Go values. Integers are stored as int64 and
// floats as float64. The type is int64, float64, bool or string when every
// non-nil value agrees (ints mixed with floats become float64), object
// otherwise. A column without non-nil values is float64.
func NewColumn(name string, values ...any) *Column {
	cells := make([]any, len(values))
	var ints, floats, bools, strs, others int
	for i, v := range values {
		v = normalize(v)
		cells[i] = v
		switch v.(type) {
		case nil:
		case int64:
			ints++
		case float64:
			floats++
		case bool:
			bools++
		case string:
			strs++
		default:
			others++
		}
	}

	typ := ColumnTypeObject
	switch {
	case ints+floats+bools+strs+others == 0:
		typ = ColumnTypeFloat
	case others > 0:
	case ints > 0 && bools+strs == 0:
		typ = ColumnTypeInt
		if floats > 0 {
			typ = ColumnTypeFloat
			for i, v := range cells {
				if n, ok := v.(int64); ok {
					cells[i] = float64(n)
				}
			}
		}
	case floats > 0 && bools+strs == 0:
		typ = ColumnTypeFloat
	case bools > 0 && strs == 0 && ints+floats == 0:
		typ = ColumnTypeBool
	case strs > 0 && bools+ints+floats == 0:
		typ = ColumnTypeString
	}
	return &Column{name: name, typ: typ, values: cells}
}

func normalize(v any) any {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint:
		if uint64(n) <= math.MaxInt64 {
			return int64(n)
		}
	case uint64:
		if n <= math.MaxInt64 {
			return int64(n)
		}
	case float32:
		return float64(n)
	}
	return v
}

// Name returns the column name.
func (c *Column) Name() string { return c.name }

// Type returns the column's cell type.
func (c *Column) Type() ColumnType { return c.typ }

// Len returns the number of rows.
func (c *Column) Len() int { return len(c.values) }

// Value returns the cell at row i, nil when missing.
func (c *Column) Value(i int) any { return c.values[i] }

// Values returns a copy of the cells.
func (c *Column) Values() []any {
	out := make([]any, len(c.values))
	copy(out, c.values)
	return out
}

// IsNull reports whether row i is missing. NaN counts as missing.
func (c *Column) IsNull(i int) bool {
	switch v := c.values[i].(type) {
	case nil:
		return true
	case float64:
		return math.IsNaN(v)
	}
	return false
}

// Int returns row i as an int64; ok is false when the cell is missing or
// of another type.
func (c *Column) Int(i int) (int64, bool) {
	v, ok := c.values[i].(int64)
	return v, ok
}

// Float returns row i as a float64; ok is false when the cell is missing or
// of another type.
func (c *Column) Float(i int) (float64, bool) {
	v, ok := c.values[i].(float64)
	return v, ok
}

// Bool returns row i as a bool; ok is false when the cell is missing or of
// another type.
func (c *Column) Bool(i int) (bool, bool) {
	v, ok := c.values[i].(bool)
	return v, ok
}

// Text returns row i as a string; ok is false when the cell is missing or
// of another type.
func (c *Column) Text(i int) (string, bool) {
	v, ok := c.values[i].(string)
	return v, ok
}
