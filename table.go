package csvframe

import "fmt"

// Table is an ordered set of uniquely named, equal-length columns.
type Table struct {
	columns []*Column
	byName  map[string]int
	rows    int
}

// NewTable assembles columns in the given order.
func NewTable(columns ...*Column) (*Table, error) {
	t := &Table{
		columns: make([]*Column, 0, len(columns)),
		byName:  make(map[string]int, len(columns)),
	}
	for i, c := range columns {
		if c == nil {
			return nil, fmt.Errorf("csvframe: column %d is nil", i)
		}
		if _, dup := t.byName[c.name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, c.name)
		}
		if i == 0 {
			t.rows = c.Len()
		} else if c.Len() != t.rows {
			return nil, fmt.Errorf("%w: %q has %d rows, want %d", ErrColumnLength, c.name, c.Len(), t.rows)
		}
		t.byName[c.name] = i
		t.columns = append(t.columns, c)
	}
	return t, nil
}

// NumRows returns the number of rows.
func (t *Table) NumRows() int { return t.rows }

// NumColumns returns the number of columns.
func (t *Table) NumColumns() int { return len(t.columns) }

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.name
	}
	return names
}

// Column looks a column up by name.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.byName[name]
	if !ok {
		return nil, false
	}
	return t.columns[i], true
}

// ColumnAt returns the column at position i. It panics if i is out of range.
func (t *Table) ColumnAt(i int) *Column { return t.columns[i] }

// Columns returns the columns in order. The slice is a copy.
func (t *Table) Columns() []*Column {
	out := make([]*Column, len(t.columns))
	copy(out, t.columns)
	return out
}

// Row returns the cells of row i across all columns.
func (t *Table) Row(i int) []any {
	row := make([]any, len(t.columns))
	for j, c := range t.columns {
		row[j] = c.values[i]
	}
	return row
}
