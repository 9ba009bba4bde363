package csvframe

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type columnView struct {
	Name   string
	Type   ColumnType
	Values []any
}

func view(t *Table) []columnView {
	out := make([]columnView, 0, t.NumColumns())
	for _, c := range t.Columns() {
		out = append(out, columnView{Name: c.Name(), Type: c.Type(), Values: c.Values()})
	}
	return out
}

func TestNewColumnTypes(t *testing.T) {
	t.Parallel()

	when := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	tests := []struct {
		name   string
		values []any
		typ    ColumnType
		want   []any
	}{
		{name: "ints", values: []any{1, int8(2), uint16(3), int64(4)}, typ: ColumnTypeInt, want: []any{int64(1), int64(2), int64(3), int64(4)}},
		{name: "intsWithNil", values: []any{1, nil}, typ: ColumnTypeInt, want: []any{int64(1), nil}},
		{name: "floats", values: []any{float32(1.5), 2.25}, typ: ColumnTypeFloat, want: []any{1.5, 2.25}},
		{name: "intsAndFloats", values: []any{1, 2.5}, typ: ColumnTypeFloat, want: []any{1.0, 2.5}},
		{name: "bools", values: []any{true, nil, false}, typ: ColumnTypeBool, want: []any{true, nil, false}},
		{name: "strings", values: []any{"a", "b"}, typ: ColumnTypeString, want: []any{"a", "b"}},
		{name: "allMissing", values: []any{nil, nil}, typ: ColumnTypeFloat, want: []any{nil, nil}},
		{name: "empty", values: nil, typ: ColumnTypeFloat, want: []any{}},
		{name: "mixed", values: []any{1, "a"}, typ: ColumnTypeObject, want: []any{int64(1), "a"}},
		{name: "times", values: []any{when}, typ: ColumnTypeObject, want: []any{when}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := NewColumn("c", tc.values...)
			if c.Type() != tc.typ {
				t.Fatalf("Type() = %s, want %s", c.Type(), tc.typ)
			}
			if diff := cmp.Diff(tc.want, c.Values()); diff != "" {
				t.Fatalf("Values() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestColumnAccessors(t *testing.T) {
	t.Parallel()

	c := NewColumn("mix", int64(7), 2.5, true, "s", nil)
	if v, ok := c.Int(0); !ok || v != 7 {
		t.Fatalf("Int(0) = %v, %v", v, ok)
	}
	if v, ok := c.Float(1); !ok || v != 2.5 {
		t.Fatalf("Float(1) = %v, %v", v, ok)
	}
	if v, ok := c.Bool(2); !ok || !v {
		t.Fatalf("Bool(2) = %v, %v", v, ok)
	}
	if v, ok := c.Text(3); !ok || v != "s" {
		t.Fatalf("Text(3) = %q, %v", v, ok)
	}
	if _, ok := c.Int(3); ok {
		t.Fatalf("Int(3) on a string cell should fail")
	}
	if !c.IsNull(4) || c.IsNull(0) {
		t.Fatalf("IsNull mismatch")
	}

	values := c.Values()
	values[0] = "changed"
	if c.Value(0) != int64(7) {
		t.Fatalf("Values() must return a copy")
	}
}

func TestNewTableInvariants(t *testing.T) {
	t.Parallel()

	_, err := NewTable(NewColumn("a", 1), NewColumn("a", 2))
	if !errors.Is(err, ErrDuplicateColumn) {
		t.Fatalf("duplicate names: err = %v, want ErrDuplicateColumn", err)
	}

	_, err = NewTable(NewColumn("a", 1, 2), NewColumn("b", 1))
	if !errors.Is(err, ErrColumnLength) {
		t.Fatalf("ragged columns: err = %v, want ErrColumnLength", err)
	}

	if _, err := NewTable(NewColumn("a"), nil); err == nil {
		t.Fatalf("nil column: expected error")
	}
}

func TestTableAccessors(t *testing.T) {
	t.Parallel()

	tbl, err := NewTable(
		NewColumn("name", "Alice", "Bob"),
		NewColumn("age", 30, 25),
	)
	if err != nil {
		t.Fatalf("NewTable() error = %v", err)
	}

	if tbl.NumRows() != 2 || tbl.NumColumns() != 2 {
		t.Fatalf("shape = %dx%d, want 2x2", tbl.NumRows(), tbl.NumColumns())
	}
	if diff := cmp.Diff([]string{"name", "age"}, tbl.Names()); diff != "" {
		t.Fatalf("Names() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]any{"Bob", int64(25)}, tbl.Row(1)); diff != "" {
		t.Fatalf("Row(1) mismatch (-want +got):\n%s", diff)
	}
	age, ok := tbl.Column("age")
	if !ok || age != tbl.ColumnAt(1) {
		t.Fatalf("Column(age) did not resolve to the second column")
	}
	if _, ok := tbl.Column("missing"); ok {
		t.Fatalf("Column(missing) should not resolve")
	}

	empty, err := NewTable()
	if err != nil || empty.NumRows() != 0 || empty.NumColumns() != 0 {
		t.Fatalf("NewTable() with no columns = %v, %v", empty, err)
	}
}
