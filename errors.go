package csvframe

import (
	"errors"
	"fmt"

	"github.com/oleg578/csvframe/internal/record"
)

// ParseError reports malformed CSV content with its line and column.
type ParseError = record.ParseError

var (
	// ErrBareQuote is returned when a quote appears inside an unquoted field.
	ErrBareQuote = record.ErrBareQuote
	// ErrUnterminatedQuote is returned when a quoted field is still open at
	// end of input.
	ErrUnterminatedQuote = record.ErrUnterminatedQuote
	// ErrFieldCount is returned when a row's width differs from the header.
	ErrFieldCount = record.ErrFieldCount
	// ErrNoColumns is returned when the input holds no header row, or when
	// rows are decoded from a table without columns.
	ErrNoColumns = errors.New("csvframe: no columns to parse from input")
	// ErrNilTable is returned when a nil table is saved or decoded.
	ErrNilTable = errors.New("csvframe: table is nil")
	// ErrDuplicateColumn is returned by NewTable when two columns share a name.
	ErrDuplicateColumn = errors.New("csvframe: duplicate column name")
	// ErrColumnLength is returned by NewTable when columns differ in length.
	ErrColumnLength = errors.New("csvframe: columns differ in length")
	// ErrNotDirectory is wrapped in a *FileAccessError when the parent of a
	// save path is not a directory.
	ErrNotDirectory = errors.New("csvframe: not a directory")
)

// FileAccessError wraps a filesystem failure for a path. The underlying
// error stays reachable, so errors.Is(err, fs.ErrNotExist) works.
type FileAccessError struct {
	Op   string
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("csvframe: %s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error.
func (e *FileAccessError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SerializationError reports a cell that has no textual form.
type SerializationError struct {
	Column string
	Row    int
	Value  any
}

func (e *SerializationError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("csvframe: cannot serialize %T in column %q, row %d", e.Value, e.Column, e.Row)
}

func accessError(op, path string, err error) error {
	if err == nil {
		return nil
	}
	var fae *FileAccessError
	if errors.As(err, &fae) {
		return err
	}
	return &FileAccessError{Op: op, Path: path, Err: err}
}
