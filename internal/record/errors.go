package record

import (
	"errors"
	"fmt"
)

var (
	// ErrBareQuote is returned when a quote appears inside an unquoted field.
	ErrBareQuote = errors.New("csvframe: bare quote in non-quoted field")
	// ErrUnterminatedQuote is returned when a quoted field is still open at EOF.
	ErrUnterminatedQuote = errors.New("csvframe: unterminated quoted field")
	// ErrFieldCount is returned when a record has an unexpected number of fields.
	ErrFieldCount = errors.New("csvframe: wrong number of fields")
)

// ParseError locates a malformed record in the input.
type ParseError struct {
	Line   int
	Column int
	Err    error
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("csvframe: parse error on line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
