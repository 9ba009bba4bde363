package record

import (
	"bufio"
	"errors"
	"io"
)

var (
	errNilWriter      = errors.New("csvframe: writer is nil")
	errWriterNoTarget = errors.New("csvframe: writer destination cannot be nil")
)

// Writer emits delimited records through an internal buffer.
type Writer struct {
	// Comma is the field delimiter. Default is ','.
	Comma byte
	// Quote is the quote character. Default is '"'.
	Quote byte
	// UseCRLF terminates records with \r\n instead of \n.
	UseCRLF bool
	// AlwaysQuote quotes every field.
	AlwaysQuote bool

	dst  *bufio.Writer
	line []byte
	err  error
}

// NewWriter returns a Writer targeting w. It panics if w is nil.
func NewWriter(w io.Writer) *Writer {
	if w == nil {
		panic(errWriterNoTarget.Error())
	}
	return &Writer{
		Comma: ',',
		Quote: '"',
		dst:   bufio.NewWriterSize(w, defaultBufferSize),
	}
}

// Reset points the writer at dst, keeping its settings and clearing any error.
func (w *Writer) Reset(dst io.Writer) {
	if w == nil {
		panic(errNilWriter.Error())
	}
	if dst == nil {
		panic(errWriterNoTarget.Error())
	}
	if w.dst == nil {
		w.dst = bufio.NewWriterSize(dst, defaultBufferSize)
	} else {
		w.dst.Reset(dst)
	}
	w.err = nil
}

// Write buffers one record followed by the configured line terminator.
// The first error is sticky.
func (w *Writer) Write(record []string) error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}

	comma, quote := w.Comma, w.Quote
	if comma == 0 {
		comma = ','
	}
	if quote == 0 {
		quote = '"'
	}

	w.line = w.line[:0]
	for i, field := range record {
		if i > 0 {
			w.line = append(w.line, comma)
		}
		// A lone empty field would otherwise read back as a blank line.
		lone := len(record) == 1 && field == ""
		if w.AlwaysQuote || lone || needsQuote(field, comma, quote) {
			w.line = appendQuoted(w.line, field, quote)
		} else {
			w.line = append(w.line, field...)
		}
	}
	if w.UseCRLF {
		w.line = append(w.line, '\r', '\n')
	} else {
		w.line = append(w.line, '\n')
	}

	if _, err := w.dst.Write(w.line); err != nil {
		w.err = err
		return err
	}
	return nil
}

// WriteAll writes records in order, stopping at the first error.
func (w *Writer) WriteAll(records [][]string) error {
	if w == nil {
		return errNilWriter
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// Flush pushes buffered bytes to the destination.
func (w *Writer) Flush() error {
	if w == nil {
		return errNilWriter
	}
	if w.dst == nil {
		return errWriterNoTarget
	}
	if w.err != nil {
		return w.err
	}
	if err := w.dst.Flush(); err != nil {
		w.err = err
		return err
	}
	return nil
}

// Error reports the first error the writer hit.
func (w *Writer) Error() error {
	if w == nil {
		return errNilWriter
	}
	return w.err
}

func appendQuoted(buf []byte, field string, quote byte) []byte {
	buf = append(buf, quote)
	for i := 0; i < len(field); i++ {
		if field[i] == quote {
			buf = append(buf, quote)
		}
		buf = append(buf, field[i])
	}
	return append(buf, quote)
}

func needsQuote(field string, comma, quote byte) bool {
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case comma, quote, '\n', '\r':
			return true
		}
	}
	return false
}
