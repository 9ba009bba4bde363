// Package record reads and writes RFC 4180 records one at a time.
package record

import (
	"bufio"
	"io"
	"unsafe"
)

const defaultBufferSize = 4 << 10

// Reader parses delimited records from a byte stream.
type Reader struct {
	// Comma is the field delimiter. Default is ','.
	Comma byte
	// Quote is the quote character. Default is '"'.
	Quote byte
	// ReuseRecord lets Read hand back a slice (and strings) that are only valid
	// until the next call.
	ReuseRecord bool
	// FieldsPerRecord is the expected width. Zero adopts the width of the first
	// record, a negative value disables the check.
	FieldsPerRecord int
	// SkipBlankLines drops records made of a single, unquoted, empty field.
	SkipBlankLines bool

	src *bufio.Reader

	line      int
	startLine int
	done      bool

	data   []byte
	ends   []int
	record []string
}

// NewReader returns a Reader consuming r. It panics if r is nil.
func NewReader(r io.Reader) *Reader {
	if r == nil {
		panic("csvframe: reader source cannot be nil")
	}
	return &Reader{
		Comma:  ',',
		Quote:  '"',
		src:    bufio.NewReaderSize(r, defaultBufferSize),
		line:   1,
		data:   make([]byte, 0, 256),
		ends:   make([]int, 0, 16),
		record: make([]string, 0, 16),
	}
}

// Line reports the line on which the most recently returned record started.
func (r *Reader) Line() int {
	return r.startLine
}

// Read returns the next record, or io.EOF once the input is exhausted.
// A record that fails the width check is returned together with the error.
func (r *Reader) Read() ([]string, error) {
	if r == nil || r.src == nil {
		return nil, io.EOF
	}
	for {
		blank, err := r.readRecord()
		if err != nil {
			return nil, err
		}
		if blank && r.SkipBlankLines {
			continue
		}
		rec := r.buildRecord()
		switch {
		case r.FieldsPerRecord == 0:
			r.FieldsPerRecord = len(rec)
		case r.FieldsPerRecord > 0 && len(rec) != r.FieldsPerRecord:
			return rec, &ParseError{Line: r.startLine, Column: 1, Err: ErrFieldCount}
		}
		return rec, nil
	}
}

// ReadAll reads until io.EOF. On error it returns no records.
func (r *Reader) ReadAll() ([][]string, error) {
	var records [][]string
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return records, nil
		}
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}

// readRecord fills data/ends with the next record and reports whether the
// record was a blank line.
func (r *Reader) readRecord() (bool, error) {
	if r.done {
		return false, io.EOF
	}

	comma, quote := r.Comma, r.Quote
	if comma == 0 {
		comma = ','
	}
	if quote == 0 {
		quote = '"'
	}

	r.data = r.data[:0]
	r.ends = r.ends[:0]
	r.startLine = r.line

	var (
		column      int
		consumed    bool
		inQuotes    bool
		fieldQuoted bool
		anyQuoted   bool
		fieldStart  int
	)
	blank := func() bool {
		return !anyQuoted && len(r.ends) == 1 && len(r.data) == 0
	}

	for {
		b, err := r.src.ReadByte()
		if err != nil {
			if err != io.EOF {
				return false, err
			}
			r.done = true
			if inQuotes {
				return false, &ParseError{Line: r.line, Column: column + 1, Err: ErrUnterminatedQuote}
			}
			if !consumed {
				return false, io.EOF
			}
			r.ends = append(r.ends, len(r.data))
			return blank(), nil
		}
		consumed = true
		column++

		if inQuotes {
			switch b {
			case quote:
				next, err := r.src.Peek(1)
				if err != nil && err != io.EOF {
					return false, err
				}
				if len(next) == 1 && next[0] == quote {
					_, _ = r.src.ReadByte()
					column++
					r.data = append(r.data, quote)
					continue
				}
				inQuotes = false
			case '\n':
				r.data = append(r.data, b)
				r.line++
				column = 0
			default:
				r.data = append(r.data, b)
			}
			continue
		}

		switch b {
		case comma:
			r.ends = append(r.ends, len(r.data))
			fieldStart = len(r.data)
			fieldQuoted = false
		case '\r', '\n':
			if b == '\r' {
				next, err := r.src.Peek(1)
				if err != nil && err != io.EOF {
					return false, err
				}
				if len(next) == 1 && next[0] == '\n' {
					_, _ = r.src.ReadByte()
				}
			}
			r.line++
			r.ends = append(r.ends, len(r.data))
			return blank(), nil
		case quote:
			if len(r.data) != fieldStart || fieldQuoted {
				return false, &ParseError{Line: r.line, Column: column, Err: ErrBareQuote}
			}
			inQuotes = true
			fieldQuoted = true
			anyQuoted = true
		default:
			r.data = append(r.data, b)
		}
	}
}

// buildRecord slices the assembled bytes into fields.
func (r *Reader) buildRecord() []string {
	var line string
	if r.ReuseRecord {
		if len(r.data) > 0 {
			// Fields share the reader's buffer until the next Read.
			line = unsafe.String(unsafe.SliceData(r.data), len(r.data))
		}
		if cap(r.record) < len(r.ends) {
			r.record = make([]string, len(r.ends))
		}
		r.record = r.record[:len(r.ends)]
	} else {
		line = string(r.data)
		r.record = make([]string, len(r.ends))
	}

	start := 0
	for i, end := range r.ends {
		r.record[i] = line[start:end]
		start = end
	}
	return r.record
}
