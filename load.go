package csvframe

import (
	"bufio"
	"bytes"
	"errors"
	"io"

	"github.com/go-logr/logr"
	"github.com/spf13/afero"
	"go.uber.org/multierr"

	"github.com/oleg578/csvframe/internal/record"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Loader reads CSV files into tables. The zero value reads comma-separated
// files from the OS filesystem with the default missing-value tokens.
type Loader struct {
	// Fs is the filesystem to read from. Nil means the OS filesystem.
	Fs afero.Fs
	// Comma is the field delimiter. Default is ','.
	Comma byte
	// Quote is the quote character. Default is '"'.
	Quote byte
	// NAValues are extra cell spellings treated as missing.
	NAValues []string
	// DisableDefaultNA limits missing-value tokens to NAValues.
	DisableDefaultNA bool
	// AllowShortRows pads rows narrower than the header with missing cells;
	// empty cells then always read as missing. Wider rows always fail.
	AllowShortRows bool
	// Logger receives a V(1) line per loaded file.
	Logger logr.Logger
}

// LoadData reads the CSV file at filename with default settings.
func LoadData(filename string) (*Table, error) {
	var l Loader
	return l.Load(filename)
}

// ReadTable parses CSV text from r with default settings.
func ReadTable(r io.Reader) (*Table, error) {
	var l Loader
	return l.Read(r)
}

// Load opens path, parses it and closes it. Filesystem failures come back as
// *FileAccessError, malformed content as *ParseError.
func (l *Loader) Load(path string) (t *Table, err error) {
	f, err := fsOrOS(l.Fs).Open(path)
	if err != nil {
		return nil, accessError("open", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			err = multierr.Append(err, accessError("close", path, cerr))
			t = nil
		}
	}()

	t, err = l.Read(f)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			return nil, err
		}
		return nil, accessError("read", path, err)
	}

	l.Logger.V(1).Info("loaded table", "path", path, "rows", t.NumRows(), "columns", t.NumColumns())
	return t, nil
}

// Read parses a table from r. Input without a header row fails with a
// *ParseError wrapping ErrNoColumns.
func (l *Loader) Read(r io.Reader) (*Table, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	rr := record.NewReader(br)
	if l.Comma != 0 {
		rr.Comma = l.Comma
	}
	if l.Quote != 0 {
		rr.Quote = l.Quote
	}
	rr.SkipBlankLines = true
	rr.FieldsPerRecord = -1

	header, err := rr.Read()
	if err == io.EOF {
		return nil, &ParseError{Line: rr.Line(), Column: 1, Err: ErrNoColumns}
	}
	if err != nil {
		return nil, err
	}
	names := columnNames(header)

	cells := make([][]string, len(names))
	for {
		rec, err := rr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(rec) > len(names) || (len(rec) < len(names) && !l.AllowShortRows) {
			return nil, &ParseError{Line: rr.Line(), Column: 1, Err: ErrFieldCount}
		}
		for i := range names {
			if i < len(rec) {
				cells[i] = append(cells[i], rec[i])
			} else {
				cells[i] = append(cells[i], "")
			}
		}
	}

	na := newNASet(l.NAValues, !l.DisableDefaultNA)
	if l.AllowShortRows {
		na[""] = struct{}{}
	}

	columns := make([]*Column, len(names))
	for i, name := range names {
		if len(cells[i]) == 0 {
			columns[i] = &Column{name: name, typ: ColumnTypeString, values: []any{}}
			continue
		}
		columns[i] = inferColumn(name, cells[i], na)
	}
	return NewTable(columns...)
}

func fsOrOS(fs afero.Fs) afero.Fs {
	if fs == nil {
		return afero.NewOsFs()
	}
	return fs
}
