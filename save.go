package csvframe

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/multierr"

	"github.com/oleg578/csvframe/internal/record"
)

const filePerm = 0o644

// Saver writes tables as CSV. The zero value writes comma-separated, LF
// terminated files to the OS filesystem with missing cells left empty.
type Saver struct {
	// Fs is the filesystem to write to. Nil means the OS filesystem.
	Fs afero.Fs
	// Comma is the field delimiter. Default is ','.
	Comma byte
	// Quote is the quote character. Default is '"'.
	Quote byte
	// UseCRLF terminates records with \r\n.
	UseCRLF bool
	// AlwaysQuote quotes every field.
	AlwaysQuote bool
	// NARep is written for missing cells.
	NARep string
	// Logger receives a V(1) line per saved file.
	Logger logr.Logger
}

// SaveData writes data to filename with default settings.
func SaveData(data *Table, filename string) error {
	var s Saver
	return s.Save(data, filename)
}

// WriteTable writes t to w with default settings.
func WriteTable(w io.Writer, t *Table) error {
	var s Saver
	return s.Write(w, t)
}

// Save writes t to a temporary file next to path and renames it into place.
// An existing file keeps its permission bits; a new one is created with
// 0644 less the process umask. Filesystem failures come back as
// *FileAccessError, unrenderable cells as *SerializationError; in both cases
// path is left untouched.
func (s *Saver) Save(t *Table, path string) (err error) {
	if t == nil {
		return ErrNilTable
	}
	fs := fsOrOS(s.Fs)

	dir := filepath.Dir(path)
	info, err := fs.Stat(dir)
	if err != nil {
		return accessError("stat", dir, err)
	}
	if !info.IsDir() {
		return accessError("stat", dir, ErrNotDirectory)
	}

	var perm os.FileMode = filePerm
	keepMode := false
	if prev, err := fs.Stat(path); err == nil && prev.Mode().IsRegular() {
		perm, keepMode = prev.Mode().Perm(), true
	}

	tmp, err := createTemp(fs, dir, filepath.Base(path), perm)
	if err != nil {
		return accessError("create", path, err)
	}
	tmpName := tmp.Name()
	closed := false
	defer func() {
		if !closed {
			err = multierr.Append(err, accessError("close", tmpName, tmp.Close()))
		}
		if err != nil {
			if rerr := fs.Remove(tmpName); rerr != nil {
				err = multierr.Append(err, accessError("remove", tmpName, rerr))
			}
		}
	}()

	if err := s.Write(tmp, t); err != nil {
		var serr *SerializationError
		if errors.As(err, &serr) {
			return err
		}
		return accessError("write", path, err)
	}

	closed = true
	if err := tmp.Close(); err != nil {
		return accessError("close", tmpName, err)
	}
	// The umask may have narrowed the bits of the file being replaced.
	if keepMode {
		if err := fs.Chmod(tmpName, perm); err != nil {
			return accessError("chmod", tmpName, err)
		}
	}
	if err := fs.Rename(tmpName, path); err != nil {
		return accessError("rename", path, err)
	}

	s.Logger.V(1).Info("saved table", "path", path, "rows", t.NumRows(), "columns", t.NumColumns())
	return nil
}

// createTemp exclusively creates a hidden sibling of base in dir.
func createTemp(fs afero.Fs, dir, base string, perm os.FileMode) (afero.File, error) {
	name := filepath.Join(dir, "."+base+".tmp-"+uuid.NewString())
	return fs.OpenFile(name, os.O_RDWR|os.O_CREATE|os.O_EXCL, perm)
}

// Write renders t as CSV onto w: the header, then one record per row.
func (s *Saver) Write(w io.Writer, t *Table) error {
	if t == nil {
		return ErrNilTable
	}

	rw := record.NewWriter(w)
	if s.Comma != 0 {
		rw.Comma = s.Comma
	}
	if s.Quote != 0 {
		rw.Quote = s.Quote
	}
	rw.UseCRLF = s.UseCRLF
	rw.AlwaysQuote = s.AlwaysQuote

	names := t.Names()
	// A leading BOM in the first name would be stripped on load unless quoted.
	if len(names) > 0 && strings.HasPrefix(names[0], "\uFEFF") {
		rw.AlwaysQuote = true
	}
	if err := rw.Write(names); err != nil {
		return err
	}
	rw.AlwaysQuote = s.AlwaysQuote
	rec := make([]string, len(t.columns))
	for i := 0; i < t.rows; i++ {
		for j, c := range t.columns {
			text, ok := formatCell(c.values[i], s.NARep)
			if !ok {
				return &SerializationError{Column: c.name, Row: i, Value: c.values[i]}
			}
			rec[j] = text
		}
		if err := rw.Write(rec); err != nil {
			return err
		}
	}
	return rw.Flush()
}
