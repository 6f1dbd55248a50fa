// internal/seqtable/loader.go
package seqtable

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
)

// FormatError reports a malformed index file.
type FormatError struct {
	Path string
	Line int
	Msg  string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d %s", e.Path, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s: %s", e.Path, e.Msg)
}

// LoadCSV reads an index table from path ("-" for stdin).
func LoadCSV(path string, comma rune) (*Table, error) {
	if path == "-" {
		return ReadCSV(os.Stdin, "<stdin>", comma)
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open index table")
	}
	defer func() { _ = fh.Close() }()
	return ReadCSV(fh, path, comma)
}

// ReadCSV parses a delimited index table. The header must contain a "name"
// column; every other column is a channel, kept in header order. Every
// non-blank line after the header is an entry, whatever its first character,
// so names such as "#B" are kept. Cells are trimmed of surrounding spaces.
func ReadCSV(r io.Reader, path string, comma rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &FormatError{Path: path, Msg: "empty file"}
	}
	if err != nil {
		return nil, errors.Wrapf(err, "%s: read header", path)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	header[0] = strings.TrimPrefix(header[0], "\ufeff")

	nameCol := -1
	seen := make(map[string]struct{}, len(header))
	var channels []string
	var chanCols []int
	for i, h := range header {
		if h == "" {
			return nil, &FormatError{Path: path, Line: 1, Msg: fmt.Sprintf("empty header in column %d", i+1)}
		}
		if _, dup := seen[h]; dup {
			return nil, &FormatError{Path: path, Line: 1, Msg: fmt.Sprintf("duplicate column %q", h)}
		}
		seen[h] = struct{}{}
		if h == NameColumn {
			nameCol = i
			continue
		}
		channels = append(channels, h)
		chanCols = append(chanCols, i)
	}
	if nameCol < 0 {
		return nil, &FormatError{Path: path, Line: 1, Msg: fmt.Sprintf("missing %q column", NameColumn)}
	}
	if len(channels) == 0 {
		return nil, &FormatError{Path: path, Line: 1, Msg: "no index columns besides " + NameColumn}
	}

	var entries []Entry
	names := make(map[string]int)
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "%s: read row", path)
		}
		ln, _ := cr.FieldPos(0)
		if len(rec) != len(header) {
			return nil, &FormatError{Path: path, Line: ln, Msg: fmt.Sprintf("bad field count %d, want %d", len(rec), len(header))}
		}
		name := strings.TrimSpace(rec[nameCol])
		if name == "" {
			return nil, &FormatError{Path: path, Line: ln, Msg: "empty name"}
		}
		if first, dup := names[name]; dup {
			return nil, &FormatError{Path: path, Line: ln, Msg: fmt.Sprintf("duplicate name %q (first seen on line %d)", name, first)}
		}
		names[name] = ln
		e := Entry{Name: name, Seqs: make([]string, len(chanCols))}
		for j, c := range chanCols {
			s := strings.TrimSpace(rec[c])
			if s == "" {
				return nil, &FormatError{Path: path, Line: ln, Msg: fmt.Sprintf("empty %s for %q", channels[j], name)}
			}
			e.Seqs[j] = s
		}
		entries = append(entries, e)
	}
	t, err := New(channels, entries)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return t, nil
}
