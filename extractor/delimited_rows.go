package extractor

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"iter"
	"strings"
)

// maxLineSize is the longest line the delimited reader accepts
const maxLineSize = 16 * 1024 * 1024

// delimitedRows iterates the lines of a delimited text source, applying the comment,
// header and filter gates before splitting each surviving line into fields
type delimitedRows struct {
	scanner *bufio.Scanner
	cfg     *extractConfig
}

func newDelimitedRows(r io.Reader, cfg *extractConfig) *delimitedRows {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &delimitedRows{scanner: scanner, cfg: cfg}
}

// All yields the fields of each line which passes the gates
// A line which cannot be split is yielded with the split error.
// The sequence is single-pass - read errors are available from Err once it is exhausted.
func (d *delimitedRows) All() iter.Seq2[[]string, error] {
	return func(yield func([]string, error) bool) {
		skippedHeader := false
		for d.scanner.Scan() {
			line := d.scanner.Text()

			// comment detection comes first, so comments never count as the header
			if d.cfg.commentCharacter != "" && strings.HasPrefix(line, d.cfg.commentCharacter) {
				continue
			}
			if d.cfg.hasHeaderRow && !skippedHeader {
				skippedHeader = true
				continue
			}
			if d.cfg.filter != nil && !d.cfg.filter.accepts(line, d.cfg.delimiter) {
				continue
			}

			if !yield(d.split(line)) {
				return
			}
		}
	}
}

func (d *delimitedRows) Err() error {
	return d.scanner.Err()
}

// split parses a single line with quote-aware delimited parsing
func (d *delimitedRows) split(line string) ([]string, error) {
	r := csv.NewReader(strings.NewReader(line))
	r.Comma = d.cfg.delimiterRune()
	r.LazyQuotes = true
	r.FieldsPerRecord = -1
	fields, err := r.Read()
	if errors.Is(err, io.EOF) {
		// a blank line has no fields
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}
	return fields, nil
}
