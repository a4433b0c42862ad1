// Package delimited reads and writes the plain text sheet format: one row
// per line, fields joined by a single comma, no quoting and no escaping.
//
// A field that itself contains a comma or a newline cannot round-trip; that
// is a known limitation of the format, not something this package works around.
package delimited

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Separator is the field delimiter.
const Separator = ","

// ErrEmpty indicates that the source held no lines at all.
var ErrEmpty = errors.New("delimited: empty source")

// Read splits r into records. A trailing newline does not produce an extra
// record and a trailing "\r" on a line is dropped. Records may be ragged;
// shaping them is the caller's job.
func Read(r io.Reader) ([][]string, error) {
	br := bufio.NewReader(r)
	var records [][]string
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			records = append(records, strings.Split(line, Separator))
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("delimited: read line %d: %w", len(records)+1, err)
		}
	}
	if len(records) == 0 {
		return nil, ErrEmpty
	}

	return records, nil
}

// Write emits every record as one comma-joined line terminated by "\n".
func Write(w io.Writer, records [][]string) error {
	bw := bufio.NewWriter(w)
	for i, rec := range records {
		if _, err := bw.WriteString(strings.Join(rec, Separator)); err != nil {
			return fmt.Errorf("delimited: write row %d: %w", i, err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("delimited: write row %d: %w", i, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("delimited: flush: %w", err)
	}

	return nil
}
