package sheet

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/katalvlaran/sharesheet/delimited"
	"github.com/katalvlaran/sharesheet/grid"
)

// Load replaces the whole sheet with the contents of the file at path.
//
// The file is parsed completely before anything is committed; the first line's
// field count fixes the new column count, shorter lines are padded with "" and
// extra fields are dropped. Only then is the arbiter taken in write mode to
// swap in the new grid and resize the pool. Any failure leaves the current
// content and shape untouched.
//
// Errors: ErrNotFound if path does not exist, ErrEmptySource for an empty
// file, or the underlying I/O error.
func (s *Sheet) Load(path string) (err error) {
	defer s.observe(OpLoad, time.Now(), &err)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("Sheet.Load(%q): %w: %w", path, ErrNotFound, err)
		}
		return fmt.Errorf("Sheet.Load(%q): %w", path, err)
	}
	defer f.Close()

	if err = s.load(f); err != nil {
		s.logger.Warn("sheet load failed", "path", path, "error", err)
		return fmt.Errorf("Sheet.Load(%q): %w", path, err)
	}

	return nil
}

// LoadFrom is Load for an arbitrary reader.
func (s *Sheet) LoadFrom(r io.Reader) (err error) {
	defer s.observe(OpLoad, time.Now(), &err)

	if err = s.load(r); err != nil {
		return fmt.Errorf("Sheet.LoadFrom: %w", err)
	}

	return nil
}

func (s *Sheet) load(r io.Reader) error {
	records, err := delimited.Read(r)
	if err != nil {
		return err
	}
	next, err := grid.FromRows(records)
	if err != nil {
		return err
	}

	release := s.structuralAccess()
	defer release()
	s.commit(OpLoad, next)

	return nil
}

// Save writes every row to path as comma-joined text, "" for unset cells.
//
// Save holds the arbiter in write mode for the whole write. That alone rules
// out any concurrent cell write or reshape, so no partition lock is taken.
// I/O errors are returned wrapped; the sheet itself is never modified.
func (s *Sheet) Save(path string) (err error) {
	defer s.observe(OpSave, time.Now(), &err)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("Sheet.Save(%q): %w", path, err)
	}

	werr := s.save(f)
	cerr := f.Close()
	if werr != nil {
		s.logger.Warn("sheet save failed", "path", path, "error", werr)
		return fmt.Errorf("Sheet.Save(%q): %w", path, werr)
	}
	if cerr != nil {
		return fmt.Errorf("Sheet.Save(%q): %w", path, cerr)
	}

	return nil
}

// SaveTo is Save for an arbitrary writer.
func (s *Sheet) SaveTo(w io.Writer) (err error) {
	defer s.observe(OpSave, time.Now(), &err)

	if err = s.save(w); err != nil {
		return fmt.Errorf("Sheet.SaveTo: %w", err)
	}

	return nil
}

func (s *Sheet) save(w io.Writer) error {
	release := s.structuralAccess()
	defer release()

	return delimited.Write(w, s.cells.Records())
}

// Snapshot returns a deep copy of every row, taken under the arbiter's write
// mode like Save.
func (s *Sheet) Snapshot() [][]string {
	release := s.structuralAccess()
	defer release()

	return s.cells.Records()
}
