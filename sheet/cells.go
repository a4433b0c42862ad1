package sheet

import "time"

// GetCell returns the text stored at (row, col); unset cells read as "".
// Returns ErrOutOfRange if (row, col) is outside the current shape.
func (s *Sheet) GetCell(row, col int) (v string, err error) {
	defer s.observe(OpGetCell, time.Now(), &err)

	release, err := s.cellAccess("GetCell", row, col, readAccess)
	if err != nil {
		return "", err
	}
	defer release()

	return s.cells.At(row, col)
}

// SetCell overwrites the text stored at (row, col).
// Returns ErrOutOfRange if (row, col) is outside the current shape.
func (s *Sheet) SetCell(row, col int, value string) (err error) {
	defer s.observe(OpSetCell, time.Now(), &err)

	release, err := s.cellAccess("SetCell", row, col, writeAccess)
	if err != nil {
		return err
	}
	defer release()

	return s.cells.Set(row, col, value)
}

// SearchString returns the first cell, in row-major order, whose value equals
// value. found is false (and row, col are -1) when no cell matches.
//
// The arbiter stays in read mode for the whole scan, so the shape cannot
// change under it; structural writers wait until the scan ends. Each cell's
// partition is read-locked only for its own comparison.
//
// Complexity: O(rows*cols).
func (s *Sheet) SearchString(value string) (row, col int, found bool) {
	defer s.observe(OpSearch, time.Now(), nil)

	release := s.sharedAccess()
	defer release()

	rows, cols := s.cells.Rows(), s.cells.Cols()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if s.readCell(r, c) == value {
				return r, c, true
			}
		}
	}

	return -1, -1, false
}
