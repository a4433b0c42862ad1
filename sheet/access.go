// File: access.go
// Role: the only place that touches the arbiter and the partition pool.
//
// Lock order is always arbiter -> partition(s), released in reverse. Public
// methods go through these helpers and never lock either level directly.

package sheet

import "github.com/katalvlaran/sharesheet/partition"

type accessMode int

const (
	readAccess accessMode = iota
	writeAccess
)

// cellAccess holds the arbiter in read mode, validates (row, col) against the
// current shape, and locks the cell's partition in mode m.
// On a range error nothing is left held.
func (s *Sheet) cellAccess(method string, row, col int, m accessMode) (func(), error) {
	s.arbiter.RLock()
	if !s.cells.Contains(row, col) {
		s.arbiter.RUnlock()
		return nil, sheetErrorf(method, ErrOutOfRange, row, col)
	}

	var unlock func()
	if m == writeAccess {
		unlock = s.pool.Lock(row, col, s.cells.Cols())
	} else {
		unlock = s.pool.RLock(row, col, s.cells.Cols())
	}

	return func() {
		unlock()
		s.arbiter.RUnlock()
	}, nil
}

// sharedAccess holds the arbiter in read mode only. Callers that then touch
// cells must go through readCell or lockCells.
func (s *Sheet) sharedAccess() func() {
	s.arbiter.RLock()

	return s.arbiter.RUnlock
}

// readCell reads (row, col) under its partition read lock.
// The arbiter must be held and (row, col) must be valid.
func (s *Sheet) readCell(row, col int) string {
	unlock := s.pool.RLock(row, col, s.cells.Cols())
	defer unlock()
	v, _ := s.cells.At(row, col)

	return v
}

// lockCells write-locks every partition covering cells in canonical order.
// The arbiter must be held in read mode and every cell must be valid.
func (s *Sheet) lockCells(cells []partition.Cell) func() {
	held := s.pool.Acquire(cells, s.cells.Cols())

	return held.Release
}

// structuralAccess holds the arbiter in write mode. Nothing else can touch
// the grid or the pool until the returned func is called.
func (s *Sheet) structuralAccess() func() {
	s.arbiter.Lock()

	return s.arbiter.Unlock
}
