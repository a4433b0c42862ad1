package sheet

import (
	"time"

	"github.com/katalvlaran/sharesheet/grid"
	"github.com/katalvlaran/sharesheet/partition"
)

// AddRow inserts an empty row right after row `after`; after == -1 inserts
// it at index 0. Accepted range is [-1, rows-1]; anything else returns
// ErrOutOfRange and leaves the sheet unchanged.
//
// The new grid is built off to the side, published with one assignment, and
// the partition pool is resized, all under the arbiter's write mode.
// Complexity: O(rows*cols).
func (s *Sheet) AddRow(after int) (err error) {
	defer s.observe(OpAddRow, time.Now(), &err)

	release := s.structuralAccess()
	defer release()

	next, err := s.cells.InsertRowAfter(after)
	if err != nil {
		return sheetErrorf("AddRow", err, after)
	}
	s.commit(OpAddRow, next)

	return nil
}

// AddCol inserts an empty column right after column `after`; after == -1
// inserts it at index 0. Accepted range is [-1, cols-1].
// Complexity: O(rows*cols).
func (s *Sheet) AddCol(after int) (err error) {
	defer s.observe(OpAddCol, time.Now(), &err)

	release := s.structuralAccess()
	defer release()

	next, err := s.cells.InsertColAfter(after)
	if err != nil {
		return sheetErrorf("AddCol", err, after)
	}
	s.commit(OpAddCol, next)

	return nil
}

// ExchangeRows swaps the contents of rows r1 and r2. Equal indices are a
// no-op. Both rows are locked together through the partition coordinator, so
// readers never see a half-swapped pair.
// Complexity: O(cols).
func (s *Sheet) ExchangeRows(r1, r2 int) (err error) {
	defer s.observe(OpExchangeRows, time.Now(), &err)

	release := s.sharedAccess()
	defer release()

	rows, cols := s.cells.Rows(), s.cells.Cols()
	if r1 < 0 || r1 >= rows || r2 < 0 || r2 >= rows {
		return sheetErrorf("ExchangeRows", ErrOutOfRange, r1, r2)
	}
	if r1 == r2 {
		return nil
	}

	cells := make([]partition.Cell, 0, 2*cols)
	for c := 0; c < cols; c++ {
		cells = append(cells, partition.Cell{Row: r1, Col: c}, partition.Cell{Row: r2, Col: c})
	}
	unlock := s.lockCells(cells)
	defer unlock()

	return s.cells.SwapRows(r1, r2)
}

// ExchangeCols swaps the contents of columns c1 and c2. Equal indices are a
// no-op.
// Complexity: O(rows).
func (s *Sheet) ExchangeCols(c1, c2 int) (err error) {
	defer s.observe(OpExchangeCols, time.Now(), &err)

	release := s.sharedAccess()
	defer release()

	rows, cols := s.cells.Rows(), s.cells.Cols()
	if c1 < 0 || c1 >= cols || c2 < 0 || c2 >= cols {
		return sheetErrorf("ExchangeCols", ErrOutOfRange, c1, c2)
	}
	if c1 == c2 {
		return nil
	}

	cells := make([]partition.Cell, 0, 2*rows)
	for r := 0; r < rows; r++ {
		cells = append(cells, partition.Cell{Row: r, Col: c1}, partition.Cell{Row: r, Col: c2})
	}
	unlock := s.lockCells(cells)
	defer unlock()

	return s.cells.SwapCols(c1, c2)
}

// commit publishes next as the current grid and resizes the pool to match.
// The arbiter must be held in write mode.
func (s *Sheet) commit(reason string, next *grid.Grid) {
	s.cells = next
	s.resizePool()
	s.logger.Debug("sheet reshaped",
		"reason", reason,
		"rows", next.Rows(),
		"cols", next.Cols(),
		"partitions", s.pool.Len())
}

// resizePool replaces the pool when the sizing policy asks for a different
// length. Old locks are dropped; none can be held because the arbiter is in
// write mode.
func (s *Sheet) resizePool() {
	want := s.sizing.For(s.cells.Rows(), s.cells.Cols())
	have := s.pool.Len()
	if want == have {
		return
	}
	s.pool = partition.NewPool(want)
	s.observer.PartitionsResized(have, want)
	s.logger.Debug("partition pool resized", "from", have, "to", want)
}
