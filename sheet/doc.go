// Package sheet provides Sheet, a grid of text cells that many goroutines can
// read, write and restructure at the same time.
//
// Locking model:
//
//   - A global arbiter (sync.RWMutex) separates two classes of work. Cell
//     reads and writes, searches and row/column exchanges hold it in read
//     mode; row/column insertion, Load, Save and Snapshot hold it in write
//     mode. The two classes never overlap.
//   - Under read mode, cells are guarded by a partition.Pool: cell (r, c)
//     belongs to partition (r*cols + c) mod N. Single-cell operations take one
//     partition; exchanges take every partition their two lines touch, in
//     ascending partition order, and release them in reverse.
//   - N comes from partition.Size and is recomputed after every shape change.
//     The pool and the grid are replaced only while the arbiter is held in
//     write mode, so no caller resolves a partition against a stale shape.
//
// Lock acquisition blocks; there are no timeouts and no cancellation.
//
// Quick start:
//
//	s, _ := sheet.New(3, 4, sheet.WithUserLimit(16))
//	_ = s.SetCell(2, 3, "X")
//	r, c, ok := s.SearchString("X") // 2, 3, true
//	_ = s.AddRow(-1)                 // new empty row 0; "X" moves to (3, 3)
//	_ = s.Save("grid.txt")
//
// Errors:
//
//   - ErrBadShape:    New called with rows < 1 or cols < 1.
//   - ErrOutOfRange:  bad row, column or insertion index.
//   - ErrNotFound:    Load source does not exist.
//   - ErrEmptySource: Load source contains no lines.
package sheet
