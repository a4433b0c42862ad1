package sheet

import (
	"log/slog"
	"sync"

	"github.com/katalvlaran/sharesheet/grid"
	"github.com/katalvlaran/sharesheet/partition"
)

// Sheet is a concurrently shared grid of text cells.
//
// arbiter guards the cells and pool references and the grid shape; every
// field below it is replaced only while arbiter is held in write mode.
// Individual cell values are guarded by pool partitions under read mode.
type Sheet struct {
	arbiter sync.RWMutex // structural (write) vs. cell-level (read) traffic

	cells *grid.Grid      // current grid; swapped wholesale on reshape
	pool  *partition.Pool // current partition locks; swapped on resize

	// Configuration, fixed after New.
	sizing   partition.Sizing
	logger   *slog.Logger
	observer Observer
}

// New creates a rows×cols Sheet of empty cells.
// By default the user limit is unlimited and sizing uses runtime.NumCPU().
// Complexity: O(rows*cols).
func New(rows, cols int, opts ...Option) (*Sheet, error) {
	s := &Sheet{
		sizing:   partition.DefaultSizing(),
		logger:   slog.New(slog.DiscardHandler),
		observer: noopObserver{},
	}
	for _, opt := range opts {
		opt(s)
	}

	g, err := grid.New(rows, cols)
	if err != nil {
		return nil, sheetErrorf("New", err, rows, cols)
	}
	s.cells = g
	s.pool = partition.NewPool(s.sizing.For(rows, cols))
	s.observer.PartitionsResized(0, s.pool.Len())

	return s, nil
}

// Size returns the current number of rows and columns.
func (s *Sheet) Size() (rows, cols int) {
	release := s.sharedAccess()
	defer release()

	return s.cells.Rows(), s.cells.Cols()
}

// Partitions returns the current number of partition locks.
func (s *Sheet) Partitions() int {
	release := s.sharedAccess()
	defer release()

	return s.pool.Len()
}

// UserLimit returns the configured user limit (<= 0 means unlimited).
func (s *Sheet) UserLimit() int { return s.sizing.UserLimit }
