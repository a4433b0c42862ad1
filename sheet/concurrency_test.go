package sheet_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/sharesheet/sheet"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// runWithin runs g and fails the test if it does not finish in d.
func runWithin(t *testing.T, d time.Duration, g *errgroup.Group) {
	t.Helper()
	done := make(chan error, 1)
	go func() { done <- g.Wait() }()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(d):
		t.Fatal("operations did not finish: possible deadlock")
	}
}

// TestConcurrentDisjointSetCell writes every cell from its own goroutine.
func TestConcurrentDisjointSetCell(t *testing.T) {
	const rows, cols = 8, 8
	s, err := sheet.New(rows, cols, sheet.WithUserLimit(64))
	require.NoError(t, err)

	var g errgroup.Group
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.Go(func() error {
				return s.SetCell(r, c, cellLabel(r, c))
			})
		}
	}
	runWithin(t, 10*time.Second, &g)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v, err := s.GetCell(r, c)
			require.NoError(t, err)
			require.Equal(t, cellLabel(r, c), v)
		}
	}
}

// TestConcurrentSameCellNoTornValues has writers race on one cell while
// readers check every observed value is one some writer produced.
func TestConcurrentSameCellNoTornValues(t *testing.T) {
	s, err := sheet.New(2, 2)
	require.NoError(t, err)

	const writers, rounds = 8, 200
	valid := make(map[string]bool, writers+1)
	valid[""] = true
	for w := 0; w < writers; w++ {
		valid[fmt.Sprintf("writer-%d", w)] = true
	}

	var g errgroup.Group
	for w := 0; w < writers; w++ {
		g.Go(func() error {
			for i := 0; i < rounds; i++ {
				if err := s.SetCell(1, 1, fmt.Sprintf("writer-%d", w)); err != nil {
					return err
				}
			}
			return nil
		})
		g.Go(func() error {
			for i := 0; i < rounds; i++ {
				v, err := s.GetCell(1, 1)
				if err != nil {
					return err
				}
				if !valid[v] {
					return fmt.Errorf("unexpected value %q", v)
				}
			}
			return nil
		})
	}
	runWithin(t, 10*time.Second, &g)
}

// TestConcurrentOverlappingSwapsNoDeadlock runs many randomized row and
// column exchanges over overlapping pairs, then checks the multiset of values
// is preserved.
func TestConcurrentOverlappingSwapsNoDeadlock(t *testing.T) {
	const rows, cols = 5, 7
	s := newFilled(t, rows, cols, sheet.WithUserLimit(3))
	require.Equal(t, 3, s.Partitions())

	const workers, rounds = 12, 300
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			rng := rand.New(rand.NewSource(int64(w)))
			for i := 0; i < rounds; i++ {
				var err error
				if rng.Intn(2) == 0 {
					err = s.ExchangeRows(rng.Intn(rows), rng.Intn(rows))
				} else {
					err = s.ExchangeCols(rng.Intn(cols), rng.Intn(cols))
				}
				if err != nil {
					return err
				}
			}
			return nil
		})
	}
	runWithin(t, 20*time.Second, &g)

	seen := make(map[string]int)
	for _, row := range s.Snapshot() {
		for _, v := range row {
			seen[v]++
		}
	}
	require.Len(t, seen, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			require.Equal(t, 1, seen[cellLabel(r, c)])
		}
	}
}

// TestConcurrentMixedWorkload interleaves cell traffic, swaps, searches and
// structural changes. Range errors are expected (the shape moves), anything
// else is a failure.
func TestConcurrentMixedWorkload(t *testing.T) {
	s := newFilled(t, 4, 4, sheet.WithUserLimit(10))
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	const workers, rounds = 10, 150
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			rng := rand.New(rand.NewSource(int64(100 + w)))
			for i := 0; i < rounds && ctx.Err() == nil; i++ {
				rows, cols := s.Size()
				var err error
				switch rng.Intn(7) {
				case 0:
					_, err = s.GetCell(rng.Intn(rows), rng.Intn(cols))
				case 1:
					err = s.SetCell(rng.Intn(rows), rng.Intn(cols), fmt.Sprintf("w%d", w))
				case 2:
					s.SearchString(fmt.Sprintf("w%d", w))
				case 3:
					err = s.ExchangeRows(rng.Intn(rows), rng.Intn(rows))
				case 4:
					err = s.ExchangeCols(rng.Intn(cols), rng.Intn(cols))
				case 5:
					if rows < 12 {
						err = s.AddRow(rng.Intn(rows+1) - 1)
					}
				case 6:
					if cols < 12 {
						err = s.AddCol(rng.Intn(cols+1) - 1)
					}
				}
				// the shape read above may be stale by now; only range errors are tolerated
				if err != nil && !isRange(err) {
					return err
				}
			}
			return nil
		})
	}
	runWithin(t, 30*time.Second, g)

	rows, cols := s.Size()
	require.Len(t, s.Snapshot(), rows)
	require.Len(t, s.Snapshot()[0], cols)
}

func isRange(err error) bool {
	return errors.Is(err, sheet.ErrOutOfRange)
}

// TestSaveExcludesWriters saves while writers run; every saved file must be a
// complete grid.
func TestSaveExcludesWriters(t *testing.T) {
	s := newFilled(t, 6, 6)
	dir := t.TempDir()

	var g errgroup.Group
	stop := make(chan struct{})
	for w := 0; w < 4; w++ {
		g.Go(func() error {
			for {
				select {
				case <-stop:
					return nil
				default:
				}
				if err := s.SetCell(w, w, fmt.Sprintf("v%d", w)); err != nil {
					return err
				}
				if err := s.ExchangeRows(w, 5-w); err != nil {
					return err
				}
			}
		})
	}

	for i := 0; i < 20; i++ {
		other, err := sheet.New(1, 1)
		require.NoError(t, err)
		path := filepath.Join(dir, fmt.Sprintf("snap-%d.txt", i))
		require.NoError(t, s.Save(path))
		require.NoError(t, other.Load(path))
		rows, cols := other.Size()
		require.Equal(t, [2]int{6, 6}, [2]int{rows, cols})
	}
	close(stop)
	runWithin(t, 10*time.Second, &g)
}
