package simulator

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/katalvlaran/sharesheet/sheet"
	"golang.org/x/sync/errgroup"
)

// kinds is the menu a user draws from, uniformly.
var kinds = []string{
	sheet.OpGetCell,
	sheet.OpSetCell,
	sheet.OpSearch,
	sheet.OpExchangeRows,
	sheet.OpExchangeCols,
	sheet.OpAddRow,
	sheet.OpAddCol,
}

// Report summarizes a finished run.
type Report struct {
	RunID      string
	Ops        map[string]int64 // completed operations by kind
	Skipped    int64            // add_row/add_col skipped at the size cap
	Errors     int64            // operations that returned an error
	Found      int64            // searches that hit
	Rows, Cols int
	Partitions int
	Elapsed    time.Duration
}

// Total returns the number of completed operations.
func (r Report) Total() int64 {
	var n int64
	for _, v := range r.Ops {
		n += v
	}

	return n
}

// WriteTo prints a human readable summary.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	names := make([]string, 0, len(r.Ops))
	for k := range r.Ops {
		names = append(names, k)
	}
	sort.Strings(names)

	var written int64
	printf := func(format string, args ...any) error {
		n, err := fmt.Fprintf(w, format, args...)
		written += int64(n)
		return err
	}
	if err := printf("run %s finished in %s\n", r.RunID, r.Elapsed.Round(time.Millisecond)); err != nil {
		return written, err
	}
	for _, k := range names {
		if err := printf("  %-14s %d\n", k, r.Ops[k]); err != nil {
			return written, err
		}
	}
	err := printf("  total %d, errors %d, skipped %d, search hits %d\n  final shape %dx%d, %d partitions\n",
		r.Total(), r.Errors, r.Skipped, r.Found, r.Rows, r.Cols, r.Partitions)

	return written, err
}

type counters struct {
	ops     []atomic.Int64 // indexed like kinds
	skipped atomic.Int64
	errors  atomic.Int64
	found   atomic.Int64
}

// Run starts cfg.Users goroutines against s, each performing cfg.Operations
// random operations with cfg.Sleep between them, and waits for all of them.
//
// Cancelling ctx stops users between operations; a user already blocked on a
// sheet lock finishes that operation first. Operation errors are counted,
// not returned: the shape only grows during a run, so they indicate a bug and
// show up in Report.Errors.
func Run(ctx context.Context, cfg Config, s *sheet.Sheet, logger *slog.Logger) (Report, error) {
	if err := cfg.Validate(); err != nil {
		return Report{}, err
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	runID := uuid.NewString()
	log := logger.With("run_id", runID)
	log.Info("simulation started",
		"users", cfg.Users, "operations", cfg.Operations, "sleep", cfg.Sleep)

	c := &counters{ops: make([]atomic.Int64, len(kinds))}
	start := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	for u := 0; u < cfg.Users; u++ {
		g.Go(func() error {
			return runUser(gctx, cfg, s, c, u, log.With("user", u))
		})
	}
	runErr := g.Wait()

	rows, cols := s.Size()
	rep := Report{
		RunID:      runID,
		Ops:        make(map[string]int64, len(kinds)),
		Skipped:    c.skipped.Load(),
		Errors:     c.errors.Load(),
		Found:      c.found.Load(),
		Rows:       rows,
		Cols:       cols,
		Partitions: s.Partitions(),
		Elapsed:    time.Since(start),
	}
	for i, k := range kinds {
		rep.Ops[k] = c.ops[i].Load()
	}

	if runErr != nil {
		log.Warn("simulation interrupted", "error", runErr, "completed", rep.Total())
		return rep, runErr
	}
	if cfg.SavePath != "" {
		if err := s.Save(cfg.SavePath); err != nil {
			return rep, err
		}
		log.Info("sheet saved", "path", cfg.SavePath)
	}
	log.Info("simulation finished", "completed", rep.Total(), "errors", rep.Errors, "elapsed", rep.Elapsed)

	return rep, nil
}

func runUser(ctx context.Context, cfg Config, s *sheet.Sheet, c *counters, user int, log *slog.Logger) error {
	rng := rand.New(rand.NewSource(cfg.Seed + int64(user)))
	for i := 0; i < cfg.Operations; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		k := rng.Intn(len(kinds))
		skipped, err := perform(cfg, s, c, rng, kinds[k], user, i)
		switch {
		case skipped:
			c.skipped.Add(1)
		case err != nil:
			c.errors.Add(1)
			log.Warn("operation failed", "op", kinds[k], "error", err)
		default:
			c.ops[k].Add(1)
			log.Debug("operation done", "op", kinds[k], "seq", i)
		}

		if cfg.Sleep > 0 {
			t := time.NewTimer(cfg.Sleep)
			select {
			case <-ctx.Done():
				t.Stop()
				return ctx.Err()
			case <-t.C:
			}
		}
	}

	return nil
}

// perform runs one operation of kind op. Indices come from a shape read just
// before; the shape can only grow meanwhile, so they stay valid.
func perform(cfg Config, s *sheet.Sheet, c *counters, rng *rand.Rand, op string, user, seq int) (skipped bool, err error) {
	rows, cols := s.Size()
	switch op {
	case sheet.OpGetCell:
		_, err = s.GetCell(rng.Intn(rows), rng.Intn(cols))
	case sheet.OpSetCell:
		err = s.SetCell(rng.Intn(rows), rng.Intn(cols), cellValue(user, seq))
	case sheet.OpSearch:
		if _, _, ok := s.SearchString(cellValue(rng.Intn(cfg.Users), rng.Intn(seq+1))); ok {
			c.found.Add(1)
		}
	case sheet.OpExchangeRows:
		err = s.ExchangeRows(rng.Intn(rows), rng.Intn(rows))
	case sheet.OpExchangeCols:
		err = s.ExchangeCols(rng.Intn(cols), rng.Intn(cols))
	case sheet.OpAddRow:
		if cfg.MaxRows > 0 && rows >= cfg.MaxRows {
			return true, nil
		}
		err = s.AddRow(rng.Intn(rows+1) - 1)
	case sheet.OpAddCol:
		if cfg.MaxCols > 0 && cols >= cfg.MaxCols {
			return true, nil
		}
		err = s.AddCol(rng.Intn(cols+1) - 1)
	default:
		err = errors.New("simulator: unknown operation " + op)
	}

	return false, err
}

func cellValue(user, seq int) string {
	return fmt.Sprintf("u%d-%d", user, seq)
}
