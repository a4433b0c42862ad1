package sheet

import "time"

// Operation names reported to an Observer.
const (
	OpGetCell      = "get_cell"
	OpSetCell      = "set_cell"
	OpSearch       = "search"
	OpAddRow       = "add_row"
	OpAddCol       = "add_col"
	OpExchangeRows = "exchange_rows"
	OpExchangeCols = "exchange_cols"
	OpLoad         = "load"
	OpSave         = "save"
)

// Observer receives timing and outcome of Sheet operations.
// Implementations must be safe for concurrent use and must not call back into
// the Sheet: PartitionsResized runs while the arbiter is held in write mode.
type Observer interface {
	// OperationDone reports one finished public operation, including the time
	// spent waiting for locks.
	OperationDone(op string, elapsed time.Duration, err error)

	// PartitionsResized reports a pool replacement; from is 0 at construction.
	PartitionsResized(from, to int)
}

type noopObserver struct{}

func (noopObserver) OperationDone(string, time.Duration, error) {}
func (noopObserver) PartitionsResized(int, int)                 {}

// observe is deferred by public methods with a pointer to their named error.
func (s *Sheet) observe(op string, start time.Time, err *error) {
	var e error
	if err != nil {
		e = *err
	}
	s.observer.OperationDone(op, time.Since(start), e)
}
