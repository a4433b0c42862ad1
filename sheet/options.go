package sheet

import "log/slog"

// Option configures a Sheet before creation.
type Option func(s *Sheet)

// WithUserLimit sets the expected number of concurrent callers.
// It only feeds partition sizing; callers beyond the limit are not rejected.
// n <= 0 means unlimited (the default).
func WithUserLimit(n int) Option {
	return func(s *Sheet) { s.sizing.UserLimit = n }
}

// WithCoreCount pins the core count used by partition sizing instead of
// runtime.NumCPU(). Values <= 0 are ignored.
func WithCoreCount(n int) Option {
	return func(s *Sheet) {
		if n > 0 {
			s.sizing.Cores = n
		}
	}
}

// WithLogger routes structural-change logs to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(s *Sheet) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithObserver attaches an Observer notified after every public operation.
// A nil observer is ignored.
func WithObserver(o Observer) Option {
	return func(s *Sheet) {
		if o != nil {
			s.observer = o
		}
	}
}
