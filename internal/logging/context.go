package logging

import "log/slog"

// WithComponent creates a logger tagged with a subsystem name.
//
// Example:
//
//	log := logging.WithComponent("sheet")
//	log.Debug("pool resized", "to", 9)
func WithComponent(component string) *slog.Logger {
	return GetLogger().With("component", component)
}

// WithError creates a logger carrying err as a structured field.
func WithError(err error) *slog.Logger {
	return GetLogger().With("error", err.Error())
}
