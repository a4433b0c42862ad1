// Package logging provides the process-wide structured logger used by the
// sharesheet commands.
//
// The package wraps [log/slog]. Call Init once at startup (or rely on the
// lazy default, INFO text to stderr) and fetch the logger with GetLogger:
//
//	if err := logging.Init(logging.Config{Level: logging.LevelDebug, Format: "json"}); err != nil {
//	    return err
//	}
//	log := logging.WithComponent("simulator")
//	log.Info("run started", "users", 8)
//
// Library packages (sheet, partition) never import this package; they accept
// a *slog.Logger through their options instead.
package logging
