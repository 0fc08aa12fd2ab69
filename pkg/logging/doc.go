// Package logging provides structured logging for nodescope components.
//
// It wraps the standard library slog package with nodescope defaults:
// JSON output to stderr, environment-based log level configuration
// (LOG_LEVEL), module and version context on every record, and source
// location tracking for debug logs.
//
// Setting the default logger (recommended):
//
//	func main() {
//	    logging.SetDefaultStructuredLogger("nodescoped", version)
//
//	    slog.Info("processing request", "id", "req-123")
//	    slog.Error("operation failed", "error", err)
//	}
//
// Creating a custom logger:
//
//	logger := logging.NewStructuredLogger("api", "v1.0.0", "debug")
//	logger.Info("server starting", "port", 9100)
//
// The LOG_LEVEL environment variable controls verbosity when no explicit
// level is given; unset defaults to INFO.
package logging
