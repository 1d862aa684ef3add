// Package logging provides structured logging for the radio panel tools.
//
// This package wraps a zap logger with convenience functions for the
// logging patterns used throughout the client. Logging is silent unless
// explicitly enabled, so the instrument panel and the direct CLI commands
// produce no stray output by default.
//
// # Configuration
//
// Set the RADIO_PANEL_LOG_LEVEL environment variable to "debug", "info",
// "warn" or "error" to enable output, and initialize at startup:
//
//	if err := logging.InitializeFromEnv(); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Sync()
//
// Output goes to stderr in human-readable console format so it can be
// redirected away from the panel display:
//
//	RADIO_PANEL_LOG_LEVEL=debug radio-panel 2>panel.log
//
// # Structured Logging
//
// All log functions use structured fields for queryability:
//
//	logging.Warn("Device request failed",
//	    zap.String("op", "status"),
//	    zap.String("url", "http://192.168.1.40/api/status"),
//	    zap.Error(err),
//	)
//
// # Thread Safety
//
// All logging functions are safe for concurrent use. The underlying zap
// logger handles synchronization automatically.
package logging
