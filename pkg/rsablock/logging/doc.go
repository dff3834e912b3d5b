// Package logging provides a minimal logging facade for the rsablock packages.
//
// This package defines a Logger interface that wraps a subset of the standard
// library's log/slog functionality. The interface is intentionally small to
// allow applications to provide custom implementations for testing, redaction,
// or integration with existing logging systems.
//
// # Default Implementation
//
//	// Use default logger (slog.Default())
//	logger := logging.New(nil)
//
//	// JSON to stderr at a configured level
//	level, err := logging.ParseLevel("debug")
//	logger := logging.NewJSON(os.Stderr, level)
//
// # Redaction Support
//
// Private key material must never reach a log record. keys.PrivateKey
// implements slog.LogValuer and renders as a redacted group; ad-hoc secrets
// should be replaced by logging.Redacted:
//
//	logger.Info(ctx, "key loaded", logging.Redacted("d"))
//	// Logs: d="[redacted]"
//
// Block values and public key parameters are not secret and may be logged.
package logging
