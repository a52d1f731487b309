// Package observability provides logging, metrics and tracing for urlgen
// expansions.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds expansion context to a logger.
// Returns a new logger with template and placeholders fields.
//
// Example:
//
//	enriched := EnrichLogger(logger, "https://example.com/[1-3]", 1)
//	enriched.Info("expanding") // includes template, placeholders
func EnrichLogger(logger *slog.Logger, template string, placeholders int) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("template", template),
		slog.Int("placeholders", placeholders),
	)
}

// LogExpandStart logs the start of an expansion.
// logger is expected to come from EnrichLogger.
func LogExpandStart(logger *slog.Logger) {
	if logger == nil {
		return
	}
	logger.Debug("expansion starting")
}

// LogExpandComplete logs a successful expansion.
func LogExpandComplete(logger *slog.Logger, durationMs float64, results int) {
	if logger == nil {
		return
	}
	logger.Debug("expansion completed",
		slog.Float64("duration_ms", durationMs),
		slog.Int("results", results),
	)
}

// LogExpandError logs a failed expansion.
func LogExpandError(logger *slog.Logger, err error, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Error("expansion failed",
		slog.String("error", err.Error()),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogEmptyOptions logs a placeholder that expands to nothing, e.g. [5-3].
func LogEmptyOptions(logger *slog.Logger, placeholder string, policy string) {
	if logger == nil {
		return
	}
	logger.Warn("placeholder has no options",
		slog.String("placeholder", placeholder),
		slog.String("empty_policy", policy),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	elapsed := done()
func TimedOperation() func() time.Duration {
	start := time.Now()
	return func() time.Duration {
		return time.Since(start)
	}
}

// Milliseconds converts d to fractional milliseconds for log fields.
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
