package urlgen

import (
	"log/slog"

	"github.com/randalmurphal/urlgen/pkg/urlgen/observability"
)

// Option configures an Expander.
type Option func(*Expander)

// WithEmptyPolicy sets how an empty option list affects the result.
//
// Default: EmptyQuirk
//
// Example:
//
//	exp := New(WithEmptyPolicy(EmptyCollapse))
//	urls, _ := exp.Expand(ctx, "a[5-3]{x|y}")
//	// urls: [] (empty)
func WithEmptyPolicy(policy EmptyPolicy) Option {
	return func(e *Expander) {
		e.emptyPolicy = policy
	}
}

// WithMaxResults caps the number of strings one expansion may produce.
// Expansions over the cap fail with *LimitError before any string is built.
// Values <= 0 leave expansion unbounded.
//
// Default: 0 (unbounded)
func WithMaxResults(n int) Option {
	return func(e *Expander) {
		if n > 0 {
			e.maxResults = n
		}
	}
}

// WithLogger sets the logger. A nil logger disables logging.
//
// Default: nil
func WithLogger(logger *slog.Logger) Option {
	return func(e *Expander) {
		e.logger = logger
	}
}

// WithMetrics sets the metrics recorder.
//
// Default: observability.NoopMetrics{}
func WithMetrics(m observability.MetricsRecorder) Option {
	return func(e *Expander) {
		if m != nil {
			e.metrics = m
		}
	}
}

// WithSpanManager sets the span manager used for tracing.
//
// Default: observability.NoopSpanManager{}
func WithSpanManager(sm observability.SpanManager) Option {
	return func(e *Expander) {
		if sm != nil {
			e.spans = sm
		}
	}
}
