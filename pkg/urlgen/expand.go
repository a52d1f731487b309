package urlgen

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"math/bits"

	"go.opentelemetry.io/otel/attribute"

	"github.com/randalmurphal/urlgen/pkg/urlgen/observability"
)

// Expander expands templates into result sets.
//
// Create with New() and configure with Option functions.
// Expander is safe for concurrent use after construction.
type Expander struct {
	emptyPolicy EmptyPolicy
	maxResults  int
	logger      *slog.Logger
	metrics     observability.MetricsRecorder
	spans       observability.SpanManager
}

// New creates a new Expander with the given options.
//
// Default configuration:
//   - EmptyPolicy: EmptyQuirk
//   - MaxResults: unbounded
//   - no logging, metrics or tracing
func New(opts ...Option) *Expander {
	e := &Expander{
		emptyPolicy: EmptyQuirk,
		metrics:     observability.NoopMetrics{},
		spans:       observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Expand returns every string template denotes.
//
// A template without placeholders yields an empty result, not the template
// itself. ctx carries telemetry only; expansion is never cancelled.
//
// Example:
//
//	urls, err := New().Expand(ctx, "https://example.com/page[01-03]")
//	// urls: [https://example.com/page01 https://example.com/page02 https://example.com/page03]
func (e *Expander) Expand(ctx context.Context, template string) ([]string, error) {
	elapsed := observability.TimedOperation()
	ctx, span := e.spans.StartExpandSpan(ctx, template)

	spans := Scan(template)
	logger := observability.EnrichLogger(e.logger, template, len(spans))
	observability.LogExpandStart(logger)

	results, err := e.expand(ctx, logger, template, spans)

	d := elapsed()
	e.spans.EndSpanWithError(span, err)
	e.metrics.RecordExpansion(ctx, len(spans), len(results), d, err)
	if err != nil {
		observability.LogExpandError(logger, err, observability.Milliseconds(d))
		return nil, err
	}
	observability.LogExpandComplete(logger, observability.Milliseconds(d), len(results))
	return results, nil
}

func (e *Expander) expand(ctx context.Context, logger *slog.Logger, template string, spans []Placeholder) ([]string, error) {
	if len(spans) == 0 {
		return nil, nil
	}

	if e.maxResults > 0 {
		n, err := count(spans, e.emptyPolicy)
		if err != nil {
			return nil, err
		}
		if n > e.maxResults {
			return nil, &LimitError{Count: n, Max: e.maxResults}
		}
	}

	lists := make([][]string, len(spans))
	for i, p := range spans {
		opts, err := p.Options()
		if err != nil {
			return nil, err
		}
		if len(opts) == 0 {
			observability.LogEmptyOptions(logger, p.Raw, e.emptyPolicy.String())
			e.spans.AddSpanEvent(ctx, "urlgen.empty_options",
				attribute.String("placeholder", p.Raw),
				attribute.Int("start", p.Start),
			)
		}
		lists[i] = opts
	}

	return combine(template, spans, lists, e.emptyPolicy)
}

// MustExpand is like Expand but panics on error.
//
// The panic value is an error wrapping the cause, so a recover can still use
// errors.Is and errors.As.
func (e *Expander) MustExpand(ctx context.Context, template string) []string {
	results, err := e.Expand(ctx, template)
	if err != nil {
		panic(fmt.Errorf("urlgen: %w", err))
	}
	return results
}

// ExpandAll expands each template in turn.
//
// Returns one result set per template, in input order.
// On error, returns nil and the first error.
func (e *Expander) ExpandAll(ctx context.Context, templates []string) ([][]string, error) {
	if templates == nil {
		return nil, nil
	}

	all := make([][]string, len(templates))
	for i, t := range templates {
		results, err := e.Expand(ctx, t)
		if err != nil {
			return nil, fmt.Errorf("template %d: %w", i, err)
		}
		all[i] = results
	}
	return all, nil
}

// Count returns how many strings Expand would produce for template, without
// building them. It honours the empty policy and saturates at math.MaxInt.
func (e *Expander) Count(template string) (int, error) {
	spans := Scan(template)
	if len(spans) == 0 {
		return 0, nil
	}
	return count(spans, e.emptyPolicy)
}

// count mirrors the fold in combine using list lengths only.
func count(spans []Placeholder, policy EmptyPolicy) (int, error) {
	var total uint64
	for i := len(spans) - 1; i >= 0; i-- {
		n, err := spans[i].optionCount()
		if err != nil {
			return 0, err
		}
		if n == 0 && policy == EmptyCollapse {
			return 0, nil
		}
		if total == 0 {
			total = n
			continue
		}
		hi, lo := bits.Mul64(total, n)
		if hi != 0 {
			total = math.MaxUint64
			continue
		}
		total = lo
	}
	if total > math.MaxInt {
		return math.MaxInt, nil
	}
	return int(total), nil
}

var defaultExpander = New()

// Iter returns every string template denotes, using the default expander.
//
// [0-12] yields 0 through 12, [001-999] yields 001 through 999 (padded), and
// {one|two} yields "one" and "two". Placeholders may be mixed freely. The
// order of results is deterministic but otherwise unspecified.
//
// Iter panics if expansion fails. Only an internal invariant violation or a
// range bound wider than 64 bits can cause that; use Expander.Expand to get
// the error instead.
//
// Example:
//
//	urls := urlgen.Iter("https://example.com/[1-2]/page[01-11]?q={one|two}")
//	// 2 * 11 * 2 = 44 URLs
func Iter(template string) []string {
	return defaultExpander.MustExpand(context.Background(), template)
}
