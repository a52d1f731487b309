/*
Package urlgen expands compact range and alternation templates into every
concrete string they denote.

# Overview

A template is an ordinary string with embedded placeholders. urlgen finds
every placeholder, lists its values, and returns the cartesian product
substituted into the template. It is designed for generating batches of
URLs, but any templated string works.

# Basic Usage

	urls := urlgen.Iter("https://example.com/[1-2]/page[01-02]?q={one|two}")
	// 8 URLs, including:
	//   https://example.com/1/page01?q=one
	//   https://example.com/2/page02?q=two

# Placeholder Syntax

Two forms are recognised:

  - [from-to] - inclusive numeric range. [0-12] yields 0..12. When from has a
    leading zero and is not exactly "0", values are zero-padded to its width:
    [001-100] yields 001..100.
  - {a|b|...} - literal alternation. Segments may be empty ({a||b} yields
    "a", "", "b"). There is no escaping of '|' or '}'.

Placeholders do not nest and never overlap. A template with no placeholders
expands to an empty result, not to itself.

# Empty Ranges

A range whose lower bound exceeds its upper bound, such as [5-3], has no
values. What that does to the rest of the template is selected with
WithEmptyPolicy:

  - EmptyQuirk (default) keeps the historical behaviour: placeholders left of
    the empty range start over from the original template, so results can
    contain unexpanded placeholders from its right.
  - EmptyCollapse makes the whole result empty.

# Custom Expander

	exp := urlgen.New(
	    urlgen.WithEmptyPolicy(urlgen.EmptyCollapse),
	    urlgen.WithMaxResults(10_000),
	    urlgen.WithLogger(slog.Default()),
	    urlgen.WithMetrics(observability.NewMetricsRecorder()),
	    urlgen.WithSpanManager(observability.NewSpanManager()),
	)

	urls, err := exp.Expand(ctx, "https://example.com/item/[0001-9999]")
	if errors.Is(err, urlgen.ErrTooManyResults) {
	    // handle oversized template
	}

Count reports the size of a result set without building it.

# Thread Safety

Expander is safe for concurrent use after construction.
Package-level Iter uses a shared default expander.
*/
package urlgen
