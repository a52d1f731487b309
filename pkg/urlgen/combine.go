package urlgen

import "math/bits"

// EmptyPolicy decides what an empty option list (a range such as [5-3])
// does to the rest of the expansion.
type EmptyPolicy int

const (
	// EmptyQuirk reproduces the historical fold: an empty option list empties
	// the running results, and the next placeholder processed starts over from
	// the original template. Placeholders to the right of the empty one then
	// survive as raw text in the output. This is the default.
	EmptyQuirk EmptyPolicy = iota

	// EmptyCollapse makes any empty option list produce an empty result set.
	EmptyCollapse
)

// String returns the policy name as used in job files and flags.
func (p EmptyPolicy) String() string {
	switch p {
	case EmptyQuirk:
		return "quirk"
	case EmptyCollapse:
		return "collapse"
	default:
		return "unknown"
	}
}

// ParseEmptyPolicy parses "quirk" or "collapse". The empty string selects EmptyQuirk.
func ParseEmptyPolicy(s string) (EmptyPolicy, bool) {
	switch s {
	case "", "quirk":
		return EmptyQuirk, true
	case "collapse":
		return EmptyCollapse, true
	default:
		return EmptyQuirk, false
	}
}

// combine folds spans right to left into the final result set. lists[i]
// holds the options of spans[i].
//
// Offsets always come from the original template. They stay valid against
// every partial result because only text to the right of the current span
// has been substituted so far.
func combine(template string, spans []Placeholder, lists [][]string, policy EmptyPolicy) ([]string, error) {
	var results []string
	for i := len(spans) - 1; i >= 0; i-- {
		span, opts := spans[i], lists[i]
		if span.Raw == "" {
			return nil, &InvariantError{Start: span.Start, End: span.End, Reason: "empty placeholder text"}
		}

		if len(opts) == 0 && policy == EmptyCollapse {
			return nil, nil
		}

		if len(results) == 0 {
			results = substitute(template, span, opts, nil)
			continue
		}

		next := make([]string, 0, preallocLen(len(results), len(opts)))
		for _, r := range results {
			next = substitute(r, span, opts, next)
		}
		results = next
	}
	return results, nil
}

// preallocLen returns a*b capped at maxPrealloc. The product is taken in
// 128 bits so it cannot wrap.
func preallocLen(a, b int) int {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > maxPrealloc {
		return maxPrealloc
	}
	return int(lo)
}

// substitute appends s with span replaced by each option to dst.
func substitute(s string, span Placeholder, opts []string, dst []string) []string {
	prefix, suffix := s[:span.Start], s[span.End:]
	for _, o := range opts {
		dst = append(dst, prefix+o+suffix)
	}
	return dst
}
