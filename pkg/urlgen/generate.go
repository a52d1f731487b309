package urlgen

import (
	"fmt"
	"strconv"
	"strings"
)

// Options returns the literal replacements for p, in order.
//
// Alternations split their body on '|' and keep empty segments. Ranges
// enumerate From..To inclusive in ascending order and are empty when
// From > To. A range whose From has a leading zero (and is not exactly "0")
// is zero-padded to len(From); longer values are never truncated.
func (p Placeholder) Options() ([]string, error) {
	if p.Kind == KindAlternation {
		if len(p.Raw) < 2 {
			return nil, &InvariantError{Start: p.Start, End: p.End, Reason: "alternation shorter than its braces"}
		}
		return strings.Split(p.Raw[1:len(p.Raw)-1], "|"), nil
	}

	from, to, empty, err := p.bounds()
	if err != nil || empty {
		return nil, err
	}

	width := 0
	if p.From != "0" && strings.HasPrefix(p.From, "0") {
		width = len(p.From)
	}

	opts := make([]string, 0, min(rangeLen(from, to), maxPrealloc))
	for i := from; ; i++ {
		if width > 0 {
			opts = append(opts, fmt.Sprintf("%0*d", width, i))
		} else {
			opts = append(opts, strconv.FormatUint(i, 10))
		}
		// Checked before incrementing so to == MaxUint64 terminates.
		if i == to {
			break
		}
	}
	return opts, nil
}

// optionCount returns len(p.Options()) without rendering anything.
func (p Placeholder) optionCount() (uint64, error) {
	if p.Kind == KindAlternation {
		return uint64(strings.Count(p.Raw, "|") + 1), nil
	}
	from, to, empty, err := p.bounds()
	if err != nil || empty {
		return 0, err
	}
	return rangeLen(from, to), nil
}

// bounds parses a range's bounds. empty reports From > To, which is decided
// on the digit strings so that a reversed range is never a parse error,
// however wide its bounds.
func (p Placeholder) bounds() (from, to uint64, empty bool, err error) {
	if compareDecimal(p.From, p.To) > 0 {
		return 0, 0, true, nil
	}
	from, err = strconv.ParseUint(p.From, 10, 64)
	if err != nil {
		return 0, 0, false, &RangeError{Raw: p.Raw, Bound: p.From, Err: err}
	}
	to, err = strconv.ParseUint(p.To, 10, 64)
	if err != nil {
		return 0, 0, false, &RangeError{Raw: p.Raw, Bound: p.To, Err: err}
	}
	return from, to, false, nil
}

// compareDecimal compares two unsigned decimal digit strings by value,
// returning -1, 0 or +1. Leading zeros are ignored.
func compareDecimal(a, b string) int {
	a = strings.TrimLeft(a, "0")
	b = strings.TrimLeft(b, "0")
	if len(a) != len(b) {
		if len(a) < len(b) {
			return -1
		}
		return 1
	}
	return strings.Compare(a, b)
}

// maxPrealloc bounds up-front slice allocation for very wide ranges and
// products.
const maxPrealloc = 1 << 16

// rangeLen returns to-from+1, saturating at MaxUint64. Callers ensure from <= to.
func rangeLen(from, to uint64) uint64 {
	n := to - from
	if n == ^uint64(0) {
		return n
	}
	return n + 1
}
