package urlgen

import "regexp"

// placeholderPattern matches either a numeric range [from-to] or an
// alternation {a|b|...}. Submatches 1 and 2 are the range bounds and are
// absent for alternations.
var placeholderPattern = regexp.MustCompile(`\[(\d+)-(\d+)\]|\{[^}]+\}`)

// Kind identifies the placeholder grammar.
type Kind int

const (
	// KindRange is a numeric range such as [01-12].
	KindRange Kind = iota

	// KindAlternation is a literal alternation such as {one|two}.
	KindAlternation
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindRange:
		return "range"
	case KindAlternation:
		return "alternation"
	default:
		return "unknown"
	}
}

// Placeholder is one matched span of a template.
//
// Start and End are byte offsets into the original template, End exclusive.
// From and To hold the raw digit strings of a range, leading zeros included,
// and are empty for alternations.
type Placeholder struct {
	Start int
	End   int
	Raw   string
	Kind  Kind
	From  string
	To    string
}

// Scan returns the placeholders of template in left-to-right order.
//
// Matching is non-overlapping: characters consumed by one placeholder are
// never rescanned. Returns nil when the template has no placeholders.
func Scan(template string) []Placeholder {
	matches := placeholderPattern.FindAllStringSubmatchIndex(template, -1)
	if len(matches) == 0 {
		return nil
	}

	spans := make([]Placeholder, 0, len(matches))
	for _, m := range matches {
		p := Placeholder{
			Start: m[0],
			End:   m[1],
			Raw:   template[m[0]:m[1]],
			Kind:  KindAlternation,
		}
		if m[2] >= 0 && m[4] >= 0 {
			p.Kind = KindRange
			p.From = template[m[2]:m[3]]
			p.To = template[m[4]:m[5]]
		}
		spans = append(spans, p)
	}
	return spans
}
