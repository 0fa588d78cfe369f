// Package filters parses heterogeneous textual filter inputs (stipend
// expressions, categorical values, date strings) into normalized,
// comparable predicates.
package filters

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// StipendRange is a closed interval over stipend amounts in the smallest
// currency unit implied by the input ("k" means thousands). Min <= Max is
// enforced by the parser.
type StipendRange struct {
	Min int
	Max int
}

// Contains reports whether v falls inside the range.
func (r StipendRange) Contains(v int) bool {
	return v >= r.Min && v <= r.Max
}

// Overlaps reports whether the two ranges share at least one value.
func (r StipendRange) Overlaps(other StipendRange) bool {
	return r.Min <= other.Max && other.Min <= r.Max
}

const unpaidLiteral = "unpaid"

var (
	currencyRe = regexp.MustCompile(`[₹$€£+]`)
	numTokenRe = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(k)?`)
)

// normalizeStipend strips currency symbols and thousands separators so the
// numeric tokens can be matched positionally.
func normalizeStipend(text string) string {
	s := strings.TrimSpace(text)
	s = strings.ReplaceAll(s, ",", "")
	return currencyRe.ReplaceAllString(s, "")
}

// ParseStipendValue extracts a single numeric stipend amount from free text.
// A trailing case-insensitive "k" multiplies by 1000, with fractional values
// rounded to the nearest integer ("2.5k" is 2500). ok is false when no
// numeric token is present; callers must treat that as "cannot filter on
// stipend", not as a failure.
func ParseStipendValue(text string) (int, bool) {
	m := numTokenRe.FindStringSubmatch(normalizeStipend(text))
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	if m[2] != "" {
		v *= 1000
	}
	return int(math.Round(v)), true
}

// ParseStipendRange parses a stipend filter expression into a closed range.
// "2k-5k" becomes [2000,5000] and a descending "9k-5k" is swapped into
// ascending order. A bare number becomes a degenerate range, and the literal
// "unpaid" means [0,0]. ok is false when nothing numeric is recoverable.
func ParseStipendRange(text string) (StipendRange, bool) {
	if strings.EqualFold(strings.TrimSpace(text), unpaidLiteral) {
		return StipendRange{Min: 0, Max: 0}, true
	}

	s := normalizeStipend(text)
	if lo, hi, found := strings.Cut(s, "-"); found {
		mn, okLo := ParseStipendValue(lo)
		mx, okHi := ParseStipendValue(hi)
		if okLo && okHi {
			if mn > mx {
				mn, mx = mx, mn
			}
			return StipendRange{Min: mn, Max: mx}, true
		}
	}

	v, ok := ParseStipendValue(s)
	if !ok {
		return StipendRange{}, false
	}
	return StipendRange{Min: v, Max: v}, true
}
