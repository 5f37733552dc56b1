package symbol

import "strings"

// subscriptDigits maps '0'..'9' to their Unicode subscript equivalents.
var subscriptDigits = [10]rune{'₀', '₁', '₂', '₃', '₄', '₅', '₆', '₇', '₈', '₉'}

func isSubscriptDigit(r rune) (int, bool) {
	for d, sub := range subscriptDigits {
		if r == sub {
			return d, true
		}
	}
	return 0, false
}

// splitName peels off a trailing run of subscript digits from name, returning
// the bare stem and the next count to try: the suffix already present plus
// one, or 1 if there was none.
func splitName(name string) (stem string, n int) {
	runes := []rune(name)
	multiplier := 1
	count := 0
	i := len(runes)
	for i > 0 {
		d, ok := isSubscriptDigit(runes[i-1])
		if !ok {
			break
		}
		count += d * multiplier
		multiplier *= 10
		i--
	}
	if i == len(runes) {
		return name, 1
	}
	return string(runes[:i]), count + 1
}

func unsplitName(stem string, n int) string {
	var b strings.Builder
	b.WriteString(stem)
	digits := []rune{}
	if n == 0 {
		digits = append(digits, subscriptDigits[0])
	}
	for n > 0 {
		digits = append([]rune{subscriptDigits[n%10]}, digits...)
		n /= 10
	}
	b.WriteString(string(digits))
	return b.String()
}

// Fresh returns a symbol derived from x that does not occur in used. If x
// itself is unused, it is returned unchanged. Otherwise the candidate is
// split into (stem, subscript count); the as-split candidate is tried
// first and the count is only bumped on collision, mirroring the
// try-then-bump order of the reference Pie implementation's
// freshen/freshen_aux routine.
func Fresh(used Set, x *Symbol) *Symbol {
	if !used.Has(x) {
		return x
	}
	stem, n := splitName(x.Name())
	for {
		candidate := Intern(unsplitName(stem, n))
		if !used.Has(candidate) {
			return candidate
		}
		n++
	}
}

// NamesOf returns the set of the given symbols, a convenience for
// building an exclusion set to pass to Fresh.
func NamesOf(names ...*Symbol) Set {
	return NewSet(names...)
}
