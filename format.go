package calculator

import (
	"strconv"
	"strings"
)

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

// formatReal formats a float64 with the shortest digits that round-trip,
// using plain notation for decimal exponents from -6 to 20 and scientific
// notation with an explicitly signed exponent otherwise. This is the format
// used by ECMAScript's Number.prototype.toString, which calculator displays
// conventionally reformat from.
func formatReal(v float64) string {
	if v == 0 {
		return "0"
	}
	if v < 0 {
		return "-" + formatReal(-v)
	}
	// strconv gives us d.ddde±xx with the shortest round-trip digits.
	e := strconv.FormatFloat(v, 'e', -1, 64)
	k := strings.IndexByte(e, 'e')
	digits := strings.Replace(e[:k], ".", "", 1)
	exp, err := strconv.Atoi(e[k+1:])
	if err != nil {
		panic("calculator: bad float format " + e)
	}
	// v = 0.digits × 10^n
	n := exp + 1
	nd := len(digits)
	var b strings.Builder
	switch {
	case nd <= n && n <= 21:
		b.WriteString(digits)
		for i := nd; i < n; i++ {
			b.WriteByte('0')
		}
	case 0 < n && n <= 21:
		b.WriteString(digits[:n])
		b.WriteByte('.')
		b.WriteString(digits[n:])
	case -6 < n && n <= 0:
		b.WriteString("0.")
		for i := n; i < 0; i++ {
			b.WriteByte('0')
		}
		b.WriteString(digits)
	default:
		b.WriteByte(digits[0])
		if nd > 1 {
			b.WriteByte('.')
			b.WriteString(digits[1:])
		}
		b.WriteByte('e')
		if n-1 < 0 {
			b.WriteByte('-')
			b.WriteString(strconv.Itoa(1 - n))
		} else {
			b.WriteByte('+')
			b.WriteString(strconv.Itoa(n - 1))
		}
	}
	return b.String()
}
