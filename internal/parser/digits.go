package parser

import "math"

// parseDigits parses a non-empty run of ASCII decimal digits.
// Signs, spaces and underscores are rejected, unlike strconv.ParseUint.
func parseDigits(s string) (uint64, bool) {
	if s == "" {
		return 0, false
	}
	var n uint64
	for i := 0; i < len(s); i++ {
		d := s[i] - '0'
		if d > 9 {
			return 0, false
		}
		if n > (math.MaxUint64-uint64(d))/10 {
			return 0, false
		}
		n = n*10 + uint64(d)
	}
	return n, true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
