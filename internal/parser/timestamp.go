package parser

import (
	"math"
	"strings"

	"github.com/simonhull/lrc/internal/types"
)

// fractionScale maps the length of the seconds field (ss, ss.f, ss.ff,
// ss.fff) to the multiplier that turns its fraction into milliseconds.
var fractionScale = [7]uint64{2: 0, 4: 100, 5: 10, 6: 1}

// maxMinutes keeps minutes*60000 plus 99.999 seconds inside uint64.
const maxMinutes = (math.MaxUint64 - 99_999) / 60_000

// ParseTimestamp parses the inside of a time tag, mm:ss[.f[f[f]]],
// into milliseconds.
//
// Minutes may have any number of digits and are not wrapped. Seconds are
// exactly two digits and are not range-checked.
func ParseTimestamp(s string) (types.Timestamp, bool) {
	colon := strings.IndexByte(s, ':')
	if colon < 0 {
		return 0, false
	}
	minutes, ok := parseDigits(s[:colon])
	if !ok || minutes > maxMinutes {
		return 0, false
	}

	rest := s[colon+1:]
	if len(rest) >= len(fractionScale) || (len(rest) != 2 && fractionScale[len(rest)] == 0) {
		return 0, false
	}
	seconds, ok := parseDigits(rest[:2])
	if !ok {
		return 0, false
	}

	var millis uint64
	if len(rest) > 2 {
		if rest[2] != '.' {
			return 0, false
		}
		frac, ok := parseDigits(rest[3:])
		if !ok {
			return 0, false
		}
		millis = frac * fractionScale[len(rest)]
	}

	return types.NewTimestamp(minutes, seconds, millis), true
}
