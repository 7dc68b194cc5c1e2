package types

import (
	"strconv"
	"time"
)

// Timestamp is a position in a song, in milliseconds.
type Timestamp uint64

const (
	millisPerSecond = 1000
	millisPerMinute = 60 * millisPerSecond
)

// DefaultMaxTagWidth bounds the search for a time tag's ']', in bytes
// counted from just after the '['. It fits an eight-digit minute field
// with a three-digit fraction.
const DefaultMaxTagWidth = 16

// NewTimestamp builds a Timestamp from its clock components.
//
// Components are not range-checked: seconds above 59 and millis above 999
// simply carry into the next unit.
func NewTimestamp(minutes, seconds, millis uint64) Timestamp {
	return Timestamp(minutes*millisPerMinute + seconds*millisPerSecond + millis)
}

// Milliseconds returns the timestamp as a plain integer.
func (t Timestamp) Milliseconds() uint64 {
	return uint64(t)
}

// Duration converts the timestamp to a time.Duration.
func (t Timestamp) Duration() time.Duration {
	return time.Duration(t) * time.Millisecond
}

// Clock splits the timestamp into minutes, seconds and milliseconds.
// Minutes are not wrapped into hours.
func (t Timestamp) Clock() (minutes, seconds, millis uint64) {
	ms := uint64(t)
	return ms / millisPerMinute, (ms / millisPerSecond) % 60, ms % millisPerSecond
}

// String renders the timestamp as MM:SS.mmm.
func (t Timestamp) String() string {
	return string(t.appendClock(make([]byte, 0, 12)))
}

// AppendTag appends the bracketed LRC form [MM:SS.mmm] to b.
func (t Timestamp) AppendTag(b []byte) []byte {
	b = append(b, '[')
	b = t.appendClock(b)
	return append(b, ']')
}

func (t Timestamp) appendClock(b []byte) []byte {
	minutes, seconds, millis := t.Clock()
	if minutes < 10 {
		b = append(b, '0')
	}
	b = strconv.AppendUint(b, minutes, 10)
	b = append(b, ':', byte('0'+seconds/10), byte('0'+seconds%10), '.')
	return append(b, byte('0'+millis/100), byte('0'+millis/10%10), byte('0'+millis%10))
}
