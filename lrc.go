package lrc

import (
	"fmt"
	"io"
	"strings"

	"github.com/simonhull/lrc/internal/parser"
	"github.com/simonhull/lrc/internal/types"
)

// Parse parses an LRC document.
//
// The first malformed tag stops parsing and is reported as a *ParseError
// carrying its 1-based line number; no partial result is returned. Lines
// that don't start with '[' are ignored, as are blank lines and comments
// starting with '#'.
//
// Parse keeps no state between calls and is safe for concurrent use on
// independent inputs.
//
// Example:
//
//	lyrics, err := lrc.Parse("[ti:Sunny Day]\n[00:12.34]Hello\n")
//	if err != nil {
//		var perr *lrc.ParseError
//		if errors.As(err, &perr) {
//			log.Printf("line %d: %s", perr.Line, perr.Kind)
//		}
//		return err
//	}
//	for _, line := range lyrics.All() {
//		fmt.Println(line.Timestamps(), line.Text())
//	}
func Parse(text string, opts ...Option) (*Lyrics, error) {
	return parser.Parse(text, applyOptions(opts))
}

// ParseBytes parses an LRC document held in a byte slice.
//
// The input is copied once, so b may be reused after ParseBytes returns.
func ParseBytes(b []byte, opts ...Option) (*Lyrics, error) {
	return Parse(string(b), opts...)
}

// ParseReader reads r to EOF and parses the result.
func ParseReader(r io.Reader, opts ...Option) (*Lyrics, error) {
	var sb strings.Builder
	if _, err := io.Copy(&sb, r); err != nil {
		return nil, fmt.Errorf("read lyrics: %w", err)
	}
	return Parse(sb.String(), opts...)
}

// ParseTimestamp parses the inside of a single time tag, such as
// "01:02.34", into a Timestamp.
//
// Errors are reported as KindInvalidTimestamp.
func ParseTimestamp(s string) (Timestamp, error) {
	ts, ok := parser.ParseTimestamp(s)
	if !ok {
		return 0, types.KindInvalidTimestamp
	}
	return ts, nil
}
