package types

import "fmt"

// ErrorKind classifies why a line failed to parse.
//
// ErrorKind implements error so that each kind can be used directly as an
// errors.Is target:
//
//	if errors.Is(err, types.KindInvalidTag) { ... }
//
//go:generate stringer -type=ErrorKind -linecomment
type ErrorKind int

const (
	// KindInvalidTag reports a malformed metadata key: empty, missing its
	// ':' separator, or surrounded by spaces.
	KindInvalidTag ErrorKind = iota + 1 // invalid tag
	// KindInvalidMetadata reports a malformed metadata value: a space after
	// the ':', no closing bracket, an empty value or a trailing space.
	KindInvalidMetadata // invalid metadata
	// KindInvalidTimestamp reports a time tag whose minutes, seconds or
	// fraction are not decimal digits, or whose fraction width is not 0-3.
	KindInvalidTimestamp // invalid timestamp
	// KindMissingBrackets reports a time tag with no ']' inside the scan
	// window.
	KindMissingBrackets // missing brackets
	// KindMetadataAfterLyrics reports a metadata tag following the first
	// lyric line.
	KindMetadataAfterLyrics // metadata after lyrics
	// KindInvalidText reports lyric text that would not read back unchanged
	// once formatted. The parser never returns it.
	KindInvalidText // invalid text
)

// Error returns the kind name, so that a bare ErrorKind is a usable error.
func (k ErrorKind) Error() string {
	return k.String()
}

// ParseError is returned when a line of LRC input cannot be parsed.
//
// Line is 1-based and counts every physical line of the input, including
// blank and comment lines that the parser skips.
type ParseError struct {
	Line int
	Kind ErrorKind
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Kind)
}

// Unwrap returns the error kind so callers can match with errors.Is.
func (e *ParseError) Unwrap() error {
	return e.Kind
}
