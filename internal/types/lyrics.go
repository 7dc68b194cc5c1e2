package types

import (
	"iter"
	"slices"
	"strings"
	"unicode"
)

// Lyrics is a parsed LRC document: its metadata tags followed by its timed
// lines.
//
// Lyrics keeps the invariant that every metadata tag precedes every lyric
// line. The parser enforces it while reading; SetMetadata and AddLine
// enforce it for programmatic construction.
type Lyrics struct {
	metadata Metadata
	lines    []Line
}

// New returns an empty Lyrics, ready to be filled with SetMetadata and
// AddLine.
func New() *Lyrics {
	return &Lyrics{}
}

// NewLyrics assembles Lyrics from already validated parts without copying.
func NewLyrics(metadata Metadata, lines []Line) *Lyrics {
	return &Lyrics{metadata: metadata, lines: lines}
}

// Metadata returns a copy of the document's tags. Changes to the copy do
// not affect l.
func (l *Lyrics) Metadata() *Metadata {
	m := l.metadata.Clone()
	return &m
}

// Meta returns the value of a single tag.
//
// Example:
//
//	if title, ok := lyrics.Meta("ti"); ok {
//		fmt.Println("Title:", title)
//	}
func (l *Lyrics) Meta(key string) (string, bool) {
	return l.metadata.Get(key)
}

// AllMetadata iterates over tags in ascending key order.
func (l *Lyrics) AllMetadata() iter.Seq2[string, string] {
	return l.metadata.All()
}

// Lines returns a copy of the line sequence in document order.
func (l *Lyrics) Lines() []Line {
	return slices.Clone(l.lines)
}

// Line returns the i-th line.
func (l *Lyrics) Line(i int) Line {
	return l.lines[i]
}

// LineCount returns the number of lyric lines.
func (l *Lyrics) LineCount() int {
	return len(l.lines)
}

// All iterates over lines in document order together with their index.
func (l *Lyrics) All() iter.Seq2[int, Line] {
	return slices.All(l.lines)
}

// IsEmpty reports whether the document has neither tags nor lines.
func (l *Lyrics) IsEmpty() bool {
	return l.metadata.Len() == 0 && len(l.lines) == 0
}

// SetMetadata adds or replaces a tag.
//
// The key and value are checked against the same rules the parser applies,
// so that formatted output parses back to the same tag. Tags cannot be added
// once the document has lines.
//
// Errors are ErrorKind values: KindInvalidTag, KindInvalidMetadata or
// KindMetadataAfterLyrics.
func (l *Lyrics) SetMetadata(key, value string) error {
	if len(l.lines) > 0 {
		return KindMetadataAfterLyrics
	}
	if err := ValidateMetadataKey(key); err != nil {
		return err
	}
	if err := ValidateMetadataValue(value); err != nil {
		return err
	}
	l.metadata.Set(key, value)
	return nil
}

// AddLine appends a line.
//
// The line must read back unchanged once formatted. It needs at least one
// timestamp, every timestamp must pass ValidateTimestamp and its text must
// pass ValidateLineText.
//
// Errors are ErrorKind values: KindInvalidTimestamp or KindInvalidText.
func (l *Lyrics) AddLine(line Line) error {
	stamps := line.Timestamps()
	if len(stamps) == 0 {
		return KindInvalidTimestamp
	}
	for _, ts := range stamps {
		if err := ValidateTimestamp(ts); err != nil {
			return err
		}
	}
	if err := ValidateLineText(line.Text()); err != nil {
		return err
	}
	l.lines = append(l.lines, line)
	return nil
}

// ValidateTimestamp checks that the [MM:SS.mmm] form of ts closes within
// DefaultMaxTagWidth, so the parser finds its ']' with default settings.
func ValidateTimestamp(ts Timestamp) error {
	var buf [32]byte
	if len(ts.appendClock(buf[:0])) >= DefaultMaxTagWidth {
		return KindInvalidTimestamp
	}
	return nil
}

// ValidateLineText checks that text can follow a line's time tags and be
// read back unchanged.
//
// Text may be empty and may start with spaces. It must not contain line
// breaks, start with '[' (it would be read as another tag) or end with
// whitespace (it would be trimmed).
func ValidateLineText(text string) error {
	switch {
	case strings.ContainsAny(text, "\r\n"):
		return KindInvalidText
	case strings.HasPrefix(text, "["):
		return KindInvalidText
	case strings.TrimRightFunc(text, unicode.IsSpace) != text:
		return KindInvalidText
	}
	return nil
}

// ValidateMetadataKey checks that key can be written as a tag key and
// read back unchanged.
func ValidateMetadataKey(key string) error {
	switch {
	case key == "":
		return KindInvalidTag
	case key[0] == ' ' || key[len(key)-1] == ' ':
		return KindInvalidTag
	case key[0] >= '0' && key[0] <= '9':
		// Would be read back as a time tag.
		return KindInvalidTag
	case strings.ContainsAny(key, ":\r\n"):
		return KindInvalidTag
	}
	return nil
}

// ValidateMetadataValue checks that value can be written as a tag value and
// read back unchanged.
func ValidateMetadataValue(value string) error {
	switch {
	case value == "":
		return KindInvalidMetadata
	case value[0] == ' ' || value[len(value)-1] == ' ':
		return KindInvalidMetadata
	case strings.ContainsAny(value, "]\r\n"):
		return KindInvalidMetadata
	}
	return nil
}
