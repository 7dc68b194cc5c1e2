// Package parser turns LRC text into types.Lyrics.
//
// Parsing is a single forward pass over the input. Each content line is
// classified as a metadata tag, a lyric line, or noise to ignore, and the
// first malformed tag aborts the whole parse with a *types.ParseError.
package parser

import (
	"strings"

	"github.com/simonhull/lrc/internal/scan"
	"github.com/simonhull/lrc/internal/types"
)

// DefaultMaxTagWidth is the default number of bytes searched for the ']'
// closing a time tag, counted from just after its '['.
const DefaultMaxTagWidth = types.DefaultMaxTagWidth

// Config controls parser behavior.
type Config struct {
	// MaxTagWidth bounds the search for a time tag's closing bracket.
	// Zero or negative means unbounded.
	MaxTagWidth int

	// KeepUnterminatedLine parses a final line that has no trailing '\n'.
	// By default such a line is dropped.
	KeepUnterminatedLine bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		MaxTagWidth:          DefaultMaxTagWidth,
		KeepUnterminatedLine: false,
	}
}

// Parse parses a whole LRC document.
//
// Lines in the result are types.BorrowedLine values sharing memory with
// text.
func Parse(text string, cfg Config) (*types.Lyrics, error) {
	b := &builder{
		cfg:        cfg,
		inMetadata: true,
		lines:      make([]types.Line, 0, linesHint(text)),
	}
	for lineNo, line := range scan.Lines(text, cfg.KeepUnterminatedLine) {
		if err := b.addLine(lineNo, line); err != nil {
			return nil, err
		}
	}
	return types.NewLyrics(b.metadata, b.lines), nil
}

// maxLinesHint caps the initial line capacity. Growth past it is left to
// append.
const maxLinesHint = 64

func linesHint(text string) int {
	return min(scan.CountLines(text), maxLinesHint)
}

// builder accumulates classified lines in document order.
type builder struct {
	cfg        Config
	inMetadata bool
	metadata   types.Metadata
	lines      []types.Line

	// stamps backs the timestamp slices of every line, so short lines
	// don't each need an allocation.
	stamps []types.Timestamp
}

func fail(lineNo int, kind types.ErrorKind) error {
	return &types.ParseError{Line: lineNo, Kind: kind}
}

// addLine classifies one trimmed, non-empty, non-comment line.
func (b *builder) addLine(lineNo int, line string) error {
	if line[0] != '[' {
		return nil
	}

	colon := strings.IndexByte(line, ':')
	if colon < 0 {
		return fail(lineNo, types.KindInvalidTag)
	}
	key := line[1:colon]
	if key == "" {
		return fail(lineNo, types.KindInvalidTag)
	}
	if isDigit(key[0]) {
		return b.addLyric(lineNo, line)
	}

	value, kind := parseMetadata(key, line[colon+1:])
	if kind != 0 {
		return fail(lineNo, kind)
	}
	if !b.inMetadata {
		return fail(lineNo, types.KindMetadataAfterLyrics)
	}
	b.metadata.Set(key, value)
	return nil
}

// parseMetadata validates a tag key and extracts the value from rest, the
// part of the line after the key's ':'.
func parseMetadata(key, rest string) (string, types.ErrorKind) {
	if key[0] == ' ' || key[len(key)-1] == ' ' {
		return "", types.KindInvalidTag
	}
	if rest != "" && rest[0] == ' ' {
		return "", types.KindInvalidMetadata
	}
	end := strings.IndexByte(rest, ']')
	if end < 0 {
		return "", types.KindInvalidMetadata
	}
	value := rest[:end]
	if value == "" || value[len(value)-1] == ' ' {
		return "", types.KindInvalidMetadata
	}
	return value, 0
}

// addLyric consumes the leading run of time tags and keeps the rest of the
// line as text.
func (b *builder) addLyric(lineNo int, line string) error {
	first := len(b.stamps)
	pos := 0
	for pos < len(line) && line[pos] == '[' {
		window := line[pos+1:]
		if b.cfg.MaxTagWidth > 0 && len(window) > b.cfg.MaxTagWidth {
			window = window[:b.cfg.MaxTagWidth]
		}
		end := strings.IndexByte(window, ']')
		if end < 0 {
			return fail(lineNo, types.KindMissingBrackets)
		}
		ts, ok := ParseTimestamp(window[:end])
		if !ok {
			return fail(lineNo, types.KindInvalidTimestamp)
		}
		b.stamps = append(b.stamps, ts)
		pos += end + 2
	}

	if len(b.stamps) == first {
		return nil
	}
	b.inMetadata = false
	stamps := b.stamps[first:len(b.stamps):len(b.stamps)]
	b.lines = append(b.lines, types.NewBorrowedLine(line[pos:], stamps))
	return nil
}
