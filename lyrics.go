package lrc

import (
	"github.com/simonhull/lrc/internal/types"
)

// Lyrics is an alias to types.Lyrics.
// Re-exporting from internal/types to maintain public API.
type Lyrics = types.Lyrics

// Metadata is an alias to types.Metadata.
// Re-exporting from internal/types to maintain public API.
type Metadata = types.Metadata

// Line is an alias to types.Line.
// Re-exporting from internal/types to maintain public API.
type Line = types.Line

// BorrowedLine is an alias to types.BorrowedLine.
// Re-exporting from internal/types to maintain public API.
type BorrowedLine = types.BorrowedLine

// OwnedLine is an alias to types.OwnedLine.
// Re-exporting from internal/types to maintain public API.
type OwnedLine = types.OwnedLine

// Timestamp is an alias to types.Timestamp.
// Re-exporting from internal/types to maintain public API.
type Timestamp = types.Timestamp

// New returns an empty Lyrics.
//
// Use it to build a document by hand, then render it with String:
//
//	lyrics := lrc.New()
//	_ = lyrics.SetMetadata("ti", "Sunny Day")
//	_ = lyrics.AddLine(lrc.NewLine("first line", 72340))
//	fmt.Print(lyrics)
func New() *Lyrics {
	return types.New()
}

// NewLine builds an OwnedLine from text and one or more timestamps.
func NewLine(text string, timestamps ...Timestamp) OwnedLine {
	return types.NewOwnedLine(text, timestamps...)
}

// NewTimestamp builds a Timestamp from minutes, seconds and milliseconds.
func NewTimestamp(minutes, seconds, millis uint64) Timestamp {
	return types.NewTimestamp(minutes, seconds, millis)
}

// Owned returns a copy of line that does not share memory with the parsed
// input.
//
// Lines returned by Parse are BorrowedLine values that keep the entire
// input string alive. Convert the few lines you keep long-term to release
// it:
//
//	current := lrc.Owned(lyrics.Line(i))
func Owned(line Line) OwnedLine {
	return types.Owned(line)
}
