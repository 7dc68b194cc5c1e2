package types

import (
	"slices"
	"strings"
)

// Line is a single timed lyric line: one or more timestamps sharing the
// same text.
//
// Two implementations exist. BorrowedLine is produced by the parser and
// shares memory with the parsed input; OwnedLine carries its own copy.
// Both are interchangeable wherever a Line is accepted.
type Line interface {
	// Timestamps returns the line's time tags in source order.
	// The returned slice must not be modified.
	Timestamps() []Timestamp

	// Text returns everything after the last time tag, verbatim.
	Text() string
}

// BorrowedLine is a Line whose text is a view into the parsed input.
//
// A BorrowedLine keeps the whole input string reachable for as long as the
// line itself is reachable. Convert to an OwnedLine with Owned to release
// the input.
type BorrowedLine struct {
	timestamps []Timestamp
	text       string
}

// NewBorrowedLine wraps text and timestamps without copying either.
// The caller must not modify timestamps afterwards.
func NewBorrowedLine(text string, timestamps []Timestamp) BorrowedLine {
	return BorrowedLine{timestamps: timestamps, text: text}
}

func (l BorrowedLine) Timestamps() []Timestamp { return l.timestamps }

func (l BorrowedLine) Text() string { return l.text }

// OwnedLine is a Line holding private copies of its text and timestamps.
type OwnedLine struct {
	timestamps []Timestamp
	text       string
}

// NewOwnedLine builds a line from text and timestamps, copying both.
//
// Example:
//
//	line := types.NewOwnedLine("first line", 72340)
func NewOwnedLine(text string, timestamps ...Timestamp) OwnedLine {
	return OwnedLine{
		timestamps: slices.Clone(timestamps),
		text:       strings.Clone(text),
	}
}

func (l OwnedLine) Timestamps() []Timestamp { return l.timestamps }

func (l OwnedLine) Text() string { return l.text }

// Owned returns an OwnedLine with the same content as l.
// An OwnedLine is returned as is.
func Owned(l Line) OwnedLine {
	if owned, ok := l.(OwnedLine); ok {
		return owned
	}
	return NewOwnedLine(l.Text(), l.Timestamps()...)
}
