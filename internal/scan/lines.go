// Package scan splits LRC text into numbered content lines.
package scan

import (
	"iter"
	"strings"
)

// Lines returns an iterator over the content lines of text.
//
// Each yielded pair is a 1-based line number and the line with surrounding
// whitespace trimmed. Line numbers count every physical line, so blank and
// comment lines (those starting with '#') are skipped without shifting the
// numbering of later lines.
//
// Lines are delimited by '\n'. A final segment with no terminating '\n' is
// only yielded when keepUnterminated is set; otherwise it is dropped.
func Lines(text string, keepUnterminated bool) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		lineNo := 0
		rest := text
		for {
			i := strings.IndexByte(rest, '\n')
			if i < 0 {
				break
			}
			lineNo++
			line := rest[:i]
			rest = rest[i+1:]
			if line = content(line); line == "" {
				continue
			}
			if !yield(lineNo, line) {
				return
			}
		}

		if keepUnterminated && rest != "" {
			if line := content(rest); line != "" {
				yield(lineNo+1, line)
			}
		}
	}
}

// content trims a raw line and blanks it out if it is a comment.
func content(line string) string {
	line = strings.TrimSpace(line)
	if line != "" && line[0] == '#' {
		return ""
	}
	return line
}

// CountLines returns an upper bound on the number of lines Lines can yield.
func CountLines(text string) int {
	return strings.Count(text, "\n") + 1
}
