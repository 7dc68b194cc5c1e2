package types

import "io"

// String renders the document as canonical LRC text.
//
// Tags come first in ascending key order, one [key:value] per line. Each
// lyric line follows with its timestamps as [MM:SS.mmm] and its text.
// Every line, including the last, ends with '\n'.
//
// Comments, blank lines and the original fraction width are not preserved,
// but parsing the output yields the same tags, timestamps and text.
func (l *Lyrics) String() string {
	return string(l.AppendText(make([]byte, 0, l.sizeHint())))
}

// AppendText appends the canonical LRC text to b.
func (l *Lyrics) AppendText(b []byte) []byte {
	for key, value := range l.metadata.All() {
		b = append(b, '[')
		b = append(b, key...)
		b = append(b, ':')
		b = append(b, value...)
		b = append(b, ']', '\n')
	}
	for _, line := range l.lines {
		for _, ts := range line.Timestamps() {
			b = ts.AppendTag(b)
		}
		b = append(b, line.Text()...)
		b = append(b, '\n')
	}
	return b
}

// MarshalText implements encoding.TextMarshaler.
func (l *Lyrics) MarshalText() ([]byte, error) {
	return l.AppendText(make([]byte, 0, l.sizeHint())), nil
}

// WriteTo writes the canonical LRC text to w.
func (l *Lyrics) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(l.AppendText(make([]byte, 0, l.sizeHint())))
	return int64(n), err
}

// sizeHint estimates the formatted length to avoid regrowing the buffer.
func (l *Lyrics) sizeHint() int {
	n := 0
	for key, value := range l.metadata.All() {
		n += len(key) + len(value) + 4
	}
	for _, line := range l.lines {
		n += 11*len(line.Timestamps()) + len(line.Text()) + 1
	}
	return n
}
