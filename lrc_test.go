package lrc_test

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/simonhull/lrc"
)

func TestParse_LyricLine(t *testing.T) {
	lyrics, err := lrc.Parse("[01:01.00]aaa\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if lyrics.LineCount() != 1 {
		t.Fatalf("LineCount = %d, want 1", lyrics.LineCount())
	}
	line := lyrics.Line(0)
	if !slices.Equal(line.Timestamps(), []lrc.Timestamp{61000}) {
		t.Errorf("Timestamps = %v, want [61000]", line.Timestamps())
	}
	if line.Text() != "aaa" {
		t.Errorf("Text = %q, want aaa", line.Text())
	}
}

func TestParse_Metadata(t *testing.T) {
	lyrics, err := lrc.Parse("[kk:vv]\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	meta := lyrics.Metadata()
	if meta.Len() != 1 {
		t.Errorf("Len = %d, want 1", meta.Len())
	}
	if v, ok := meta.Get("kk"); !ok || v != "vv" {
		t.Errorf("Get(kk) = %q, %v, want vv", v, ok)
	}
}

func TestParse_InvalidTag(t *testing.T) {
	_, err := lrc.Parse("[ kk:vv]\n")
	if !errors.Is(err, lrc.KindInvalidTag) {
		t.Errorf("err = %v, want %v", err, lrc.KindInvalidTag)
	}
}

func TestParse_MetadataAfterLyrics(t *testing.T) {
	text := "[ar:artist]\n[00:01.00]one\n[00:02.00]two\n[ti:title]\n"

	_, err := lrc.Parse(text)
	var perr *lrc.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("err = %v, want *ParseError", err)
	}
	if perr.Kind != lrc.KindMetadataAfterLyrics || perr.Line != 4 {
		t.Errorf("got line %d %s, want line 4 %s", perr.Line, perr.Kind, lrc.KindMetadataAfterLyrics)
	}
	if !strings.Contains(err.Error(), "line 4") {
		t.Errorf("message %q should name the line", err.Error())
	}
}

func TestLyrics_Format(t *testing.T) {
	lyrics := lrc.New()
	if err := lyrics.SetMetadata("ar", "周杰伦"); err != nil {
		t.Fatal(err)
	}
	if err := lyrics.SetMetadata("ti", "晴天"); err != nil {
		t.Fatal(err)
	}
	if err := lyrics.AddLine(lrc.NewLine("第一行歌词", 72340)); err != nil {
		t.Fatal(err)
	}
	if err := lyrics.AddLine(lrc.NewLine("第二行歌词", 25670, 26000)); err != nil {
		t.Fatal(err)
	}

	want := "[ar:周杰伦]\n[ti:晴天]\n[01:12.340]第一行歌词\n[00:25.670][00:26.000]第二行歌词\n"
	if got := lyrics.String(); got != want {
		t.Errorf("String() =\n%s\nwant\n%s", got, want)
	}
	if got := fmt.Sprint(lyrics); got != want {
		t.Errorf("fmt.Sprint = %q, want %q", got, want)
	}
}

func TestParse_UnterminatedLastLine(t *testing.T) {
	text := "[ar:artist]\n[00:01.00]kept\n[00:02.00]lost"

	lyrics, err := lrc.Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	if lyrics.LineCount() != 1 {
		t.Errorf("LineCount = %d, want 1 (unterminated line dropped)", lyrics.LineCount())
	}

	lyrics, err = lrc.Parse(text, lrc.WithUnterminatedLastLine())
	if err != nil {
		t.Fatal(err)
	}
	if lyrics.LineCount() != 2 {
		t.Errorf("LineCount = %d, want 2 with WithUnterminatedLastLine", lyrics.LineCount())
	}
}

func TestParse_FractionWidths(t *testing.T) {
	tests := []struct {
		tag  string
		want lrc.Timestamp
	}{
		{"[02:03]", 2*60000 + 3*1000},
		{"[02:03.4]", 2*60000 + 3*1000 + 4*100},
		{"[02:03.45]", 2*60000 + 3*1000 + 45*10},
		{"[02:03.456]", 2*60000 + 3*1000 + 456},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			lyrics, err := lrc.Parse(tt.tag + "x\n")
			if err != nil {
				t.Fatal(err)
			}
			if got := lyrics.Line(0).Timestamps()[0]; got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParse_InvalidTimestamps(t *testing.T) {
	for _, tag := range []string{"[01:]", "[01:aa]", "[01:02.]", "[01:02.x]", "[1a:02]", "[01:02.3456]"} {
		t.Run(tag, func(t *testing.T) {
			lyrics, err := lrc.Parse(tag + "x\n")
			if !errors.Is(err, lrc.KindInvalidTimestamp) {
				t.Errorf("err = %v, want %v", err, lrc.KindInvalidTimestamp)
			}
			if lyrics != nil {
				t.Error("expected no partial result")
			}
		})
	}
}

func TestFormatThenParse(t *testing.T) {
	text := "# header\n" +
		"[ti:Title]\n" +
		"[ar:Artist]\n" +
		"\n" +
		"[00:01.1]one\n" +
		"[00:02.22][01:03.333] two\n" +
		"[123:59.00]three\n"

	first, err := lrc.Parse(text)
	if err != nil {
		t.Fatal(err)
	}
	second, err := lrc.Parse(first.String())
	if err != nil {
		t.Fatalf("reparse failed: %v\n%s", err, first.String())
	}

	if !maps.Equal(first.Metadata().Map(), second.Metadata().Map()) {
		t.Errorf("metadata changed: %v != %v", first.Metadata().Map(), second.Metadata().Map())
	}
	if first.LineCount() != second.LineCount() {
		t.Fatalf("line count changed: %d != %d", first.LineCount(), second.LineCount())
	}
	for i, line := range first.All() {
		other := second.Line(i)
		if !slices.Equal(line.Timestamps(), other.Timestamps()) || line.Text() != other.Text() {
			t.Errorf("line %d changed: %v %q != %v %q",
				i, line.Timestamps(), line.Text(), other.Timestamps(), other.Text())
		}
	}

	if got := first.Line(0).Timestamps()[0].String(); got != "00:01.100" {
		t.Errorf("fraction width not normalized: %s", got)
	}
}

func TestBuiltLyricsReparse(t *testing.T) {
	lines := []lrc.OwnedLine{
		lrc.NewLine("", 1000),
		lrc.NewLine("  leading spaces", 2000),
		lrc.NewLine("a [00:01.00] b", 3000),
		lrc.NewLine("widest", lrc.NewTimestamp(99_999_999, 59, 999)),
	}

	built := lrc.New()
	if err := built.SetMetadata("ti", "Title"); err != nil {
		t.Fatal(err)
	}
	for _, line := range lines {
		if err := built.AddLine(line); err != nil {
			t.Fatalf("AddLine(%q) = %v", line.Text(), err)
		}
	}

	parsed, err := lrc.Parse(built.String())
	if err != nil {
		t.Fatalf("reparse failed: %v\n%s", err, built.String())
	}
	if parsed.LineCount() != len(lines) {
		t.Fatalf("LineCount = %d, want %d", parsed.LineCount(), len(lines))
	}
	for i, line := range lines {
		other := parsed.Line(i)
		if !slices.Equal(line.Timestamps(), other.Timestamps()) || line.Text() != other.Text() {
			t.Errorf("line %d changed: %v %q != %v %q",
				i, line.Timestamps(), line.Text(), other.Timestamps(), other.Text())
		}
	}

	rejected := []lrc.OwnedLine{
		lrc.NewLine("a\n[ar:x]", 1000),
		lrc.NewLine("[ar:x]tail", 1000),
		lrc.NewLine("trailing  ", 1000),
		lrc.NewLine("x", lrc.NewTimestamp(1_000_000_000, 0, 0)),
	}
	for _, line := range rejected {
		if err := lrc.New().AddLine(line); err == nil {
			t.Errorf("AddLine(%q, %v) accepted a line that does not read back", line.Text(), line.Timestamps())
		}
	}
}

func TestParseBytes(t *testing.T) {
	buf := []byte("[00:01.00]hello\n")
	lyrics, err := lrc.ParseBytes(buf)
	if err != nil {
		t.Fatal(err)
	}

	copy(buf, "XXXXXXXXXXXXXXXX")
	if lyrics.Line(0).Text() != "hello" {
		t.Errorf("text changed with input buffer: %q", lyrics.Line(0).Text())
	}
}

func TestParseReader(t *testing.T) {
	lyrics, err := lrc.ParseReader(strings.NewReader("[ti:x]\n[00:01.00]hello\n"))
	if err != nil {
		t.Fatal(err)
	}
	if lyrics.LineCount() != 1 {
		t.Errorf("LineCount = %d, want 1", lyrics.LineCount())
	}

	_, err = lrc.ParseReader(iotest.ErrReader(errors.New("boom")))
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Errorf("err = %v, want read error", err)
	}
}

func TestParseTimestamp(t *testing.T) {
	ts, err := lrc.ParseTimestamp("01:12.34")
	if err != nil {
		t.Fatal(err)
	}
	if ts != 72340 {
		t.Errorf("ParseTimestamp = %d, want 72340", ts)
	}

	if _, err := lrc.ParseTimestamp("1:2"); !errors.Is(err, lrc.KindInvalidTimestamp) {
		t.Errorf("err = %v, want %v", err, lrc.KindInvalidTimestamp)
	}
}

func TestOwned(t *testing.T) {
	lyrics, err := lrc.Parse("[00:01.00]keep me\n")
	if err != nil {
		t.Fatal(err)
	}

	owned := lrc.Owned(lyrics.Line(0))
	if owned.Text() != "keep me" || owned.Timestamps()[0] != 1000 {
		t.Errorf("Owned = %v %q", owned.Timestamps(), owned.Text())
	}
}
