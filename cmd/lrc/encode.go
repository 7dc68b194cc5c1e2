package main

import (
	"encoding/json"
	"io"

	"github.com/simonhull/lrc"
)

// Encoder writes parsed lyrics in some output format.
type Encoder interface {
	Encode(lyrics *lrc.Lyrics) error
}

// LRCEncoder writes canonical LRC text.
type LRCEncoder struct {
	w io.Writer
}

// NewLRCEncoder creates an encoder that writes to w.
func NewLRCEncoder(w io.Writer) *LRCEncoder {
	return &LRCEncoder{w: w}
}

// Encode writes lyrics as canonical LRC text.
func (e *LRCEncoder) Encode(lyrics *lrc.Lyrics) error {
	_, err := lyrics.WriteTo(e.w)
	return err
}

// JSONEncoder writes an indented JSON dump.
type JSONEncoder struct {
	w io.Writer
}

// NewJSONEncoder creates an encoder that writes to w.
func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w}
}

// Encode writes lyrics as one JSON object followed by a newline.
func (e *JSONEncoder) Encode(lyrics *lrc.Lyrics) error {
	data, err := json.MarshalIndent(buildLyricsData(lyrics), "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = e.w.Write(data)
	return err
}

type jsonLyrics struct {
	Metadata map[string]string `json:"metadata"`
	Lines    []jsonLine        `json:"lines"`
}

type jsonLine struct {
	Timestamps []uint64 `json:"timestamps"`
	Times      []string `json:"times"`
	Text       string   `json:"text"`
}

func buildLyricsData(lyrics *lrc.Lyrics) jsonLyrics {
	data := jsonLyrics{
		Metadata: lyrics.Metadata().Map(),
		Lines:    make([]jsonLine, 0, lyrics.LineCount()),
	}
	for _, line := range lyrics.All() {
		jl := jsonLine{Text: line.Text()}
		for _, ts := range line.Timestamps() {
			jl.Timestamps = append(jl.Timestamps, ts.Milliseconds())
			jl.Times = append(jl.Times, ts.String())
		}
		data.Lines = append(data.Lines, jl)
	}
	return data
}
