package lrc

import "github.com/simonhull/lrc/internal/parser"

// DefaultMaxTagWidth is the default bound, in bytes after '[', on the
// search for a time tag's closing ']'.
const DefaultMaxTagWidth = parser.DefaultMaxTagWidth

// Option configures parsing behavior.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	lyrics, err := lrc.Parse(text,
//	    lrc.WithMaxTagWidth(32),
//	    lrc.WithUnterminatedLastLine(),
//	)
type Option func(*parser.Config)

// defaultOptions returns the default configuration.
func defaultOptions() parser.Config {
	return parser.DefaultConfig()
}

func applyOptions(opts []Option) parser.Config {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithMaxTagWidth sets how far the parser looks for the ']' that closes a
// time tag, counted in bytes from just after the '['.
//
// A tag whose ']' lies beyond the window fails with KindMissingBrackets.
// The default, DefaultMaxTagWidth, fits minute fields of up to eight digits.
// Zero or a negative width removes the bound.
//
// Example:
//
//	// Accept tags with very long minute fields
//	lyrics, err := lrc.Parse(text, lrc.WithMaxTagWidth(0))
func WithMaxTagWidth(width int) Option {
	return func(c *parser.Config) {
		c.MaxTagWidth = width
	}
}

// WithUnterminatedLastLine parses a final line that is not followed by a
// line break.
//
// By default, only lines terminated by '\n' are parsed and trailing text
// without one is ignored. Enable this when reading files written by
// editors that omit the final newline.
func WithUnterminatedLastLine() Option {
	return func(c *parser.Config) {
		c.KeepUnterminatedLine = true
	}
}
