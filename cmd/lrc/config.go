package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/simonhull/lrc"
)

// config holds CLI defaults. Environment variables, optionally loaded from
// a .env file in the working directory, seed the flag defaults:
//
//	LRC_MAX_TAG_WIDTH   bytes searched for a time tag's ']'
//	LRC_KEEP_LAST_LINE  parse a final unterminated line (true/false)
//	LRC_VERBOSITY       base log verbosity
type config struct {
	maxTagWidth  int
	keepLastLine bool
	verbosity    int
}

func loadConfig() *config {
	_ = godotenv.Load()

	return &config{
		maxTagWidth:  envInt("LRC_MAX_TAG_WIDTH", lrc.DefaultMaxTagWidth),
		keepLastLine: envBool("LRC_KEEP_LAST_LINE", false),
		verbosity:    envInt("LRC_VERBOSITY", 0),
	}
}

func envInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		log.Warningf("ignoring %s=%q: %s", key, value, err)
		return fallback
	}
	return n
}

func envBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		log.Warningf("ignoring %s=%q: %s", key, value, err)
		return fallback
	}
	return b
}

// parseOptions turns the config into library options.
func (c *config) parseOptions() []lrc.Option {
	opts := []lrc.Option{lrc.WithMaxTagWidth(c.maxTagWidth)}
	if c.keepLastLine {
		opts = append(opts, lrc.WithUnterminatedLastLine())
	}
	return opts
}
