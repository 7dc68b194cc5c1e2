package lrc

import (
	"context"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// ParseFile reads and parses an .lrc file.
//
// Errors from reading the file and from parsing are both wrapped with the
// path; use errors.As to get at a *ParseError:
//
//	lyrics, err := lrc.ParseFile("song.lrc")
//	if err != nil {
//		return err // "parse song.lrc: line 3: invalid tag"
//	}
func ParseFile(path string, opts ...Option) (*Lyrics, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	lyrics, err := ParseBytes(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return lyrics, nil
}

// ParseFileContext is ParseFile with a cancellation check before the file
// is read.
func ParseFileContext(ctx context.Context, path string, opts ...Option) (*Lyrics, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return ParseFile(path, opts...)
}

// ParseFiles parses multiple .lrc files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines.
// Results are returned in the same order as the input paths.
//
// If any file fails, the remaining work is cancelled and only the first
// error is returned, with no partial results.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	all, err := lrc.ParseFiles(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for i, lyrics := range all {
//		fmt.Printf("%s: %d lines\n", paths[i], lyrics.LineCount())
//	}
func ParseFiles(ctx context.Context, paths []string, opts ...Option) ([]*Lyrics, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	results := make([]*Lyrics, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			// ParseFile errors already name the path.
			lyrics, err := ParseFileContext(ctx, path, opts...)
			if err != nil {
				return err
			}
			results[i] = lyrics
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
