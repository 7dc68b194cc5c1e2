// Package lrc parses and formats LRC synchronized lyrics.
//
// An LRC document pairs lines of lyric text with the moments they are sung:
//
//	[ti:Sunny Day]
//	[ar:Jay Chou]
//	# comments and blank lines are ignored
//	[00:25.67][01:12.34]Chorus line
//	[00:31.2] Verse line
//
// # Quick Start
//
// Parsing lyrics held in memory:
//
//	lyrics, err := lrc.Parse(text)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	title, _ := lyrics.Meta("ti")
//	fmt.Println("Title:", title)
//	for _, line := range lyrics.All() {
//		for _, ts := range line.Timestamps() {
//			fmt.Printf("%s %s\n", ts, line.Text())
//		}
//	}
//
// Writing lyrics back out:
//
//	fmt.Print(lyrics) // canonical LRC text
//
// # Format
//
// A document is a sequence of lines of four kinds:
//
//   - Blank lines and lines starting with '#' are skipped.
//   - Metadata tags, [key:value], where the key doesn't start with a digit.
//   - Lyric lines, one or more time tags [mm:ss], [mm:ss.f], [mm:ss.ff] or
//     [mm:ss.fff] followed by text.
//   - Anything else not starting with '[' is ignored.
//
// All metadata must come before the first lyric line. Only lines ending in
// a line break are parsed unless WithUnterminatedLastLine is given.
//
// Several time tags in a row share the text that follows them. Tag
// consumption stops at the first byte that is not '[', so in
// "[00:01.00] [00:02.00]x" the text is " [00:02.00]x", leading space
// included. Text is never trimmed.
//
// # Data Model
//
//	[Lyrics]            - One parsed document
//	  ├─ [Metadata]     - Tags, iterated in ascending key order
//	  └─ [Line]...      - Lyric lines in document order
//	       ├─ Timestamps() []Timestamp  (milliseconds)
//	       └─ Text() string
//
// Lines produced by Parse are [BorrowedLine] values whose text shares memory
// with the input string. Lines built by hand, or converted with [Owned], are
// [OwnedLine] values with their own copy. Both satisfy [Line] and can be
// mixed freely in one Lyrics.
//
// # Error Handling
//
// Parsing stops at the first malformed tag and returns a [*ParseError]
// holding the 1-based line number and an [ErrorKind]. Line numbers count
// every physical line, skipped ones included. Each ErrorKind is itself an
// error, so kinds can be matched through any amount of wrapping:
//
//	_, err := lrc.ParseFile("song.lrc")
//	if errors.Is(err, lrc.KindMetadataAfterLyrics) {
//		// move the tags to the top of the file
//	}
//
// # Formatting
//
// [Lyrics.String], [Lyrics.WriteTo] and [Lyrics.MarshalText] produce
// canonical LRC: tags first, in key order, then each line with its
// timestamps written as [MM:SS.mmm]. Formatting then parsing yields the
// same tags, timestamps and text, though not the same bytes as the
// original input.
//
// # Concurrency
//
// Parse is a pure function and may be called from many goroutines at once.
// ParseFiles reads and parses a batch of files in parallel:
//
//	all, err := lrc.ParseFiles(ctx, paths)
//
// A Lyrics value is not safe for concurrent mutation.
package lrc
