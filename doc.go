// Package linekit implements a streaming line highlighter: it copies a byte
// stream to an output sink unchanged, except that lines matching a regular
// expression are wrapped in terminal color escape sequences.
//
// The pipeline is built from small, independently testable pieces: a binary
// sniffer that inspects a bounded prefix of the stream, a line reader that
// splits raw (not necessarily valid UTF-8) bytes into terminator-preserving
// lines, a matcher over a compiled pattern, and a highlighter that produces
// the bytes to emit. The [Scanner] composes them.
//
// # Basic Usage
//
//	scanner, err := linekit.NewScanner("error")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Copy stdin to stdout, highlighting lines that contain "error".
//	err = scanner.Scan(context.Background(), os.Stdin, os.Stdout)
//
// # Options
//
// Per-run behavior is configured with functional options:
//
//	scanner, err := linekit.NewScanner("error",
//	    linekit.WithIgnoreCase(true), // case-insensitive matching
//	    linekit.WithForceText(true),  // skip the binary check
//	    linekit.WithColor("green"),   // highlight color
//	)
//
// The pattern is not anchored: a match anywhere in a line highlights the
// whole line. Callers that want anchoring use ^ and $ in the pattern.
//
// # Binary Input
//
// By default Scan inspects the first bytes of the stream and refuses input
// that looks binary, so control bytes are never echoed into a terminal:
//
//	err := scanner.Scan(ctx, input, os.Stdout)
//	if linekit.IsBinaryInput(err) {
//	    // refuse, or retry with WithForceText(true)
//	}
//
// The sniffed prefix is replayed into the line reader, so no input bytes are
// ever dropped or duplicated by the check.
//
// # Broken Pipes
//
// When the downstream consumer stops reading (piping into head, or a pager
// that quits early), Scan terminates silently and returns nil. Each line is
// written in a single Write call, so the output never ends in a dangling
// color-start escape.
//
// # Error Handling
//
// linekit provides sentinel errors and helper functions for error handling:
//
//	_, err := linekit.NewScanner("(unclosed")
//	if linekit.IsInvalidPattern(err) {
//	    // the regular expression failed to compile
//	}
//
//	var scanErr *linekit.ScanError
//	if errors.As(err, &scanErr) {
//	    fmt.Printf("Operation: %s\n", scanErr.Op)
//	}
//
// The set of error kinds is open; callers should discriminate with the IsX
// helpers and keep a fallback branch rather than enumerating kinds.
//
// # Configuration
//
// Ambient defaults (highlight color, sniff bound, binary threshold) can be
// set via environment variables with the LINEKIT_ prefix, or
// programmatically via the [Config] struct:
//
//	cfg := linekit.Config{Color: "cyan", SniffLength: 4096}
//	scanner, err := linekit.NewScanner("error", linekit.WithConfig(&cfg))
package linekit
