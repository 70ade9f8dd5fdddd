package linekit

import (
	"bytes"
	"context"
	"io"
)

// Scanner is the highlighting pipeline: it sniffs the stream for binary
// content once, then copies it line by line to the sink, wrapping matched
// lines in color escapes. A Scanner is immutable after construction and may
// be reused across streams, one stream at a time.
type Scanner struct {
	matcher     *Matcher
	highlighter *Highlighter
	opts        Options
}

// NewScanner compiles pattern and builds a Scanner with the given options.
// Returns an error wrapping ErrInvalidPattern if the pattern does not
// compile.
func NewScanner(pattern string, opts ...Option) (*Scanner, error) {
	options := Options{
		Color:           DefaultColor,
		SniffLength:     DefaultSniffLength,
		BinaryThreshold: DefaultBinaryThreshold,
	}
	for _, opt := range opts {
		opt(&options)
	}

	matcher, err := NewMatcher(pattern, options.IgnoreCase)
	if err != nil {
		return nil, err
	}

	return &Scanner{
		matcher:     matcher,
		highlighter: NewHighlighter(options.Color),
		opts:        options,
	}, nil
}

// Scan copies r to w, highlighting matched lines. Lines are emitted in
// input order, each in a single Write call, so a sink that stops accepting
// writes never receives a partial escape sequence.
//
// Unless force-text is set, the stream is first sniffed; binary input
// reports ErrBinaryInput before any output is produced, and the sniffed
// prefix is replayed so nothing is lost when the stream is text. If the
// sink reports a broken pipe the downstream consumer has gone away; Scan
// stops and returns nil, since partial consumption is the expected outcome
// of composing with tools like head. Any other read or write failure is
// returned as a *ScanError; output already written stays written.
func (s *Scanner) Scan(ctx context.Context, r io.Reader, w io.Writer) error {
	if !s.opts.ForceText {
		verdict, err := Sniff(r, s.opts.SniffLength, s.opts.BinaryThreshold)
		if err != nil {
			return err
		}
		if verdict.Binary {
			return &ScanError{Op: "scan", Err: ErrBinaryInput}
		}
		if verdict.EOF {
			r = bytes.NewReader(verdict.Prefix)
		} else {
			r = io.MultiReader(bytes.NewReader(verdict.Prefix), r)
		}
	}

	lines := NewLineReader(r)
	for lines.Scan() {
		if err := ctx.Err(); err != nil {
			return &ScanError{Op: "scan", Err: err}
		}

		line := lines.Bytes()
		rendered := s.highlighter.Render(line, s.matcher.Match(line))
		if _, err := w.Write(rendered); err != nil {
			if IsBrokenPipe(err) {
				return nil
			}
			return &ScanError{Op: "write", Err: err}
		}
	}
	if err := lines.Err(); err != nil {
		return &ScanError{Op: "read", Err: err}
	}

	return nil
}
