package linekit

import (
	"bufio"
	"bytes"
	"io"
)

// LineReader splits a byte stream into newline-delimited lines, preserving
// whatever terminator bytes were present. It makes no assumption about the
// encoding of the stream: lines are raw bytes and invalid UTF-8 passes
// through untouched.
//
// The shape follows bufio.Scanner: call Scan until it returns false, then
// check Err. Unlike bufio.Scanner there is no line length limit and the
// terminator is kept, so concatenating every Bytes result reproduces the
// input exactly. A final fragment with no trailing newline is yielded as a
// last line; an empty stream yields no lines.
type LineReader struct {
	br   *bufio.Reader
	line []byte
	err  error
	done bool
}

// NewLineReader returns a LineReader consuming r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{br: bufio.NewReader(r)}
}

// Scan advances to the next line. It returns false when the stream is
// exhausted or a read error occurs; Err distinguishes the two.
func (l *LineReader) Scan() bool {
	if l.done {
		return false
	}

	line, err := l.br.ReadBytes('\n')
	if err != nil {
		l.done = true
		if err != io.EOF {
			l.err = err
		}
		// A read that fails mid-line still hands back the bytes it got;
		// the unterminated fragment is a line of its own.
		if len(line) == 0 {
			return false
		}
	}

	l.line = line
	return true
}

// Bytes returns the current line, including its terminator if it had one.
// The slice is valid until the next call to Scan.
func (l *LineReader) Bytes() []byte {
	return l.line
}

// Err returns the first read error encountered. End of stream is not an
// error and reports nil.
func (l *LineReader) Err() error {
	return l.err
}

// splitTerminator separates a raw line into its content and its terminator
// ("\r\n", "\n", or empty for an unterminated final line).
func splitTerminator(line []byte) (content, terminator []byte) {
	if !bytes.HasSuffix(line, []byte("\n")) {
		return line, nil
	}
	if bytes.HasSuffix(line, []byte("\r\n")) {
		return line[:len(line)-2], line[len(line)-2:]
	}
	return line[:len(line)-1], line[len(line)-1:]
}
