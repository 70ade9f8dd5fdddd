package linekit

import (
	"bytes"
	"io"
	"unicode/utf8"
)

// Default binary sniffing bounds. The prefix length follows the common
// "check the first 8K" convention used by git and most editors; the
// threshold and the binary character classes follow less(1), which tolerates
// a handful of stray control bytes in otherwise readable text.
const (
	DefaultSniffLength     = 8192
	DefaultBinaryThreshold = 5
)

// Verdict is the result of classifying a stream prefix as text or binary.
//
// The sniffed bytes are consumed from the underlying reader, so Verdict
// hands them back in Prefix; callers must deliver them to whatever reads
// the stream next or those bytes are lost. EOF reports that the stream
// ended inside the prefix and holds nothing beyond it.
type Verdict struct {
	Binary bool
	Prefix []byte
	EOF    bool
}

// Sniff reads up to limit bytes from r and classifies them as text or
// binary. A stream is binary if the prefix contains a NUL byte, or if more
// than threshold of its bytes are invalid UTF-8 or decode to binary-class
// codepoints. Non-positive limit and threshold fall back to the defaults.
//
// The classification is deterministic: the same prefix always produces the
// same verdict.
func Sniff(r io.Reader, limit, threshold int) (*Verdict, error) {
	if limit <= 0 {
		limit = DefaultSniffLength
	}
	if threshold <= 0 {
		threshold = DefaultBinaryThreshold
	}

	buf := make([]byte, limit)
	n, err := io.ReadFull(r, buf)
	eof := false
	switch err {
	case nil:
	case io.EOF, io.ErrUnexpectedEOF:
		eof = true
	default:
		return nil, &ScanError{Op: "sniff", Err: err}
	}
	prefix := buf[:n]

	return &Verdict{
		Binary: classifyBinary(prefix, threshold),
		Prefix: prefix,
		EOF:    eof,
	}, nil
}

func classifyBinary(prefix []byte, threshold int) bool {
	if bytes.IndexByte(prefix, 0) >= 0 {
		return true
	}

	binary := 0
	for i := 0; i < len(prefix); {
		r, size := utf8.DecodeRune(prefix[i:])
		if r == utf8.RuneError && size == 1 {
			// Invalid or truncated multi-byte sequence.
			binary++
		} else if isBinaryRune(r) {
			binary++
		}
		i += size
	}

	return binary > threshold
}

// isBinaryRune reports whether r belongs to a codepoint class that does not
// occur in readable text. The ranges are the Cc/Zl/Zp/Cs/Co entries from
// less(1)'s ubin table, minus the whitespace controls.
func isBinaryRune(r rune) bool {
	switch {
	case r <= 0x07:
		return true // Cc, below backspace
	case r == 0x0b:
		return true // Cc, vertical tab
	case r >= 0x0e && r <= 0x1f:
		return true // Cc
	case r >= 0x7f && r <= 0x9f:
		return true // Cc, DEL and C1 block
	case r == 0x2028 || r == 0x2029:
		return true // Zl, Zp
	case r >= 0xe000 && r <= 0xf8ff:
		return true // Co, private use
	case r >= 0xf0000:
		return true // Co, supplementary private use
	default:
		return false
	}
}
