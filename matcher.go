package linekit

import (
	"fmt"
	"regexp"
	"unicode/utf8"
)

// Matcher evaluates a compiled pattern against raw lines. Matching is
// unanchored: the pattern may match anywhere within the line. Exactly one
// Matcher exists per scan, so it is a plain value rather than an interface.
type Matcher struct {
	re *regexp.Regexp
}

// NewMatcher compiles pattern into a Matcher. Case-insensitivity is applied
// at compilation time by prefixing the (?i) flag, never per line. A pattern
// that does not compile reports ErrInvalidPattern.
func NewMatcher(pattern string, ignoreCase bool) (*Matcher, error) {
	if ignoreCase {
		pattern = "(?i)" + pattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPattern, err)
	}

	return &Matcher{re: re}, nil
}

// Match reports whether the line matches the pattern. The terminator is
// stripped before matching so $ anchors at the visible end of the line.
// A line that is not valid UTF-8 is classified as a non-match rather than
// failing the scan.
func (m *Matcher) Match(line []byte) bool {
	content, _ := splitTerminator(line)
	if !utf8.Valid(content) {
		return false
	}
	return m.re.Match(content)
}
