package linekit

import (
	"errors"
	"fmt"
	"io"
	"syscall"
)

// Common scan errors
var (
	ErrInvalidPattern = errors.New("invalid pattern")
	ErrBinaryInput    = errors.New("input may be binary")
	ErrIsDir          = errors.New("is a directory")
)

// ScanError records an error and the pipeline operation that caused it
type ScanError struct {
	Op  string
	Err error
}

// Error implements the error interface
func (e *ScanError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *ScanError) Unwrap() error {
	return e.Err
}

// IsInvalidPattern reports whether an error indicates that the supplied
// regular expression failed to compile
func IsInvalidPattern(err error) bool {
	return errors.Is(err, ErrInvalidPattern)
}

// IsBinaryInput reports whether an error indicates that the input stream was
// classified as binary and force-text was not set
func IsBinaryInput(err error) bool {
	return errors.Is(err, ErrBinaryInput)
}

// IsBrokenPipe reports whether an error indicates that the downstream
// consumer closed its end of the pipe. Scan converts this condition to a nil
// return; the helper exists for callers that write to the sink themselves.
func IsBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe)
}
