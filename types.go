package popen

import (
	"errors"
	"fmt"

	"github.com/sa6mwa/popen/port"
)

var (
	ErrAccess         = errors.New("error accessing child process")
	ErrStdoutCapture  = port.ErrStdoutCapture
	ErrStderrCapture  = port.ErrStderrCapture
	ErrStderrNotEmpty = errors.New("stderr not empty")
	ErrEmptyCommand   = errors.New("empty command")

	errInvalidUTF8 = errors.New("stream is not valid UTF-8")
)

// StderrError is returned by Spawn when the child wrote anything to
// stderr. Stderr holds the complete captured text.
type StderrError struct {
	Stderr string
	RunID  string
}

func (e *StderrError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("popen: %s: %s", ErrStderrNotEmpty, e.Stderr)
}

func (e *StderrError) Is(target error) bool {
	return target == ErrStderrNotEmpty
}
