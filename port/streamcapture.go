package port

import (
	"errors"
	"io"
)

var (
	ErrStdoutCapture = errors.New("failed to capture stdout")
	ErrStderrCapture = errors.New("failed to capture stderr")
)

// StreamCapture hands out the read ends of a child's stdout and stderr
// pipes. Each endpoint can be taken exactly once; a second take returns
// ErrStdoutCapture or ErrStderrCapture. Implementations are provided by
// adapters/streamcapture.
type StreamCapture interface {
	TakeStdout() (io.ReadCloser, error)
	TakeStderr() (io.ReadCloser, error)
	// Close releases any endpoint that was never taken.
	Close() error
}
