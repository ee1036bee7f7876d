package streamcapture

import (
	"errors"
	"io"
	"sync"

	"github.com/sa6mwa/popen/port"
)

// capture implements port.StreamCapture. A nil endpoint means it was
// taken (or never existed).
type capture struct {
	mu     sync.Mutex
	stdout io.ReadCloser
	stderr io.ReadCloser
}

// New constructs a port.StreamCapture owning the stdout and stderr read
// ends of a child's pipes.
func New(stdout, stderr io.ReadCloser) port.StreamCapture {
	return &capture{stdout: stdout, stderr: stderr}
}

func (c *capture) TakeStdout() (io.ReadCloser, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stdout == nil {
		return nil, port.ErrStdoutCapture
	}
	r := c.stdout
	c.stdout = nil
	return r, nil
}

func (c *capture) TakeStderr() (io.ReadCloser, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stderr == nil {
		return nil, port.ErrStderrCapture
	}
	r := c.stderr
	c.stderr = nil
	return r, nil
}

func (c *capture) Close() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	var errs []error
	if c.stdout != nil {
		errs = append(errs, c.stdout.Close())
		c.stdout = nil
	}
	if c.stderr != nil {
		errs = append(errs, c.stderr.Close())
		c.stderr = nil
	}
	return errors.Join(errs...)
}
