package popen

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/sa6mwa/popen/adapters/streamcapture"
	"github.com/sa6mwa/popen/port"
)

// child is the handle to a spawned process and its unread streams.
type child struct {
	cmd      *exec.Cmd
	streams  port.StreamCapture
	runID    string
	exitCode int
	reaped   bool
	killed   bool
}

// startChild tokenizes command, wires stdout and stderr to fresh pipes
// and starts the process through runner. The returned child owns the
// read ends of both pipes.
func startChild(ctx context.Context, runner port.CommandRunner, command string) (*child, error) {
	name, args, err := Tokenize(command)
	if err != nil {
		return nil, err
	}
	cmd := exec.CommandContext(ctx, name, args...)
	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("stdout pipe: %w", err)
	}
	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		stdoutR.Close()
		stdoutW.Close()
		return nil, fmt.Errorf("stderr pipe: %w", err)
	}
	cmd.Stdout = stdoutW
	cmd.Stderr = stderrW
	startErr := runner.Start(cmd)
	// The child has its own copies of the write ends; ours must go or
	// the readers never see EOF.
	stdoutW.Close()
	stderrW.Close()
	if startErr != nil {
		stdoutR.Close()
		stderrR.Close()
		return nil, fmt.Errorf("start %s: %w", name, startErr)
	}
	return &child{
		cmd:      cmd,
		streams:  streamcapture.New(stdoutR, stderrR),
		runID:    uuid.NewString(),
		exitCode: -1,
	}, nil
}

// reap collects the exit status. A non-zero exit is not an error here.
func (c *child) reap(runner port.CommandRunner) error {
	err := runner.Wait(c.cmd)
	c.exitCode = exitCodeFrom(err, c.cmd.ProcessState)
	c.reaped = true
	c.killed = c.cmd.ProcessState != nil && !c.cmd.ProcessState.Exited()
	var exitErr *exec.ExitError
	if err == nil || errors.As(err, &exitErr) {
		return nil
	}
	return fmt.Errorf("wait: %w", err)
}

func (c *child) pid() (int, bool) {
	if c == nil || c.cmd == nil || c.cmd.Process == nil {
		return 0, false
	}
	return c.cmd.Process.Pid, true
}

// drainStreams reads stdout and stderr to EOF concurrently so a child
// filling one pipe can never stall on the other. Both readers are
// closed before returning. When ctx is done the readers are closed at
// once, since a grandchild may still hold the write ends.
func drainStreams(ctx context.Context, stdout, stderr io.ReadCloser) (string, string, error) {
	stop := context.AfterFunc(ctx, func() {
		stdout.Close()
		stderr.Close()
	})
	defer stop()
	var outText, errText string
	var eg errgroup.Group
	eg.Go(func() error {
		defer stdout.Close()
		s, err := readStream(stdout)
		if err != nil {
			return fmt.Errorf("read stdout: %w", err)
		}
		outText = s
		return nil
	})
	eg.Go(func() error {
		defer stderr.Close()
		s, err := readStream(stderr)
		if err != nil {
			return fmt.Errorf("read stderr: %w", err)
		}
		errText = s
		return nil
	})
	if err := eg.Wait(); err != nil {
		return "", "", err
	}
	return outText, errText, nil
}

// readStream buffers stream until EOF and returns it as text.
func readStream(stream io.Reader) (string, error) {
	var buf bytes.Buffer
	buf.Grow(512)
	if _, err := buf.ReadFrom(stream); err != nil {
		return "", err
	}
	if !utf8.Valid(buf.Bytes()) {
		return "", errInvalidUTF8
	}
	return buf.String(), nil
}

func exitCodeFrom(waitErr error, state *os.ProcessState) int {
	if state != nil {
		return state.ExitCode()
	}
	if waitErr == nil {
		return 0
	}
	var exitErr *exec.ExitError
	if errors.As(waitErr, &exitErr) && exitErr.ProcessState != nil {
		return exitErr.ProcessState.ExitCode()
	}
	return -1
}
