// Package popen runs a command line as a child process and returns what
// it wrote to stdout. Any output on stderr makes the run a failure,
// whatever the exit status was.
//
//	out, err := popen.New("uname -r").Spawn(ctx)
//	if errors.Is(err, popen.ErrStderrNotEmpty) {
//		var se *popen.StderrError
//		errors.As(err, &se)
//		log.Printf("uname complained: %s", se.Stderr)
//	}
//
// The command is split on whitespace only; quotes, pipes and
// redirections are passed to the program as literal arguments.
package popen

import (
	"context"
	"fmt"
	"io"

	"github.com/sa6mwa/popen/adapters/commandrunner"
	"github.com/sa6mwa/popen/port"
)

// Runner holds a command line and the handle of the last child it
// spawned. A Runner is not safe for concurrent use.
type Runner struct {
	command string
	runner  port.CommandRunner
	child   *child
}

// New returns a Runner for command. The command is not validated until
// Spawn.
func New(command string) *Runner {
	return &Runner{command: command, runner: commandrunner.Default}
}

// NewWithRunner is like New but starts processes through runner. A nil
// runner means commandrunner.Default.
func NewWithRunner(command string, runner port.CommandRunner) *Runner {
	if runner == nil {
		runner = commandrunner.Default
	}
	return &Runner{command: command, runner: runner}
}

// Command returns the command line exactly as given to New.
func (r *Runner) Command() string {
	return r.command
}

// Spawn starts the command, reads stdout and stderr to EOF, reaps the
// child and returns the stdout text. If anything was written to stderr
// the result is a *StderrError (matching ErrStderrNotEmpty) and stdout
// is discarded. The exit status does not affect the outcome; see
// ExitCode. ctx bounds the whole run: when it is done the child is
// killed and its streams are abandoned, even if a grandchild still
// holds them open.
func (r *Runner) Spawn(ctx context.Context) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if r.runner == nil {
		r.runner = commandrunner.Default
	}
	r.child = nil
	c, err := startChild(ctx, r.runner, r.command)
	if err != nil {
		return "", err
	}
	r.child = c

	stdout, stderr, err := r.captureStreams()
	if err != nil {
		c.streams.Close()
		c.reap(r.runner)
		return "", err
	}
	outText, errText, drainErr := drainStreams(ctx, stdout, stderr)
	waitErr := c.reap(r.runner)

	// A child that finished on its own with both streams drained is a
	// completed run even if ctx expired afterwards.
	if ctxErr := ctx.Err(); ctxErr != nil && (drainErr != nil || c.killed) {
		return "", fmt.Errorf("spawn %q: %w", r.command, ctxErr)
	}
	if drainErr != nil {
		return "", drainErr
	}
	if waitErr != nil {
		return "", waitErr
	}
	if errText != "" {
		return "", &StderrError{Stderr: errText, RunID: c.runID}
	}
	return outText, nil
}

// captureStreams takes the stdout and stderr endpoints of the current
// child. Each can be taken once per spawn.
func (r *Runner) captureStreams() (io.ReadCloser, io.ReadCloser, error) {
	if r.child == nil || r.child.streams == nil {
		return nil, nil, ErrAccess
	}
	stdout, err := r.child.streams.TakeStdout()
	if err != nil {
		return nil, nil, err
	}
	stderr, err := r.child.streams.TakeStderr()
	if err != nil {
		stdout.Close()
		return nil, nil, err
	}
	return stdout, stderr, nil
}

// Pid returns the OS process identifier of the last spawned child, if
// one was started.
func (r *Runner) Pid() (int, bool) {
	return r.child.pid()
}

// ExitCode returns the exit code of the last spawned child once it has
// been reaped. A child killed by a signal reports -1.
func (r *Runner) ExitCode() (int, bool) {
	if r.child == nil || !r.child.reaped {
		return -1, false
	}
	return r.child.exitCode, true
}

// RunID returns the identifier assigned to the last spawned child, or
// "" if none was started.
func (r *Runner) RunID() string {
	if r.child == nil {
		return ""
	}
	return r.child.runID
}
