package mockrunner

import (
	"os/exec"
	"slices"
	"sync"

	"github.com/sa6mwa/popen/port"
)

// Behavior represents a single Start call for the mock runner. It may
// write to cmd.Stdout and cmd.Stderr to simulate child output; both are
// closed by the caller once Start returns.
type Behavior func(cmd *exec.Cmd) error

// Runner is a thread-safe mock implementation of port.CommandRunner.
// No process is ever created, so cmd.Process stays nil unless a
// behavior sets it.
type Runner struct {
	mu        sync.Mutex
	behaviors []Behavior
	Calls     int
	WaitCalls int
	Paths     []string
	Args      [][]string
	WaitErr   error
	// OnWait, when set, replaces WaitErr as the result of Wait.
	OnWait func(cmd *exec.Cmd) error
}

var _ port.CommandRunner = (*Runner)(nil)

// New constructs a Runner that will invoke behaviors sequentially for each call.
func New(behaviors ...Behavior) *Runner {
	return &Runner{behaviors: slices.Clone(behaviors)}
}

// Start records the call metadata and dispatches to the next behavior.
func (r *Runner) Start(cmd *exec.Cmd) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Calls++
	r.Paths = append(r.Paths, cmd.Path)
	r.Args = append(r.Args, slices.Clone(cmd.Args))

	if len(r.behaviors) == 0 {
		return nil
	}
	behavior := r.behaviors[0]
	r.behaviors = r.behaviors[1:]
	return behavior(cmd)
}

// Wait counts the call and returns OnWait's result, or WaitErr.
func (r *Runner) Wait(cmd *exec.Cmd) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.WaitCalls++
	if r.OnWait != nil {
		return r.OnWait(cmd)
	}
	return r.WaitErr
}

// Remaining returns the number of queued behaviors that have not yet been consumed.
func (r *Runner) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.behaviors)
}
