package port

import (
	"os/exec"
)

// CommandRunner abstracts process creation so the popen Runner can be
// driven by a scripted implementation in tests. Start launches a fully
// configured cmd (stdout and stderr already point at pipe write ends)
// and Wait reaps it once both streams have been drained.
type CommandRunner interface {
	Start(cmd *exec.Cmd) error
	Wait(cmd *exec.Cmd) error
}
