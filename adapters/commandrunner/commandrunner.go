package commandrunner

import (
	"os/exec"

	"github.com/sa6mwa/popen/port"
)

// DefaultRunner starts and reaps commands using os/exec directly.
type DefaultRunner struct{}

var _ port.CommandRunner = DefaultRunner{}

// Start launches the command without waiting for it.
func (DefaultRunner) Start(cmd *exec.Cmd) error {
	return cmd.Start()
}

// Wait blocks until the started command exits.
func (DefaultRunner) Wait(cmd *exec.Cmd) error {
	return cmd.Wait()
}

// Default is a shared instance of DefaultRunner.
var Default port.CommandRunner = DefaultRunner{}
