//go:build !unix

package popen

import (
	"errors"
	"os"
	"os/exec"
)

// IsNotFound reports whether err from Spawn means the program could not
// be located.
func IsNotFound(err error) bool {
	return errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist)
}

// IsPermission reports whether err from Spawn means the program exists
// but may not be executed.
func IsPermission(err error) bool {
	return errors.Is(err, os.ErrPermission)
}
