//go:build unix

package popen

import (
	"errors"
	"os"
	"os/exec"

	"golang.org/x/sys/unix"
)

// IsNotFound reports whether err from Spawn means the program could not
// be located, either by PATH lookup or by execve(2) itself.
func IsNotFound(err error) bool {
	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return true
	}
	return errors.Is(err, unix.ENOENT)
}

// IsPermission reports whether err from Spawn means the program exists
// but may not be executed.
func IsPermission(err error) bool {
	if errors.Is(err, os.ErrPermission) {
		return true
	}
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return errors.Is(pathErr.Err, os.ErrPermission) || errors.Is(pathErr.Err, unix.EACCES) || errors.Is(pathErr.Err, unix.EPERM)
	}
	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return errors.Is(execErr.Err, os.ErrPermission) || errors.Is(execErr.Err, unix.EACCES) || errors.Is(execErr.Err, unix.EPERM)
	}
	return errors.Is(err, unix.EACCES) || errors.Is(err, unix.EPERM)
}
