//go:build windows

package runner

import "os/exec"

// setProcessGroup is a no-op on Windows; process groups are POSIX semantics.
func setProcessGroup(cmd *exec.Cmd) {}

// killProcessGroup kills the child process. Subprocess cleanup on Windows
// would need job objects; killing the direct child covers the common case.
func killProcessGroup(cmd *exec.Cmd) error {
	if cmd.Process == nil {
		return nil
	}
	return cmd.Process.Kill()
}
