//go:build unix

package spawner

import "syscall"

// sysProcAttr puts the child in its own session so it outlives the launcher's terminal.
func sysProcAttr(string) *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
