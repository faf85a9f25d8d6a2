//go:build !unix && !windows

package spawner

import "syscall"

func sysProcAttr(string) *syscall.SysProcAttr {
	return nil
}
