//go:build windows

package spawner

import (
	"syscall"

	"golang.org/x/sys/windows"
)

// sysProcAttr passes the command line verbatim and creates the child without a window.
func sysProcAttr(commandLine string) *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		CmdLine:       commandLine,
		HideWindow:    true,
		CreationFlags: windows.CREATE_NO_WINDOW,
	}
}
