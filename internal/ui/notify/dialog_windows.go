//go:build windows

package notify

import (
	"io"
	"strings"

	"golang.org/x/sys/windows"

	"github.com/h13-0/AppLauncher/internal/ports"
)

// Dialog shows a modal error message box.
type Dialog struct{}

var _ ports.ErrorReporter = Dialog{}

func (Dialog) Report(title, message string) error {
	t, err := windows.UTF16PtrFromString(strings.ReplaceAll(title, "\x00", ""))
	if err != nil {
		return err
	}
	m, err := windows.UTF16PtrFromString(strings.ReplaceAll(message, "\x00", ""))
	if err != nil {
		return err
	}
	_, err = windows.MessageBox(0, m, t, windows.MB_OK|windows.MB_ICONERROR)
	return err
}

// Default returns the reporter for the top level: a dialog unless console output was requested.
func Default(console bool, stderr io.Writer) ports.ErrorReporter {
	if console {
		return NewConsole(stderr)
	}
	return Dialog{}
}
