//go:build !windows

package notify

import (
	"io"

	"github.com/h13-0/AppLauncher/internal/ports"
)

// Default returns the reporter for the top level. Without a native dialog it is the console.
func Default(_ bool, stderr io.Writer) ports.ErrorReporter {
	return NewConsole(stderr)
}
