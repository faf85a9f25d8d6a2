package pathutil

import "github.com/h13-0/AppLauncher/internal/ports"

// Checker adapts Exists to ports.FileChecker.
type Checker struct{}

var _ ports.FileChecker = Checker{}

func (Checker) Exists(path string) bool { return Exists(path) }
