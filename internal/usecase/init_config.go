package usecase

import (
	"github.com/h13-0/AppLauncher/internal/ports"
)

type InitConfig struct {
	initializer ports.ConfigInitializer
}

func NewInitConfig(initializer ports.ConfigInitializer) *InitConfig {
	return &InitConfig{initializer: initializer}
}

// Execute writes a template config into dir and returns its path.
func (uc *InitConfig) Execute(dir string, force bool) (string, error) {
	return uc.initializer.Init(dir, force)
}
