package ports

import "github.com/h13-0/AppLauncher/internal/domain"

// ConfigLoader loads a launch configuration from a source (e.g., filesystem).
type ConfigLoader interface {
	LoadConfig(path string) (domain.LaunchConfig, domain.ParseReport, error)
}
