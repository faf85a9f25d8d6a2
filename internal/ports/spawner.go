package ports

import (
	"context"

	"github.com/h13-0/AppLauncher/internal/domain"
)

// Spawner creates a detached process from a single command-line string.
// Implementations release every OS handle they acquire before returning.
type Spawner interface {
	Spawn(ctx context.Context, req domain.SpawnRequest) (domain.Process, error)
}
