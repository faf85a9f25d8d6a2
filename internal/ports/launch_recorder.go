package ports

import "github.com/h13-0/AppLauncher/internal/domain"

// LaunchRecorder persists launch records (optional).
type LaunchRecorder interface {
	Record(rec domain.LaunchRecord) error
	List(limit int) ([]domain.LaunchRecord, error)
}
