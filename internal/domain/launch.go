package domain

import "time"

// LaunchPlan is a validated, fully resolved launch ready to be handed to a Spawner.
type LaunchPlan struct {
	ConfigPath string       `json:"config_path" yaml:"config_path"`
	Config     LaunchConfig `json:"config" yaml:"config"`

	// Executable and WorkingDirectory are resolved against Config.SourceDirectory.
	// An empty WorkingDirectory means "inherit the launcher's working directory".
	Executable       string `json:"executable" yaml:"executable"`
	WorkingDirectory string `json:"working_directory" yaml:"working_directory"`

	CommandLine string `json:"command_line" yaml:"command_line"`
}

// SpawnRequest is what a Spawner needs to create the process.
type SpawnRequest struct {
	CommandLine      string
	WorkingDirectory string
}

// Process identifies a started child. Handles are already released when it is returned.
type Process struct {
	PID int `json:"pid"`
}

// LaunchRecord is one entry of the launch history.
type LaunchRecord struct {
	StartedAt        time.Time `json:"started_at"`
	ConfigPath       string    `json:"config_path"`
	Executable       string    `json:"executable"`
	Arguments        []string  `json:"arguments"`
	WorkingDirectory string    `json:"working_directory,omitempty"`
	PID              int       `json:"pid,omitempty"`
	Error            string    `json:"error,omitempty"`
}
