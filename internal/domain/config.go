package domain

// ConfigFileName is the name of the launch configuration expected beside the launcher binary.
const ConfigFileName = "AppLauncher.yaml"

// LaunchConfig is the launch description read from AppLauncher.yaml.
//
// It is populated top to bottom while scanning the file and treated as read-only afterwards.
type LaunchConfig struct {
	Executable       string   `json:"executable" yaml:"executable"`
	WorkingDirectory string   `json:"working_directory,omitempty" yaml:"workingdirectory,omitempty"`
	Arguments        []string `json:"arguments" yaml:"arguments"`

	// SourceDirectory is the directory holding the config file; relative paths resolve against it.
	SourceDirectory string `json:"source_directory" yaml:"-"`
}

// Settings are the launcher's own runtime options (flags / APPLAUNCHER_* env).
type Settings struct {
	ConfigPath string
	Debug      bool
	Console    bool
	Record     bool
}

// ParseIssue describes a line the parser accepted but did not use.
type ParseIssue struct {
	Line    int    `json:"line"`
	Key     string `json:"key,omitempty"`
	Message string `json:"message"`
}

// ParseReport collects non-fatal diagnostics from a parse.
type ParseReport struct {
	Issues []ParseIssue `json:"issues,omitempty"`
}

func (r *ParseReport) add(line int, key, msg string) {
	if r == nil {
		return
	}
	r.Issues = append(r.Issues, ParseIssue{Line: line, Key: key, Message: msg})
}

// IgnoredKey records an unrecognized top-level key.
func (r *ParseReport) IgnoredKey(line int, key string) {
	r.add(line, key, "unknown key ignored")
}

// MissingColon records a top-level line that carries no key.
func (r *ParseReport) MissingColon(line int) {
	r.add(line, "", "top-level line without ':' ignored")
}
