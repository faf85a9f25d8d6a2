package configinit

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/h13-0/AppLauncher/internal/domain"
	"github.com/h13-0/AppLauncher/internal/ports"
)

// ErrExists is returned when the target config is already present and force is off.
var ErrExists = errors.New("config already exists")

const header = `# AppLauncher configuration.
#
# executable        program to start; relative paths resolve against this file's directory
# workingdirectory  optional start directory; empty keeps the launcher's current directory
# arguments         inline list [a, "b c"] or one "- item" per indented line
`

// Template is the config written by Init.
var Template = domain.LaunchConfig{
	Executable: "app.exe",
	Arguments:  []string{"--example"},
}

type Initializer struct {
	template domain.LaunchConfig
}

func NewInitializer() *Initializer {
	return &Initializer{template: Template}
}

var _ ports.ConfigInitializer = (*Initializer)(nil)

// Init writes AppLauncher.yaml into dir and returns its path.
func (i *Initializer) Init(dir string, force bool) (string, error) {
	root := filepath.Clean(dir)
	dst := filepath.Join(root, domain.ConfigFileName)

	if !force {
		if _, err := os.Stat(dst); err == nil {
			return dst, fmt.Errorf("%s: %w", dst, ErrExists)
		}
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return "", err
	}

	b, err := Render(i.template)
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(dst, b, 0o644); err != nil {
		return "", err
	}
	return dst, nil
}

// Render encodes cfg in the subset of YAML the launcher's parser reads.
func Render(cfg domain.LaunchConfig) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(header)
	buf.WriteByte('\n')

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
