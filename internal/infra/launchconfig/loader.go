package launchconfig

import (
	"os"

	"golang.org/x/text/encoding/unicode"

	"github.com/h13-0/AppLauncher/internal/domain"
	"github.com/h13-0/AppLauncher/internal/infra/pathutil"
	"github.com/h13-0/AppLauncher/internal/ports"
)

// Loader reads AppLauncher.yaml files from the filesystem.
type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.ConfigLoader = (*Loader)(nil)

// LoadConfig reads and parses the config at path.
func (l *Loader) LoadConfig(path string) (domain.LaunchConfig, domain.ParseReport, error) {
	return Parse(path)
}

// Parse reads path and parses it. An unreadable or empty file is a KindConfigUnreadable error.
func Parse(path string) (domain.LaunchConfig, domain.ParseReport, error) {
	sourceDir := pathutil.Dir(path)

	text, err := readText(path)
	if err != nil {
		return domain.LaunchConfig{}, domain.ParseReport{}, &domain.OpError{
			Op:   "launchconfig.parse",
			Kind: domain.KindConfigUnreadable,
			Path: path,
			Err:  err,
		}
	}
	if text == "" {
		return domain.LaunchConfig{}, domain.ParseReport{}, &domain.OpError{
			Op:   "launchconfig.parse",
			Kind: domain.KindConfigUnreadable,
			Path: path,
			Err:  domain.ErrConfigUnreadable,
		}
	}

	cfg, report := ParseText(text, sourceDir)
	return cfg, report, nil
}

// readText returns the file content decoded as UTF-8 with a leading BOM removed.
// Invalid byte sequences decode to U+FFFD.
func readText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}

	decoded, err := unicode.UTF8BOM.NewDecoder().Bytes(b)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
