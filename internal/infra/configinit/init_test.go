package configinit

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/h13-0/AppLauncher/internal/domain"
	"github.com/h13-0/AppLauncher/internal/infra/launchconfig"
)

func TestInit_WritesTemplate(t *testing.T) {
	tmp := t.TempDir()

	path, err := NewInitializer().Init(tmp, false)
	if err != nil {
		t.Fatalf("Init error: %v", err)
	}
	if path != filepath.Join(tmp, domain.ConfigFileName) {
		t.Fatalf("unexpected path %q", path)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(b), "# AppLauncher configuration.") {
		t.Fatalf("expected header comment, got:\n%s", b)
	}
}

func TestInit_DoesNotOverwriteWithoutForce(t *testing.T) {
	tmp := t.TempDir()
	dst := filepath.Join(tmp, domain.ConfigFileName)
	if err := os.WriteFile(dst, []byte("executable: mine.exe\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := NewInitializer().Init(tmp, false)
	if !errors.Is(err, ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}

	b, _ := os.ReadFile(dst)
	if string(b) != "executable: mine.exe\n" {
		t.Fatalf("existing config modified:\n%s", b)
	}
}

func TestInit_ForceOverwrites(t *testing.T) {
	tmp := t.TempDir()
	dst := filepath.Join(tmp, domain.ConfigFileName)
	if err := os.WriteFile(dst, []byte("executable: mine.exe\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := NewInitializer().Init(tmp, true); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	b, _ := os.ReadFile(dst)
	if strings.Contains(string(b), "mine.exe") {
		t.Fatalf("expected template to replace config, got:\n%s", b)
	}
}

func TestRender_ReadableByLauncherParser(t *testing.T) {
	cfg := domain.LaunchConfig{
		Executable:       "bin/tool",
		WorkingDirectory: "data",
		Arguments:        []string{"--flag", "value with space"},
	}

	b, err := Render(cfg)
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	got, report := launchconfig.ParseText(string(b), "/src")
	if got.Executable != cfg.Executable || got.WorkingDirectory != cfg.WorkingDirectory {
		t.Fatalf("scalar mismatch: %+v\n%s", got, b)
	}
	if !reflect.DeepEqual(got.Arguments, cfg.Arguments) {
		t.Fatalf("arguments mismatch: got %q\n%s", got.Arguments, b)
	}
	if len(report.Issues) != 0 {
		t.Fatalf("expected clean parse, got %+v", report.Issues)
	}
}
