package pathutil

import (
	"os"
	"path/filepath"
	"runtime"
)

// Resolve combines base and target the way the launcher resolves config-relative paths.
//
// An empty target is returned as is (callers treat it as "use the default"). Absolute targets
// are returned unchanged. Otherwise target is appended to base with a single separator and the
// result is canonicalized; if canonicalization fails the raw concatenation is returned.
func Resolve(base, target string) string {
	if target == "" {
		return target
	}
	if IsAbs(target) {
		return target
	}

	combined := base
	if combined != "" && !endsWithSeparator(combined) {
		combined += string(os.PathSeparator)
	}
	combined += target

	abs, err := filepath.Abs(combined)
	if err != nil {
		return combined
	}
	return abs
}

// IsAbs reports whether p is absolute. On Windows a rooted path such as `\tools\app.exe`
// and a drive-relative path such as `C:app.exe` count as absolute too, matching PathIsRelative.
func IsAbs(p string) bool {
	if filepath.IsAbs(p) {
		return true
	}
	if runtime.GOOS != "windows" || p == "" {
		return false
	}
	return p[0] == '\\' || p[0] == '/' || hasDriveLetter(p)
}

func hasDriveLetter(p string) bool {
	if len(p) < 2 || p[1] != ':' {
		return false
	}
	c := p[0] | 0x20
	return c >= 'a' && c <= 'z'
}

// Dir returns the absolute directory containing path.
func Dir(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Dir(path)
	}
	return filepath.Dir(abs)
}

// Exists reports whether anything is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func endsWithSeparator(p string) bool {
	last := p[len(p)-1]
	return last == '\\' || last == '/'
}
