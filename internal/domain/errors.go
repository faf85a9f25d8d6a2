package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrConfigNotFound   = errors.New("config not found")
	ErrConfigUnreadable = errors.New("config unreadable or empty")
	ErrMissingField     = errors.New("missing required field")
	ErrTargetNotFound   = errors.New("target program does not exist")
	ErrSpawnFailed      = errors.New("spawn failed")
	ErrExecution        = errors.New("execution error")
)

// ErrorKind is a coarse-grained categorization for errors.
type ErrorKind string

const (
	KindConfigNotFound   ErrorKind = "config_not_found"
	KindConfigUnreadable ErrorKind = "config_unreadable"
	KindMissingField     ErrorKind = "missing_field"
	KindTargetNotFound   ErrorKind = "target_not_found"
	KindSpawnFailed      ErrorKind = "spawn_failed"
	KindExecution        ErrorKind = "execution"
)

// OpError wraps an underlying error with operation context and a kind.
type OpError struct {
	Op   string
	Kind ErrorKind
	Path string // Optional: relevant file path
	Err  error
}

func (e *OpError) Error() string {
	if e == nil {
		return "<nil>"
	}

	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Path != "" {
		base += fmt.Sprintf(" (path=%s)", e.Path)
	}
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *OpError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// SpawnError carries the OS error code reported by process creation.
type SpawnError struct {
	Code        uint32
	Description string
	Err         error
}

func (e *SpawnError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Description == "" {
		return fmt.Sprintf("error code %d", e.Code)
	}
	return fmt.Sprintf("error code %d: %s", e.Code, e.Description)
}

func (e *SpawnError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind helps callers classify errors without depending on infra packages.
func IsKind(err error, kind ErrorKind) bool {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind == kind
	}
	return false
}

// KindOf returns the kind of the outermost OpError in err's chain, or "".
func KindOf(err error) ErrorKind {
	var oe *OpError
	if errors.As(err, &oe) {
		return oe.Kind
	}
	return ""
}
