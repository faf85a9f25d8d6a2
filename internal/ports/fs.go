package ports

// FileChecker reports whether a path exists.
type FileChecker interface {
	Exists(path string) bool
}
