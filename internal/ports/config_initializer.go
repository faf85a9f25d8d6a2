package ports

// ConfigInitializer writes a starter launch configuration.
type ConfigInitializer interface {
	Init(dir string, force bool) (path string, err error)
}
