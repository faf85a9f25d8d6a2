package ports

// ConfigLocator finds the launch configuration the launcher should use.
type ConfigLocator interface {
	Locate() (string, error)
}
