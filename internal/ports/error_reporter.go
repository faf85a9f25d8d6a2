package ports

// ErrorReporter shows a failure to the user. It is only used at the top level.
type ErrorReporter interface {
	Report(title, message string) error
}
