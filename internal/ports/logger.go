package ports

// Logger defines the interface for logging
type Logger interface {
	Debug(message string, keysAndValues ...any)
	Info(message string, keysAndValues ...any)
	Error(message string, keysAndValues ...any)
}
