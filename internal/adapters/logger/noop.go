package logger

// NoOpLogger discards everything.
type NoOpLogger struct{}

// NewNoOp creates a logger that does nothing.
func NewNoOp() *NoOpLogger {
	return &NoOpLogger{}
}

func (l *NoOpLogger) Debug(message string, keysAndValues ...any) {}
func (l *NoOpLogger) Info(message string, keysAndValues ...any)  {}
func (l *NoOpLogger) Error(message string, keysAndValues ...any) {}
