package common

// Logger defines the interface for leveled logging.
// Views and the terminal preview accept it so tests can capture output.
type Logger interface {
	// Debug logs a debug message.
	Debug(msg string, args ...interface{})
	// Info logs an informational message.
	Info(msg string, args ...interface{})
	// Warn logs a warning message.
	Warn(msg string, args ...interface{})
	// Error logs an error message.
	Error(msg string, args ...interface{})
}

var _ Logger = (*AppLogger)(nil)
