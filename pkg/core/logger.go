package core

import "fmt"

// Logger interface for renderer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// StdoutLogger implements Logger by writing to stdout
type StdoutLogger struct{}

func (sl *StdoutLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewStdoutLogger creates a logger that writes to stdout
func NewStdoutLogger() Logger {
	return &StdoutLogger{}
}
