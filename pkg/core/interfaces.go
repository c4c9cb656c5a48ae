package core

import (
	"io"
	"log"
)

// Logger interface for raytracer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// NewDefaultLogger creates a logger that writes timestamped lines to w
func NewDefaultLogger(w io.Writer) Logger {
	return log.New(w, "whitted: ", log.LstdFlags)
}

// NopLogger discards everything
type NopLogger struct{}

func (NopLogger) Printf(format string, args ...interface{}) {}
