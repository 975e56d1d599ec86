package renderer

import (
	"fmt"

	"github.com/df07/go-sdf-raymarcher/pkg/core"
)

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// nopLogger discards everything
type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

// NewNopLogger creates a logger that produces no output
func NewNopLogger() core.Logger {
	return nopLogger{}
}
