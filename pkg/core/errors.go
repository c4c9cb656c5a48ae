package core

import (
	"errors"
	"fmt"
)

// Epsilon is the minimum ray parameter accepted as a hit, and the distance a
// secondary ray origin is pushed off the surface it starts from.
const Epsilon = 1e-4

// TieTolerance is the distance below which two hits along a ray count as equal.
const TieTolerance = 1e-9

// ErrDegenerateVector is returned when a zero-length vector would need a direction
var ErrDegenerateVector = errors.New("degenerate vector: zero length has no direction")

// ConfigurationError reports a malformed scene element. It is raised while the
// scene is being built; rendering never starts with one outstanding.
type ConfigurationError struct {
	Field  string // Dotted path of the offending field, e.g. "objects[2].material.index"
	Reason string
}

func (e *ConfigurationError) Error() string {
	if e.Field == "" {
		return "configuration error: " + e.Reason
	}
	return fmt.Sprintf("configuration error: %s: %s", e.Field, e.Reason)
}

// NewConfigurationError builds a ConfigurationError with a formatted reason
func NewConfigurationError(field, format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsConfigurationError reports whether err wraps a ConfigurationError
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// WithFieldPrefix returns err with its field path prefixed, so nested builders
// can report the full location. Non-configuration errors pass through unchanged.
func WithFieldPrefix(prefix string, err error) error {
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		return err
	}
	field := prefix
	if cfgErr.Field != "" {
		field = prefix + "." + cfgErr.Field
	}
	return &ConfigurationError{Field: field, Reason: cfgErr.Reason}
}
