package kinematics

import (
	"errors"
	"fmt"
)

// Domain errors for path computation.
var (
	// ErrInvalidCommand indicates a malformed wheel command.
	ErrInvalidCommand = errors.New("kinematics: invalid wheel command")

	// ErrConfiguration indicates invalid static robot parameters.
	ErrConfiguration = errors.New("kinematics: invalid configuration")
)

// CommandError identifies the offending command index and field.
type CommandError struct {
	Index  int
	Field  string
	Detail string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%v: command %d: %s: %s", ErrInvalidCommand, e.Index, e.Field, e.Detail)
}

func (e *CommandError) Unwrap() error { return ErrInvalidCommand }

// ConfigError identifies the offending parameter and its value.
type ConfigError struct {
	Field string
	Value float64
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s must be positive, got %g", ErrConfiguration, e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error { return ErrConfiguration }
