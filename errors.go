package piechart

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is wrapped by every *ConfigError.
	ErrInvalidConfig = errors.New("piechart: invalid config")

	// ErrInvalidValue is returned for NaN or infinite item values.
	ErrInvalidValue = errors.New("piechart: non-finite value")

	// ErrNegativeValue is returned for negative item values under
	// RejectNegative.
	ErrNegativeValue = errors.New("piechart: negative value")

	// ErrEmptyLabel is returned for items without a label.
	ErrEmptyLabel = errors.New("piechart: empty label")
)

// ConfigError describes a Config field that violates its precondition.
type ConfigError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%v: %s = %v %s", ErrInvalidConfig, e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrInvalidConfig }

// ValueError describes a data item that cannot be laid out.
// Err is ErrInvalidValue, ErrNegativeValue or ErrEmptyLabel.
type ValueError struct {
	Index int
	Label string
	Value float64
	Err   error
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("%v: item %d (%q) = %v", e.Err, e.Index, e.Label, e.Value)
}

func (e *ValueError) Unwrap() error { return e.Err }
