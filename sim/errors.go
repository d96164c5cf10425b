package sim

import (
	"errors"
	"fmt"
	"math"
)

const (
	MinRuns     = 1
	MaxRuns     = 30
	DefaultRuns = 5

	// MaxHorizon bounds the periods of a single run.
	MaxHorizon = 100_000
)

var (
	// ErrInvalidParameter matches every *ValidationError via errors.Is.
	ErrInvalidParameter = errors.New("invalid parameter")
	ErrNoRuns           = errors.New("no runs to aggregate")
)

// ValidationError reports which parameter was rejected and why. Parameters
// are never clamped into range.
type ValidationError struct {
	Param  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Param, e.Reason)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidParameter
}

func Invalid(param, format string, args ...any) error {
	return &ValidationError{Param: param, Reason: fmt.Sprintf(format, args...)}
}

func finite(param string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Invalid(param, "must be a finite number")
	}
	return nil
}

// Positive rejects v <= 0.
func Positive(param string, v float64) error {
	if err := finite(param, v); err != nil {
		return err
	}
	if v <= 0 {
		return Invalid(param, "must be greater than 0, got %v", v)
	}
	return nil
}

// NonNegative rejects v < 0.
func NonNegative(param string, v float64) error {
	if err := finite(param, v); err != nil {
		return err
	}
	if v < 0 {
		return Invalid(param, "must not be negative, got %v", v)
	}
	return nil
}

// RunCount rejects run counts outside [MinRuns, MaxRuns].
func RunCount(n int) error {
	if n < MinRuns || n > MaxRuns {
		return Invalid("runs", "must be between %d and %d, got %d", MinRuns, MaxRuns, n)
	}
	return nil
}

// Horizon rejects period counts outside [1, MaxHorizon].
func Horizon(param string, n int) error {
	if n < 1 || n > MaxHorizon {
		return Invalid(param, "must be between 1 and %d, got %d", MaxHorizon, n)
	}
	return nil
}

// First returns the first non-nil error, so validators can report
// parameters in declaration order.
func First(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
