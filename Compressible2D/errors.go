package Compressible2D

import "fmt"

/*
	Failure taxonomy for a run:
	- ConfigurationError: invalid or missing parameter, raised before the
	  first step, never mid-run
	- PhysicalStateError: non-positive density or pressure, negative internal
	  energy, NaN - detected after an update, names the offending cell and step
	- StabilityError: the stable time step collapsed to zero or below

	None of these are recoverable: integration failures are not transient and
	are never retried or skipped. The last snapshot written before the failure
	is the run's final output.
*/

type ConfigurationError struct {
	Msg string
}

func (e *ConfigurationError) Error() string {
	return "configuration error: " + e.Msg
}

func configError(format string, args ...interface{}) *ConfigurationError {
	return &ConfigurationError{Msg: fmt.Sprintf(format, args...)}
}

type PhysicalStateError struct {
	I, J  int // offending cell, interior indexing includes the ghost margin
	Step  int
	Time  float64
	Field string
	Value float64
}

func (e *PhysicalStateError) Error() string {
	return fmt.Sprintf("physical state error: %s = %g at cell (%d,%d), step %d, t = %g",
		e.Field, e.Value, e.I, e.J, e.Step, e.Time)
}

type StabilityError struct {
	DT   float64
	Step int
	Time float64
}

func (e *StabilityError) Error() string {
	return fmt.Sprintf("stability error: dt = %g at step %d, t = %g", e.DT, e.Step, e.Time)
}
