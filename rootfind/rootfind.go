// Package rootfind implements classical iterative methods for locating a
// zero of a scalar real-valued function: bisection, regula falsi, secant,
// Newton-Raphson, fixed-point iteration, and modified secant.
//
// All six solvers share one contract. The caller supplies the function (and
// method-specific starting data), each loop pass appends one Iteration to
// the trace, and the run ends in one of three ways: the stopping rule is
// met (Converged), the iteration ceiling is hit with the best estimate
// still returned (Exhausted), or a fault such as a zero denominator aborts
// the run with an error and no result. Bracketing methods additionally
// reject intervals without a sign change before any iteration runs.
//
// Solvers hold no state between calls and are safe to run concurrently.
package rootfind

import (
	"errors"
	"fmt"
)

// Func is a scalar real-valued function supplied by the caller. Solvers
// assume it is pure and do not retain it after the call returns.
type Func func(x float64) float64

// Status reports how a solver run terminated.
type Status int

const (
	// Converged means the stopping rule was satisfied within MaxIter passes.
	Converged Status = iota
	// Exhausted means MaxIter passes ran without meeting the tolerance.
	// The result still carries the last estimate and the full trace.
	Exhausted
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

var (
	// ErrNoBracket is returned by the bracketing methods when
	// f(a)*f(b) >= 0, i.e. the interval does not bracket a sign change.
	// A root sitting exactly on an endpoint is also rejected.
	ErrNoBracket = errors.New("interval does not bracket a sign change")

	// ErrZeroDenominator is returned when an update formula hits a zero
	// denominator mid-iteration (equal secant values, zero derivative,
	// vanishing perturbation).
	ErrZeroDenominator = errors.New("zero denominator")

	// ErrInvalidConfig is returned when a non-positive tolerance,
	// iteration ceiling, or perturbation is supplied.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// Config holds the per-call solver parameters. A Config is immutable for
// the duration of a call; passing it explicitly keeps invocations
// independent of each other.
type Config struct {
	// Tolerance is the convergence threshold on the residual, or on the
	// step size for fixed-point iteration.
	Tolerance float64

	// MaxIter is the hard ceiling on loop passes.
	MaxIter int

	// Delta is the relative perturbation used by the modified secant
	// method; the other methods ignore it.
	Delta float64
}

// DefaultConfig returns the textbook defaults.
func DefaultConfig() Config {
	return Config{
		Tolerance: 1e-6,
		MaxIter:   100,
		Delta:     1e-6,
	}
}

// check validates the configuration before any iteration runs. The NaN
// case is caught by the negated comparisons.
func (c Config) check(method string, needDelta bool) error {
	if !(c.Tolerance > 0) {
		return fmt.Errorf("%s: tolerance must be positive, got %g: %w", method, c.Tolerance, ErrInvalidConfig)
	}
	if c.MaxIter <= 0 {
		return fmt.Errorf("%s: max iterations must be positive, got %d: %w", method, c.MaxIter, ErrInvalidConfig)
	}
	if needDelta && !(c.Delta > 0) {
		return fmt.Errorf("%s: delta must be positive, got %g: %w", method, c.Delta, ErrInvalidConfig)
	}
	return nil
}

// Iteration is one row of a solver trace.
type Iteration struct {
	// Index is the 1-based pass number.
	Index int `json:"index"`
	// Estimate is the root estimate produced by this pass.
	Estimate float64 `json:"estimate"`
	// Residual is the function value at the estimate. Fixed-point
	// iteration records x1 - g(x1) here instead, since no residual of
	// the original function is available.
	Residual float64 `json:"residual"`
	// Err is the error measure for this pass: the bracket width for the
	// bracketing methods, the step size otherwise.
	Err float64 `json:"error"`
}

// Result is a completed solver run. Root, FinalErr and Trace are always
// populated together; a run that fails before or during iteration returns
// a nil Result and an error instead.
type Result struct {
	// Root is the final estimate. When Status is Exhausted it is the
	// best estimate obtained, not a converged root.
	Root float64 `json:"root"`
	// FinalErr is the error measure at termination.
	FinalErr float64 `json:"final_error"`
	// Trace holds every iteration in order. When Status is Exhausted its
	// length equals the configured MaxIter.
	Trace []Iteration `json:"iterations"`
	// Status reports whether the stopping rule was met.
	Status Status `json:"-"`
}
