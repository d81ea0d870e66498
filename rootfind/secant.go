package rootfind

import (
	"fmt"
	"math"
)

// Secant finds a root of f from two initial guesses x0 and x1 using
// successive secant lines. No bracket is required, so there is no
// guarantee the denominator stays nonzero: if f(x1) == f(x0) at any step
// the run aborts with ErrZeroDenominator.
func Secant(f Func, x0, x1 float64, cfg Config) (*Result, error) {
	if err := cfg.check("secant", false); err != nil {
		return nil, err
	}

	trace := make([]Iteration, 0, cfg.MaxIter)
	var x2 float64
	for i := 1; i <= cfg.MaxIter; i++ {
		f0, f1 := f(x0), f(x1)
		if f1 == f0 {
			return nil, fmt.Errorf("secant: f(%g) == f(%g) at iteration %d: %w", x0, x1, i, ErrZeroDenominator)
		}
		x2 = x1 - f1*(x1-x0)/(f1-f0)
		f2 := f(x2)
		trace = append(trace, Iteration{Index: i, Estimate: x2, Residual: f2, Err: math.Abs(x2 - x1)})
		if math.Abs(f2) < cfg.Tolerance {
			return &Result{Root: x2, FinalErr: math.Abs(x2 - x1), Trace: trace, Status: Converged}, nil
		}
		x0, x1 = x1, x2
	}
	last := trace[len(trace)-1]
	return &Result{Root: x2, FinalErr: last.Err, Trace: trace, Status: Exhausted}, nil
}
