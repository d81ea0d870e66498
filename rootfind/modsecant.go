package rootfind

import (
	"fmt"
	"math"
)

// ModifiedSecant finds a root of f from a single initial guess x0,
// approximating the derivative with a relative perturbation delta taken
// from cfg:
//
//	x1 = x0 - f(x0)*delta*x0 / (f(x0 + delta*x0) - f(x0))
//
// A zero denominator aborts the run with ErrZeroDenominator. Note that
// x0 == 0 makes the perturbation delta*x0 vanish, which lands on exactly
// that fault; the degenerate starting point is not special-cased.
func ModifiedSecant(f Func, x0 float64, cfg Config) (*Result, error) {
	if err := cfg.check("modified secant", true); err != nil {
		return nil, err
	}

	trace := make([]Iteration, 0, cfg.MaxIter)
	var x1 float64
	for i := 1; i <= cfg.MaxIter; i++ {
		f0 := f(x0)
		den := f(x0+cfg.Delta*x0) - f0
		if den == 0 {
			return nil, fmt.Errorf("modified secant: f(%g + %g) - f(%g) == 0 at iteration %d: %w",
				x0, cfg.Delta*x0, x0, i, ErrZeroDenominator)
		}
		x1 = x0 - f0*cfg.Delta*x0/den
		f1 := f(x1)
		trace = append(trace, Iteration{Index: i, Estimate: x1, Residual: f1, Err: math.Abs(x1 - x0)})
		if math.Abs(f1) < cfg.Tolerance {
			return &Result{Root: x1, FinalErr: math.Abs(x1 - x0), Trace: trace, Status: Converged}, nil
		}
		x0 = x1
	}
	last := trace[len(trace)-1]
	return &Result{Root: x1, FinalErr: last.Err, Trace: trace, Status: Exhausted}, nil
}
