package rootfind

import (
	"fmt"
	"math"
)

// NewtonRaphson finds a root of f from the initial guess x0 using the
// caller-supplied derivative df. The derivative is not computed here. If
// df evaluates to exactly zero at the current estimate the run aborts
// with ErrZeroDenominator.
func NewtonRaphson(f, df Func, x0 float64, cfg Config) (*Result, error) {
	if err := cfg.check("newton-raphson", false); err != nil {
		return nil, err
	}

	trace := make([]Iteration, 0, cfg.MaxIter)
	var x1 float64
	for i := 1; i <= cfg.MaxIter; i++ {
		d := df(x0)
		if d == 0 {
			return nil, fmt.Errorf("newton-raphson: derivative is zero at x = %g (iteration %d): %w", x0, i, ErrZeroDenominator)
		}
		x1 = x0 - f(x0)/d
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
