package rootfind

import (
	"fmt"
	"math"
)

// Bisection finds a root of f inside the sign-change bracket [a, b] by
// repeated halving. It returns ErrNoBracket when f(a)*f(b) >= 0.
func Bisection(f Func, a, b float64, cfg Config) (*Result, error) {
	if err := cfg.check("bisection", false); err != nil {
		return nil, err
	}
	if f(a)*f(b) >= 0 {
		return nil, fmt.Errorf("bisection: f(%g)*f(%g) >= 0: %w", a, b, ErrNoBracket)
	}

	trace := make([]Iteration, 0, cfg.MaxIter)
	var c float64
	for i := 1; i <= cfg.MaxIter; i++ {
		c = (a + b) / 2
		fc := f(c)
		trace = append(trace, Iteration{Index: i, Estimate: c, Residual: fc, Err: math.Abs(b - a)})
		if math.Abs(fc) < cfg.Tolerance {
			return &Result{Root: c, FinalErr: math.Abs(b - a), Trace: trace, Status: Converged}, nil
		}
		if f(a)*fc < 0 {
			b = c
		} else {
			a = c
		}
	}
	return &Result{Root: c, FinalErr: math.Abs(b - a), Trace: trace, Status: Exhausted}, nil
}
