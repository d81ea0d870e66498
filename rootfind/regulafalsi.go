package rootfind

import (
	"fmt"
	"math"
)

// RegulaFalsi finds a root of f inside the sign-change bracket [a, b]
// using the classic false-position update: the next estimate is where the
// secant through (a, f(a)) and (b, f(b)) crosses zero. For strongly
// asymmetric functions one endpoint can stagnate for many passes; that is
// a property of the classic formula and is not corrected here. Returns
// ErrNoBracket when f(a)*f(b) >= 0.
func RegulaFalsi(f Func, a, b float64, cfg Config) (*Result, error) {
	if err := cfg.check("regula falsi", false); err != nil {
		return nil, err
	}
	if f(a)*f(b) >= 0 {
		return nil, fmt.Errorf("regula falsi: f(%g)*f(%g) >= 0: %w", a, b, ErrNoBracket)
	}

	trace := make([]Iteration, 0, cfg.MaxIter)
	var c float64
	for i := 1; i <= cfg.MaxIter; i++ {
		// The bracket guarantees f(a) and f(b) have opposite signs, so
		// the denominator cannot vanish.
		c = (a*f(b) - b*f(a)) / (f(b) - f(a))
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
