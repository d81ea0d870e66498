package rootfind

import "math"

// FixedPoint iterates x1 = g(x0) from the initial guess x0 until the step
// size |x1 - x0| drops below the tolerance. The stopping rule is the step
// size, not a residual of the original function; the recorded residual is
// x1 - g(x1), which vanishes at a fixed point.
//
// The method carries no convergence guarantee. When g is not a
// contraction near the fixed point the step size grows instead of
// shrinking and the run ends Exhausted; divergence is not detected or
// short-circuited.
func FixedPoint(g Func, x0 float64, cfg Config) (*Result, error) {
	if err := cfg.check("fixed-point iteration", false); err != nil {
		return nil, err
	}

	trace := make([]Iteration, 0, cfg.MaxIter)
	var x1 float64
	for i := 1; i <= cfg.MaxIter; i++ {
		x1 = g(x0)
		step := math.Abs(x1 - x0)
		trace = append(trace, Iteration{Index: i, Estimate: x1, Residual: x1 - g(x1), Err: step})
		if step < cfg.Tolerance {
			return &Result{Root: x1, FinalErr: step, Trace: trace, Status: Converged}, nil
		}
		x0 = x1
	}
	last := trace[len(trace)-1]
	return &Result{Root: x1, FinalErr: last.Err, Trace: trace, Status: Exhausted}, nil
}
