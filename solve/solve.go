// Package solve validates a root-finding request, compiles its
// expressions, and dispatches to the matching solver. It is the shared
// layer behind the command-line and web front ends: both hand it raw
// user input and render the report it returns.
package solve

import (
	"errors"
	"fmt"
	"strings"

	"github.com/meenmo/zof/expr"
	"github.com/meenmo/zof/rootfind"
)

// Canonical method identifiers accepted by Run.
const (
	Bisection      = "bisection"
	RegulaFalsi    = "regula_falsi"
	Secant         = "secant"
	NewtonRaphson  = "newton_raphson"
	FixedPoint     = "fixed_point"
	ModifiedSecant = "modified_secant"
)

var (
	// ErrUnknownMethod is returned for a method identifier outside the
	// six supported ones.
	ErrUnknownMethod = errors.New("unknown method")
	// ErrParamCount is returned when the number of numeric parameters
	// does not match what the chosen method requires.
	ErrParamCount = errors.New("wrong parameter count")
	// ErrMissingInput is returned when a required second expression
	// (derivative or iteration map) is absent.
	ErrMissingInput = errors.New("missing input")
)

type methodSpec struct {
	display   string
	params    int
	paramHint string
	needsDF   bool
	needsMap  bool
}

var methods = map[string]methodSpec{
	Bisection:      {display: "Bisection", params: 2, paramHint: "a and b"},
	RegulaFalsi:    {display: "Regula Falsi", params: 2, paramHint: "a and b"},
	Secant:         {display: "Secant", params: 2, paramHint: "x0 and x1"},
	NewtonRaphson:  {display: "Newton-Raphson", params: 1, paramHint: "x0", needsDF: true},
	FixedPoint:     {display: "Fixed Point Iteration", params: 1, paramHint: "x0", needsMap: true},
	ModifiedSecant: {display: "Modified Secant", params: 1, paramHint: "x0"},
}

// methodOrder fixes the presentation order for front ends.
var methodOrder = []string{Bisection, RegulaFalsi, Secant, NewtonRaphson, FixedPoint, ModifiedSecant}

// Methods returns the canonical method identifiers in presentation order.
func Methods() []string {
	out := make([]string, len(methodOrder))
	copy(out, methodOrder)
	return out
}

// MethodName returns the display name for a canonical identifier, or the
// identifier itself when it is unknown.
func MethodName(method string) string {
	if spec, ok := methods[method]; ok {
		return spec.display
	}
	return method
}

// ParamCount returns the number of numeric parameters the method
// requires, or 0 for an unknown method. Front ends use it to decide how
// many parameter fields to read.
func ParamCount(method string) int {
	return methods[method].params
}

// Request carries one solver invocation's raw inputs. Zero values for
// Tolerance, MaxIter and Delta fill in from rootfind.DefaultConfig.
type Request struct {
	// Method is one of the canonical identifiers.
	Method string
	// Expression is the function f in terms of x.
	Expression string
	// Derivative is f' in terms of x; required by newton_raphson only.
	Derivative string
	// FixedPointMap is g in terms of x; required by fixed_point only.
	FixedPointMap string
	// Params are the method-specific starting values: two endpoints or
	// guesses for the bracketing/secant methods, one guess otherwise.
	Params []float64

	Tolerance float64
	MaxIter   int
	Delta     float64
}

// Report is a completed run in front-end-ready form.
type Report struct {
	Method     string               `json:"method"`
	MethodName string               `json:"method_name"`
	Root       float64              `json:"root"`
	FinalErr   float64              `json:"final_error"`
	Converged  bool                 `json:"converged"`
	Iterations []rootfind.Iteration `json:"iterations"`
}

// Run validates req, compiles its expressions, runs the chosen solver,
// and assembles the report. Validation failures are reported before any
// iteration happens; use IsUsageError to distinguish them from faults
// raised mid-iteration.
func Run(req Request) (*Report, error) {
	spec, ok := methods[req.Method]
	if !ok {
		return nil, fmt.Errorf("solve: %w %q", ErrUnknownMethod, req.Method)
	}
	if len(req.Params) != spec.params {
		return nil, fmt.Errorf("solve: %s requires %d parameter(s) (%s), got %d: %w",
			spec.display, spec.params, spec.paramHint, len(req.Params), ErrParamCount)
	}
	if spec.needsDF && strings.TrimSpace(req.Derivative) == "" {
		return nil, fmt.Errorf("solve: %s requires the derivative expression (df): %w", spec.display, ErrMissingInput)
	}
	if spec.needsMap && strings.TrimSpace(req.FixedPointMap) == "" {
		return nil, fmt.Errorf("solve: %s requires the iteration map g(x): %w", spec.display, ErrMissingInput)
	}

	cfg := rootfind.DefaultConfig()
	if req.Tolerance != 0 {
		cfg.Tolerance = req.Tolerance
	}
	if req.MaxIter != 0 {
		cfg.MaxIter = req.MaxIter
	}
	if req.Delta != 0 {
		cfg.Delta = req.Delta
	}

	compiled, err := expr.Compile(req.Expression)
	if err != nil {
		return nil, fmt.Errorf("solve: expression: %w", err)
	}
	f := rootfind.Func(compiled)

	var res *rootfind.Result
	switch req.Method {
	case Bisection:
		res, err = rootfind.Bisection(f, req.Params[0], req.Params[1], cfg)
	case RegulaFalsi:
		res, err = rootfind.RegulaFalsi(f, req.Params[0], req.Params[1], cfg)
	case Secant:
		res, err = rootfind.Secant(f, req.Params[0], req.Params[1], cfg)
	case NewtonRaphson:
		dfc, derr := expr.Compile(req.Derivative)
		if derr != nil {
			return nil, fmt.Errorf("solve: derivative: %w", derr)
		}
		res, err = rootfind.NewtonRaphson(f, rootfind.Func(dfc), req.Params[0], cfg)
	case FixedPoint:
		gc, gerr := expr.Compile(req.FixedPointMap)
		if gerr != nil {
			return nil, fmt.Errorf("solve: iteration map: %w", gerr)
		}
		res, err = rootfind.FixedPoint(rootfind.Func(gc), req.Params[0], cfg)
	case ModifiedSecant:
		res, err = rootfind.ModifiedSecant(f, req.Params[0], cfg)
	}
	if err != nil {
		return nil, err
	}

	return &Report{
		Method:     req.Method,
		MethodName: spec.display,
		Root:       res.Root,
		FinalErr:   res.FinalErr,
		Converged:  res.Status == rootfind.Converged,
		Iterations: res.Trace,
	}, nil
}

// IsUsageError reports whether err describes bad request input — unknown
// method, wrong parameter count, missing second expression, a parse
// failure, an interval that does not bracket a sign change, or an invalid
// configuration — rather than a fault encountered mid-iteration.
func IsUsageError(err error) bool {
	return errors.Is(err, ErrUnknownMethod) ||
		errors.Is(err, ErrParamCount) ||
		errors.Is(err, ErrMissingInput) ||
		errors.Is(err, expr.ErrParse) ||
		errors.Is(err, rootfind.ErrNoBracket) ||
		errors.Is(err, rootfind.ErrInvalidConfig)
}
