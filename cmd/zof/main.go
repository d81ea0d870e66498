// Command zof finds a zero of a user-supplied function with one of six
// classical iterative methods and prints the per-iteration trace.
//
// Usage:
//
//	zof [flags] <method> <expression> <param>...
//
// Examples:
//
//	zof bisection "x**2 - 2" 0 2
//	zof -df "2*x" newton_raphson "x**2 - 2" 1
//	zof -g "(x + 2/x)/2" fixed_point "x**2 - 2" 1
//	zof -json secant "cos(x) - x" 0 1
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/meenmo/zof/solve"
)

func main() {
	tol := flag.Float64("tol", 0, "convergence tolerance (default 1e-6)")
	maxIter := flag.Int("max-iter", 0, "maximum number of iterations (default 100)")
	delta := flag.Float64("delta", 0, "perturbation for modified_secant (default 1e-6)")
	df := flag.String("df", "", "derivative expression, required by newton_raphson")
	g := flag.String("g", "", "iteration map g(x), required by fixed_point")
	jsonOut := flag.Bool("json", false, "emit the report as JSON")
	flag.Usage = usage
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 {
		usage()
		os.Exit(2)
	}

	params := make([]float64, 0, len(args)-2)
	for _, a := range args[2:] {
		v, err := strconv.ParseFloat(a, 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "zof: invalid parameter %q: not a number\n", a)
			os.Exit(2)
		}
		params = append(params, v)
	}

	report, err := solve.Run(solve.Request{
		Method:        args[0],
		Expression:    args[1],
		Derivative:    *df,
		FixedPointMap: *g,
		Params:        params,
		Tolerance:     *tol,
		MaxIter:       *maxIter,
		Delta:         *delta,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "zof: %v\n", err)
		if solve.IsUsageError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}

	if *jsonOut {
		b, _ := json.Marshal(report)
		fmt.Println(string(b))
		return
	}
	printReport(report)
}

func printReport(r *solve.Report) {
	fmt.Printf("\n%s Method:\n", r.MethodName)
	fmt.Println("Iteration | Root                 | f(x)                 | Error")
	for _, it := range r.Iterations {
		fmt.Printf("%-9d | %-20.12g | %-20.12g | %-20.12g\n", it.Index, it.Estimate, it.Residual, it.Err)
	}
	fmt.Printf("\nFinal Root: %.12g\n", r.Root)
	fmt.Printf("Final Error: %.12g\n", r.FinalErr)
	fmt.Printf("Iterations: %d\n", len(r.Iterations))
	if !r.Converged {
		fmt.Println("Warning: tolerance not met within the iteration limit; best estimate shown.")
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: zof [flags] <method> <expression> <param>...")
	fmt.Fprintf(os.Stderr, "Methods: %s\n", strings.Join(solve.Methods(), ", "))
	fmt.Fprintln(os.Stderr, "Bracketing and secant methods take two parameters; the rest take one.")
	fmt.Fprintln(os.Stderr, "\nFlags:")
	flag.PrintDefaults()
}
