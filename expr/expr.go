// Package expr compiles a restricted arithmetic grammar into an evaluable
// function of one real variable.
//
// The grammar accepts float literals, the bound variable, the constants pi
// and e, unary sign, the binary operators + - * / ^ (with ** accepted as a
// power alias), parentheses, and single-argument calls from a fixed table
// of elementary functions. Everything else is a parse error: the
// vocabulary is closed at compile time, so user-typed expressions cannot
// reach beyond it. Evaluation is plain float64 arithmetic; domain errors
// surface as NaN or Inf per package math.
package expr

import (
	"errors"
	"math"
)

// ErrParse is wrapped by every error returned from Compile.
var ErrParse = errors.New("parse error")

// Func is the compiled form of an expression: a pure mapping from the
// bound variable to a value.
type Func func(x float64) float64

// Compile parses src with "x" as the bound variable.
func Compile(src string) (Func, error) {
	return CompileVar(src, "x")
}

// CompileVar parses src with the named bound variable, returning a
// function that evaluates the expression at a given value.
func CompileVar(src, name string) (Func, error) {
	n, err := parse(src, name)
	if err != nil {
		return nil, err
	}
	return n.eval, nil
}

// node is one vertex of the compiled syntax tree.
type node interface {
	eval(x float64) float64
}

type numNode float64

func (n numNode) eval(float64) float64 { return float64(n) }

type varNode struct{}

func (varNode) eval(x float64) float64 { return x }

type negNode struct{ operand node }

func (n negNode) eval(x float64) float64 { return -n.operand.eval(x) }

type binNode struct {
	op          byte
	left, right node
}

func (b binNode) eval(x float64) float64 {
	l, r := b.left.eval(x), b.right.eval(x)
	switch b.op {
	case '+':
		return l + r
	case '-':
		return l - r
	case '*':
		return l * r
	case '/':
		return l / r
	default: // '^'
		return math.Pow(l, r)
	}
}

type callNode struct {
	fn  func(float64) float64
	arg node
}

func (c callNode) eval(x float64) float64 { return c.fn(c.arg.eval(x)) }

// builtins is the closed table of single-argument functions the grammar
// admits. log follows the natural-log convention of the original tool.
var builtins = map[string]func(float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"exp":   math.Exp,
	"ln":    math.Log,
	"log":   math.Log,
	"log10": math.Log10,
	"log2":  math.Log2,
	"sqrt":  math.Sqrt,
	"cbrt":  math.Cbrt,
	"abs":   math.Abs,
	"floor": math.Floor,
	"ceil":  math.Ceil,
}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}
