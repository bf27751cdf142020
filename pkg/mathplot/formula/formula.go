// Package formula compiles textual expressions in x into plottable functions.
package formula

import (
	"fmt"
	"math"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/ukaji3/mathplot-go/pkg/mathplot/geom"
)

// Var is the name of the free variable.
const Var = "x"

// builtins are the functions and constants available to expressions.
var builtins = map[string]any{
	"pi":    math.Pi,
	"e":     math.E,
	"sqrt":  math.Sqrt,
	"exp":   math.Exp,
	"log":   math.Log,
	"ln":    math.Log,
	"log10": math.Log10,
	"log2":  math.Log2,
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"pow":   math.Pow,
	"cbrt":  math.Cbrt,
}

func newEnv() map[string]any {
	env := make(map[string]any, len(builtins)+1)
	for k, v := range builtins {
		env[k] = v
	}
	env[Var] = 0.0
	return env
}

// Compile parses src (e.g. "1/sqrt(x)" or "0.5*(x-3)^2+1") into a function of x.
// Evaluation errors make the function undefined (NaN) at that point.
func Compile(src string) (geom.Func, error) {
	src = strings.TrimSpace(src)
	if src == "" {
		return nil, fmt.Errorf("empty expression")
	}
	env := newEnv()
	program, err := expr.Compile(src, expr.Env(env), expr.AsFloat64())
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", src, err)
	}
	return bind(program, env), nil
}

func bind(program *vm.Program, env map[string]any) geom.Func {
	machine := &vm.VM{}
	return func(x float64) float64 {
		env[Var] = x
		out, err := machine.Run(program, env)
		if err != nil {
			return math.NaN()
		}
		v, ok := out.(float64)
		if !ok {
			return math.NaN()
		}
		return v
	}
}

// CompileAll compiles every named expression.
func CompileAll(src map[string]string) (map[string]geom.Func, error) {
	funcs := make(map[string]geom.Func, len(src))
	for name, s := range src {
		if name == Var || builtins[name] != nil {
			return nil, fmt.Errorf("function name %q shadows a builtin", name)
		}
		fn, err := Compile(s)
		if err != nil {
			return nil, fmt.Errorf("function %s: %w", name, err)
		}
		funcs[name] = fn
	}
	return funcs, nil
}
