package expr

import (
	"fmt"
	"math"

	"github.com/midbel/fplot"
)

type SyntaxError struct {
	Message string
	Position
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", e.Position, e.Message)
}

type builtin struct {
	arity int
	call  func([]float64) float64
}

func unaryFunc(fn func(float64) float64) builtin {
	return builtin{
		arity: 1,
		call: func(args []float64) float64 {
			return fn(args[0])
		},
	}
}

func binaryFunc(fn func(float64, float64) float64) builtin {
	return builtin{
		arity: 2,
		call: func(args []float64) float64 {
			return fn(args[0], args[1])
		},
	}
}

var builtins = map[string]builtin{
	"sin":   unaryFunc(math.Sin),
	"cos":   unaryFunc(math.Cos),
	"tan":   unaryFunc(math.Tan),
	"asin":  unaryFunc(math.Asin),
	"acos":  unaryFunc(math.Acos),
	"atan":  unaryFunc(math.Atan),
	"sinh":  unaryFunc(math.Sinh),
	"cosh":  unaryFunc(math.Cosh),
	"tanh":  unaryFunc(math.Tanh),
	"exp":   unaryFunc(math.Exp),
	"log":   unaryFunc(math.Log),
	"ln":    unaryFunc(math.Log),
	"log10": unaryFunc(math.Log10),
	"log2":  unaryFunc(math.Log2),
	"sqrt":  unaryFunc(math.Sqrt),
	"cbrt":  unaryFunc(math.Cbrt),
	"abs":   unaryFunc(math.Abs),
	"floor": unaryFunc(math.Floor),
	"ceil":  unaryFunc(math.Ceil),
	"round": unaryFunc(math.Round),
	"sign":  unaryFunc(sign),
	"min":   binaryFunc(math.Min),
	"max":   binaryFunc(math.Max),
	"pow":   binaryFunc(math.Pow),
	"atan2": binaryFunc(math.Atan2),
}

var constants = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

type evalFunc = func(fplot.Scope) float64

// Compile parses str and gives an evaluator of it. Only the given params can
// be bound by the scope; any other identifier must be a known constant. All
// the errors are reported here: evaluating the result never fails, undefined
// operations give NaN or an infinity.
func Compile(str string, params ...string) (fplot.Evaluator, error) {
	e, err := Parse(str)
	if err != nil {
		return nil, err
	}
	c := compiler{
		params: make(map[string]struct{}),
	}
	for _, p := range params {
		c.params[p] = struct{}{}
	}
	fn, err := c.compile(e)
	if err != nil {
		return nil, err
	}
	return fplot.EvalFunc(fn), nil
}

// MustCompile is like Compile but panics if str can not be compiled.
func MustCompile(str string, params ...string) fplot.Evaluator {
	e, err := Compile(str, params...)
	if err != nil {
		panic(fmt.Sprintf("%s: %s", str, err))
	}
	return e
}

type compiler struct {
	params map[string]struct{}
}

func (c compiler) compile(e Expression) (evalFunc, error) {
	switch e := e.(type) {
	case number:
		v := e.value
		return func(_ fplot.Scope) float64 {
			return v
		}, nil
	case variable:
		return c.compileVariable(e)
	case unary:
		right, err := c.compile(e.right)
		if err != nil {
			return nil, err
		}
		return func(s fplot.Scope) float64 {
			return -right(s)
		}, nil
	case binary:
		return c.compileBinary(e)
	case call:
		return c.compileCall(e)
	default:
		return nil, fmt.Errorf("%T: unsupported expression", e)
	}
}

func (c compiler) compileVariable(v variable) (evalFunc, error) {
	if _, ok := c.params[v.ident]; ok {
		ident := v.ident
		return func(s fplot.Scope) float64 {
			f, ok := s[ident]
			if !ok {
				return math.NaN()
			}
			return f
		}, nil
	}
	if f, ok := constants[v.ident]; ok {
		return func(_ fplot.Scope) float64 {
			return f
		}, nil
	}
	return nil, SyntaxError{
		Message:  fmt.Sprintf("%s: undefined variable", v.ident),
		Position: v.Position,
	}
}

func (c compiler) compileBinary(b binary) (evalFunc, error) {
	left, err := c.compile(b.left)
	if err != nil {
		return nil, err
	}
	right, err := c.compile(b.right)
	if err != nil {
		return nil, err
	}
	var op func(float64, float64) float64
	switch b.op {
	case Add:
		op = func(x, y float64) float64 { return x + y }
	case Sub:
		op = func(x, y float64) float64 { return x - y }
	case Mul:
		op = func(x, y float64) float64 { return x * y }
	case Div:
		op = func(x, y float64) float64 { return x / y }
	case Mod:
		op = math.Mod
	case Pow:
		op = math.Pow
	default:
		return nil, fmt.Errorf("unsupported binary operator")
	}
	return func(s fplot.Scope) float64 {
		return op(left(s), right(s))
	}, nil
}

func (c compiler) compileCall(fn call) (evalFunc, error) {
	b, ok := builtins[fn.ident]
	if !ok {
		return nil, SyntaxError{
			Message:  fmt.Sprintf("%s: function undefined", fn.ident),
			Position: fn.Position,
		}
	}
	if len(fn.args) != b.arity {
		return nil, SyntaxError{
			Message:  fmt.Sprintf("%s: expected %d argument(s), got %d", fn.ident, b.arity, len(fn.args)),
			Position: fn.Position,
		}
	}
	args := make([]evalFunc, 0, len(fn.args))
	for _, a := range fn.args {
		f, err := c.compile(a)
		if err != nil {
			return nil, err
		}
		args = append(args, f)
	}
	return func(s fplot.Scope) float64 {
		values := make([]float64, len(args))
		for i := range args {
			values[i] = args[i](s)
		}
		return b.call(values)
	}, nil
}

func sign(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return f
	}
}
