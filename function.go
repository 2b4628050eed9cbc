package fplot

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/vec"
)

// Scope holds the bindings given to an evaluator (x, t, theta).
type Scope map[string]float64

// Evaluator computes the value of a compiled expression for the given
// bindings. Undefined points are reported as NaN, never as an error.
type Evaluator interface {
	Eval(Scope) float64
}

type EvalFunc func(Scope) float64

func (f EvalFunc) Eval(s Scope) float64 {
	return f(s)
}

const (
	VarX     = "x"
	VarT     = "t"
	VarTheta = "theta"
)

const (
	PropFn = "fn"
	PropX  = "x"
	PropY  = "y"
	PropR  = "r"
)

type Kind int

const (
	KindLinear Kind = iota
	KindParametric
	KindPolar
	KindPoints
	KindVector
)

func (k Kind) String() string {
	switch k {
	case KindLinear:
		return "linear"
	case KindParametric:
		return "parametric"
	case KindPolar:
		return "polar"
	case KindPoints:
		return "points"
	case KindVector:
		return "vector"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

func ParseKind(str string) (Kind, error) {
	switch str {
	case "linear", "":
		return KindLinear, nil
	case "parametric":
		return KindParametric, nil
	case "polar":
		return KindPolar, nil
	case "points", "point-set":
		return KindPoints, nil
	case "vector":
		return KindVector, nil
	default:
		return 0, KindError{Kind: str}
	}
}

const AttrClass = "class"

type FunctionSpec struct {
	Id   string
	Kind Kind
	// Attr holds the style attributes given to the renderer. The class
	// attribute is appended to the base class.
	Attr            map[string]string
	Range           *Interval
	SkipBoundsCheck bool
	Closed          bool
	Samples         int

	Fn Evaluator
	X  Evaluator
	Y  Evaluator
	R  Evaluator

	Points []Point
	Offset *vec.Vec2
	Vector vec.Vec2

	// Err is set on a function that could not be built. It keeps its place
	// among the other functions and sampling it gives Err.
	Err error
}

func (f FunctionSpec) Evaluate(prop string, scope Scope) float64 {
	var e Evaluator
	switch prop {
	case PropFn:
		e = f.Fn
	case PropX:
		e = f.X
	case PropY:
		e = f.Y
	case PropR:
		e = f.R
	}
	if e == nil {
		return math.NaN()
	}
	return e.Eval(scope)
}

func (f FunctionSpec) Validate() error {
	if f.Err != nil {
		return f.Err
	}
	if f.Range != nil && !f.Range.IsFinite() {
		return fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, f.Range.F, f.Range.T)
	}
	switch f.Kind {
	case KindLinear:
		return requireEvaluators(f.Kind, map[string]Evaluator{PropFn: f.Fn})
	case KindParametric:
		return requireEvaluators(f.Kind, map[string]Evaluator{PropX: f.X, PropY: f.Y})
	case KindPolar:
		return requireEvaluators(f.Kind, map[string]Evaluator{PropR: f.R})
	case KindPoints, KindVector:
		return nil
	default:
		return KindError{Kind: f.Kind.String()}
	}
}

func requireEvaluators(kind Kind, set map[string]Evaluator) error {
	for _, prop := range []string{PropFn, PropX, PropY, PropR} {
		e, ok := set[prop]
		if ok && e == nil {
			return fmt.Errorf("%w: %s requires %s", ErrMissingEvaluator, kind, prop)
		}
	}
	return nil
}
