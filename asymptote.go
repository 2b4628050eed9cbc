package fplot

import (
	"math"
)

const (
	// AsymptoteDepth is the number of refinements made before a persistent
	// slope flip is accepted as an asymptote.
	AsymptoteDepth   = 3
	asymptoteSamples = 10
)

type asymptote struct {
	ok bool
	p0 Point
	p1 Point
}

// checkAsymptote refines the interval [p0, p1] looking for a step whose slope
// has the given sign. A flip that survives every refinement is reported as an
// asymptote; a flip that vanishes was a smooth extremum.
func checkAsymptote(p0, p1 Point, spec FunctionSpec, sign float64, depth int) asymptote {
	if depth <= 0 {
		return asymptote{
			ok: true,
			p0: p0,
			p1: p1,
		}
	}
	var (
		xs   = Linspace(p0.X, p1.X, asymptoteSamples)
		prev Point
	)
	for i, x := range xs {
		curr := NumberPoint(x, spec.Evaluate(PropFn, Scope{VarX: x}))
		if i > 0 && !math.IsNaN(prev.Y) && sgn(curr.Y-prev.Y) == sign {
			return checkAsymptote(prev, curr, spec, sign, depth-1)
		}
		prev = curr
	}
	return asymptote{
		p0: p0,
		p1: p1,
	}
}
