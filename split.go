package fplot

import (
	"math"

	"github.com/midbel/slices"
)

// SteepnessThreshold is the minimum |dy/dx|, in domain units, for a change of
// slope sign to be tested as a discontinuity.
const SteepnessThreshold = 1.0

type splitter struct {
	spec FunctionSpec
	yMin float64
	yMax float64

	dx   float64
	sign float64

	sets []Segment
	curr Segment
}

// Split cuts a sequence of samples into segments at every asymptote detected
// between two consecutive samples. The points bounding a cut are clamped to
// the domain of y.
func Split(spec FunctionSpec, data []Point, y Scaler) []Segment {
	if len(data) == 0 {
		return nil
	}
	dom := y.Domain()
	s := splitter{
		spec: spec,
		yMin: dom.Min(),
		yMax: dom.Max(),
		curr: Segment{slices.Fst(data)},
	}
	if len(data) > 1 {
		s.dx = data[1].X - data[0].X
		s.sign = sgn(data[1].Y - data[0].Y)
	}
	for i := 1; i < len(data); i++ {
		s.step(data[i-1], data[i])
	}
	return s.done()
}

func (s *splitter) step(p0, p1 Point) {
	var (
		dy   = p1.Y - p0.Y
		sign = sgn(dy)
	)
	if sign != s.sign && math.Abs(dy/s.dx) > SteepnessThreshold {
		if check := checkAsymptote(p0, p1, s.spec, sign, AsymptoteDepth); check.ok {
			s.cut(check.p0, check.p1)
		}
	}
	s.sign = sign
	s.curr = append(s.curr, p1)
}

func (s *splitter) cut(p0, p1 Point) {
	s.curr = append(s.curr, p0.clampY(s.yMin, s.yMax))
	s.sets = append(s.sets, s.curr)
	s.curr = Segment{p1.clampY(s.yMin, s.yMax)}
}

func (s *splitter) done() []Segment {
	if len(s.curr) > 0 {
		s.sets = append(s.sets, s.curr)
	}
	return s.sets
}
