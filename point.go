package fplot

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

type Point struct {
	X float64
	Y float64
}

func NumberPoint(x, y float64) Point {
	return Point{
		X: x,
		Y: y,
	}
}

func VecPoint(v vec.Vec2) Point {
	return NumberPoint(v.X, v.Y)
}

func (p Point) IsFinite() bool {
	return isFinite(p.X) && isFinite(p.Y)
}

func (p Point) clampY(lo, hi float64) Point {
	p.Y = clamp(p.Y, lo, hi)
	return p
}

// Segment is one continuous run of points, in rendering order.
type Segment []Point

func (s Segment) Len() int {
	return len(s)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}

func sgn(f float64) float64 {
	switch {
	case f > 0:
		return 1
	case f < 0:
		return -1
	default:
		return 0
	}
}
