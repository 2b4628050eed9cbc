package fplot

import (
	"math"

	"github.com/midbel/svg"
)

// ArrowSize is the length, in pixels, of the head drawn at the end of a
// vector.
var ArrowSize float64 = 10

// GetArrow gives the head of an arrow going from one position to another,
// its tip on the second position. It is nil if both positions are the same.
func GetArrow(from, to svg.Pos, color string) svg.Element {
	var (
		dx  = to.X - from.X
		dy  = to.Y - from.Y
		dst = math.Hypot(dx, dy)
	)
	if dst == 0 || math.IsNaN(dst) || math.IsInf(dst, 0) {
		return nil
	}
	dx, dy = dx/dst, dy/dst
	var (
		half = ArrowSize / 2
		base = svg.NewPos(to.X-dx*ArrowSize, to.Y-dy*ArrowSize)
		left = svg.NewPos(base.X-dy*half, base.Y+dx*half)
		righ = svg.NewPos(base.X+dy*half, base.Y-dx*half)
		pat  svg.Path
	)
	pat.Rendering = "geometricPrecision"
	pat.Fill = svg.NewFill(color)
	pat.Fill.Opacity = 1
	pat.Stroke = svg.NewStroke(color, 0)

	pat.AbsMoveTo(to)
	pat.AbsLineTo(left)
	pat.AbsLineTo(righ)
	pat.ClosePath()
	return pat.AsElement()
}
