package fplot

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

const currentColour = "currentColor"

const (
	// pixelMargin is the factor of the visible height a pixel coordinate may
	// exceed the chart by before being clamped.
	pixelMargin = 1e6
	areaOpacity = 0.3
)

// FunctionRenderer draws the segments of a Serie: one path per segment,
// grouped by serie.
type FunctionRenderer struct {
	Palette Palette
	Width   float64
}

func (r FunctionRenderer) Render(serie Serie, x, y Scaler) svg.Element {
	var (
		color = r.color(serie.Index)
		class = serie.Class("line", fmt.Sprintf("line-%d", serie.Index))
		grp   = getBaseGroup(color, class...)
		ypos  = pixelClamp(serie, y)
	)
	grp.Id = serie.Id
	for _, seg := range serie.Segments {
		if len(seg) == 0 {
			continue
		}
		var pat svg.Path
		if serie.Closed {
			pat = r.drawArea(seg, x, y, ypos, color)
		} else {
			pat = r.drawLine(seg, x, ypos, color)
		}
		r.applyAttr(&pat, serie.Attr, color)
		grp.Append(pat.AsElement())

		if serie.Kind == KindVector && len(seg) > 1 {
			var (
				to   = slices.Lst(seg)
				from = seg[len(seg)-2]
			)
			head := GetArrow(svg.NewPos(x.Scale(from.X), ypos(from.Y)), svg.NewPos(x.Scale(to.X), ypos(to.Y)), color)
			if head != nil {
				grp.Append(head)
			}
		}
	}
	return grp.AsElement()
}

func (r FunctionRenderer) drawLine(seg Segment, x Scaler, ypos func(float64) float64, color string) svg.Path {
	pat := getBasePath(color, false)
	fst := slices.Fst(seg)
	pat.AbsMoveTo(svg.NewPos(x.Scale(fst.X), ypos(fst.Y)))
	for _, pt := range slices.Rest(seg) {
		pat.AbsLineTo(svg.NewPos(x.Scale(pt.X), ypos(pt.Y)))
	}
	return pat
}

func (r FunctionRenderer) drawArea(seg Segment, x, y Scaler, ypos func(float64) float64, color string) svg.Path {
	var (
		pat  = getBasePath(color, true)
		zero = ypos(0)
		fst  = slices.Fst(seg)
		lst  = slices.Lst(seg)
	)
	if y.Type() == LogScale {
		zero = y.Range().F
	}
	pat.AbsMoveTo(svg.NewPos(x.Scale(fst.X), zero))
	for _, pt := range seg {
		pat.AbsLineTo(svg.NewPos(x.Scale(pt.X), ypos(pt.Y)))
	}
	pat.AbsLineTo(svg.NewPos(x.Scale(lst.X), zero))
	pat.ClosePath()
	return pat
}

func (r FunctionRenderer) applyAttr(pat *svg.Path, attr map[string]string, color string) {
	var (
		stroke = color
		width  = r.strokeWidth()
	)
	if v, ok := attr["stroke"]; ok {
		stroke = v
	}
	if v, ok := attr["stroke-width"]; ok {
		if w, err := strconv.ParseFloat(v, 64); err == nil {
			width = w
		}
	}
	pat.Stroke = svg.NewStroke(stroke, width)
	if v, ok := attr["stroke-opacity"]; ok {
		if o, err := strconv.ParseFloat(v, 64); err == nil {
			pat.Stroke.Opacity = o
		}
	}
	if v, ok := attr["stroke-dasharray"]; ok {
		if dash, err := parseDash(v); err == nil && len(dash) > 0 {
			dashArray(pat.Stroke.DashArray, dash)
		}
	}
	if v, ok := attr["fill"]; ok {
		opacity := pat.Fill.Opacity
		pat.Fill = svg.NewFill(v)
		pat.Fill.Opacity = opacity
	}
	if v, ok := attr["fill-opacity"]; ok {
		if o, err := strconv.ParseFloat(v, 64); err == nil {
			pat.Fill.Opacity = o
		}
	}
}

func (r FunctionRenderer) color(index int) string {
	if len(r.Palette) == 0 {
		return Category10[index%len(Category10)]
	}
	return r.Palette[index%len(r.Palette)]
}

func (r FunctionRenderer) strokeWidth() float64 {
	if r.Width <= 0 {
		return 1
	}
	return r.Width
}

// parseDash reads a dash list separated by commas or blanks ("5, 3").
func parseDash(str string) ([]float64, error) {
	fields := strings.FieldsFunc(str, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	var list []float64
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, err
		}
		list = append(list, v)
	}
	return list, nil
}

func dashArray[T int | float64](set func(...T), values []float64) {
	list := make([]T, len(values))
	for i := range values {
		list[i] = T(values[i])
	}
	set(list...)
}

// pixelClamp gives the function mapping a y value to its pixel coordinate,
// clamped around the visible range unless the serie skips bounds checking.
func pixelClamp(serie Serie, y Scaler) func(float64) float64 {
	var (
		rg   = y.Range()
		diff = rg.Max() - rg.Min()
		lo   = rg.Min() - diff*pixelMargin
		hi   = rg.Max() + diff*pixelMargin
	)
	if serie.SkipBoundsCheck {
		lo, hi = math.Inf(-1), math.Inf(1)
	}
	return func(v float64) float64 {
		return clamp(y.Scale(v), lo, hi)
	}
}

func getBasePath(color string, fill bool) svg.Path {
	if color == "" {
		color = currentColour
	}
	var pat svg.Path
	pat.Rendering = "geometricPrecision"
	pat.Stroke = svg.NewStroke(color, 1)
	if fill {
		pat.Fill = svg.NewFill(color)
		pat.Fill.Opacity = areaOpacity
	} else {
		pat.Fill = svg.NewFill("none")
	}
	return pat
}

func getBaseGroup(color string, class ...string) svg.Group {
	var g svg.Group
	if color != "" {
		g.Fill = svg.NewFill(color)
		g.Stroke = svg.NewStroke(color, 1)
	}
	g.Class = class
	return g
}
