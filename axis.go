package fplot

import (
	"strconv"

	"github.com/midbel/svg"
)

const FontSize = 12.0

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

type Axis interface {
	Render(float64, float64, float64, float64) svg.Element
}

type NumberAxis struct {
	Label string
	Orientation
	Ticks          int
	Scaler         Scaler
	Format         func(float64) string
	WithInnerTicks bool
	WithLabelTicks bool
	WithOuterTicks bool
}

// Values gives the ticks of the axis, spread over its domain the same way
// samples are.
func (a NumberAxis) Values() []float64 {
	n := a.Ticks
	if n <= 0 {
		n = 2
	}
	values, err := SpaceAxis(a.Scaler, a.Scaler.Domain(), n)
	if err != nil {
		return nil
	}
	return values
}

func (a NumberAxis) Render(length, size, left, top float64) svg.Element {
	g := svg.NewGroup(svg.WithTranslate(left, top))
	d := domainLine(a.Orientation, length)
	g.Append(d.AsElement())

	var (
		data   = a.Values()
		font   = svg.NewFont(FontSize)
		format = a.Format
	)
	if format == nil {
		format = func(f float64) string {
			return strconv.FormatFloat(f, 'g', 4, 64)
		}
	}
	for i, f := range data {
		var (
			pos = a.Scaler.Scale(f)
			grp = svg.NewGroup(svg.WithTranslate(pos, 0))
		)
		if a.Vertical() {
			grp.Transform.TX = 0
			grp.Transform.TY = pos
		}
		if a.WithInnerTicks {
			tick := lineTick(a.Orientation, FontSize*0.8, d.Stroke)
			grp.Append(tick.AsElement())
		}
		if a.WithLabelTicks {
			text := tickText(a.Orientation, format(f), font)
			grp.Append(text.AsElement())
		}
		if a.WithOuterTicks && i > 0 && i < len(data)-1 {
			sk := d.Stroke
			sk.Opacity = 0.05
			tick := lineTick(a.Orientation, -size, sk)
			grp.Append(tick.AsElement())
		}
		g.Append(grp.AsElement())
	}
	if a.Label != "" {
		g.Append(axisLabel(a.Orientation, a.Label, length, font).AsElement())
	}
	return g.AsElement()
}

func domainLine(orient Orientation, length float64) svg.Line {
	x, y := length, 0.0
	if orient.Vertical() {
		x, y = y, x
	}
	d := svg.NewLine(svg.NewPos(0, 0), svg.NewPos(x, y))
	d.Stroke = svg.NewStroke("black", 1)
	return d
}

func lineTick(orient Orientation, size float64, stroke svg.Stroke) svg.Line {
	var (
		pos1 = svg.NewPos(0, 0)
		pos2 = svg.NewPos(0, size)
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		pos2.X, pos2.Y = -pos2.Y, pos2.X
	case orient.Vertical() && orient.Reverse():
		pos2.X, pos2.Y = pos2.Y, pos2.X
	case !orient.Vertical() && orient.Reverse():
		pos2.Y = -pos2.Y
	default:
	}
	tick := svg.NewLine(pos1, pos2)
	tick.Stroke = stroke
	return tick
}

func tickText(orient Orientation, str string, font svg.Font) svg.Text {
	var (
		base   = "hanging"
		anchor = "middle"
		x, y   = 0.0, FontSize * 1.2
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		base = "middle"
		anchor = "end"
		x, y = -y, x
	case orient.Vertical() && orient.Reverse():
		base = "middle"
		anchor = "start"
		x, y = y, x
	case !orient.Vertical() && orient.Reverse():
		base = "auto"
		y = -y
	default:
	}
	text := svg.NewText(str)
	text.Pos = svg.NewPos(x, y)
	text.Font = font
	text.Anchor = anchor
	text.Baseline = base
	return text
}

func axisLabel(orient Orientation, str string, length float64, font svg.Font) svg.Text {
	text := svg.NewText(str)
	text.Font = font
	text.Anchor = "middle"
	text.Baseline = "middle"
	if orient.Vertical() {
		text.Pos = svg.NewPos(-FontSize*4, length/2)
		if orient.Reverse() {
			text.Pos.X = -text.Pos.X
		}
	} else {
		text.Pos = svg.NewPos(length/2, FontSize*3)
		if orient.Reverse() {
			text.Pos.Y = -text.Pos.Y
		}
	}
	return text
}
