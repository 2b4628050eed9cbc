package fplot

import (
	"bufio"
	"io"

	"github.com/midbel/svg"
)

type Padding struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

func (p Padding) Horizontal() float64 {
	return p.Left + p.Right
}

func (p Padding) Vertical() float64 {
	return p.Top + p.Bottom
}

type Chart struct {
	Title  string
	Width  float64
	Height float64

	Padding

	Left   Axis
	Bottom Axis

	Renderer FunctionRenderer
}

func (c Chart) DrawingWidth() float64 {
	return c.Width - c.Padding.Horizontal()
}

func (c Chart) DrawingHeight() float64 {
	return c.Height - c.Padding.Vertical()
}

// Render writes the chart and the given series as an svg document. Series
// with an error are skipped.
func (c Chart) Render(w io.Writer, x, y Scaler, series ...Serie) error {
	el := svg.NewSVG(svg.WithDimension(c.Width, c.Height))
	el.OmitProlog = true

	el.Append(c.drawAxis())
	if c.Title != "" {
		el.Append(c.drawTitle())
	}

	area := c.getArea()
	for _, s := range series {
		if s.Err != nil {
			continue
		}
		area.Append(c.Renderer.Render(s, x, y))
	}
	el.Append(area.AsElement())

	bw := bufio.NewWriter(w)
	el.Render(bw)
	return bw.Flush()
}

func (c Chart) drawTitle() svg.Element {
	text := svg.NewText(c.Title)
	text.Font = svg.NewFont(FontSize * 1.5)
	text.Anchor = "middle"
	text.Baseline = "middle"
	text.Pos = svg.NewPos(c.Width/2, c.Padding.Top/2)
	return text.AsElement()
}

func (c Chart) getArea() svg.Group {
	g := svg.NewGroup(svg.WithID("area"), svg.WithTranslate(c.Padding.Left, c.Padding.Top))
	g.Class = append(g.Class, "area")

	var (
		defs svg.Defs
		clip = svg.NewClipPath(svg.WithID("clip-area"))
		rec  = svg.NewRect(svg.WithDimension(c.DrawingWidth(), c.DrawingHeight()))
	)
	clip.Append(rec.AsElement())
	defs.Append(clip.AsElement())
	g.Append(defs.AsElement())
	return g
}

func (c Chart) drawAxis() svg.Element {
	g := svg.NewGroup(svg.WithID("axis"))
	if c.Left != nil {
		el := c.Left.Render(c.DrawingHeight(), c.DrawingWidth(), c.Padding.Left, c.Padding.Top)
		g.Append(el)
	}
	if c.Bottom != nil {
		el := c.Bottom.Render(c.DrawingWidth(), c.DrawingHeight(), c.Padding.Left, c.Height-c.Padding.Bottom)
		g.Append(el)
	}
	return g.AsElement()
}
