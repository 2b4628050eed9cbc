package fplot

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/midbel/svg"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func testPlot(workers int) Plot {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return Plot{
		X:       NumberScaler(NewInterval(-5, 5), NewInterval(0, 400)),
		Y:       NumberScaler(NewInterval(-5, 5), NewInterval(300, 0)),
		Samples: 250,
		Workers: workers,
		Logger:  logger,
		Functions: []FunctionSpec{
			linearFunc(math.Sin),
			{Id: "broken", Kind: KindParametric},
			linearFunc(math.Tan),
			{Kind: Kind(12)},
			{
				Kind:   KindVector,
				Vector: vec.Vec2{X: 1, Y: 1},
			},
		},
	}
}

func TestPlotDraw(t *testing.T) {
	series := testPlot(0).Draw()
	require.Len(t, series, 5)

	assert.NoError(t, series[0].Err)
	assert.Len(t, series[0].Segments, 1)
	assert.Equal(t, 250, series[0].Points())

	assert.ErrorIs(t, series[1].Err, ErrMissingEvaluator)
	assert.Contains(t, series[1].Err.Error(), "broken")
	assert.Empty(t, series[1].Segments)

	assert.NoError(t, series[2].Err)
	assert.Greater(t, len(series[2].Segments), 1)

	assert.ErrorIs(t, series[3].Err, ErrUnsupportedKind)
	assert.NoError(t, series[4].Err)

	for i, s := range series {
		assert.Equal(t, i, s.Index)
	}
}

func TestPlotDrawParallel(t *testing.T) {
	var (
		seq = testPlot(1).Draw()
		par = testPlot(4).Draw()
	)
	require.Len(t, par, len(seq))
	for i := range seq {
		assert.Equal(t, seq[i].Segments, par[i].Segments)
		assert.Equal(t, seq[i].Err != nil, par[i].Err != nil)
	}
}

func TestPlotLogsFailures(t *testing.T) {
	var (
		buf bytes.Buffer
		p   = testPlot(0)
	)
	p.Logger.SetOutput(&buf)
	p.Draw()
	assert.Contains(t, buf.String(), "serie not sampled")
	assert.Contains(t, buf.String(), "broken")
}

func TestPlotZoomPan(t *testing.T) {
	p := testPlot(0)

	z, err := p.Zoom(0.5, NumberPoint(0, 0))
	require.NoError(t, err)
	assert.InDelta(t, -2.5, z.X.Domain().F, 1e-9)
	assert.InDelta(t, 2.5, z.Y.Domain().T, 1e-9)
	assert.Equal(t, NewInterval(-5, 5), p.X.Domain())

	m, err := p.Pan(40, 0)
	require.NoError(t, err)
	assert.InDelta(t, -6, m.X.Domain().F, 1e-9)
	assert.InDelta(t, 4, m.X.Domain().T, 1e-9)
}

func TestPlotSerieId(t *testing.T) {
	p := testPlot(0)
	p.Functions = []FunctionSpec{
		linearFunc(math.Sin),
		linearFunc(math.Cos),
		{Id: "named", Kind: KindPoints},
	}
	series := p.Draw()
	require.Len(t, series, 3)
	assert.Equal(t, "serie-0", series[0].Id)
	assert.Equal(t, "serie-1", series[1].Id)
	assert.Equal(t, "named", series[2].Id)
}

func TestPlotPlaceholder(t *testing.T) {
	p := testPlot(0)
	p.Functions = []FunctionSpec{
		{Err: ErrMissingEvaluator},
		linearFunc(math.Sin),
	}
	series := p.Draw()
	require.Len(t, series, 2)
	assert.ErrorIs(t, series[0].Err, ErrMissingEvaluator)
	assert.NoError(t, series[1].Err)
	assert.Equal(t, 1, series[1].Index)
}

func TestRenderDashArray(t *testing.T) {
	var (
		buf   bytes.Buffer
		x     = NumberScaler(NewInterval(-5, 5), NewInterval(0, 400))
		y     = NumberScaler(NewInterval(-5, 5), NewInterval(300, 0))
		chart = Chart{Width: 400, Height: 300}
		serie = Serie{
			Id:       "dashed",
			Attr:     map[string]string{"stroke-dasharray": "5, 3"},
			Segments: []Segment{{NumberPoint(0, 0), NumberPoint(2, 3)}},
		}
	)
	require.NoError(t, chart.Render(&buf, x, y, serie))
	assert.Contains(t, buf.String(), "stroke-dasharray")

	dash, err := parseDash("5, 3 1")
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 3, 1}, dash)

	_, err = parseDash("5,x")
	assert.Error(t, err)
}

func TestSerieClass(t *testing.T) {
	s := Serie{
		Attr: map[string]string{AttrClass: " dashed  thick "},
	}
	assert.Equal(t, []string{"line", "line-0", "dashed", "thick"}, s.Class("line", "line-0"))
	assert.Equal(t, []string{"line"}, Serie{}.Class("line"))
}

func TestChartRender(t *testing.T) {
	p := testPlot(0)
	p.Functions[0].Id = "sine"
	p.Functions[0].Attr = map[string]string{AttrClass: "dashed"}

	chart := Chart{
		Width:  480,
		Height: 380,
		Padding: Padding{
			Top:    40,
			Right:  40,
			Bottom: 40,
			Left:   40,
		},
		Left:   NumberAxis{Orientation: OrientLeft, Ticks: 5, Scaler: p.Y, WithLabelTicks: true},
		Bottom: NumberAxis{Orientation: OrientBottom, Ticks: 5, Scaler: p.X, WithLabelTicks: true},
	}
	var buf bytes.Buffer
	require.NoError(t, chart.Render(&buf, p.X, p.Y, p.Draw()...))

	str := buf.String()
	assert.Contains(t, str, "<svg")
	assert.Contains(t, str, "sine")
	assert.Contains(t, str, "dashed")
	assert.Contains(t, str, "line-0")
	assert.NotContains(t, str, "line-1")
	assert.NotContains(t, str, "line-3")
}

func TestRenderVectorArrow(t *testing.T) {
	var (
		x    = NumberScaler(NewInterval(-5, 5), NewInterval(0, 400))
		y    = NumberScaler(NewInterval(-5, 5), NewInterval(300, 0))
		seg  = Segment{NumberPoint(0, 0), NumberPoint(2, 3)}
		line = Serie{Kind: KindLinear, Segments: []Segment{seg}}
		vect = Serie{Kind: KindVector, Segments: []Segment{seg}}
	)
	count := func(s Serie) int {
		var (
			buf   bytes.Buffer
			chart = Chart{Width: 400, Height: 300}
		)
		require.NoError(t, chart.Render(&buf, x, y, s))
		return strings.Count(buf.String(), "<path")
	}
	assert.Equal(t, count(line)+1, count(vect))
}

func TestGetArrowDegenerate(t *testing.T) {
	assert.Nil(t, GetArrow(svg.NewPos(1, 1), svg.NewPos(1, 1), "red"))
	assert.NotNil(t, GetArrow(svg.NewPos(0, 0), svg.NewPos(10, 0), "red"))
}
