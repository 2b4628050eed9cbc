package config

import (
	"strings"
	"testing"

	"github.com/midbel/fplot"
	"github.com/midbel/fplot/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	cfg, err := Load("testdata/sample.toml")
	require.NoError(t, err)

	assert.Equal(t, "sample", cfg.Title)
	assert.Equal(t, 640.0, cfg.Width)
	assert.Equal(t, 40.0, cfg.Padding)
	assert.Equal(t, 200, cfg.Samples)
	assert.Equal(t, []float64{-5, 5}, cfg.X.Domain)
	assert.Equal(t, DefaultTicks, cfg.X.Ticks)
	assert.Equal(t, 11, cfg.Y.Ticks)
	require.Len(t, cfg.Functions, 5)

	specs, err := cfg.Specs()
	require.NoError(t, err)
	require.Len(t, specs, 5)

	kinds := []fplot.Kind{fplot.KindLinear, fplot.KindParametric, fplot.KindPolar, fplot.KindPoints, fplot.KindVector}
	for i, s := range specs {
		assert.Equal(t, kinds[i], s.Kind, s.Id)
	}
	assert.True(t, specs[0].Closed)
	assert.Equal(t, "dashed", specs[0].Attr[fplot.AttrClass])
	assert.True(t, specs[2].SkipBoundsCheck)
	require.NotNil(t, specs[1].Range)
	assert.Equal(t, fplot.NewInterval(0, 3.14), *specs[1].Range)
	assert.Len(t, specs[3].Points, 3)
	require.NotNil(t, specs[4].Offset)
	assert.Equal(t, 2.0, specs[4].Vector.X)
}

func TestLoadDraw(t *testing.T) {
	cfg, err := Load("testdata/sample.toml")
	require.NoError(t, err)

	p, err := cfg.Plot()
	require.NoError(t, err)
	require.NotNil(t, p)

	series := p.Draw()
	require.Len(t, series, 5)
	for _, s := range series {
		assert.NoError(t, s.Err, s.Id)
		assert.NotEmpty(t, s.Segments, s.Id)
	}
	assert.Equal(t, fplot.Segment{fplot.NumberPoint(1, 1), fplot.NumberPoint(3, 4)}, series[4].Segments[0])
}

func TestDecode(t *testing.T) {
	const doc = `{
  "x": {"domain": [1, 1000], "type": "log"},
  "functions": [
    {"fn": "log10(x)"},
    {"id": "bad", "kind": "spiral"},
    {"id": "typo", "fn": "sin(y)"}
  ]
}`
	cfg, err := Decode(strings.NewReader(doc), "json")
	require.NoError(t, err)
	assert.Equal(t, float64(DefaultWidth), cfg.Width)
	assert.Equal(t, "log", cfg.X.Type)

	p, err := cfg.Plot()
	require.NotNil(t, p)
	require.Error(t, err)
	assert.ErrorIs(t, err, fplot.ErrUnsupportedKind)
	assert.Contains(t, err.Error(), "bad")
	assert.Contains(t, err.Error(), "typo")
	require.Len(t, p.Functions, 3)
	assert.Equal(t, fplot.LogScale, p.X.Type())

	series := p.Draw()
	require.Len(t, series, 3)
	assert.ErrorIs(t, series[1].Err, fplot.ErrUnsupportedKind)
	assert.Equal(t, "bad", series[1].Id)
	assert.Equal(t, 1, series[1].Index)

	var se expr.SyntaxError
	assert.ErrorAs(t, series[2].Err, &se)
	assert.Equal(t, 2, series[2].Index)

	require.NoError(t, series[0].Err)
	pts := series[0].Segments[0]
	assert.InDelta(t, 0, pts[0].Y, 1e-9)
	assert.InDelta(t, 3, pts[len(pts)-1].Y, 1e-9)
}

func TestDecodeInvalidAxis(t *testing.T) {
	const doc = `{"y": {"domain": [-1, 10], "type": "log"}}`
	cfg, err := Decode(strings.NewReader(doc), "json")
	require.NoError(t, err)

	_, err = cfg.Plot()
	assert.ErrorIs(t, err, fplot.ErrInvalidDomain)
}

func TestFunctionSpec(t *testing.T) {
	data := []struct {
		Function
		Err error
	}{
		{Function: Function{Kind: "linear"}, Err: fplot.ErrMissingEvaluator},
		{Function: Function{Kind: "parametric", X: "cos(t)"}, Err: fplot.ErrMissingEvaluator},
		{Function: Function{Kind: "polar", R: "1", Range: []float64{1}}, Err: fplot.ErrInvalidRange},
		{Function: Function{Kind: "hyperbolic"}, Err: fplot.ErrUnsupportedKind},
	}
	for _, d := range data {
		_, err := d.Spec()
		assert.ErrorIs(t, err, d.Err, d.Kind)
	}

	_, err := Function{Kind: "points", Points: [][]float64{{1, 2, 3}}}.Spec()
	assert.Error(t, err)
	_, err = Function{Kind: "vector", Vector: []float64{1}}.Spec()
	assert.Error(t, err)
}

func TestIsSupported(t *testing.T) {
	assert.True(t, IsSupported("chart.toml"))
	assert.True(t, IsSupported("chart.yaml"))
	assert.False(t, IsSupported("chart.chart"))
}
