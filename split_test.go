package fplot

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitEdges(t *testing.T) {
	var (
		spec = linearFunc(func(x float64) float64 { return x })
		y    = NumberScaler(NewInterval(-10, 10), NewInterval(300, 0))
	)
	data := []struct {
		Name string
		Data []Point
		Want []Segment
	}{
		{Name: "nil", Data: nil, Want: nil},
		{Name: "empty", Data: []Point{}, Want: nil},
		{Name: "single", Data: []Point{NumberPoint(1, 1)}, Want: []Segment{{NumberPoint(1, 1)}}},
		{
			Name: "continuous",
			Data: []Point{NumberPoint(0, 0), NumberPoint(1, 1), NumberPoint(2, 2)},
			Want: []Segment{{NumberPoint(0, 0), NumberPoint(1, 1), NumberPoint(2, 2)}},
		},
	}
	for _, d := range data {
		assert.Equal(t, d.Want, Split(spec, d.Data, y), d.Name)
	}
}

func TestSplitClampsCut(t *testing.T) {
	var (
		spec = linearFunc(func(x float64) float64 { return 1 / x })
		y    = NumberScaler(NewInterval(-10, 10), NewInterval(300, 0))
		data []Point
	)
	for _, x := range Linspace(-1, 1, 100) {
		data = append(data, NumberPoint(x, 1/x))
	}
	segs := Split(spec, data, y)
	require.GreaterOrEqual(t, len(segs), 2)

	left, right := segs[0], segs[1]
	require.Len(t, left, 51)
	assert.Equal(t, -10.0, left[50].Y)
	assert.Equal(t, 10.0, right[0].Y)
	assert.InDelta(t, -99, left[49].Y, 1e-6)
	assert.InDelta(t, 99, right[1].Y, 1e-6)
}

func TestSampleSingle(t *testing.T) {
	spec := linearFunc(func(x float64) float64 { return x })
	segs, err := Sample(testParams(spec, 1))
	require.NoError(t, err)
	assert.Equal(t, []Segment{{NumberPoint(-1, -1)}}, segs)
}

func TestSampleLogRange(t *testing.T) {
	var (
		spec = linearFunc(math.Log10)
		rg   = NewInterval(-1, 10)
	)
	spec.Range = &rg

	params := testParams(spec, 10)
	x, err := LogScaler(NewInterval(1, 10), NewInterval(0, 400))
	require.NoError(t, err)
	params.X = x

	_, err = Sample(params)
	assert.ErrorIs(t, err, ErrInvalidDomain)
}
