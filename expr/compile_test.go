package expr

import (
	"math"
	"testing"

	"github.com/midbel/fplot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile(t *testing.T) {
	data := []struct {
		Input string
		Scope fplot.Scope
		Want  float64
	}{
		{Input: "x^2", Scope: fplot.Scope{"x": 3}, Want: 9},
		{Input: "-x^2", Scope: fplot.Scope{"x": 3}, Want: -9},
		{Input: "2*x + 1", Scope: fplot.Scope{"x": 2}, Want: 5},
		{Input: "sin(pi/2)", Want: 1},
		{Input: "max(x, 2) - min(x, 2)", Scope: fplot.Scope{"x": 5}, Want: 3},
		{Input: "sqrt(16) + abs(-2)", Want: 6},
		{Input: "7 % 4", Want: 3},
		{Input: "log10(1000)", Want: 3},
		{Input: "exp(0) * e / e", Want: 1},
		{Input: "sign(-3)", Want: -1},
		{Input: "pow(2, 10)", Want: 1024},
	}
	for _, d := range data {
		e, err := Compile(d.Input, "x")
		require.NoError(t, err, d.Input)
		assert.InDelta(t, d.Want, e.Eval(d.Scope), 1e-9, d.Input)
	}
}

func TestCompileUndefined(t *testing.T) {
	e, err := Compile("1/x", "x")
	require.NoError(t, err)
	assert.True(t, math.IsInf(e.Eval(fplot.Scope{"x": 0}), 1))

	e, err = Compile("sqrt(x)", "x")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(e.Eval(fplot.Scope{"x": -1})))
	assert.True(t, math.IsNaN(e.Eval(fplot.Scope{})))
}

func TestCompileParams(t *testing.T) {
	e, err := Compile("cos(t) + theta", "t", "theta")
	require.NoError(t, err)
	assert.InDelta(t, 3, e.Eval(fplot.Scope{"t": 0, "theta": 2}), 1e-9)

	_, err = Compile("x + 1", "t")
	assert.Error(t, err)
}

func TestCompileError(t *testing.T) {
	for _, str := range []string{"foo(x)", "sin(x, 1)", "pow(x)", "y", "1 +"} {
		_, err := Compile(str, "x")
		require.Error(t, err, str)

		var se SyntaxError
		assert.ErrorAs(t, err, &se, str)
	}
}

func TestMustCompile(t *testing.T) {
	assert.NotPanics(t, func() {
		MustCompile("x", "x")
	})
	assert.Panics(t, func() {
		MustCompile("x +", "x")
	})
}
