package config

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/midbel/fplot"
	"github.com/midbel/fplot/expr"
	"github.com/spf13/viper"
	"seehuhn.de/go/geom/vec"
)

const (
	DefaultWidth   = 800
	DefaultHeight  = 600
	DefaultPadding = 60
	DefaultTicks   = 7
)

type Axis struct {
	Domain []float64 `mapstructure:"domain"`
	Type   string    `mapstructure:"type"`
	Label  string    `mapstructure:"label"`
	Ticks  int       `mapstructure:"ticks"`
}

type Function struct {
	Id              string            `mapstructure:"id"`
	Kind            string            `mapstructure:"kind"`
	Fn              string            `mapstructure:"fn"`
	X               string            `mapstructure:"x"`
	Y               string            `mapstructure:"y"`
	R               string            `mapstructure:"r"`
	Range           []float64         `mapstructure:"range"`
	Points          [][]float64       `mapstructure:"points"`
	Offset          []float64         `mapstructure:"offset"`
	Vector          []float64         `mapstructure:"vector"`
	Attr            map[string]string `mapstructure:"attr"`
	Closed          bool              `mapstructure:"closed"`
	SkipBoundsCheck bool              `mapstructure:"skip-bounds-check"`
	Samples         int               `mapstructure:"samples"`
}

type Config struct {
	Title     string     `mapstructure:"title"`
	Width     float64    `mapstructure:"width"`
	Height    float64    `mapstructure:"height"`
	Padding   float64    `mapstructure:"padding"`
	Samples   int        `mapstructure:"samples"`
	Workers   int        `mapstructure:"workers"`
	Palette   string     `mapstructure:"palette"`
	X         Axis       `mapstructure:"x"`
	Y         Axis       `mapstructure:"y"`
	Functions []Function `mapstructure:"functions"`
}

// Load reads the chart described in file. The format is deduced from the
// extension of the file (toml, yaml, json).
func Load(file string) (Config, error) {
	v := newViper()
	v.SetConfigFile(file)
	if err := v.ReadInConfig(); err != nil {
		return Config{}, err
	}
	return unmarshal(v)
}

// Decode reads a chart description in the given format from r.
func Decode(r io.Reader, format string) (Config, error) {
	v := newViper()
	v.SetConfigType(strings.TrimPrefix(format, "."))
	if err := v.ReadConfig(r); err != nil {
		return Config{}, err
	}
	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("width", DefaultWidth)
	v.SetDefault("height", DefaultHeight)
	v.SetDefault("padding", DefaultPadding)
	v.SetDefault("x.domain", []float64{-10, 10})
	v.SetDefault("y.domain", []float64{-10, 10})
	v.SetDefault("x.ticks", DefaultTicks)
	v.SetDefault("y.ticks", DefaultTicks)
	return v
}

func unmarshal(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func IsSupported(file string) bool {
	ext := strings.TrimPrefix(filepath.Ext(file), ".")
	for _, e := range viper.SupportedExts {
		if e == ext {
			return true
		}
	}
	return false
}

func (c Config) DrawingWidth() float64 {
	return c.Width - 2*c.Padding
}

func (c Config) DrawingHeight() float64 {
	return c.Height - 2*c.Padding
}

// Scalers builds the scalers of both axis, mapping their domain to the
// drawing area of the chart. The y axis goes upward.
func (c Config) Scalers() (fplot.Scaler, fplot.Scaler, error) {
	x, err := c.X.scaler(fplot.NewInterval(0, c.DrawingWidth()))
	if err != nil {
		return nil, nil, fmt.Errorf("x axis: %w", err)
	}
	y, err := c.Y.scaler(fplot.NewInterval(c.DrawingHeight(), 0))
	if err != nil {
		return nil, nil, fmt.Errorf("y axis: %w", err)
	}
	return x, y, nil
}

func (a Axis) scaler(rg fplot.Interval) (fplot.Scaler, error) {
	if len(a.Domain) != 2 {
		return nil, fmt.Errorf("invalid number of values given for domain")
	}
	kind, err := fplot.ParseScaleType(a.Type)
	if err != nil {
		return nil, err
	}
	return fplot.NewScaler(kind, fplot.NewInterval(a.Domain[0], a.Domain[1]), rg)
}

// Specs builds the functions of the chart, one per function of the file and
// in the same order. A function that can not be built is reported in the
// returned error and given with its Err set.
func (c Config) Specs() ([]fplot.FunctionSpec, error) {
	var (
		specs []fplot.FunctionSpec
		errs  []error
	)
	for i, f := range c.Functions {
		s, err := f.Spec()
		if err != nil {
			id := f.Id
			if id == "" {
				id = fmt.Sprintf("function #%d", i)
			}
			errs = append(errs, fmt.Errorf("%s: %w", id, err))
			s.Id, s.Err = f.Id, err
		}
		specs = append(specs, s)
	}
	return specs, errors.Join(errs...)
}

// Plot builds the plot of the chart. Unless the plot itself is nil, the
// returned error only lists the functions that will fail to sample.
func (c Config) Plot() (*fplot.Plot, error) {
	x, y, err := c.Scalers()
	if err != nil {
		return nil, err
	}
	specs, err := c.Specs()
	p := fplot.Plot{
		X:         x,
		Y:         y,
		Samples:   c.Samples,
		Workers:   c.Workers,
		Functions: specs,
	}
	return &p, err
}

func (c Config) Chart(x, y fplot.Scaler) fplot.Chart {
	ch := fplot.Chart{
		Title:  c.Title,
		Width:  c.Width,
		Height: c.Height,
		Padding: fplot.Padding{
			Top:    c.Padding,
			Right:  c.Padding,
			Bottom: c.Padding,
			Left:   c.Padding,
		},
	}
	if p, ok := fplot.ParsePalette(c.Palette); ok {
		ch.Renderer.Palette = p
	}
	ch.Bottom = c.X.axis(x, fplot.OrientBottom)
	ch.Left = c.Y.axis(y, fplot.OrientLeft)
	return ch
}

func (a Axis) axis(s fplot.Scaler, orient fplot.Orientation) fplot.Axis {
	return fplot.NumberAxis{
		Label:          a.Label,
		Orientation:    orient,
		Ticks:          a.Ticks,
		Scaler:         s,
		WithInnerTicks: true,
		WithLabelTicks: true,
		WithOuterTicks: true,
	}
}

func (f Function) Spec() (fplot.FunctionSpec, error) {
	kind, err := fplot.ParseKind(f.Kind)
	if err != nil {
		return fplot.FunctionSpec{}, err
	}
	spec := fplot.FunctionSpec{
		Id:              f.Id,
		Kind:            kind,
		Attr:            f.Attr,
		Closed:          f.Closed,
		SkipBoundsCheck: f.SkipBoundsCheck,
		Samples:         f.Samples,
	}
	if len(f.Range) > 0 {
		if len(f.Range) != 2 {
			return spec, fmt.Errorf("%w: range expects 2 values, got %d", fplot.ErrInvalidRange, len(f.Range))
		}
		rg := fplot.NewInterval(f.Range[0], f.Range[1])
		spec.Range = &rg
	}
	switch kind {
	case fplot.KindLinear:
		spec.Fn, err = compile(fplot.PropFn, f.Fn, fplot.VarX)
	case fplot.KindParametric:
		if spec.X, err = compile(fplot.PropX, f.X, fplot.VarT); err == nil {
			spec.Y, err = compile(fplot.PropY, f.Y, fplot.VarT)
		}
	case fplot.KindPolar:
		spec.R, err = compile(fplot.PropR, f.R, fplot.VarTheta)
	case fplot.KindPoints:
		spec.Points, err = toPoints(f.Points)
	case fplot.KindVector:
		if len(f.Offset) > 0 {
			var off vec.Vec2
			if off, err = toVec(f.Offset); err == nil {
				spec.Offset = &off
			}
		}
		if err == nil {
			spec.Vector, err = toVec(f.Vector)
		}
	}
	if err != nil {
		return spec, err
	}
	return spec, spec.Validate()
}

func compile(prop, str, param string) (fplot.Evaluator, error) {
	if str == "" {
		return nil, fmt.Errorf("%w: %s", fplot.ErrMissingEvaluator, prop)
	}
	e, err := expr.Compile(str, param)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", prop, err)
	}
	return e, nil
}

func toPoints(values [][]float64) ([]fplot.Point, error) {
	list := make([]fplot.Point, 0, len(values))
	for _, v := range values {
		if len(v) != 2 {
			return nil, fmt.Errorf("point expects 2 values, got %d", len(v))
		}
		list = append(list, fplot.NumberPoint(v[0], v[1]))
	}
	return list, nil
}

func toVec(values []float64) (vec.Vec2, error) {
	if len(values) != 2 {
		return vec.Vec2{}, fmt.Errorf("vector expects 2 values, got %d", len(values))
	}
	return vec.Vec2{X: values[0], Y: values[1]}, nil
}
