package fplot

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

const (
	DefaultSamples = 1000
	// safetyMargin sizes the band samples are clamped into, as a multiple
	// of the visible extent of the axis.
	safetyMargin = 1e5
)

var (
	parametricRange = NewInterval(0, 2*math.Pi)
	polarRange      = NewInterval(-math.Pi, math.Pi)
)

// SamplerParams bundles what a sampler needs for one draw. It is built for
// each draw and never kept.
type SamplerParams struct {
	Spec    FunctionSpec
	X       Scaler
	Y       Scaler
	Samples int
	Range   *Interval
}

func (p SamplerParams) samples() int {
	switch {
	case p.Spec.Samples > 0:
		return p.Spec.Samples
	case p.Samples > 0:
		return p.Samples
	default:
		return DefaultSamples
	}
}

func (p SamplerParams) rangeOr(def Interval) Interval {
	switch {
	case p.Range != nil:
		return *p.Range
	case p.Spec.Range != nil:
		return *p.Spec.Range
	default:
		return def
	}
}

// Sample turns the function of params into segments. Specs that can not be
// sampled are rejected before any evaluation.
func Sample(params SamplerParams) ([]Segment, error) {
	if err := params.Spec.Validate(); err != nil {
		return nil, err
	}
	switch params.Spec.Kind {
	case KindLinear:
		return sampleLinear(params)
	case KindParametric:
		return sampleParametric(params)
	case KindPolar:
		return samplePolar(params)
	case KindPoints:
		return samplePoints(params)
	case KindVector:
		return sampleVector(params)
	default:
		return nil, KindError{Kind: params.Spec.Kind.String()}
	}
}

func sampleLinear(params SamplerParams) ([]Segment, error) {
	xs, err := SpaceAxis(params.X, params.rangeOr(params.X.Domain()), params.samples())
	if err != nil {
		return nil, err
	}
	var (
		band = safetyBand(params.Y)
		data = make([]Point, 0, len(xs))
	)
	for _, x := range xs {
		pt := NumberPoint(x, params.Spec.Evaluate(PropFn, Scope{VarX: x}))
		if !pt.IsFinite() {
			continue
		}
		if !params.Spec.SkipBoundsCheck {
			pt = pt.clampY(band.F, band.T)
		}
		data = append(data, pt)
	}
	return Split(params.Spec, data, params.Y), nil
}

func sampleParametric(params SamplerParams) ([]Segment, error) {
	ts, err := Space(LinearScale, params.rangeOr(parametricRange), params.samples())
	if err != nil {
		return nil, err
	}
	return sampleCurve(params, ts, func(t float64) Point {
		scope := Scope{VarT: t}
		return NumberPoint(params.Spec.Evaluate(PropX, scope), params.Spec.Evaluate(PropY, scope))
	}), nil
}

func samplePolar(params SamplerParams) ([]Segment, error) {
	thetas, err := Space(LinearScale, params.rangeOr(polarRange), params.samples())
	if err != nil {
		return nil, err
	}
	return sampleCurve(params, thetas, func(theta float64) Point {
		r := params.Spec.Evaluate(PropR, Scope{VarTheta: theta})
		return NumberPoint(r*math.Cos(theta), r*math.Sin(theta))
	}), nil
}

func sampleCurve(params SamplerParams, values []float64, get func(float64) Point) []Segment {
	var (
		xband = safetyBand(params.X)
		yband = safetyBand(params.Y)
		seg   = make(Segment, 0, len(values))
	)
	for _, v := range values {
		pt := get(v)
		if !pt.IsFinite() {
			continue
		}
		if !params.Spec.SkipBoundsCheck {
			pt.X = clamp(pt.X, xband.F, xband.T)
			pt.Y = clamp(pt.Y, yband.F, yband.T)
		}
		seg = append(seg, pt)
	}
	return []Segment{seg}
}

func samplePoints(params SamplerParams) ([]Segment, error) {
	seg := make(Segment, 0, len(params.Spec.Points))
	for _, pt := range params.Spec.Points {
		if pt.IsFinite() {
			seg = append(seg, pt)
		}
	}
	return []Segment{seg}, nil
}

func sampleVector(params SamplerParams) ([]Segment, error) {
	var offset vec.Vec2
	if params.Spec.Offset != nil {
		offset = *params.Spec.Offset
	}
	seg := Segment{
		VecPoint(offset),
		VecPoint(offset.Add(params.Spec.Vector)),
	}
	return []Segment{seg}, nil
}

// safetyBand gives the interval samples are clamped into: the domain of s
// widened on each side by safetyMargin times its extent.
func safetyBand(s Scaler) Interval {
	var (
		dom    = s.Domain()
		margin = safetyMargin * (dom.Max() - dom.Min())
	)
	return NewInterval(dom.Min()-margin, dom.Max()+margin)
}
