package fplot

import (
	"fmt"
	"math"

	"github.com/aclements/go-moremath/scale"
)

type ScaleType int

const (
	LinearScale ScaleType = iota
	LogScale
)

func (s ScaleType) String() string {
	switch s {
	case LinearScale:
		return "linear"
	case LogScale:
		return "log"
	default:
		return "unknown"
	}
}

func ParseScaleType(str string) (ScaleType, error) {
	switch str {
	case "linear", "":
		return LinearScale, nil
	case "log":
		return LogScale, nil
	default:
		return 0, fmt.Errorf("%w: %s", ErrUnsupportedScale, str)
	}
}

type Interval struct {
	F float64
	T float64
}

func NewInterval(f, t float64) Interval {
	return Interval{
		F: f,
		T: t,
	}
}

func (i Interval) Len() float64 {
	return i.T - i.F
}

func (i Interval) Max() float64 {
	return math.Max(i.F, i.T)
}

func (i Interval) Min() float64 {
	return math.Min(i.F, i.T)
}

func (i Interval) IsFinite() bool {
	return isFinite(i.F) && isFinite(i.T)
}

// Scaler maps values of its domain to its range and back. Scalers are
// immutable: Zoom and Pan give a new Scaler.
type Scaler interface {
	Scale(float64) float64
	Invert(float64) float64
	Domain() Interval
	Range() Interval
	Type() ScaleType

	replace(Interval) (Scaler, error)
}

type numberScaler struct {
	rg  Interval
	dom Interval
	lin scale.Linear
}

func NumberScaler(dom, rg Interval) Scaler {
	return numberScaler{
		rg:  rg,
		dom: dom,
		lin: scale.Linear{
			Min: dom.F,
			Max: dom.T,
		},
	}
}

func (n numberScaler) Scale(v float64) float64 {
	return n.rg.F + n.lin.Map(v)*n.rg.Len()
}

func (n numberScaler) Invert(v float64) float64 {
	return n.lin.Unmap((v - n.rg.F) / n.rg.Len())
}

func (n numberScaler) Domain() Interval {
	return n.dom
}

func (n numberScaler) Range() Interval {
	return n.rg
}

func (n numberScaler) Type() ScaleType {
	return LinearScale
}

func (n numberScaler) replace(dom Interval) (Scaler, error) {
	return NumberScaler(dom, n.rg), nil
}

const logBase = 10

type logScaler struct {
	rg      Interval
	dom     Interval
	log     scale.Log
	reverse bool
}

func LogScaler(dom, rg Interval) (Scaler, error) {
	if dom.F <= 0 || dom.T <= 0 {
		return nil, DomainError{
			Min: dom.F,
			Max: dom.T,
		}
	}
	ls, err := scale.NewLog(dom.Min(), dom.Max(), logBase)
	if err != nil {
		return nil, err
	}
	s := logScaler{
		rg:      rg,
		dom:     dom,
		log:     ls,
		reverse: dom.F > dom.T,
	}
	return s, nil
}

func (s logScaler) Scale(v float64) float64 {
	t := s.log.Map(v)
	if s.reverse {
		t = 1 - t
	}
	return s.rg.F + t*s.rg.Len()
}

func (s logScaler) Invert(v float64) float64 {
	t := (v - s.rg.F) / s.rg.Len()
	if s.reverse {
		t = 1 - t
	}
	return s.log.Unmap(t)
}

func (s logScaler) Domain() Interval {
	return s.dom
}

func (s logScaler) Range() Interval {
	return s.rg
}

func (s logScaler) Type() ScaleType {
	return LogScale
}

func (s logScaler) replace(dom Interval) (Scaler, error) {
	return LogScaler(dom, s.rg)
}

// NewScaler builds a scaler of the given type.
func NewScaler(kind ScaleType, dom, rg Interval) (Scaler, error) {
	switch kind {
	case LinearScale:
		return NumberScaler(dom, rg), nil
	case LogScale:
		return LogScaler(dom, rg)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScale, kind)
	}
}

// Zoom scales the visible domain by factor around center, expressed in
// domain units. A factor lower than 1 zooms in.
func Zoom(s Scaler, factor, center float64) (Scaler, error) {
	if factor <= 0 || !isFinite(factor) {
		return nil, fmt.Errorf("%f: invalid zoom factor", factor)
	}
	var (
		dom = s.Domain()
		fst = center - (center-dom.F)*factor
		lst = center + (dom.T-center)*factor
	)
	if s.Type() == LogScale {
		var (
			lc = math.Log10(center)
			lf = lc - (lc-math.Log10(dom.F))*factor
			lt = lc + (math.Log10(dom.T)-lc)*factor
		)
		fst, lst = math.Pow(logBase, lf), math.Pow(logBase, lt)
	}
	return s.replace(NewInterval(fst, lst))
}

// Pan shifts the visible domain by delta, expressed in range units (pixels).
func Pan(s Scaler, delta float64) (Scaler, error) {
	var (
		rg  = s.Range()
		fst = s.Invert(rg.F - delta)
		lst = s.Invert(rg.T - delta)
	)
	return s.replace(NewInterval(fst, lst))
}
