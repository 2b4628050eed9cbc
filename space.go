package fplot

import (
	"fmt"
	"math"
)

// Space returns n evenly spaced values between the bounds of rg, both
// included. With a LogScale, values are evenly spaced in log10 space.
func Space(kind ScaleType, rg Interval, n int) ([]float64, error) {
	switch kind {
	case LinearScale:
		return Linspace(rg.F, rg.T, n), nil
	case LogScale:
		return Logspace(rg.F, rg.T, n)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedScale, kind)
	}
}

func SpaceAxis(axis Scaler, rg Interval, n int) ([]float64, error) {
	return Space(axis.Type(), rg, n)
}

func Linspace(fst, lst float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	all := make([]float64, n)
	all[0] = fst
	if n == 1 {
		return all
	}
	step := (lst - fst) / float64(n-1)
	for i := 1; i < n-1; i++ {
		all[i] = fst + float64(i)*step
	}
	all[n-1] = lst
	return all
}

func Logspace(fst, lst float64, n int) ([]float64, error) {
	if fst <= 0 || lst <= 0 || math.IsNaN(fst) || math.IsNaN(lst) {
		return nil, DomainError{
			Min: fst,
			Max: lst,
		}
	}
	all := Linspace(math.Log10(fst), math.Log10(lst), n)
	for i := range all {
		all[i] = math.Pow(logBase, all[i])
	}
	if n > 0 {
		all[0] = fst
	}
	if n > 1 {
		all[n-1] = lst
	}
	return all, nil
}
