package fplot

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDomain    = errors.New("invalid domain")
	ErrUnsupportedKind  = errors.New("unsupported kind")
	ErrMissingEvaluator = errors.New("missing evaluator")
	ErrInvalidRange     = errors.New("invalid range")
	ErrUnsupportedScale = errors.New("unsupported scale type")
)

// DomainError reports a logarithmic mapping requested over a non positive
// interval.
type DomainError struct {
	Min float64
	Max float64
}

func (e DomainError) Error() string {
	return fmt.Sprintf("[%g, %g]: log space requires strictly positive bounds", e.Min, e.Max)
}

func (e DomainError) Is(err error) bool {
	return err == ErrInvalidDomain
}

type KindError struct {
	Kind string
}

func (e KindError) Error() string {
	return fmt.Sprintf("%s: kind not supported", e.Kind)
}

func (e KindError) Is(err error) bool {
	return err == ErrUnsupportedKind
}
