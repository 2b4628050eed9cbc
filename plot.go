package fplot

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Plot is a viewport and the functions drawn in it.
type Plot struct {
	X         Scaler
	Y         Scaler
	Samples   int
	Functions []FunctionSpec
	// Workers is the number of series sampled at the same time. Zero or one
	// samples them one after the other.
	Workers int

	Logger *logrus.Logger
}

// Draw samples every function of the plot. A function that can not be
// sampled gives a Serie with Err set; it does not prevent the others from
// being drawn.
func (p Plot) Draw() []Serie {
	series := make([]Serie, len(p.Functions))
	if p.Workers <= 1 {
		for i := range p.Functions {
			series[i] = p.drawSerie(i)
		}
		return series
	}
	var grp errgroup.Group
	grp.SetLimit(p.Workers)
	for i := range p.Functions {
		grp.Go(func() error {
			series[i] = p.drawSerie(i)
			return nil
		})
	}
	grp.Wait()
	return series
}

func (p Plot) drawSerie(index int) Serie {
	var (
		spec   = p.Functions[index]
		serie  = makeSerie(index, spec)
		params = SamplerParams{
			Spec:    spec,
			X:       p.X,
			Y:       p.Y,
			Samples: p.Samples,
		}
		log = p.logger().WithFields(logrus.Fields{
			"serie": serieName(index, spec),
			"kind":  spec.Kind,
		})
	)
	segments, err := Sample(params)
	if err != nil {
		serie.Err = fmt.Errorf("%s: %w", serieName(index, spec), err)
		log.WithError(err).Warn("serie not sampled")
		return serie
	}
	serie.Segments = segments
	log.WithFields(logrus.Fields{
		"segments": len(segments),
		"points":   serie.Points(),
	}).Debug("serie sampled")
	return serie
}

// Zoom gives a new plot whose domains are scaled by factor around center.
func (p Plot) Zoom(factor float64, center Point) (Plot, error) {
	x, err := Zoom(p.X, factor, center.X)
	if err != nil {
		return p, err
	}
	y, err := Zoom(p.Y, factor, center.Y)
	if err != nil {
		return p, err
	}
	p.X, p.Y = x, y
	return p, nil
}

// Pan gives a new plot whose domains are shifted by dx and dy pixels.
func (p Plot) Pan(dx, dy float64) (Plot, error) {
	x, err := Pan(p.X, dx)
	if err != nil {
		return p, err
	}
	y, err := Pan(p.Y, dy)
	if err != nil {
		return p, err
	}
	p.X, p.Y = x, y
	return p, nil
}

func (p Plot) logger() *logrus.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return logrus.StandardLogger()
}

func serieName(index int, spec FunctionSpec) string {
	if spec.Id != "" {
		return spec.Id
	}
	return fmt.Sprintf("serie-%d", index)
}
