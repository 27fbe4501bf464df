package scatterplot

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/plotter"

	"github.com/vdobler/scatterplot/internal/logging"
	"github.com/vdobler/scatterplot/rng"
)

// ErrInvalidConfig is returned for configurations Generate cannot honour.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config describes the sample set to synthesize.
type Config struct {
	Samples   int    // number of samples m
	Seed      uint64 // seed of the generator
	Generator string // one of rng.Names()

	XMin, XMax         float64 // x is uniform in [XMin, XMax)
	Intercept, Slope   float64 // y = Intercept + Slope*x + noise
	NoiseMin, NoiseMax float64 // noise is uniform in [NoiseMin, NoiseMax)
}

// DefaultConfig is m=100 samples of y = 4 + 3x + U[0,1) with x in
// [0,2), seeded with 42.
var DefaultConfig = Config{
	Samples:   100,
	Seed:      42,
	Generator: rng.MT,
	XMin:      0,
	XMax:      2,
	Intercept: 4,
	Slope:     3,
	NoiseMin:  0,
	NoiseMax:  1,
}

// Validate reports the first problem found in c.
func (c Config) Validate() error {
	if c.Samples <= 0 {
		return errors.Wrapf(ErrInvalidConfig, "need a positive sample count, got %d", c.Samples)
	}
	if !(c.XMin < c.XMax) {
		return errors.Wrapf(ErrInvalidConfig, "empty x range [%g,%g)", c.XMin, c.XMax)
	}
	if !(c.NoiseMin < c.NoiseMax) {
		return errors.Wrapf(ErrInvalidConfig, "empty noise range [%g,%g)", c.NoiseMin, c.NoiseMax)
	}
	if c.Generator != "" && !contains(rng.Names(), c.Generator) {
		return errors.Wrapf(ErrInvalidConfig, "generator %q not in %v", c.Generator, rng.Names())
	}
	return nil
}

// Sample is one (x, y) pair.
type Sample struct {
	X, Y float64
}

// SampleSet is the generated data set. It must not be modified after
// Generate returns it.
type SampleSet struct {
	Config  Config
	Samples []Sample
}

var _ plotter.XYer = (*SampleSet)(nil)

// Generate draws a sample set according to c.
func Generate(c Config) (*SampleSet, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	u, err := rng.New(c.Generator, c.Seed)
	if err != nil {
		return nil, err
	}
	c.Generator = u.Name()

	log := logging.Get(logging.ModuleData)
	log.Debugf("generating %d samples with %s seed=%d", c.Samples, u.Name(), c.Seed)

	set := &SampleSet{
		Config:  c,
		Samples: make([]Sample, c.Samples),
	}
	// All x first, then the noise: keeps the numpy draw order.
	for i := range set.Samples {
		set.Samples[i].X = u.Uniform(c.XMin, c.XMax)
	}
	for i := range set.Samples {
		// The explicit conversion prevents a fused multiply-add, which
		// would round differently than numpy.
		x := set.Samples[i].X
		set.Samples[i].Y = c.Intercept + float64(c.Slope*x) + u.Uniform(c.NoiseMin, c.NoiseMax)
	}

	log.Infof("generated %d samples, first (%.6f, %.6f)",
		set.Len(), set.Samples[0].X, set.Samples[0].Y)
	return set, nil
}

// Len returns the number of samples.
func (s *SampleSet) Len() int { return len(s.Samples) }

// XY returns the i'th sample.
func (s *SampleSet) XY(i int) (float64, float64) {
	return s.Samples[i].X, s.Samples[i].Y
}

// Columns returns copies of the x and y values.
func (s *SampleSet) Columns() (x, y []float64) {
	x = make([]float64, len(s.Samples))
	y = make([]float64, len(s.Samples))
	for i, p := range s.Samples {
		x[i], y[i] = p.X, p.Y
	}
	return x, y
}

// MinMax determines minimum and maximum of the x and y values.
func (s *SampleSet) MinMax() (xmin, xmax, ymin, ymax float64) {
	for i, p := range s.Samples {
		if i == 0 {
			xmin, xmax, ymin, ymax = p.X, p.X, p.Y, p.Y
			continue
		}
		if p.X < xmin {
			xmin = p.X
		} else if p.X > xmax {
			xmax = p.X
		}
		if p.Y < ymin {
			ymin = p.Y
		} else if p.Y > ymax {
			ymax = p.Y
		}
	}
	return xmin, xmax, ymin, ymax
}

// Print dumps s in a human readable table.
func (s *SampleSet) Print(out io.Writer) {
	fmt.Fprintf(out, "Sample set: %d samples, %s seed=%d\n",
		s.Len(), s.Config.Generator, s.Config.Seed)
	fmt.Fprintf(out, "%5s  %-20s %-20s\n", "i", "x", "y")
	for i, p := range s.Samples {
		fmt.Fprintf(out, "%5d  %-20.16g %-20.16g\n", i, p.X, p.Y)
	}
}

func contains(s []string, t string) bool {
	for _, ss := range s {
		if t == ss {
			return true
		}
	}
	return false
}
