// Package rng provides the seeded uniform generators used to synthesize
// sample sets.
//
// Two generators are available:
//     mt19937  Mersenne Twister, numpy compatible (default)
//     pcg      golang.org/x/exp/rand PCG source sampled via gonum's distuv
// Both are deterministic per seed, but only mt19937 reproduces the
// values of numpy.random.seed / numpy.random.rand.
package rng

import (
	"math"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generator names.
const (
	MT  = "mt19937"
	PCG = "pcg"
)

// ErrUnknownGenerator is returned by New for an unsupported name.
var ErrUnknownGenerator = errors.New("rng: unknown generator")

// Uniform draws values uniformly from the half-open interval [lo, hi).
type Uniform interface {
	Name() string
	Uniform(lo, hi float64) float64
}

var _ rand.Source = (*MT19937)(nil)

// New returns the generator called name seeded with seed.
func New(name string, seed uint64) (Uniform, error) {
	switch name {
	case MT, "":
		return mtUniform{NewMT19937(uint32(seed))}, nil
	case PCG:
		return &pcgUniform{src: rand.NewSource(seed)}, nil
	}
	return nil, errors.Wrapf(ErrUnknownGenerator, "%q (known: %v)", name, Names())
}

// Names lists the supported generator names in sorted order.
func Names() []string {
	names := []string{MT, PCG}
	sort.Strings(names)
	return names
}

// -------------------------------------------------------------------------
// Mersenne Twister

type mtUniform struct {
	mt *MT19937
}

func (u mtUniform) Name() string { return MT }

// Uniform scales a single Float64 draw, like numpy's (hi-lo)*rand()+lo.
func (u mtUniform) Uniform(lo, hi float64) float64 {
	return scale(lo, hi, u.mt.Float64())
}

// scale maps f in [0, 1) onto [lo, hi).
func scale(lo, hi, f float64) float64 {
	return below(lo+float64((hi-lo)*f), lo, hi)
}

// below keeps x under hi: lo + f*(hi-lo) rounds up to hi for some
// ranges when f is within an ulp of 1.
func below(x, lo, hi float64) float64 {
	if x >= hi {
		return math.Nextafter(hi, lo)
	}
	return x
}

// -------------------------------------------------------------------------
// PCG

type pcgUniform struct {
	src rand.Source
}

func (u *pcgUniform) Name() string { return PCG }

func (u *pcgUniform) Uniform(lo, hi float64) float64 {
	d := distuv.Uniform{Min: lo, Max: hi, Src: u.src}
	return below(d.Rand(), lo, hi)
}
