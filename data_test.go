package scatterplot

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vdobler/scatterplot/rng"
)

func TestGenerateDefault(t *testing.T) {
	set, err := Generate(DefaultConfig)
	require.NoError(t, err)

	if set.Len() != 100 {
		t.Fatalf("Got %d samples, want 100", set.Len())
	}
	for i, p := range set.Samples {
		if p.X < 0 || p.X >= 2 {
			t.Errorf("Sample %d: x = %v not in [0,2)", i, p.X)
		}
		if noise := p.Y - (4 + 3*p.X); noise < 0 || noise >= 1 {
			t.Errorf("Sample %d: noise = %v not in [0,1)", i, noise)
		}
	}
}

func TestGenerateMatchesNumpy(t *testing.T) {
	set, err := Generate(DefaultConfig)
	require.NoError(t, err)

	// 2 * numpy.random.rand() after numpy.random.seed(42)
	assert.Equal(t, 0.749080237694725, set.Samples[0].X)
	assert.InDelta(t, 2*0.9507143064099162, set.Samples[1].X, 1e-15)
	assert.InDelta(t, 2*0.7319939418114051, set.Samples[2].X, 1e-15)

	// The noise stream continues after the 100 x draws.
	mt := rng.NewMT19937(42)
	for i := 0; i < 100; i++ {
		mt.Float64()
	}
	noise0 := mt.Float64()
	assert.Equal(t, 4+float64(3*set.Samples[0].X)+noise0, set.Samples[0].Y)
}

func TestGenerateReproducible(t *testing.T) {
	for _, gen := range rng.Names() {
		c := DefaultConfig
		c.Generator = gen
		a, err := Generate(c)
		require.NoError(t, err)
		b, err := Generate(c)
		require.NoError(t, err)
		for i := range a.Samples {
			if math.Float64bits(a.Samples[i].X) != math.Float64bits(b.Samples[i].X) ||
				math.Float64bits(a.Samples[i].Y) != math.Float64bits(b.Samples[i].Y) {
				t.Fatalf("%s: sample %d differs: %v vs %v", gen, i, a.Samples[i], b.Samples[i])
			}
		}
	}
}

func TestGenerateOtherSeedDiffers(t *testing.T) {
	c := DefaultConfig
	c.Seed = 43
	set, err := Generate(c)
	require.NoError(t, err)
	assert.NotEqual(t, 0.749080237694725, set.Samples[0].X)
}

func TestGenerateCustomLine(t *testing.T) {
	c := Config{
		Samples:   500,
		Seed:      7,
		Generator: rng.PCG,
		XMin:      -5, XMax: 5,
		Intercept: -1, Slope: 0.5,
		NoiseMin: -0.1, NoiseMax: 0.1,
	}
	set, err := Generate(c)
	require.NoError(t, err)
	assert.Equal(t, 500, set.Len())
	assert.Equal(t, rng.PCG, set.Config.Generator)
	for i, p := range set.Samples {
		require.True(t, p.X >= -5 && p.X < 5, "sample %d x=%v", i, p.X)
		n := p.Y - (-1 + 0.5*p.X)
		require.True(t, n >= -0.1-1e-12 && n < 0.1+1e-12, "sample %d noise=%v", i, n)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"zero samples", func(c *Config) { c.Samples = 0 }},
		{"negative samples", func(c *Config) { c.Samples = -3 }},
		{"empty x range", func(c *Config) { c.XMax = c.XMin }},
		{"inverted noise", func(c *Config) { c.NoiseMin, c.NoiseMax = 1, 0 }},
		{"unknown generator", func(c *Config) { c.Generator = "xorshift" }},
	}
	for _, tc := range tests {
		c := DefaultConfig
		tc.modify(&c)
		_, err := Generate(c)
		if assert.Error(t, err, tc.name) {
			assert.True(t, errors.Is(err, ErrInvalidConfig), tc.name)
		}
	}
	assert.NoError(t, DefaultConfig.Validate())
}

func TestSampleSetAccessors(t *testing.T) {
	set := &SampleSet{Samples: []Sample{{1, 5}, {-2, 7}, {3, 4}}}

	x, y := set.XY(1)
	assert.Equal(t, -2.0, x)
	assert.Equal(t, 7.0, y)

	xs, ys := set.Columns()
	assert.Equal(t, []float64{1, -2, 3}, xs)
	assert.Equal(t, []float64{5, 7, 4}, ys)
	xs[0] = 99
	assert.Equal(t, 1.0, set.Samples[0].X, "Columns must copy")

	xmin, xmax, ymin, ymax := set.MinMax()
	assert.Equal(t, []float64{-2, 3, 4, 7}, []float64{xmin, xmax, ymin, ymax})
}

func TestPrint(t *testing.T) {
	set, _ := Generate(DefaultConfig)
	var buf bytes.Buffer
	set.Print(&buf)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 102)
	assert.Contains(t, lines[0], "100 samples")
	assert.Contains(t, lines[2], "0.74908023769472")
}
