package scatterplot

import (
	"bytes"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

func defaultSet(t *testing.T) *SampleSet {
	t.Helper()
	set, err := Generate(DefaultConfig)
	require.NoError(t, err)
	return set
}

func TestMergeStyles(t *testing.T) {
	m := MergeStyles(
		AesMapping{"color": "red", "size": ""},
		AesMapping{"color": "blue", "size": "4"},
		DefaultTheme.PointStyle,
	)
	assert.Equal(t, "red", m["color"])
	assert.Equal(t, "4", m["size"])
	assert.Equal(t, "solid-circle", m["shape"])

	c := m.Copy()
	c["color"] = "green"
	assert.Equal(t, "red", m["color"])
}

func TestBuildDefaultScatter(t *testing.T) {
	p := NewScatterPlot(defaultSet(t), DefaultOptions)
	require.Len(t, p.Layers, 2)

	gp, err := p.Build()
	require.NoError(t, err)
	// Axes cover the data: x in [0,2), y in [4,11).
	assert.True(t, gp.X.Min >= 0 && gp.X.Max < 2, "x axis [%v,%v]", gp.X.Min, gp.X.Max)
	assert.True(t, gp.Y.Min >= 4 && gp.Y.Max < 11, "y axis [%v,%v]", gp.Y.Min, gp.Y.Max)
}

func TestIndividualLayers(t *testing.T) {
	set := defaultSet(t)
	p := &Plot{
		Data: set,
		Layers: []*Layer{
			{
				Name: "Raw Data",
				Geom: GeomPoint{
					Style: AesMapping{
						"color": "red",
						"shape": "square",
					},
				},
			},
			{
				Name: "Linear regression",
				Stat: StatLinReg{},
				Geom: GeomABLine{
					Style: AesMapping{
						"color":    "green",
						"linetype": "dashed",
					},
				},
			},
			{
				Name: "Grid",
				Geom: GeomGrid{},
			},
		},
	}

	style := p.Layers[0].Geom.Aes(p)
	plotters, err := p.Layers[0].Geom.Render(p, set, nil, style)
	require.NoError(t, err)
	require.Len(t, plotters, 1)
	scatter, ok := plotters[0].(*plotter.Scatter)
	require.True(t, ok)
	assert.Equal(t, 100, scatter.Len())
	assert.Equal(t, color.NRGBA{0xff, 0, 0, 0xff}, scatter.GlyphStyle.Color)

	params, err := p.Layers[1].Stat.Apply(set)
	require.NoError(t, err)
	plotters, err = p.Layers[1].Geom.Render(p, set, params, p.Layers[1].Geom.Aes(p))
	require.NoError(t, err)
	line, ok := plotters[0].(*plotter.Function)
	require.True(t, ok)
	assert.InDelta(t, params["intercept"]+params["slope"], line.F(1), 1e-12)
	assert.Len(t, line.Dashes, 2)

	plotters, err = p.Layers[2].Geom.Render(p, set, nil, p.Layers[2].Geom.Aes(p))
	require.NoError(t, err)
	grid, ok := plotters[0].(*plotter.Grid)
	require.True(t, ok)
	assert.Equal(t, vg.Points(0.5), grid.Vertical.Width)

	_, err = p.Build()
	assert.NoError(t, err)
}

func TestABLineFixedParams(t *testing.T) {
	p := &Plot{}
	plotters, err := GeomABLine{Intercept: 4, Slope: 3}.Render(p, nil, nil, DefaultTheme.LineStyle)
	require.NoError(t, err)
	line := plotters[0].(*plotter.Function)
	assert.Equal(t, 10.0, line.F(2))
}

func TestBlankStylesRenderNothing(t *testing.T) {
	p := &Plot{}
	set := defaultSet(t)

	plotters, err := GeomPoint{}.Render(p, set, nil, AesMapping{"shape": "blank"})
	assert.NoError(t, err)
	assert.Empty(t, plotters)

	plotters, err = GeomGrid{}.Render(p, set, nil, AesMapping{"linetype": "blank"})
	assert.NoError(t, err)
	assert.Empty(t, plotters)
}

type constStat struct{ params Params }

func (constStat) Name() string                       { return "constStat" }
func (s constStat) Apply(*SampleSet) (Params, error) { return s.params, nil }

type needyGeom struct{ GeomABLine }

func (needyGeom) NeededSlots() []string { return []string{"x", "width"} }

func TestBuildSkipsLayersMissingSlots(t *testing.T) {
	p := &Plot{
		Data: defaultSet(t),
		Layers: []*Layer{
			{Name: "nothing"},
			{Name: "needy", Geom: needyGeom{}},
			{Name: "fed", Stat: constStat{Params{"width": 1}}, Geom: needyGeom{}},
		},
	}
	gp, err := p.Build()
	require.NoError(t, err)
	assert.NotNil(t, gp)
}

func TestBuildErrors(t *testing.T) {
	_, err := (&Plot{}).Build()
	assert.Equal(t, ErrNoData, err)

	p := NewScatterPlot(&SampleSet{Samples: []Sample{{1, 1}}}, Options{Fit: true})
	_, err = p.Build()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "StatLinReg")
}

func TestNewScatterPlotOptions(t *testing.T) {
	set := defaultSet(t)
	p := NewScatterPlot(set, Options{Grid: true, Fit: true, Truth: true, Title: "Data"})
	names := []string{}
	for _, l := range p.Layers {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"Grid", "Samples", "Expected", "Linear fit"}, names)
	assert.True(t, p.Layers[1].Legend)

	truth := p.Layers[2].Geom.(GeomABLine)
	assert.Equal(t, 4.5, truth.Intercept)
	assert.Equal(t, 3.0, truth.Slope)

	gp, err := p.Build()
	require.NoError(t, err)
	assert.Equal(t, "Data", gp.Title.Text)
}

func TestFormatOf(t *testing.T) {
	for _, path := range []string{"a.png", "b.SVG", "dir/c.pdf", "d.jpeg", "e.tiff"} {
		_, err := FormatOf(path)
		assert.NoError(t, err, path)
	}
	for _, path := range []string{"a.gif", "noext", "b.png.bak"} {
		_, err := FormatOf(path)
		assert.Error(t, err, path)
	}
}

func TestSaveAndWriteTo(t *testing.T) {
	p := NewScatterPlot(defaultSet(t), Options{Grid: true, Fit: true})
	dir := t.TempDir()

	for _, name := range []string{"scatter.png", "scatter.svg", "scatter.pdf"} {
		path := filepath.Join(dir, name)
		require.NoError(t, p.Save(path, 4*vg.Inch, 3*vg.Inch), name)
		fi, err := os.Stat(path)
		require.NoError(t, err)
		assert.True(t, fi.Size() > 0, name)
	}
	assert.Error(t, p.Save(filepath.Join(dir, "scatter.gif"), 4*vg.Inch, 3*vg.Inch))

	var buf bytes.Buffer
	require.NoError(t, p.WriteTo(&buf, "png", 4*vg.Inch, 3*vg.Inch))
	assert.Equal(t, "\x89PNG", buf.String()[:4])

	buf.Reset()
	assert.Error(t, p.WriteTo(&buf, "bmp", 4*vg.Inch, 3*vg.Inch))
}
