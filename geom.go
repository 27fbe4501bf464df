package scatterplot

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"
)

// Geom is a geometrical object, a type of visual for the plot.
type Geom interface {
	Name() string          // The name of the geom.
	NeededSlots() []string // The needed slots to construct this geom.

	// Aes returns the merged default (fixed) aesthetics.
	Aes(p *Plot) AesMapping

	// Render interpretes data and params as the specific geom and
	// produces gonum plotters.
	Render(p *Plot, data *SampleSet, params Params, style AesMapping) ([]plot.Plotter, error)
}

// lineStyle turns the line aesthetics of style into a gonum line style.
// ok is false for blank lines.
func lineStyle(style AesMapping) (ls draw.LineStyle, ok bool) {
	lt := String2LineType(style["linetype"])
	if lt == BlankLine {
		return ls, false
	}
	alpha := String2Float(style["alpha"], 0, 1)
	ls.Color = SetAlpha(String2Color(style["color"]), alpha)
	ls.Width = String2PointSize(style["size"])
	ls.Dashes = lt.Dashes()
	return ls, true
}

// -------------------------------------------------------------------------
// Geom Point

type GeomPoint struct {
	Style AesMapping // The individal fixed, aka non-mapped aesthetics
}

var _ Geom = GeomPoint{}

func (g GeomPoint) Name() string          { return "GeomPoint" }
func (g GeomPoint) NeededSlots() []string { return []string{"x", "y"} }

func (g GeomPoint) Aes(p *Plot) AesMapping {
	return MergeStyles(g.Style, p.Theme.PointStyle, DefaultTheme.PointStyle)
}

func (g GeomPoint) Render(p *Plot, data *SampleSet, _ Params, style AesMapping) ([]plot.Plotter, error) {
	shape := String2PointShape(style["shape"]).Glyph()
	if shape == nil {
		return nil, nil // Blank points are invisible anyway.
	}
	scatter, err := plotter.NewScatter(data)
	if err != nil {
		return nil, err
	}
	alpha := String2Float(style["alpha"], 0, 1)
	scatter.GlyphStyle = draw.GlyphStyle{
		Color:  SetAlpha(String2Color(style["color"]), alpha),
		Radius: String2PointSize(style["size"]),
		Shape:  shape,
	}
	return []plot.Plotter{scatter}, nil
}

// -------------------------------------------------------------------------
// Geom ABLine

// GeomABLine draws the straight line y = Intercept + Slope*x across the
// whole x range. The params "intercept" and "slope", if present,
// override the fields.
type GeomABLine struct {
	Intercept, Slope float64
	Style            AesMapping // The individal fixed, aka non-mapped aesthetics
}

var _ Geom = GeomABLine{}

func (g GeomABLine) Name() string          { return "GeomABLine" }
func (g GeomABLine) NeededSlots() []string { return nil }

func (g GeomABLine) Aes(p *Plot) AesMapping {
	return MergeStyles(g.Style, p.Theme.LineStyle, DefaultTheme.LineStyle)
}

func (g GeomABLine) Render(p *Plot, _ *SampleSet, params Params, style AesMapping) ([]plot.Plotter, error) {
	intercept, slope := g.Intercept, g.Slope
	if v, ok := params["intercept"]; ok {
		intercept = v
	}
	if v, ok := params["slope"]; ok {
		slope = v
	}

	ls, ok := lineStyle(style)
	if !ok {
		return nil, nil
	}
	line := plotter.NewFunction(func(x float64) float64 { return intercept + slope*x })
	line.LineStyle = ls
	return []plot.Plotter{line}, nil
}

// -------------------------------------------------------------------------
// Geom Grid

// GeomGrid draws horizontal and vertical grid lines at the major ticks.
type GeomGrid struct {
	Style AesMapping // The individal fixed, aka non-mapped aesthetics
}

var _ Geom = GeomGrid{}

func (g GeomGrid) Name() string          { return "GeomGrid" }
func (g GeomGrid) NeededSlots() []string { return nil }

func (g GeomGrid) Aes(p *Plot) AesMapping {
	return MergeStyles(g.Style, p.Theme.GridStyle, DefaultTheme.GridStyle)
}

func (g GeomGrid) Render(p *Plot, _ *SampleSet, _ Params, style AesMapping) ([]plot.Plotter, error) {
	ls, ok := lineStyle(style)
	if !ok {
		return nil, nil
	}
	grid := plotter.NewGrid()
	grid.Vertical = ls
	grid.Horizontal = ls
	return []plot.Plotter{grid}, nil
}
