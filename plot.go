package scatterplot

import (
	"io"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/scatterplot/internal/logging"
)

// Plot describes what to draw. Build turns it into a gonum plot.
type Plot struct {
	// Data is the data to draw.
	Data *SampleSet

	// Layers contains all the layers displayed in the plot, drawn
	// in order.
	Layers []*Layer

	Theme Theme

	Title, XLabel, YLabel string
}

// Layer represents one layer of the plot.
type Layer struct {
	Name string

	// Stat is the statistical transform used in this layer. A nil Stat
	// is the identity.
	Stat Stat

	// Geom is the geom to use for this layer.
	Geom Geom

	// Legend adds Name to the plot legend.
	Legend bool
}

// Warnf logs a non-fatal problem with the plot.
func (p *Plot) Warnf(f string, args ...interface{}) {
	logging.Get(logging.ModulePlot).Warnf(f, args...)
}

// ErrNoData is returned when building a plot without data.
var ErrNoData = errors.New("plot has no data")

// Build renders all layers into a new gonum plot. Layers whose geom
// lacks needed slots are skipped with a warning; a failing stat aborts.
func (p *Plot) Build() (*plot.Plot, error) {
	if p.Data == nil || p.Data.Len() == 0 {
		return nil, ErrNoData
	}
	gp, err := plot.New()
	if err != nil {
		return nil, errors.Wrap(err, "cannot create plot")
	}
	gp.Title.Text = p.Title
	gp.X.Label.Text = p.XLabel
	gp.Y.Label.Text = p.YLabel

	log := logging.Get(logging.ModulePlot)
	for _, layer := range p.Layers {
		if layer.Geom == nil {
			p.Warnf("No Geom specified in layer %s.", layer.Name)
			continue
		}

		var params Params
		if layer.Stat != nil {
			params, err = layer.Stat.Apply(p.Data)
			if err != nil {
				return nil, errors.Wrapf(err, "stat %s in layer %s",
					layer.Stat.Name(), layer.Name)
			}
			log.Debugf("Layer %s: %s produced %v", layer.Name, layer.Stat.Name(), params)
		}

		// Make sure all needed slots are present.
		slots := NewStringSetFrom(layer.Geom.NeededSlots())
		available := NewStringSetFrom([]string{"x", "y"})
		for k := range params {
			available.Add(k)
		}
		slots.Remove(available)
		if len(slots) > 0 {
			p.Warnf("Missing slots in geom %s in layer %s: %v",
				layer.Geom.Name(), layer.Name, slots.Elements())
			continue
		}

		plotters, err := layer.Geom.Render(p, p.Data, params, layer.Geom.Aes(p))
		if err != nil {
			return nil, errors.Wrapf(err, "geom %s in layer %s",
				layer.Geom.Name(), layer.Name)
		}
		gp.Add(plotters...)

		if layer.Legend && layer.Name != "" {
			for _, pl := range plotters {
				if th, ok := pl.(plot.Thumbnailer); ok {
					gp.Legend.Add(layer.Name, th)
				}
			}
		}
		log.Debugf("Layer %s: %d plotters from %s", layer.Name, len(plotters), layer.Geom.Name())
	}
	return gp, nil
}

// Formats lists the output formats understood by Save and WriteTo.
var Formats = []string{"eps", "jpeg", "jpg", "pdf", "png", "svg", "tif", "tiff"} // sorted

// FormatOf returns the output format implied by the extension of path.
func FormatOf(path string) (string, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	i := sort.SearchStrings(Formats, ext)
	if i == len(Formats) || Formats[i] != ext {
		return "", errors.Errorf("unsupported image format %q for %s (known: %v)", ext, path, Formats)
	}
	return ext, nil
}

// WriteTo builds p and writes it in the given format to w.
func (p *Plot) WriteTo(w io.Writer, format string, width, height vg.Length) error {
	gp, err := p.Build()
	if err != nil {
		return err
	}
	wt, err := gp.WriterTo(width, height, format)
	if err != nil {
		return errors.Wrapf(err, "cannot render %s", format)
	}
	_, err = wt.WriteTo(w)
	return errors.Wrap(err, "cannot write plot")
}

// Save builds p and saves it to path, the format is taken from the
// file extension.
func (p *Plot) Save(path string, width, height vg.Length) error {
	if _, err := FormatOf(path); err != nil {
		return err
	}
	gp, err := p.Build()
	if err != nil {
		return err
	}
	if err := gp.Save(width, height, path); err != nil {
		return errors.Wrapf(err, "cannot save plot to %s", path)
	}
	logging.Get(logging.ModulePlot).Infof("saved plot to %s", path)
	return nil
}

// Options selects the optional layers of NewScatterPlot.
type Options struct {
	Grid   bool   // grid lines at the major ticks
	Fit    bool   // regression line fitted by StatLinReg
	Method string // regression method of the fit
	Truth  bool   // the noise-free expectation Intercept + NoiseMean + Slope*x
	Title  string // plot title
}

// DefaultOptions draws the samples on a grid, nothing else.
var DefaultOptions = Options{Grid: true, Method: NormalEquation}

// NewScatterPlot sets up the scatter plot of data.
func NewScatterPlot(data *SampleSet, opts Options) *Plot {
	p := &Plot{
		Data:   data,
		Title:  opts.Title,
		XLabel: "x",
		YLabel: "y",
	}
	if opts.Grid {
		p.Layers = append(p.Layers, &Layer{Name: "Grid", Geom: GeomGrid{}})
	}
	p.Layers = append(p.Layers, &Layer{
		Name:   "Samples",
		Geom:   GeomPoint{},
		Legend: opts.Fit || opts.Truth,
	})
	if opts.Truth {
		c := data.Config
		p.Layers = append(p.Layers, &Layer{
			Name: "Expected",
			Geom: GeomABLine{
				Intercept: c.Intercept + (c.NoiseMin+c.NoiseMax)/2,
				Slope:     c.Slope,
				Style:     AesMapping{"color": "gray40", "linetype": "dashed"},
			},
			Legend: true,
		})
	}
	if opts.Fit {
		p.Layers = append(p.Layers, &Layer{
			Name:   "Linear fit",
			Stat:   StatLinReg{Method: opts.Method},
			Geom:   GeomABLine{},
			Legend: true,
		})
	}
	return p
}

// -------------------------------------------------------------------------
// Aesthetics

// AesMapping holds fixed aesthetics like "color" -> "red".
// The zero value of AesMapping sets nothing.
type AesMapping map[string]string

func (m AesMapping) Copy() AesMapping {
	c := make(AesMapping, len(m))
	for a, n := range m {
		c[a] = n
	}
	return c
}

// MergeStyles merges the set values of all ams. Earlier mappings take
// precedence over later ones; empty values count as unset.
func MergeStyles(ams ...AesMapping) AesMapping {
	merged := make(AesMapping)
	for _, am := range ams {
		for aes, value := range am {
			if value == "" {
				continue
			}
			if _, ok := merged[aes]; !ok {
				merged[aes] = value
			}
		}
	}
	return merged
}
