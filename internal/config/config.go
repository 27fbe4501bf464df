// Package config assembles the scatterplot settings from command line
// flags, SCATTERPLOT_* environment variables and an optional
// scatterplot.yaml file, in that order of precedence.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/scatterplot"
	"github.com/vdobler/scatterplot/internal/logging"
	"github.com/vdobler/scatterplot/rng"
)

const (
	EnvPrefix   = "scatterplot"
	ConfigName  = "scatterplot"
	PathEnvName = "SCATTERPLOT_CFG_PATH"
)

// Settings is everything a run needs.
type Settings struct {
	Data       scatterplot.Config
	Plot       scatterplot.Options
	Out        string // render to this file instead of showing
	Width      vg.Length
	Height     vg.Length
	Viewer     []string // viewer command, empty: platform default
	Launcher   bool     // Viewer returns before its window is closed
	Log        *logging.Config
	ConfigFile string // config file actually used, empty if none
}

// flag name -> viper key
var flagKeys = map[string]string{
	"samples":         "samples",
	"seed":            "seed",
	"generator":       "generator",
	"x-min":           "x.min",
	"x-max":           "x.max",
	"intercept":       "intercept",
	"slope":           "slope",
	"noise-min":       "noise.min",
	"noise-max":       "noise.max",
	"grid":            "plot.grid",
	"fit":             "plot.fit",
	"truth":           "plot.truth",
	"title":           "plot.title",
	"method":          "plot.method",
	"width":           "plot.width",
	"height":          "plot.height",
	"out":             "out",
	"viewer":          "viewer",
	"viewer-launcher": "viewer-launcher",
	"log-level":       "log.level",
	"log-path":        "log.path",
	"log-show-line":   "log.showline",
}

// AddFlags registers all setting flags on fs with their defaults.
func AddFlags(fs *pflag.FlagSet) {
	d := scatterplot.DefaultConfig
	fs.StringP("config", "c", "", "config file (default: scatterplot.yaml in . or $"+PathEnvName+")")
	fs.IntP("samples", "m", d.Samples, "number of samples")
	fs.Uint64P("seed", "s", d.Seed, "seed of the random generator")
	fs.String("generator", d.Generator, "random generator: "+strings.Join(rng.Names(), ", "))
	fs.Float64("x-min", d.XMin, "lower bound of x")
	fs.Float64("x-max", d.XMax, "upper bound (exclusive) of x")
	fs.Float64("intercept", d.Intercept, "intercept of the true line")
	fs.Float64("slope", d.Slope, "slope of the true line")
	fs.Float64("noise-min", d.NoiseMin, "lower bound of the additive noise")
	fs.Float64("noise-max", d.NoiseMax, "upper bound (exclusive) of the additive noise")
	fs.Bool("grid", true, "draw grid lines")
	fs.Bool("fit", false, "draw the line fitted by the normal equation")
	fs.Bool("truth", false, "draw the noise-free expectation")
	fs.String("title", "", "plot title")
	fs.String("method", scatterplot.NormalEquation, "regression method: normal or lstsq")
	fs.Float64("width", 6.4, "plot width in inches")
	fs.Float64("height", 4.8, "plot height in inches")
	fs.StringP("out", "o", "", "write the plot to this file (png, svg, pdf, ...) instead of showing it")
	fs.StringSlice("viewer", nil, "viewer command and arguments (default: eog, feh, display or xdg-open)")
	fs.Bool("viewer-launcher", false, "the viewer command returns at once (like xdg-open); wait for Ctrl-C instead")
	fs.String("log-level", "info", "log level: debug, info, warn, error")
	fs.String("log-path", "", "also log to this rotated file")
	fs.Bool("log-show-line", false, "log caller file and line")
}

// New sets up a viper instance bound to fs, the environment and the
// config file. An explicitly requested config file must be readable; a
// missing default one is fine.
func New(fs *pflag.FlagSet) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	for flag, key := range flagKeys {
		f := fs.Lookup(flag)
		if f == nil {
			return nil, errors.Errorf("flag %s not registered", flag)
		}
		if err := v.BindPFlag(key, f); err != nil {
			return nil, errors.Wrapf(err, "cannot bind flag %s", flag)
		}
	}

	explicit := ""
	if f := fs.Lookup("config"); f != nil {
		explicit = f.Value.String()
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		altPath := os.Getenv(PathEnvName)
		if altPath == "" {
			altPath = "."
		}
		v.AddConfigPath(altPath)
		v.SetConfigName(ConfigName)
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return nil, errors.Wrap(err, "cannot read config")
		}
	}
	return v, nil
}

// Load extracts and validates the settings from v.
func Load(v *viper.Viper) (*Settings, error) {
	s := &Settings{
		Data: scatterplot.Config{
			Samples:   v.GetInt("samples"),
			Seed:      v.GetUint64("seed"),
			Generator: v.GetString("generator"),
			XMin:      v.GetFloat64("x.min"),
			XMax:      v.GetFloat64("x.max"),
			Intercept: v.GetFloat64("intercept"),
			Slope:     v.GetFloat64("slope"),
			NoiseMin:  v.GetFloat64("noise.min"),
			NoiseMax:  v.GetFloat64("noise.max"),
		},
		Plot: scatterplot.Options{
			Grid:   v.GetBool("plot.grid"),
			Fit:    v.GetBool("plot.fit"),
			Truth:  v.GetBool("plot.truth"),
			Title:  v.GetString("plot.title"),
			Method: v.GetString("plot.method"),
		},
		Out:        v.GetString("out"),
		Width:      vg.Length(v.GetFloat64("plot.width")) * vg.Inch,
		Height:     vg.Length(v.GetFloat64("plot.height")) * vg.Inch,
		Viewer:     v.GetStringSlice("viewer"),
		Launcher:   v.GetBool("viewer-launcher"),
		ConfigFile: v.ConfigFileUsed(),
	}

	if err := s.Data.Validate(); err != nil {
		return nil, err
	}
	switch s.Plot.Method {
	case scatterplot.NormalEquation, scatterplot.LeastSquares:
	default:
		return nil, errors.Errorf("unknown regression method %q", s.Plot.Method)
	}
	if s.Width <= 0 || s.Height <= 0 {
		return nil, errors.Errorf("plot size %.1fx%.1f in must be positive",
			s.Width/vg.Inch, s.Height/vg.Inch)
	}
	if s.Out != "" {
		if _, err := scatterplot.FormatOf(s.Out); err != nil {
			return nil, err
		}
	}

	level, err := logging.ParseLevel(v.GetString("log.level"))
	if err != nil {
		return nil, err
	}
	s.Log = logging.DefaultConfig()
	s.Log.Level = level
	s.Log.Path = v.GetString("log.path")
	s.Log.ShowLine = v.GetBool("log.showline")
	return s, nil
}
