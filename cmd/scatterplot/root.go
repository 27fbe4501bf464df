package main

import (
	"context"
	"fmt"
	"io"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/scatterplot"
	"github.com/vdobler/scatterplot/internal/config"
	"github.com/vdobler/scatterplot/internal/display"
	"github.com/vdobler/scatterplot/internal/logging"
)

// Shower displays a plot and blocks until it is dismissed.
type Shower interface {
	Show(ctx context.Context, p *scatterplot.Plot, width, height vg.Length) error
}

// newRootCmd builds the command tree. A nil shower uses the external
// viewer configured in the settings.
func newRootCmd(shower Shower) *cobra.Command {
	root := &cobra.Command{
		Use:           "scatterplot",
		Short:         "Generate a noisy linear data set and show its scatter plot",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true, // main logs them
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := settings(cmd)
			if err != nil {
				return err
			}
			sh := shower
			if sh == nil {
				sh = display.Viewer{Command: s.Viewer, Launcher: s.Launcher}
			}
			return run(cmd.Context(), s, sh)
		},
	}
	config.AddFlags(root.PersistentFlags())

	root.AddCommand(&cobra.Command{
		Use:   "fit",
		Short: "Print the coefficients fitted by the normal equation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := settings(cmd)
			if err != nil {
				return err
			}
			return fit(cmd.OutOrStdout(), s)
		},
	})
	root.AddCommand(&cobra.Command{
		Use:   "samples",
		Short: "Print the generated samples",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := settings(cmd)
			if err != nil {
				return err
			}
			set, err := scatterplot.Generate(s.Data)
			if err != nil {
				return err
			}
			set.Print(cmd.OutOrStdout())
			return nil
		},
	})

	return root
}

// settings loads the configuration and applies its log settings.
func settings(cmd *cobra.Command) (*config.Settings, error) {
	v, err := config.New(cmd.Flags())
	if err != nil {
		return nil, err
	}
	s, err := config.Load(v)
	if err != nil {
		return nil, err
	}
	s.Log.Console = cmd.ErrOrStderr()
	if err := logging.SetConfig(s.Log); err != nil {
		return nil, err
	}
	if s.ConfigFile != "" {
		logging.Get(logging.ModuleCLI).Infof("using config file %s", s.ConfigFile)
	}
	return s, nil
}

// run generates the data, builds the plot and either saves or shows it.
func run(ctx context.Context, s *config.Settings, shower Shower) error {
	set, err := scatterplot.Generate(s.Data)
	if err != nil {
		return err
	}
	p := scatterplot.NewScatterPlot(set, s.Plot)
	if s.Out != "" {
		return p.Save(s.Out, s.Width, s.Height)
	}
	err = shower.Show(ctx, p, s.Width, s.Height)
	if errors.Is(err, context.Canceled) {
		// Interrupted while showing counts as closing the window.
		return nil
	}
	return err
}

func fit(out io.Writer, s *config.Settings) error {
	set, err := scatterplot.Generate(s.Data)
	if err != nil {
		return err
	}
	params, err := scatterplot.StatLinReg{Method: s.Plot.Method}.Apply(set)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "method     %s\n", s.Plot.Method)
	fmt.Fprintf(out, "samples    %d\n", set.Len())
	fmt.Fprintf(out, "intercept  %.6f\n", params["intercept"])
	fmt.Fprintf(out, "slope      %.6f\n", params["slope"])
	fmt.Fprintf(out, "r2         %.6f\n", params["r2"])
	return nil
}
