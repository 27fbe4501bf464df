// Package display shows a plot in an external image viewer and waits
// for the viewer to be closed.
package display

import (
	"context"
	"os"
	"os/exec"
	"runtime"

	"github.com/pkg/errors"
	"gonum.org/v1/plot/vg"

	"github.com/vdobler/scatterplot"
	"github.com/vdobler/scatterplot/internal/logging"
)

// ErrNoDisplay is returned when the platform viewer would have no
// display to open a window on.
var ErrNoDisplay = errors.New("no display available (neither DISPLAY nor WAYLAND_DISPLAY is set)")

// ErrNoViewer is returned when none of the known viewers is installed.
var ErrNoViewer = errors.New("no image viewer found")

// candidate is a viewer command. A launcher hands the image to another
// program and exits immediately instead of waiting for the window.
type candidate struct {
	command  []string
	launcher bool
}

// unixViewers are tried in order on X11/Wayland platforms.
var unixViewers = []candidate{
	{command: []string{"eog", "--new-instance"}},
	{command: []string{"feh"}},
	{command: []string{"display"}},
	{command: []string{"xdg-open"}, launcher: true},
}

// DefaultCommand picks the viewer command for goos. The image path is
// appended as last argument. On X11/Wayland platforms the first
// installed entry of eog, feh, display (ImageMagick) and xdg-open is
// used; launcher is true for xdg-open.
func DefaultCommand(goos string, lookPath func(string) (string, error)) (command []string, launcher bool, err error) {
	switch goos {
	case "darwin":
		return []string{"open", "-W"}, false, nil
	case "windows":
		return []string{"cmd", "/c", "start", "/wait", ""}, false, nil
	}
	for _, c := range unixViewers {
		if _, err := lookPath(c.command[0]); err == nil {
			return c.command, c.launcher, nil
		}
	}
	return nil, false, ErrNoViewer
}

// needsDisplay reports whether goos draws windows through X11/Wayland.
func needsDisplay(goos string) bool {
	switch goos {
	case "darwin", "windows", "android", "ios", "js", "plan9":
		return false
	}
	return true
}

// Viewer shows plots with an external program.
type Viewer struct {
	// Command is the viewer program and its arguments. Empty selects
	// DefaultCommand for GOOS.
	Command []string

	// Launcher marks Command as returning before the window is closed.
	// Show then keeps the image and waits for ctx instead.
	Launcher bool

	// Dir holds the temporary image; empty means os.TempDir.
	Dir string

	// GOOS, Getenv and LookPath default to runtime.GOOS, os.Getenv and
	// exec.LookPath.
	GOOS     string
	Getenv   func(string) string
	LookPath func(string) (string, error)
}

func (v Viewer) command() ([]string, bool, error) {
	if len(v.Command) > 0 {
		return v.Command, v.Launcher, nil
	}
	goos := v.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	getenv := v.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	lookPath := v.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if needsDisplay(goos) && getenv("DISPLAY") == "" && getenv("WAYLAND_DISPLAY") == "" {
		return nil, false, ErrNoDisplay
	}
	return DefaultCommand(goos, lookPath)
}

// Show renders p as PNG and blocks until the viewer exits or ctx is
// done. For a launcher, which returns right away, Show blocks until ctx
// is done so the image outlives the launched program. The temporary
// image is removed afterwards.
func (v Viewer) Show(ctx context.Context, p *scatterplot.Plot, width, height vg.Length) error {
	cmdline, launcher, err := v.command()
	if err != nil {
		return err
	}

	f, err := os.CreateTemp(v.Dir, "scatterplot-*.png")
	if err != nil {
		return errors.Wrap(err, "cannot create image file")
	}
	defer os.Remove(f.Name())

	err = p.WriteTo(f, "png", width, height)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	log := logging.Get(logging.ModuleDisplay)
	args := append(append([]string{}, cmdline[1:]...), f.Name())
	cmd := exec.CommandContext(ctx, cmdline[0], args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	log.Infof("showing %s with %s, close the viewer to exit", f.Name(), cmdline[0])

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return errors.Wrapf(err, "viewer %s failed", cmdline[0])
	}
	if launcher {
		log.Infof("%s launched a viewer for %s, press Ctrl-C to exit", cmdline[0], f.Name())
		<-ctx.Done()
		return ctx.Err()
	}
	log.Debugf("viewer %s exited", cmdline[0])
	return nil
}
