// Command barplot renders classifier sensitivity and specificity as two side-by-side bar
// charts and saves them as barplot2.png in the working directory.
//
// Run without flags it draws the built-in figure. A JSONC figure file (-config) replaces the
// categories, panels, size, DPI and output path; individual flags override the file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MachineLProject/Parkinson/src/logging"
	"github.com/MachineLProject/Parkinson/src/plot"
)

type options struct {
	configPath string
	out        string
	logLevel   string
	dpi        float64
	caption    string
	summary    bool
	show       bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("barplot", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.configPath, "config", "", "Path to a JSONC figure definition (default: built-in classifier comparison)")
	fs.StringVar(&o.out, "out", "", "Output PNG path (default: figure output, "+plot.DefaultOutput+")")
	fs.StringVar(&o.logLevel, "log-level", "info", "Log level (debug|info|warn|error)")
	fs.Float64Var(&o.dpi, "dpi", 0, "Override figure DPI (pixels per inch)")
	fs.StringVar(&o.caption, "caption", "", "Optional caption drawn below the panels")
	fs.BoolVar(&o.summary, "summary", false, "Print a table of the plotted values to stdout")
	fs.BoolVar(&o.show, "show", false, "Open the rendered figure in a window (skipped when no display is available)")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	if o.dpi < 0 {
		return o, fmt.Errorf("-dpi must be positive, got %g", o.dpi)
	}
	return o, nil
}

// buildFigure resolves the figure to draw from the defaults, the optional file and the flags.
func buildFigure(o options) (plot.Figure, error) {
	fig := plot.DefaultFigure()
	if o.configPath != "" {
		loaded, err := plot.LoadFigure(o.configPath)
		if err != nil {
			return plot.Figure{}, err
		}
		logging.Infof("loaded figure from %s (%d panels)", o.configPath, len(loaded.Panels))
		fig = loaded
	}
	if o.out != "" {
		fig.Output = o.out
	}
	if o.dpi > 0 {
		fig.DPI = o.dpi
	}
	if o.caption != "" {
		fig.Caption = o.caption
	}
	return fig, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if !logging.SetLogLevel(o.logLevel) {
		logging.Warnf("unknown log level %q, keeping %s", o.logLevel, logging.GetLogLevel())
	}
	fig, err := buildFigure(o)
	if err != nil {
		return err
	}
	img, err := plot.RenderImage(fig)
	if err != nil {
		return err
	}
	if err := plot.WritePNG(img, fig.Output); err != nil {
		return err
	}
	if o.summary {
		if err := plot.WriteSummary(fig, stdout); err != nil {
			return fmt.Errorf("summary: %w", err)
		}
	}
	if o.show {
		return showImage(img, filepath.Base(fig.Output))
	}
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
