// Package plot renders a figure of side-by-side bar panels, one panel per metric, sharing a
// category axis. Panels are drawn with go-chart and composed onto a single PNG surface.
package plot

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrInvalidFigure is wrapped by every validation failure.
var ErrInvalidFigure = errors.New("invalid figure")

// Defaults for the figure surface.
const (
	DefaultOutput = "barplot2.png"
	DefaultDPI    = 100.0
	DefaultColor  = "maroon"
)

// DefaultSizeInches is the full surface size (width, height) before DPI scaling.
var DefaultSizeInches = [2]float64{12, 6}

// Panel is one bar chart within the figure.
type Panel struct {
	Metric string    `json:"metric"`
	Title  string    `json:"title"`
	YMin   float64   `json:"y_min"`
	YMax   float64   `json:"y_max"`
	YLabel string    `json:"y_label,omitempty"`
	Color  string    `json:"color,omitempty"`
	Values []float64 `json:"values"`
}

// Figure is the complete rendering input. Panels are laid out left to right in slice order.
type Figure struct {
	Categories []string   `json:"categories"`
	Panels     []Panel    `json:"panels"`
	SizeInches [2]float64 `json:"size_inches"`
	DPI        float64    `json:"dpi"`
	Output     string     `json:"output"`
	// Caption is an optional line of text below the panels, e.g. the data source.
	Caption string `json:"caption,omitempty"`
}

// DefaultFigure returns the sensitivity/specificity comparison of the three classifiers.
func DefaultFigure() Figure {
	return Figure{
		Categories: []string{"KNN", "Decision Tree", "SVM"},
		Panels: []Panel{
			{
				Metric: "sensitivity",
				Title:  "Sensitivity",
				YMin:   80,
				YMax:   100,
				YLabel: "Percentage",
				Color:  DefaultColor,
				Values: []float64{97.5, 95.0, 97.5},
			},
			{
				Metric: "specificity",
				Title:  "Specificity",
				YMin:   0,
				YMax:   100,
				Color:  DefaultColor,
				Values: []float64{63.15, 78.94, 73.68},
			},
		},
		SizeInches: DefaultSizeInches,
		DPI:        DefaultDPI,
		Output:     DefaultOutput,
	}
}

// PixelSize returns the full surface size in pixels.
func (f Figure) PixelSize() (int, int) {
	return int(f.SizeInches[0] * f.DPI), int(f.SizeInches[1] * f.DPI)
}

// Validate checks the figure before any drawing happens. Length mismatches between the
// categories and a panel's values are reported, never truncated or padded.
func (f Figure) Validate() error {
	if len(f.Categories) == 0 {
		return fmt.Errorf("%w: no categories", ErrInvalidFigure)
	}
	for i, c := range f.Categories {
		if strings.TrimSpace(c) == "" {
			return fmt.Errorf("%w: category %d is empty", ErrInvalidFigure, i)
		}
	}
	if len(f.Panels) == 0 {
		return fmt.Errorf("%w: no panels", ErrInvalidFigure)
	}
	for i, p := range f.Panels {
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("%w: panel %d has no title", ErrInvalidFigure, i)
		}
		if len(p.Values) != len(f.Categories) {
			return fmt.Errorf("%w: panel %q has %d values for %d categories", ErrInvalidFigure, p.Title, len(p.Values), len(f.Categories))
		}
		if !(p.YMin < p.YMax) {
			return fmt.Errorf("%w: panel %q y range [%g,%g] is empty", ErrInvalidFigure, p.Title, p.YMin, p.YMax)
		}
		if _, err := ParseColor(p.Color); err != nil {
			return fmt.Errorf("%w: panel %q: %v", ErrInvalidFigure, p.Title, err)
		}
	}
	if f.DPI <= 0 || f.SizeInches[0] <= 0 || f.SizeInches[1] <= 0 {
		return fmt.Errorf("%w: size %gx%g in at %g dpi", ErrInvalidFigure, f.SizeInches[0], f.SizeInches[1], f.DPI)
	}
	w, h := f.PixelSize()
	if w/len(f.Panels) < minPanelWidth || h < minPanelHeight {
		return fmt.Errorf("%w: %dx%d px is too small for %d panels", ErrInvalidFigure, w, h, len(f.Panels))
	}
	return nil
}

// stripJSONC returns the document without full-line // comments. Inline // is kept because of URLs.
func stripJSONC(b []byte) ([]byte, error) {
	var out []byte
	scanner := bufio.NewScanner(bytes.NewReader(b))
	for scanner.Scan() {
		line := scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}
		out = append(out, []byte(line+"\n")...)
	}
	return out, scanner.Err()
}

// LoadFigure reads a JSONC figure definition. Fields left out fall back to DefaultFigure;
// a panel without a color uses DefaultColor.
func LoadFigure(path string) (Figure, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Figure{}, fmt.Errorf("read figure: %w", err)
	}
	b, err := stripJSONC(raw)
	if err != nil {
		return Figure{}, fmt.Errorf("strip comments %s: %w", path, err)
	}
	fig := DefaultFigure()
	var in Figure
	if err := json.Unmarshal(b, &in); err != nil {
		return Figure{}, fmt.Errorf("parse figure %s: %w", path, err)
	}
	if len(in.Categories) > 0 {
		fig.Categories = in.Categories
	}
	if len(in.Panels) > 0 {
		fig.Panels = in.Panels
		for i := range fig.Panels {
			if fig.Panels[i].Color == "" {
				fig.Panels[i].Color = DefaultColor
			}
		}
	}
	if in.SizeInches != [2]float64{} {
		fig.SizeInches = in.SizeInches
	}
	if in.DPI != 0 {
		fig.DPI = in.DPI
	}
	if in.Output != "" {
		fig.Output = in.Output
	}
	if in.Caption != "" {
		fig.Caption = in.Caption
	}
	return fig, nil
}
