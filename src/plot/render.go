package plot

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/MachineLProject/Parkinson/src/logging"
)

const (
	minPanelWidth  = 200
	minPanelHeight = 150

	// barFill is the share of each category slot covered by its bar.
	barFill = 0.8
	// yTickCount is the desired number of y ticks per panel.
	yTickCount = 6
)

// panelPadding reserves room around the plot area for the title, tick labels and the
// optional y-axis label so neighbouring text never overlaps.
func panelPadding(p Panel) chart.Box {
	left := 20
	if p.YLabel != "" {
		left = 56
	}
	return chart.Box{Top: 56, Left: left, Right: 24, Bottom: 48}
}

// clampToRange keeps bar heights inside the fixed axis range; anything outside is clipped.
func clampToRange(v, min, max float64) float64 {
	switch {
	case v < min:
		return min
	case v > max:
		return max
	}
	return v
}

// buildPanelChart turns one panel into a go-chart bar chart of size w x h.
func buildPanelChart(p Panel, categories []string, w, h int, dpi float64) (chart.BarChart, error) {
	if len(p.Values) != len(categories) {
		return chart.BarChart{}, fmt.Errorf("%w: panel %q has %d values for %d categories", ErrInvalidFigure, p.Title, len(p.Values), len(categories))
	}
	col, err := ParseColor(p.Color)
	if err != nil {
		return chart.BarChart{}, err
	}
	bars := make([]chart.Value, len(categories))
	for i, c := range categories {
		v := clampToRange(p.Values[i], p.YMin, p.YMax)
		if v != p.Values[i] {
			logging.Debugf("panel %q: %s=%g clipped to [%g,%g]", p.Title, c, p.Values[i], p.YMin, p.YMax)
		}
		bars[i] = chart.Value{
			Label: c,
			Value: v,
			Style: chart.Style{FillColor: col, StrokeColor: col, StrokeWidth: 1},
		}
	}

	pad := panelPadding(p)
	// Tick labels take roughly 40px left of the plot area; bars are sized for what remains.
	slot := (w - pad.Left - pad.Right - 40) / len(categories)
	if slot < 2 {
		slot = 2
	}
	barW := int(float64(slot) * barFill)
	if barW < 1 {
		barW = 1
	}

	return chart.BarChart{
		Title:      p.Title,
		Width:      w,
		Height:     h,
		DPI:        dpi,
		Background: chart.Style{Padding: pad},
		BarWidth:   barW,
		BarSpacing: slot - barW,
		YAxis: chart.YAxis{
			Name:      p.YLabel,
			NameStyle: chart.Style{Hidden: p.YLabel == ""},
			AxisType:  chart.YAxisSecondary,
			Range:     &chart.ContinuousRange{Min: p.YMin, Max: p.YMax},
			Ticks:     yAxisTicks(p.YMin, p.YMax, yTickCount),
		},
		Bars: bars,
	}, nil
}

// renderPanel draws one panel and decodes it back into an image for composition.
func renderPanel(p Panel, categories []string, w, h int, dpi float64) (image.Image, error) {
	bc, err := buildPanelChart(p, categories, w, h, dpi)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := bc.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("draw: %w", err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return img, nil
}

// RenderImage validates the figure and composes all panels, left to right, onto one surface.
// A caption, if set, gets its own strip below the panels.
func RenderImage(fig Figure) (image.Image, error) {
	if err := fig.Validate(); err != nil {
		return nil, err
	}
	defer logging.TimeTrack(time.Now(), "render figure")

	w, h := fig.PixelSize()
	pw := w / len(fig.Panels)
	surfaceH := h
	if fig.Caption != "" {
		surfaceH += captionHeight
	}
	surface := image.NewRGBA(image.Rect(0, 0, w, surfaceH))
	draw.Draw(surface, surface.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for i, p := range fig.Panels {
		img, err := renderPanel(p, fig.Categories, pw, h, fig.DPI)
		if err != nil {
			return nil, fmt.Errorf("render panel %q: %w", p.Title, err)
		}
		dst := image.Rect(i*pw, 0, (i+1)*pw, h)
		draw.Draw(surface, dst, img, img.Bounds().Min, draw.Src)
		logging.Debugf("panel %d %q: %d bars, y=[%g,%g]", i, p.Title, len(p.Values), p.YMin, p.YMax)
	}
	if fig.Caption != "" {
		drawCaption(surface, image.Rect(0, h, w, surfaceH), fig.Caption)
	}
	return surface, nil
}

// Render writes the figure as PNG to w.
func Render(fig Figure, w io.Writer) error {
	img, err := RenderImage(fig)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	return nil
}

// RenderFile renders the figure and writes it to path, replacing any existing file.
func RenderFile(fig Figure, path string) error {
	img, err := RenderImage(fig)
	if err != nil {
		return err
	}
	return WritePNG(img, path)
}

// WritePNG encodes img in memory and writes it to path, replacing any existing file.
func WritePNG(img image.Image, path string) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("png encode: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	b := img.Bounds()
	logging.Infof("wrote %s (%dx%d px, %d bytes)", path, b.Dx(), b.Dy(), buf.Len())
	return nil
}
