package main

import (
	"bytes"
	"errors"
	"flag"
	"image"
	_ "image/png" // register PNG decoder
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MachineLProject/Parkinson/src/logging"
	"github.com/MachineLProject/Parkinson/src/plot"
)

func quietLogs(t *testing.T) {
	t.Helper()
	logging.SetOutput(io.Discard)
	t.Cleanup(func() {
		logging.SetOutput(os.Stderr)
		logging.SetLogLevel("info")
	})
}

func decodeSize(t *testing.T, path string) (int, int) {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open %s: %v", path, err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		t.Fatalf("decode %s: %v", path, err)
	}
	return img.Bounds().Dx(), img.Bounds().Dy()
}

func TestRun_NoArgsWritesDefaultFile(t *testing.T) {
	quietLogs(t)
	t.Chdir(t.TempDir())
	var stdout, stderr bytes.Buffer
	if err := run(nil, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	w, h := decodeSize(t, plot.DefaultOutput)
	if w != 1200 || h != 600 {
		t.Fatalf("default figure size %dx%d want 1200x600", w, h)
	}
	if stdout.Len() != 0 {
		t.Fatalf("nothing should be printed without -summary, got %q", stdout.String())
	}
}

func TestRun_FlagsOverride(t *testing.T) {
	quietLogs(t)
	out := filepath.Join(t.TempDir(), "fig.png")
	var stdout, stderr bytes.Buffer
	args := []string{"-out", out, "-dpi", "50", "-summary", "-log-level", "warn", "-caption", "5-fold CV"}
	if err := run(args, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	w, h := decodeSize(t, out)
	if w != 600 || h != 300+24 {
		t.Fatalf("size %dx%d want 600x324", w, h)
	}
	if !strings.Contains(stdout.String(), "Decision Tree") || !strings.Contains(stdout.String(), "78.94") {
		t.Fatalf("summary not printed: %q", stdout.String())
	}
	if logging.GetLogLevel() != logging.LevelWarn {
		t.Fatalf("log level not applied")
	}
}

func TestRun_ConfigFile(t *testing.T) {
	quietLogs(t)
	dir := t.TempDir()
	cfg := filepath.Join(dir, "fig.jsonc")
	out := filepath.Join(dir, "custom.png")
	body := `// two algorithms only
{
  "categories": ["KNN", "SVM"],
  "panels": [
    {"title": "Sensitivity", "y_min": 80, "y_max": 100, "y_label": "Percentage", "values": [97.5, 97.5]},
    {"title": "Specificity", "y_min": 0, "y_max": 100, "values": [63.15, 73.68]}
  ],
  "size_inches": [8, 4],
  "output": "` + filepath.ToSlash(out) + `"
}
`
	if err := os.WriteFile(cfg, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-config", cfg}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	w, h := decodeSize(t, out)
	if w != 800 || h != 400 {
		t.Fatalf("size %dx%d want 800x400", w, h)
	}
}

func TestRun_MismatchedSeriesFails(t *testing.T) {
	quietLogs(t)
	dir := t.TempDir()
	cfg := filepath.Join(dir, "bad.jsonc")
	out := filepath.Join(dir, "bad.png")
	body := `{"categories": ["KNN", "Decision Tree", "SVM"], "panels": [{"title": "Sensitivity", "y_min": 80, "y_max": 100, "values": [97.5, 95.0]}]}`
	if err := os.WriteFile(cfg, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	var stdout, stderr bytes.Buffer
	err := run([]string{"-config", cfg, "-out", out}, &stdout, &stderr)
	if !errors.Is(err, plot.ErrInvalidFigure) {
		t.Fatalf("expected ErrInvalidFigure, got %v", err)
	}
	if _, statErr := os.Stat(out); !os.IsNotExist(statErr) {
		t.Fatalf("invalid figure must not produce output")
	}
}

func TestRun_ShowReusesRenderedImage(t *testing.T) {
	quietLogs(t)
	out := filepath.Join(t.TempDir(), "shown.png")
	saved := showImage
	t.Cleanup(func() { showImage = saved })

	calls := 0
	showImage = func(img image.Image, title string) error {
		calls++
		if img.Bounds().Dx() != 1200 || img.Bounds().Dy() != 600 {
			t.Fatalf("viewer got %v, want the 1200x600 figure", img.Bounds().Size())
		}
		if title != "shown.png" {
			t.Fatalf("window title %q want shown.png", title)
		}
		if _, err := os.Stat(out); err != nil {
			t.Fatalf("file should be written before the viewer opens: %v", err)
		}
		return nil
	}
	var stdout, stderr bytes.Buffer
	if err := run([]string{"-out", out, "-show"}, &stdout, &stderr); err != nil {
		t.Fatalf("run: %v", err)
	}
	if calls != 1 {
		t.Fatalf("viewer called %d times, want 1", calls)
	}
}

func TestParseFlags(t *testing.T) {
	var stderr bytes.Buffer
	o, err := parseFlags(nil, &stderr)
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if o.configPath != "" || o.out != "" || o.dpi != 0 || o.summary || o.show || o.logLevel != "info" {
		t.Fatalf("unexpected defaults: %+v", o)
	}
	if _, err := parseFlags([]string{"extra.png"}, &stderr); err == nil {
		t.Fatalf("positional arguments must be rejected")
	}
	if _, err := parseFlags([]string{"-dpi", "-5"}, &stderr); err == nil {
		t.Fatalf("negative dpi must be rejected")
	}
	if _, err := parseFlags([]string{"-h"}, &stderr); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("expected flag.ErrHelp, got %v", err)
	}
}

func TestDisplayAvailable(t *testing.T) {
	env := func(m map[string]string) func(string) string {
		return func(k string) string { return m[k] }
	}
	cases := []struct {
		goos string
		env  map[string]string
		want bool
	}{
		{"linux", nil, false},
		{"linux", map[string]string{"DISPLAY": ":0"}, true},
		{"linux", map[string]string{"WAYLAND_DISPLAY": "wayland-0"}, true},
		{"freebsd", nil, false},
		{"darwin", nil, true},
		{"windows", nil, true},
	}
	for _, c := range cases {
		if got := displayAvailable(c.goos, env(c.env)); got != c.want {
			t.Fatalf("displayAvailable(%s, %v)=%v want %v", c.goos, c.env, got, c.want)
		}
	}
}
