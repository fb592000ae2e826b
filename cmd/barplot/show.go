package main

import (
	"image"
	"os"
	"runtime"

	fyne "fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"

	"github.com/MachineLProject/Parkinson/src/logging"
)

// displayAvailable reports whether a window can be opened. X11/Wayland platforms need one of
// the display variables; other platforms always have a desktop session.
func displayAvailable(goos string, getenv func(string) string) bool {
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return getenv("DISPLAY") != "" || getenv("WAYLAND_DISPLAY") != ""
	}
	return true
}

// showImage opens the rendered figure in a window and blocks until it is closed.
// Tests swap it out.
var showImage = func(img image.Image, title string) error {
	if !displayAvailable(runtime.GOOS, os.Getenv) {
		logging.Infof("no display available, skipping -show")
		return nil
	}
	a := app.NewWithID("org.machinelproject.barplot")
	w := a.NewWindow(title)
	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillContain
	w.SetContent(c)
	b := img.Bounds()
	w.Resize(fyne.NewSize(float32(b.Dx()), float32(b.Dy())))
	w.ShowAndRun()
	return nil
}
