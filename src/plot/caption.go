package plot

import (
	"image"
	"image/color"
	"image/draw"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// captionHeight is the strip added below the panels when a caption is set.
const captionHeight = 24

// drawCaption writes text left-aligned and vertically centred inside area. Text wider than
// the area is cut with an ellipsis.
func drawCaption(dst draw.Image, area image.Rectangle, text string) {
	text = strings.TrimSpace(text)
	if text == "" || area.Empty() {
		return
	}
	face := basicfont.Face7x13
	dr := &font.Drawer{Dst: dst, Src: image.NewUniform(color.RGBA{R: 64, G: 64, B: 64, A: 255}), Face: face}
	pad := 8
	maxW := area.Dx() - 2*pad
	if dr.MeasureString(text).Ceil() > maxW {
		runes := []rune(text)
		for len(runes) > 0 && dr.MeasureString(string(runes)+"...").Ceil() > maxW {
			runes = runes[:len(runes)-1]
		}
		text = string(runes) + "..."
	}
	m := face.Metrics()
	textH := (m.Ascent + m.Descent).Ceil()
	x := area.Min.X + pad
	y := area.Min.Y + (area.Dy()-textH)/2 + m.Ascent.Ceil()
	dr.Dot = fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)}
	dr.DrawString(text)
}
