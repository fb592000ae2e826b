package plot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// namedColors covers the color names commonly used for bar fills. Anything else is given as #rrggbb.
var namedColors = map[string]string{
	"black":  "000000",
	"white":  "ffffff",
	"gray":   "808080",
	"grey":   "808080",
	"red":    "ff0000",
	"maroon": "800000",
	"orange": "ffa500",
	"gold":   "ffd700",
	"olive":  "808000",
	"green":  "008000",
	"teal":   "008080",
	"blue":   "0000ff",
	"navy":   "000080",
	"purple": "800080",
	"brown":  "a52a2a",
	"pink":   "ffc0cb",
}

// ParseColor resolves a color name or a #rrggbb hex string. Empty means DefaultColor.
func ParseColor(s string) (drawing.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		s = DefaultColor
	}
	hex, ok := namedColors[s]
	if !ok {
		hex = strings.TrimPrefix(s, "#")
	}
	if len(hex) != 6 {
		return drawing.Color{}, fmt.Errorf("unknown color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return drawing.Color{}, fmt.Errorf("unknown color %q", s)
	}
	return drawing.Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
