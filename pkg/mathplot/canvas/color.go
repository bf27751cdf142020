package canvas

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/ukaji3/mathplot-go/pkg/mathplot"
	"golang.org/x/image/colornames"
)

// shortColors maps single-letter color codes to colors.
var shortColors = map[string]color.Color{
	"b": color.RGBA{R: 0, G: 0, B: 255, A: 255},
	"g": color.RGBA{R: 0, G: 128, B: 0, A: 255},
	"r": color.RGBA{R: 255, G: 0, B: 0, A: 255},
	"c": color.RGBA{R: 0, G: 191, B: 191, A: 255},
	"m": color.RGBA{R: 191, G: 0, B: 191, A: 255},
	"y": color.RGBA{R: 191, G: 191, B: 0, A: 255},
	"k": color.Black,
	"w": color.White,
}

// ParseColor resolves a color given as a single-letter code ("k", "r"),
// a gray level between 0 and 1 ("0.8"), a hex triplet ("#ff8800") or
// an SVG color name ("green"). The empty string is black.
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.Black, nil
	}
	if c, ok := shortColors[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") && len(s) == 7 {
		if v, err := strconv.ParseUint(s[1:], 16, 32); err == nil {
			return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
		}
	}
	if g, err := strconv.ParseFloat(s, 64); err == nil && g >= 0 && g <= 1 {
		return color.Gray{Y: uint8(g*255 + 0.5)}, nil
	}
	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return nil, &mathplot.StyleError{Kind: "color", Value: s}
}
