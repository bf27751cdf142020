package canvas

import "gonum.org/v1/plot/vg"

// PixelsPerInch is the resolution figure sizes are given in.
// 1 inch = 72 points, and at 96 DPI, 1 inch = 96 pixels.
// Therefore: 72 / 96 = 0.75 points per pixel
const PixelsPerInch = 96

// PixelsToLength converts a pixel count at 96 DPI to a vg.Length.
func PixelsToLength(px int) vg.Length {
	return vg.Length(px) * vg.Inch / PixelsPerInch
}
