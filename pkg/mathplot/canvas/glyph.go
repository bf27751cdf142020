package canvas

import (
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// arrowGlyph is a filled triangle pointing along (dx, dy), used as an axis head.
type arrowGlyph struct {
	dx, dy vg.Length
}

var (
	arrowRight = arrowGlyph{dx: 1}
	arrowUp    = arrowGlyph{dy: 1}
)

// DrawGlyph implements draw.GlyphDrawer.
func (g arrowGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius
	tip := vg.Point{X: pt.X + g.dx*r, Y: pt.Y + g.dy*r}
	base := vg.Point{X: pt.X - g.dx*r, Y: pt.Y - g.dy*r}
	w := r * 0.6
	c.FillPolygon(sty.Color, []vg.Point{
		tip,
		{X: base.X - g.dy*w, Y: base.Y + g.dx*w},
		{X: base.X + g.dy*w, Y: base.Y - g.dx*w},
	})
}
