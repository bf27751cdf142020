// Package canvas renders a plot session with gonum/plot.
package canvas

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/mathplot-go/pkg/mathplot"
	"github.com/ukaji3/mathplot-go/pkg/mathplot/geom"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// ErrUnsupportedFormat indicates an output format gonum/plot cannot encode.
var ErrUnsupportedFormat = errors.New("unsupported output format")

// Formats lists the accepted output formats.
var Formats = []string{"eps", "jpg", "jpeg", "pdf", "png", "svg", "tif", "tiff"}

// Config configures the rendered figure.
type Config struct {
	// Width is the figure width in pixels at 96 DPI.
	Width int
	// Height is the figure height in pixels at 96 DPI.
	Height int
	// Format is the output encoding (png, svg, pdf, ...).
	Format string
	// Latex renders labels and annotations with the LaTeX text handler.
	Latex bool
}

// DefaultConfig returns a 640x480 PNG configuration.
func DefaultConfig() Config {
	return Config{
		Width:  640,
		Height: 480,
		Format: "png",
	}
}

// FormatFromPath returns the format implied by a file extension, or "" if none.
func FormatFromPath(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i < 0 || i == len(path)-1 {
		return ""
	}
	return strings.ToLower(path[i+1:])
}

const (
	lineWidth   = 1
	arrowRadius = 5
)

var (
	circleRadius = vg.Points(3)
	dotRadius    = vg.Points(1.5)
	dashes       = map[mathplot.LineStyle][]vg.Length{
		mathplot.LineDashed: {vg.Points(6), vg.Points(3)},
		mathplot.LineDotted: {vg.Points(1), vg.Points(2)},
	}
)

// Plot is a mathplot.Canvas backed by a gonum plot.
type Plot struct {
	cfg     Config
	out     io.Writer
	p       *plot.Plot
	handler text.Handler
}

var _ mathplot.Canvas = (*Plot)(nil)

// New creates a canvas that encodes the finished figure to w.
func New(w io.Writer, cfg Config) (*Plot, error) {
	def := DefaultConfig()
	if cfg.Width <= 0 {
		cfg.Width = def.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = def.Height
	}
	if cfg.Format == "" {
		cfg.Format = def.Format
	}
	cfg.Format = strings.ToLower(cfg.Format)
	if !supportedFormat(cfg.Format) {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, cfg.Format)
	}

	c := &Plot{
		cfg: cfg,
		out: w,
		p:   plot.New(),
	}
	if cfg.Latex {
		c.handler = text.Latex{Fonts: font.DefaultCache}
		c.p.Title.TextStyle.Handler = c.handler
		c.p.X.Label.TextStyle.Handler = c.handler
		c.p.Y.Label.TextStyle.Handler = c.handler
		c.p.X.Tick.Label.Handler = c.handler
		c.p.Y.Tick.Label.Handler = c.handler
	}
	return c, nil
}

func supportedFormat(f string) bool {
	for _, s := range Formats {
		if s == f {
			return true
		}
	}
	return false
}

// Polyline draws connected line segments through pts.
func (c *Plot) Polyline(pts []geom.Point, s mathplot.Stroke) error {
	clr, err := ParseColor(s.Color)
	if err != nil {
		return err
	}
	l, err := plotter.NewLine(toXYs(pts))
	if err != nil {
		return fmt.Errorf("line: %w", err)
	}
	l.LineStyle.Color = clr
	l.LineStyle.Width = vg.Points(lineWidth)
	l.LineStyle.Dashes = dashes[s.Style]
	c.p.Add(l)
	return nil
}

// Marker draws a single glyph at p.
func (c *Plot) Marker(p geom.Point, m mathplot.Marker, clr string) error {
	col, err := ParseColor(clr)
	if err != nil {
		return err
	}
	var radius vg.Length
	switch m {
	case mathplot.MarkerNone:
		return nil
	case mathplot.MarkerCircle:
		radius = circleRadius
	case mathplot.MarkerDot:
		radius = dotRadius
	default:
		return &mathplot.StyleError{Kind: "marker", Value: string(m)}
	}
	sc, err := plotter.NewScatter(plotter.XYs{{X: p.X, Y: p.Y}})
	if err != nil {
		return fmt.Errorf("marker: %w", err)
	}
	sc.GlyphStyle = draw.GlyphStyle{Color: col, Radius: radius, Shape: draw.CircleGlyph{}}
	c.p.Add(sc)
	return nil
}

// Annotate places text at p, shifted by (dx, dy) points.
func (c *Plot) Annotate(p geom.Point, txt string, dx, dy float64) error {
	l, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    plotter.XYs{{X: p.X, Y: p.Y}},
		Labels: []string{txt},
	})
	if err != nil {
		return fmt.Errorf("annotation: %w", err)
	}
	l.Offset = vg.Point{X: vg.Points(dx), Y: vg.Points(dy)}
	if c.handler != nil {
		for i := range l.TextStyle {
			l.TextStyle[i].Handler = c.handler
		}
	}
	c.p.Add(l)
	return nil
}

// Polygon shades the closed region bounded by pts.
func (c *Plot) Polygon(pts []geom.Point, f mathplot.Fill) error {
	face, err := ParseColor(f.Face)
	if err != nil {
		return err
	}
	edge, err := ParseColor(f.Edge)
	if err != nil {
		return err
	}
	poly, err := plotter.NewPolygon(toXYs(pts))
	if err != nil {
		return fmt.Errorf("polygon: %w", err)
	}
	poly.Color = face
	poly.LineStyle.Color = edge
	poly.LineStyle.Width = vg.Points(lineWidth)
	c.p.Add(poly)
	return nil
}

// Render applies the frame, draws the axes and encodes the figure.
func (c *Plot) Render(f mathplot.Frame) error {
	xr := axisRange(f.XBounds, c.p.X.Min, c.p.X.Max)
	yr := axisRange(f.YBounds, c.p.Y.Min, c.p.Y.Max)
	if err := c.drawAxes(xr, yr); err != nil {
		return err
	}
	c.p.X.Min, c.p.X.Max = xr.Min, xr.Max
	c.p.Y.Min, c.p.Y.Max = yr.Min, yr.Max

	c.p.X.LineStyle.Width = 0
	c.p.Y.LineStyle.Width = 0
	applyTicks(&c.p.X, f.XTicks)
	applyTicks(&c.p.Y, f.YTicks)

	c.p.X.Label.Text = f.XLabel
	c.p.X.Label.Position = draw.PosRight
	c.p.Y.Label.Text = f.YLabel
	c.p.Y.Label.Position = draw.PosTop
	c.p.Y.Label.TextStyle.Rotation = 0

	wt, err := c.p.WriterTo(PixelsToLength(c.cfg.Width), PixelsToLength(c.cfg.Height), c.cfg.Format)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.cfg.Format, err)
	}
	if _, err := wt.WriteTo(c.out); err != nil {
		return fmt.Errorf("write %s: %w", c.cfg.Format, err)
	}
	return nil
}

// axisRange picks the frame bounds when they are set, the autoscaled data
// range otherwise, and falls back to [-1, 1] for an empty plot.
func axisRange(b geom.Interval, dataMin, dataMax float64) geom.Interval {
	if !b.Empty() {
		return b
	}
	if geom.IsFinite(dataMin) && geom.IsFinite(dataMax) && dataMax > dataMin {
		return geom.Interval{Min: dataMin, Max: dataMax}
	}
	return geom.Interval{Min: -1, Max: 1}
}

// drawAxes draws the x- and y-axis through the origin with arrow heads,
// for each axis whose zero lies inside the other axis' range.
func (c *Plot) drawAxes(xr, yr geom.Interval) error {
	style := draw.LineStyle{Color: color.Black, Width: vg.Points(lineWidth)}
	head := func(x, y float64, g arrowGlyph) error {
		sc, err := plotter.NewScatter(plotter.XYs{{X: x, Y: y}})
		if err != nil {
			return err
		}
		sc.GlyphStyle = draw.GlyphStyle{Color: color.Black, Radius: vg.Points(arrowRadius), Shape: g}
		c.p.Add(sc)
		return nil
	}

	if yr.Contains(0) {
		l, err := plotter.NewLine(plotter.XYs{{X: xr.Min, Y: 0}, {X: xr.Max, Y: 0}})
		if err != nil {
			return fmt.Errorf("x-axis: %w", err)
		}
		l.LineStyle = style
		c.p.Add(l)
		if err := head(xr.Max, 0, arrowRight); err != nil {
			return fmt.Errorf("x-axis: %w", err)
		}
	}
	if xr.Contains(0) {
		l, err := plotter.NewLine(plotter.XYs{{X: 0, Y: yr.Min}, {X: 0, Y: yr.Max}})
		if err != nil {
			return fmt.Errorf("y-axis: %w", err)
		}
		l.LineStyle = style
		c.p.Add(l)
		if err := head(0, yr.Max, arrowUp); err != nil {
			return fmt.Errorf("y-axis: %w", err)
		}
	}
	return nil
}

func applyTicks(a *plot.Axis, t mathplot.Ticks) {
	switch t.Mode {
	case mathplot.TicksNone:
		a.Tick.Marker = plot.ConstantTicks(nil)
	case mathplot.TicksFixed:
		ticks := make([]plot.Tick, len(t.Values))
		for i, v := range t.Values {
			ticks[i] = plot.Tick{Value: v, Label: formatTick(v)}
		}
		a.Tick.Marker = plot.ConstantTicks(ticks)
	}
	if t.HideLabels {
		a.Tick.Label.Color = color.Transparent
	}
}

func formatTick(v float64) string {
	// Arange accumulates rounding error; trim it before printing.
	r := math.Round(v*1e9) / 1e9
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'g', -1, 64)
}

func toXYs(pts []geom.Point) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, p := range pts {
		xys[i].X = p.X
		xys[i].Y = p.Y
	}
	return xys
}
