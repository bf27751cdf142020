package mathplot

import (
	"math"
	"strconv"

	"github.com/ukaji3/mathplot-go/pkg/mathplot/geom"
	"github.com/ukaji3/mathplot-go/pkg/mathplot/models"
	"go.uber.org/zap"
)

// Text offsets, in points, relative to a free point or a point on a graph.
var (
	pointLowerOffset = [2]float64{-6, -15}
	pointUpperOffset = [2]float64{0, 2}
	graphLowerOffset = [2]float64{0, -15}
	graphUpperOffset = [2]float64{5, 10}
)

var integralFill = Fill{Face: "0.8", Edge: "0.5"}

// PlotFunc draws fn over domain. The curve is broken wherever fn is undefined.
func (s *Session) PlotFunc(fn Func, domain geom.Interval, opts PlotOptions) error {
	stroke, err := newStroke(opts.Color, opts.Style)
	if err != nil {
		return err
	}
	pts, err := geom.Sample(fn, domain.Min, domain.Max, opts.points())
	if err != nil {
		return NewDomainError("plot", err)
	}

	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range pts {
		if geom.IsFinite(p.Y) {
			lo = math.Min(lo, p.Y)
			hi = math.Max(hi, p.Y)
		}
	}
	if math.IsInf(lo, 1) {
		return NewDomainError("plot", &geom.UndefinedError{X: pts[0].X, Value: pts[0].Y})
	}

	s.expandX(domain.Min)
	s.expandX(domain.Max)
	if opts.Range != nil {
		s.expandY(opts.Range.Min)
		s.expandY(opts.Range.Max)
	} else {
		s.expandY(lo)
		s.expandY(hi)
	}

	for _, seg := range finiteSegments(pts) {
		if err := s.canvas.Polyline(seg, stroke); err != nil {
			return err
		}
	}

	name := opts.Name
	if name == "" {
		name = "f" + strconv.Itoa(len(s.series)+1)
	}
	s.series = append(s.series, models.Series{Name: name, Domain: domain, Points: pts})
	s.log.Debug("function plotted",
		zap.String("name", name),
		zap.Float64("x1", domain.Min),
		zap.Float64("x2", domain.Max),
		zap.Int("points", len(pts)))
	return nil
}

// Point marks (x, y) with an optional text annotation.
func (s *Session) Point(x, y float64, opts PointOptions) error {
	return s.point(x, y, opts, pointLowerOffset, pointUpperOffset)
}

// PointOnFunc marks (x, fn(x)) with an optional text annotation.
func (s *Session) PointOnFunc(fn Func, x float64, opts PointOptions) error {
	y := fn(x)
	if !geom.IsFinite(y) {
		return NewDomainError("point", &geom.UndefinedError{X: x, Value: y})
	}
	return s.point(x, y, opts, graphLowerOffset, graphUpperOffset)
}

// Label places text near (x, y) without a marker.
func (s *Session) Label(x, y float64, text string, opts LabelOptions) error {
	return s.Point(x, y, labelPoint(text, opts))
}

// LabelOnFunc places text next to the graph of fn at x without a marker.
func (s *Session) LabelOnFunc(fn Func, x float64, text string, opts LabelOptions) error {
	return s.PointOnFunc(fn, x, labelPoint(text, opts))
}

func labelPoint(text string, opts LabelOptions) PointOptions {
	align := opts.Align
	if align == "" {
		align = TextUpper
	}
	return PointOptions{
		Text:     text,
		Location: align,
		Marker:   MarkerNone,
		XOffset:  opts.XOffset,
		YOffset:  opts.YOffset,
	}
}

func (s *Session) point(x, y float64, opts PointOptions, lower, upper [2]float64) error {
	if !geom.IsFinite(x) || !geom.IsFinite(y) {
		return NewDomainError("point", &geom.UndefinedError{X: x, Value: y})
	}
	loc := opts.Location
	if loc == "" {
		loc = TextLower
	}
	if loc != TextLower && loc != TextUpper {
		return &StyleError{Kind: "text location", Value: string(loc)}
	}
	marker := opts.Marker
	if marker == "" {
		marker = MarkerCircle
	}
	if _, err := ParseMarker(string(marker)); err != nil {
		return err
	}

	p := geom.Point{X: x, Y: y}
	if opts.Text != "" {
		off := lower
		if loc == TextUpper {
			off = upper
		}
		if err := s.canvas.Annotate(p, opts.Text, off[0]+opts.XOffset, off[1]+opts.YOffset); err != nil {
			return err
		}
	}
	s.ExpandBounds(x, y)
	if marker != MarkerNone {
		return s.canvas.Marker(p, marker, DefaultColor)
	}
	return nil
}

// Tangent draws the tangent to fn at x across the current x bounds, widened
// to include x, and returns its slope k and intercept m.
func (s *Session) Tangent(fn Func, x float64, opts TangentOptions) (k, m float64, err error) {
	stroke, err := newStroke(opts.Color, LineSolid)
	if err != nil {
		return 0, 0, err
	}
	k, m, err = geom.TangentAt(fn, x, opts.step())
	if err != nil {
		return 0, 0, NewDomainError("tangent", err)
	}
	s.log.Debug("tangent computed",
		zap.Float64("x", x),
		zap.Float64("k", k),
		zap.Float64("m", m))

	s.expandX(x)
	x1, x2 := s.xBounds.Min, s.xBounds.Max
	seg := []geom.Point{{X: x1, Y: k*x1 + m}, {X: x2, Y: k*x2 + m}}
	if err := s.canvas.Polyline(seg, stroke); err != nil {
		return 0, 0, err
	}
	return k, m, nil
}

// IntegralRegion samples fn over [x1, x2] for building a fill region.
func (s *Session) IntegralRegion(fn Func, x1, x2 float64, samples int) ([]geom.Point, error) {
	pts, err := geom.IntegralRegion(fn, x1, x2, samples)
	if err != nil {
		return nil, NewDomainError("integral", err)
	}
	return pts, nil
}

// IntegralBetween samples fn1 and fn2 over [x1, x2] for the area between curves.
func (s *Session) IntegralBetween(fn1, fn2 Func, x1, x2 float64, samples int) ([]geom.Band, error) {
	bands, err := geom.IntegralBetween(fn1, fn2, x1, x2, samples)
	if err != nil {
		return nil, NewDomainError("integral", err)
	}
	return bands, nil
}

// Integral shades the area between fn and the x-axis over [x1, x2].
func (s *Session) Integral(fn Func, x1, x2 float64) error {
	pts, err := s.IntegralRegion(fn, x1, x2, DefaultIntegralSamples)
	if err != nil {
		return err
	}
	poly := make([]geom.Point, 0, len(pts)+2)
	poly = append(poly, geom.Point{X: x1, Y: 0})
	poly = append(poly, pts...)
	poly = append(poly, geom.Point{X: x2, Y: 0})
	return s.shade(poly)
}

// ShadeBetween shades the area between fn1 and fn2 over [x1, x2].
func (s *Session) ShadeBetween(fn1, fn2 Func, x1, x2 float64) error {
	bands, err := s.IntegralBetween(fn1, fn2, x1, x2, DefaultIntegralSamples)
	if err != nil {
		return err
	}
	poly := make([]geom.Point, 0, 2*len(bands))
	for _, b := range bands {
		poly = append(poly, geom.Point{X: b.X, Y: b.Upper})
	}
	for i := len(bands) - 1; i >= 0; i-- {
		poly = append(poly, geom.Point{X: bands[i].X, Y: bands[i].Lower})
	}
	return s.shade(poly)
}

func (s *Session) shade(poly []geom.Point) error {
	if err := s.canvas.Polygon(poly, integralFill); err != nil {
		return err
	}
	for _, p := range poly {
		s.ExpandBounds(p.X, p.Y)
	}
	return nil
}

// VLine draws a vertical line at x. Missing ends default to the current y bounds.
func (s *Session) VLine(x float64, opts VLineOptions) error {
	stroke, err := newStroke(opts.Color, opts.Style)
	if err != nil {
		return err
	}
	if !geom.IsFinite(x) {
		return NewDomainError("vline", &geom.UndefinedError{X: x, Value: x})
	}
	y1, y2 := s.yBounds.Min, s.yBounds.Max
	if opts.YMin != nil {
		y1 = *opts.YMin
		s.expandY(y1)
	}
	if opts.YMax != nil {
		y2 = *opts.YMax
		s.expandY(y2)
	}
	s.expandX(x)
	return s.canvas.Polyline([]geom.Point{{X: x, Y: y1}, {X: x, Y: y2}}, stroke)
}

// VLineToFunc draws a vertical line from the x-axis up (or down) to fn(x).
func (s *Session) VLineToFunc(fn Func, x float64, opts VLineOptions) error {
	stroke, err := newStroke(opts.Color, opts.Style)
	if err != nil {
		return err
	}
	y := fn(x)
	if !geom.IsFinite(y) {
		return NewDomainError("vline", &geom.UndefinedError{X: x, Value: y})
	}
	s.ExpandBounds(x, y)
	return s.canvas.Polyline([]geom.Point{{X: x, Y: 0}, {X: x, Y: y}}, stroke)
}

func newStroke(color string, style LineStyle) (Stroke, error) {
	style = styleOrDefault(style)
	switch style {
	case LineSolid, LineDashed, LineDotted:
	default:
		return Stroke{}, &StyleError{Kind: "line style", Value: string(style)}
	}
	return Stroke{Color: colorOrDefault(color), Style: style}, nil
}

// finiteSegments splits pts into runs of consecutive finite samples.
func finiteSegments(pts []geom.Point) [][]geom.Point {
	var segs [][]geom.Point
	start := -1
	for i, p := range pts {
		if geom.IsFinite(p.Y) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			segs = append(segs, pts[start:i])
			start = -1
		}
	}
	if start >= 0 {
		segs = append(segs, pts[start:])
	}
	return segs
}
