package mathplot

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/mathplot-go/pkg/mathplot/geom"
	"go.uber.org/zap/zaptest"
)

type polyline struct {
	pts    []geom.Point
	stroke Stroke
}

type annotation struct {
	p      geom.Point
	text   string
	dx, dy float64
}

type marker struct {
	p geom.Point
	m Marker
}

// recorder is a Canvas that records every call.
type recorder struct {
	lines    []polyline
	notes    []annotation
	markers  []marker
	polygons [][]geom.Point
	frames   []Frame
	err      error
}

func (r *recorder) Polyline(pts []geom.Point, s Stroke) error {
	r.lines = append(r.lines, polyline{pts: pts, stroke: s})
	return r.err
}

func (r *recorder) Marker(p geom.Point, m Marker, color string) error {
	r.markers = append(r.markers, marker{p: p, m: m})
	return r.err
}

func (r *recorder) Annotate(p geom.Point, text string, dx, dy float64) error {
	r.notes = append(r.notes, annotation{p: p, text: text, dx: dx, dy: dy})
	return r.err
}

func (r *recorder) Polygon(pts []geom.Point, f Fill) error {
	r.polygons = append(r.polygons, pts)
	return r.err
}

func (r *recorder) Render(f Frame) error {
	r.frames = append(r.frames, f)
	return r.err
}

func square(x float64) float64 { return x * x }

func TestNewSessionDefaults(t *testing.T) {
	s := New(&recorder{})
	assert.Equal(t, geom.Interval{}, s.XBounds())
	assert.Equal(t, geom.Interval{}, s.YBounds())
	assert.Equal(t, "x", s.XLabel())
	assert.Equal(t, "y", s.YLabel())
	assert.Empty(t, s.Series())
}

func TestExpandBoundsAnyOrder(t *testing.T) {
	tests := []struct {
		name     string
		existing []float64
		x1, x2   float64
		min, max float64
	}{
		{"from origin", nil, 1, 3, 0, 3},
		{"negative pair", nil, -4, -2, -4, 0},
		{"straddle", []float64{-1, 1}, -3, 5, -3, 5},
		{"inside existing", []float64{-10, 10}, -1, 1, -10, 10},
	}

	for _, tt := range tests {
		for _, order := range [][2]float64{{tt.x1, tt.x2}, {tt.x2, tt.x1}} {
			s := New(&recorder{})
			for _, v := range tt.existing {
				s.ExpandBounds(v, 0)
			}
			s.ExpandBounds(order[0], 0)
			s.ExpandBounds(order[1], 0)
			assert.Equal(t, geom.Interval{Min: tt.min, Max: tt.max}, s.XBounds(), "%s order %v", tt.name, order)
		}
	}
}

func TestExpandBoundsIdempotent(t *testing.T) {
	s := New(&recorder{}, WithLogger(zaptest.NewLogger(t)))
	s.ExpandBounds(2, -3)
	xb, yb := s.XBounds(), s.YBounds()
	s.ExpandBounds(2, -3)
	s.ExpandBounds(1, -1)
	assert.Equal(t, xb, s.XBounds())
	assert.Equal(t, yb, s.YBounds())
}

func TestTangentParabola(t *testing.T) {
	rec := &recorder{}
	s := New(rec)
	s.ExpandBounds(-1, 0)
	s.ExpandBounds(5, 0)

	k, m, err := s.Tangent(square, 2, DefaultTangentOptions())
	require.NoError(t, err)
	assert.InDelta(t, 4, k, 1e-6)
	assert.InDelta(t, -4, m, 1e-6)

	require.Len(t, rec.lines, 1)
	line := rec.lines[0].pts
	assert.Equal(t, -1.0, line[0].X)
	assert.Equal(t, 5.0, line[1].X)
	assert.InDelta(t, -8, line[0].Y, 1e-5)
	assert.InDelta(t, 16, line[1].Y, 1e-5)
}

func TestTangentExpandsToPoint(t *testing.T) {
	rec := &recorder{}
	s := New(rec)
	s.ExpandBounds(-1, 0)
	s.ExpandBounds(1, 0)

	_, _, err := s.Tangent(square, 3, DefaultTangentOptions())
	require.NoError(t, err)
	assert.Equal(t, geom.Interval{Min: -1, Max: 3}, s.XBounds())
	require.Len(t, rec.lines, 1)
	assert.Equal(t, 3.0, rec.lines[0].pts[1].X)
}

func TestTangentUndefined(t *testing.T) {
	rec := &recorder{}
	s := New(rec)
	_, _, err := s.Tangent(math.Sqrt, 0, TangentOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUndefined))
	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "tangent", de.Op)
	assert.Empty(t, rec.lines)
}

func TestPlotFuncBounds(t *testing.T) {
	rec := &recorder{}
	s := New(rec)

	require.NoError(t, s.PlotFunc(square, geom.Interval{Min: -2, Max: 3}, DefaultPlotOptions()))
	assert.Equal(t, geom.Interval{Min: -2, Max: 3}, s.XBounds())
	assert.Equal(t, 0.0, s.YBounds().Min)
	assert.InDelta(t, 9, s.YBounds().Max, 1e-9)

	// An explicit range widens but never shrinks.
	require.NoError(t, s.PlotFunc(square, geom.Interval{Min: 0, Max: 1},
		PlotOptions{Range: &geom.Interval{Min: -5, Max: 2}}))
	assert.Equal(t, geom.Interval{Min: -2, Max: 3}, s.XBounds())
	assert.Equal(t, -5.0, s.YBounds().Min)
	assert.InDelta(t, 9, s.YBounds().Max, 1e-9)

	series := s.Series()
	require.Len(t, series, 2)
	assert.Equal(t, "f1", series[0].Name)
	assert.Equal(t, "f2", series[1].Name)
	assert.Len(t, series[0].Points, DefaultPoints)
}

func TestPlotFuncBreaksAtPole(t *testing.T) {
	rec := &recorder{}
	s := New(rec)

	inverse := func(x float64) float64 { return 1 / x }
	require.NoError(t, s.PlotFunc(inverse, geom.Interval{Min: -1, Max: 1}, PlotOptions{Points: 5}))
	require.Len(t, rec.lines, 2)
	assert.Len(t, rec.lines[0].pts, 2)
	assert.Len(t, rec.lines[1].pts, 2)
	assert.Equal(t, geom.Interval{Min: -2, Max: 2}, s.YBounds())
}

func TestPlotFuncErrors(t *testing.T) {
	tests := []struct {
		name   string
		fn     Func
		domain geom.Interval
		opts   PlotOptions
		target error
	}{
		{"empty domain", square, geom.Interval{Min: 1, Max: 1}, PlotOptions{}, ErrInvalidDomain},
		{"nan domain", square, geom.Interval{Min: math.NaN(), Max: 1}, PlotOptions{}, ErrInvalidDomain},
		{"nowhere defined", math.Log, geom.Interval{Min: -3, Max: -1}, PlotOptions{}, ErrUndefined},
		{"bad style", square, geom.Interval{Min: 0, Max: 1}, PlotOptions{Style: "wavy"}, ErrUnsupportedStyle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(&recorder{})
			err := s.PlotFunc(tt.fn, tt.domain, tt.opts)
			assert.ErrorIs(t, err, tt.target)
			assert.Equal(t, geom.Interval{}, s.XBounds())
		})
	}
}

func TestPointTextOffsets(t *testing.T) {
	tests := []struct {
		name   string
		onFunc bool
		loc    TextLocation
		dx, dy float64
	}{
		{"free lower", false, TextLower, -6 + 1, -15 + 2},
		{"free upper", false, TextUpper, 0 + 1, 2 + 2},
		{"graph lower", true, TextLower, 0 + 1, -15 + 2},
		{"graph upper", true, TextUpper, 5 + 1, 10 + 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recorder{}
			s := New(rec)
			opts := PointOptions{Text: "P", Location: tt.loc, Marker: MarkerCircle, XOffset: 1, YOffset: 2}
			var err error
			if tt.onFunc {
				err = s.PointOnFunc(square, 3, opts)
			} else {
				err = s.Point(3, 9, opts)
			}
			require.NoError(t, err)
			require.Len(t, rec.notes, 1)
			assert.Equal(t, geom.Point{X: 3, Y: 9}, rec.notes[0].p)
			assert.Equal(t, tt.dx, rec.notes[0].dx)
			assert.Equal(t, tt.dy, rec.notes[0].dy)
			require.Len(t, rec.markers, 1)
			assert.Equal(t, MarkerCircle, rec.markers[0].m)
			assert.Equal(t, geom.Interval{Min: 0, Max: 3}, s.XBounds())
			assert.Equal(t, geom.Interval{Min: 0, Max: 9}, s.YBounds())
		})
	}
}

func TestPointDefaultMarker(t *testing.T) {
	rec := &recorder{}
	s := New(rec)
	require.NoError(t, s.Point(1, 2, PointOptions{Text: "P"}))
	require.NoError(t, s.PointOnFunc(square, 2, PointOptions{}))
	require.Len(t, rec.markers, 2)
	assert.Equal(t, MarkerCircle, rec.markers[0].m)
	assert.Equal(t, MarkerCircle, rec.markers[1].m)
	assert.Equal(t, geom.Point{X: 2, Y: 4}, rec.markers[1].p)
}

func TestLabelHasNoMarker(t *testing.T) {
	rec := &recorder{}
	s := New(rec)
	require.NoError(t, s.Label(-2, 1, "A", DefaultLabelOptions()))
	require.NoError(t, s.LabelOnFunc(square, 2, "f", LabelOptions{}))
	assert.Empty(t, rec.markers)
	require.Len(t, rec.notes, 2)
	assert.Equal(t, 0.0, rec.notes[0].dx)
	assert.Equal(t, 2.0, rec.notes[0].dy)
	assert.Equal(t, geom.Point{X: 2, Y: 4}, rec.notes[1].p)
	assert.Equal(t, geom.Interval{Min: -2, Max: 2}, s.XBounds())
}

func TestPointUnsupportedStyle(t *testing.T) {
	s := New(&recorder{})
	err := s.Point(1, 1, PointOptions{Marker: "*"})
	assert.ErrorIs(t, err, ErrUnsupportedStyle)

	err = s.Point(1, 1, PointOptions{Location: "middle"})
	var se *StyleError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "text location", se.Kind)
}

func TestIntegralPolygon(t *testing.T) {
	rec := &recorder{}
	s := New(rec)

	require.NoError(t, s.Integral(square, 1, 2))
	require.Len(t, rec.polygons, 1)
	poly := rec.polygons[0]
	require.Len(t, poly, DefaultIntegralSamples+2)
	assert.Equal(t, geom.Point{X: 1, Y: 0}, poly[0])
	assert.Equal(t, geom.Point{X: 2, Y: 0}, poly[len(poly)-1])
	assert.InDelta(t, 4, s.YBounds().Max, 1e-9)
}

func TestIntegralRegionSamples(t *testing.T) {
	s := New(&recorder{})
	pts, err := s.IntegralRegion(square, 0, 4, 5)
	require.NoError(t, err)
	xs := make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.X
	}
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, xs)

	_, err = s.IntegralRegion(square, 4, 0, 5)
	assert.ErrorIs(t, err, ErrInvalidDomain)
}

func TestShadeBetweenPolygon(t *testing.T) {
	rec := &recorder{}
	s := New(rec)
	line := func(x float64) float64 { return x }

	require.NoError(t, s.ShadeBetween(square, line, 0, 1))
	poly := rec.polygons[0]
	require.Len(t, poly, 2*DefaultIntegralSamples)
	assert.Equal(t, 0.0, poly[0].X)
	assert.Equal(t, 1.0, poly[DefaultIntegralSamples-1].X)
	assert.Equal(t, 1.0, poly[DefaultIntegralSamples].X)
	assert.Equal(t, 0.0, poly[len(poly)-1].X)

	_, err := s.IntegralBetween(square, math.Log, 0, 1, 5)
	assert.ErrorIs(t, err, ErrUndefined)
}

func TestVLine(t *testing.T) {
	rec := &recorder{}
	s := New(rec)
	s.ExpandBounds(0, -2)
	s.ExpandBounds(0, 5)

	require.NoError(t, s.VLine(7, VLineOptions{Style: LineDashed, Color: "red"}))
	assert.Equal(t, []geom.Point{{X: 7, Y: -2}, {X: 7, Y: 5}}, rec.lines[0].pts)
	assert.Equal(t, Stroke{Color: "red", Style: LineDashed}, rec.lines[0].stroke)
	assert.Equal(t, 7.0, s.XBounds().Max)

	top := 8.0
	require.NoError(t, s.VLine(1, VLineOptions{YMax: &top}))
	assert.Equal(t, []geom.Point{{X: 1, Y: -2}, {X: 1, Y: 8}}, rec.lines[1].pts)
	assert.Equal(t, 8.0, s.YBounds().Max)

	require.NoError(t, s.VLineToFunc(square, 3, VLineOptions{}))
	assert.Equal(t, []geom.Point{{X: 3, Y: 0}, {X: 3, Y: 9}}, rec.lines[2].pts)
	assert.Equal(t, Stroke{Color: DefaultColor, Style: LineSolid}, rec.lines[2].stroke)
}

func TestTicksAndDone(t *testing.T) {
	rec := &recorder{}
	s := New(rec)
	s.ExpandBounds(-2, -1)
	s.ExpandBounds(4, 3)

	require.NoError(t, s.XTicks(2))
	require.NoError(t, s.YTicks(1))
	assert.ErrorIs(t, s.XTicks(0), ErrInvalidStep)
	s.HideTickLabels(true, false)
	s.SetXLabel("t")
	s.SetYLabel("v(t)")

	require.NoError(t, s.Done())
	require.Len(t, rec.frames, 1)
	f := rec.frames[0]
	assert.Equal(t, TicksFixed, f.XTicks.Mode)
	assert.Equal(t, []float64{-2, 0, 2}, f.XTicks.Values)
	assert.True(t, f.XTicks.HideLabels)
	assert.Equal(t, []float64{-1, 0, 1, 2}, f.YTicks.Values)
	assert.False(t, f.YTicks.HideLabels)
	assert.Equal(t, "t", f.XLabel)
	assert.Equal(t, "v(t)", f.YLabel)

	s.HideXTicks()
	s.HideYTicks()
	require.NoError(t, s.Done())
	assert.Equal(t, TicksNone, rec.frames[1].XTicks.Mode)
	assert.True(t, rec.frames[1].XTicks.HideLabels)
	assert.Equal(t, TicksNone, rec.frames[1].YTicks.Mode)
}

func TestTicksLimit(t *testing.T) {
	s := New(&recorder{})
	s.ExpandBounds(0, 0)
	s.ExpandBounds(10, 10)

	assert.ErrorIs(t, s.XTicks(1e-7), ErrInvalidStep)
	assert.ErrorIs(t, s.YTicks(1e-9), ErrInvalidStep)
	require.NoError(t, s.XTicks(0.01))

	require.NoError(t, s.Done())
}

func TestDoneWrapsCanvasError(t *testing.T) {
	boom := errors.New("disk full")
	s := New(&recorder{err: boom})
	err := s.Done()
	assert.ErrorIs(t, err, boom)
}
