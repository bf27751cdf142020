package mathplot

import (
	"fmt"

	"github.com/ukaji3/mathplot-go/pkg/mathplot/geom"
	"github.com/ukaji3/mathplot-go/pkg/mathplot/models"
	"go.uber.org/zap"
)

// Func is a real function of one variable.
type Func = geom.Func

// Stroke describes how a line is drawn.
type Stroke struct {
	Color string
	Style LineStyle
}

// Fill describes how a closed region is shaded.
type Fill struct {
	Face string
	Edge string
}

// Canvas is the drawing collaborator a Session delegates to.
// Coordinates are in data space; text offsets are in points.
type Canvas interface {
	Polyline(pts []geom.Point, s Stroke) error
	Marker(p geom.Point, m Marker, color string) error
	Annotate(p geom.Point, text string, dx, dy float64) error
	Polygon(pts []geom.Point, f Fill) error
	Render(f Frame) error
}

// TickMode selects how an axis places its ticks.
type TickMode int

const (
	// TicksAuto lets the canvas choose tick positions.
	TicksAuto TickMode = iota
	// TicksNone draws no ticks.
	TicksNone
	// TicksFixed draws ticks at Values.
	TicksFixed
)

// Ticks is the tick configuration of one axis.
type Ticks struct {
	Mode       TickMode
	Values     []float64
	HideLabels bool
}

// Frame is the final view state handed to Canvas.Render.
// An empty bounds interval means the canvas picks the range itself.
type Frame struct {
	XBounds geom.Interval
	YBounds geom.Interval
	XLabel  string
	YLabel  string
	XTicks  Ticks
	YTicks  Ticks
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger used for debug output.
func WithLogger(l *zap.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// Session holds the view state shared by a sequence of drawing calls.
// A Session is not safe for concurrent use.
type Session struct {
	canvas  Canvas
	log     *zap.Logger
	xBounds geom.Interval
	yBounds geom.Interval
	xLabel  string
	yLabel  string
	xTicks  Ticks
	yTicks  Ticks
	series  []models.Series
}

// New creates a session drawing onto c.
func New(c Canvas, opts ...Option) *Session {
	s := &Session{
		canvas: c,
		log:    zap.NewNop(),
		xLabel: "x",
		yLabel: "y",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// XBounds returns the current x bounding interval.
func (s *Session) XBounds() geom.Interval { return s.xBounds }

// YBounds returns the current y bounding interval.
func (s *Session) YBounds() geom.Interval { return s.yBounds }

// XLabel returns the x-axis text.
func (s *Session) XLabel() string { return s.xLabel }

// YLabel returns the y-axis text.
func (s *Session) YLabel() string { return s.yLabel }

// Series returns the curves plotted so far, in plotting order.
func (s *Session) Series() []models.Series {
	out := make([]models.Series, len(s.series))
	copy(out, s.series)
	return out
}

// ExpandBounds widens the bounding box to include (x, y).
func (s *Session) ExpandBounds(x, y float64) {
	s.expandX(x)
	s.expandY(y)
}

func (s *Session) expandX(x float64) {
	if s.xBounds.Include(x) {
		s.log.Debug("x bounds expanded",
			zap.Float64("min", s.xBounds.Min),
			zap.Float64("max", s.xBounds.Max))
	}
}

func (s *Session) expandY(y float64) {
	if s.yBounds.Include(y) {
		s.log.Debug("y bounds expanded",
			zap.Float64("min", s.yBounds.Min),
			zap.Float64("max", s.yBounds.Max))
	}
}

// SetXLabel sets the x-axis text.
func (s *Session) SetXLabel(text string) { s.xLabel = text }

// SetYLabel sets the y-axis text.
func (s *Session) SetYLabel(text string) { s.yLabel = text }

// XTicks places x ticks every step units across the current x bounds.
func (s *Session) XTicks(step float64) error {
	t, err := fixedTicks(s.xBounds, step)
	if err != nil {
		return err
	}
	t.HideLabels = s.xTicks.HideLabels
	s.xTicks = t
	return nil
}

// YTicks places y ticks every step units across the current y bounds.
func (s *Session) YTicks(step float64) error {
	t, err := fixedTicks(s.yBounds, step)
	if err != nil {
		return err
	}
	t.HideLabels = s.yTicks.HideLabels
	s.yTicks = t
	return nil
}

// HideXTicks removes all x ticks.
func (s *Session) HideXTicks() {
	s.xTicks = Ticks{Mode: TicksNone, HideLabels: s.xTicks.HideLabels}
}

// HideYTicks removes all y ticks.
func (s *Session) HideYTicks() {
	s.yTicks = Ticks{Mode: TicksNone, HideLabels: s.yTicks.HideLabels}
}

// HideTickLabels hides (true) or shows (false) the numbers on each axis' ticks.
func (s *Session) HideTickLabels(x, y bool) {
	s.xTicks.HideLabels = x
	s.yTicks.HideLabels = y
}

// MaxTicks caps the number of ticks XTicks and YTicks may place on one axis.
const MaxTicks = 10000

func fixedTicks(b geom.Interval, step float64) (Ticks, error) {
	if !(step > 0) || !geom.IsFinite(step) {
		return Ticks{}, fmt.Errorf("%w: %g", ErrInvalidStep, step)
	}
	if n := b.Span() / step; n > MaxTicks {
		return Ticks{}, fmt.Errorf("%w: %g gives %.0f ticks, limit is %d", ErrInvalidStep, step, n, MaxTicks)
	}
	return Ticks{Mode: TicksFixed, Values: geom.Arange(b.Min, b.Max, step)}, nil
}

// Frame returns the view state that Done hands to the canvas.
func (s *Session) Frame() Frame {
	return Frame{
		XBounds: s.xBounds,
		YBounds: s.yBounds,
		XLabel:  s.xLabel,
		YLabel:  s.yLabel,
		XTicks:  s.xTicks,
		YTicks:  s.yTicks,
	}
}

// Done renders the composed figure.
func (s *Session) Done() error {
	f := s.Frame()
	s.log.Debug("rendering figure",
		zap.Float64("x_min", f.XBounds.Min),
		zap.Float64("x_max", f.XBounds.Max),
		zap.Float64("y_min", f.YBounds.Min),
		zap.Float64("y_max", f.YBounds.Max),
		zap.Int("series", len(s.series)))
	if err := s.canvas.Render(f); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}
	return nil
}
