package canvas

import (
	"bytes"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/mathplot-go/pkg/mathplot"
	"github.com/ukaji3/mathplot-go/pkg/mathplot/geom"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected color.Color
	}{
		{"", color.Black},
		{"k", color.Black},
		{"r", color.RGBA{R: 255, A: 255}},
		{"0.8", color.Gray{Y: 204}},
		{"0.5", color.Gray{Y: 128}},
		{"#ff8800", color.RGBA{R: 255, G: 136, B: 0, A: 255}},
		{"green", color.RGBA{R: 0, G: 128, B: 0, A: 255}},
		{"Red", color.RGBA{R: 255, A: 255}},
	}

	for _, tt := range tests {
		result, err := ParseColor(tt.input)
		if err != nil {
			t.Errorf("ParseColor(%q) failed: %v", tt.input, err)
			continue
		}
		if result != tt.expected {
			t.Errorf("ParseColor(%q) = %v, expected %v", tt.input, result, tt.expected)
		}
	}
}

func TestParseColorUnsupported(t *testing.T) {
	for _, s := range []string{"blurple", "1.5", "#12"} {
		_, err := ParseColor(s)
		assert.ErrorIs(t, err, mathplot.ErrUnsupportedStyle, s)
	}
}

func TestPixelsToLength(t *testing.T) {
	assert.Equal(t, vg.Inch, PixelsToLength(96))
	assert.Equal(t, vg.Points(480), PixelsToLength(640))
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, "png", FormatFromPath("out/figure.PNG"))
	assert.Equal(t, "svg", FormatFromPath("figure.svg"))
	assert.Equal(t, "", FormatFromPath("figure"))
	assert.Equal(t, "", FormatFromPath("figure."))
}

func TestNewRejectsFormat(t *testing.T) {
	_, err := New(&bytes.Buffer{}, Config{Format: "bmp"})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestRenderSVG(t *testing.T) {
	var buf bytes.Buffer
	c, err := New(&buf, Config{Width: 320, Height: 240, Format: "svg"})
	require.NoError(t, err)

	s := mathplot.New(c)
	require.NoError(t, s.PlotFunc(math.Sin, geom.Interval{Min: -3, Max: 3}, mathplot.PlotOptions{Color: "b"}))
	require.NoError(t, s.Point(1, 0.5, mathplot.PointOptions{Text: "P", Marker: mathplot.MarkerCircle}))
	require.NoError(t, s.Integral(math.Sin, 0, 2))
	_, _, err = s.Tangent(math.Sin, 0, mathplot.TangentOptions{Color: "green"})
	require.NoError(t, err)
	require.NoError(t, s.XTicks(1))
	s.HideTickLabels(false, true)
	require.NoError(t, s.Done())

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, "</svg>")
	assert.Equal(t, -3.0, c.p.X.Min)
	assert.Equal(t, 3.0, c.p.X.Max)
}

func TestRenderPNGEmpty(t *testing.T) {
	var buf bytes.Buffer
	c, err := New(&buf, DefaultConfig())
	require.NoError(t, err)
	require.NoError(t, c.Render(mathplot.Frame{XLabel: "x", YLabel: "y"}))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")))
}

func TestPolylineBadColor(t *testing.T) {
	c, err := New(&bytes.Buffer{}, DefaultConfig())
	require.NoError(t, err)
	err = c.Polyline([]geom.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, mathplot.Stroke{Color: "blurple"})
	var se *mathplot.StyleError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "color", se.Kind)
}

func TestApplyTicks(t *testing.T) {
	p := plot.New()
	applyTicks(&p.X, mathplot.Ticks{Mode: mathplot.TicksFixed, Values: []float64{-1, 0.30000000000000004, 2}})
	ticks := p.X.Tick.Marker.Ticks(-1, 2)
	require.Len(t, ticks, 3)
	assert.Equal(t, "-1", ticks[0].Label)
	assert.Equal(t, "0.3", ticks[1].Label)

	applyTicks(&p.Y, mathplot.Ticks{Mode: mathplot.TicksNone, HideLabels: true})
	assert.Empty(t, p.Y.Tick.Marker.Ticks(0, 1))
	assert.Equal(t, color.Color(color.Transparent), p.Y.Tick.Label.Color)
}

func TestAxisRange(t *testing.T) {
	assert.Equal(t, geom.Interval{Min: -2, Max: 5}, axisRange(geom.Interval{Min: -2, Max: 5}, 0, 1))
	assert.Equal(t, geom.Interval{Min: 0, Max: 1}, axisRange(geom.Interval{}, 0, 1))
	assert.Equal(t, geom.Interval{Min: -1, Max: 1}, axisRange(geom.Interval{}, math.Inf(1), math.Inf(-1)))
}
