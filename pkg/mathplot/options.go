// Package mathplot draws annotated function graphs for math coursework:
// curves, labelled points, tangents, shaded integrals and axis styling.
package mathplot

import "github.com/ukaji3/mathplot-go/pkg/mathplot/geom"

// LineStyle represents the stroke pattern of a line.
type LineStyle string

const (
	// LineSolid draws a continuous stroke.
	LineSolid LineStyle = "solid"
	// LineDashed draws long dashes.
	LineDashed LineStyle = "dashed"
	// LineDotted draws short dots.
	LineDotted LineStyle = "dotted"
)

// lineStyleAliases maps the short identifiers used in scripts to line styles.
var lineStyleAliases = map[string]LineStyle{
	"":       LineSolid,
	"-":      LineSolid,
	"solid":  LineSolid,
	"--":     LineDashed,
	"dashed": LineDashed,
	".":      LineDotted,
	"..":     LineDotted,
	":":      LineDotted,
	"dotted": LineDotted,
}

// ParseLineStyle resolves a line style identifier such as "-", "--" or ":".
func ParseLineStyle(s string) (LineStyle, error) {
	if ls, ok := lineStyleAliases[s]; ok {
		return ls, nil
	}
	return "", &StyleError{Kind: "line style", Value: s}
}

// Marker represents the glyph drawn at a point.
type Marker string

const (
	// MarkerNone draws no glyph.
	MarkerNone Marker = "none"
	// MarkerCircle draws a small filled circle.
	MarkerCircle Marker = "o"
	// MarkerDot draws a dot.
	MarkerDot Marker = "."
)

// ParseMarker resolves a marker identifier. The empty string means no marker.
func ParseMarker(s string) (Marker, error) {
	switch s {
	case "", "none":
		return MarkerNone, nil
	case "o":
		return MarkerCircle, nil
	case ".":
		return MarkerDot, nil
	}
	return "", &StyleError{Kind: "marker", Value: s}
}

// TextLocation places annotation text relative to its anchor.
type TextLocation string

const (
	// TextLower places text below the anchor.
	TextLower TextLocation = "lower"
	// TextUpper places text above the anchor.
	TextUpper TextLocation = "upper"
)

// ParseTextLocation resolves "lower" or "upper".
func ParseTextLocation(s string) (TextLocation, error) {
	switch TextLocation(s) {
	case TextLower, TextUpper:
		return TextLocation(s), nil
	}
	return "", &StyleError{Kind: "text location", Value: s}
}

// DefaultColor is used when an option leaves the color empty.
const DefaultColor = "k"

// DefaultPoints is the number of samples used to draw a function.
const DefaultPoints = 200

// DefaultIntegralSamples is the number of samples used to build a shaded region.
const DefaultIntegralSamples = 50

// DefaultTangentStep is the finite-difference step used for tangents.
const DefaultTangentStep = 1e-4

// PlotOptions configures PlotFunc.
type PlotOptions struct {
	// Name identifies the series in exported value tables.
	// If empty, the session assigns f1, f2, ... in plotting order.
	Name string
	// Range is the y-interval to show. If nil, the sampled min/max is used.
	Range *geom.Interval
	// Color is the stroke color.
	Color string
	// Points is the number of samples. Values below 2 use DefaultPoints.
	Points int
	// Style is the stroke pattern.
	Style LineStyle
}

// DefaultPlotOptions returns default plotting options.
func DefaultPlotOptions() PlotOptions {
	return PlotOptions{
		Color:  DefaultColor,
		Points: DefaultPoints,
		Style:  LineSolid,
	}
}

func (o PlotOptions) points() int {
	if o.Points < 2 {
		return DefaultPoints
	}
	return o.Points
}

// PointOptions configures Point and PointOnFunc.
type PointOptions struct {
	// Text is the annotation shown next to the point. Empty means no text.
	Text string
	// Location places the text above or below the point.
	Location TextLocation
	// Marker is the glyph drawn at the point.
	Marker Marker
	// XOffset moves the text right (positive) or left, in points.
	XOffset float64
	// YOffset moves the text up (positive) or down, in points.
	YOffset float64
}

// DefaultPointOptions returns default point options.
func DefaultPointOptions() PointOptions {
	return PointOptions{
		Location: TextLower,
		Marker:   MarkerCircle,
	}
}

// LabelOptions configures Label and LabelOnFunc.
type LabelOptions struct {
	// Align places the text above or below the anchor.
	Align TextLocation
	// XOffset moves the text right (positive) or left, in points.
	XOffset float64
	// YOffset moves the text up (positive) or down, in points.
	YOffset float64
}

// DefaultLabelOptions returns default label options.
func DefaultLabelOptions() LabelOptions {
	return LabelOptions{Align: TextUpper}
}

// TangentOptions configures Tangent.
type TangentOptions struct {
	// H is the finite-difference step. Zero uses DefaultTangentStep.
	H float64
	// Color is the stroke color.
	Color string
}

// DefaultTangentOptions returns default tangent options.
func DefaultTangentOptions() TangentOptions {
	return TangentOptions{
		H:     DefaultTangentStep,
		Color: DefaultColor,
	}
}

func (o TangentOptions) step() float64 {
	if o.H == 0 {
		return DefaultTangentStep
	}
	return o.H
}

// VLineOptions configures VLine and VLineToFunc.
type VLineOptions struct {
	// YMin is the lower end of the line. If nil, the current y bounds are used.
	YMin *float64
	// YMax is the upper end of the line. If nil, the current y bounds are used.
	YMax *float64
	// Color is the stroke color.
	Color string
	// Style is the stroke pattern.
	Style LineStyle
}

// DefaultVLineOptions returns default vertical line options.
func DefaultVLineOptions() VLineOptions {
	return VLineOptions{
		Color: DefaultColor,
		Style: LineSolid,
	}
}

func colorOrDefault(c string) string {
	if c == "" {
		return DefaultColor
	}
	return c
}

func styleOrDefault(s LineStyle) LineStyle {
	if s == "" {
		return LineSolid
	}
	return s
}
