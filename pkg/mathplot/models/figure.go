package models

// Figure represents a drawing script: named functions and an ordered list of steps.
type Figure struct {
	// Output is the image file path. Its extension selects the format.
	Output string `yaml:"output,omitempty"`
	// Width is the image width in pixels.
	Width int `yaml:"width,omitempty"`
	// Height is the image height in pixels.
	Height int `yaml:"height,omitempty"`
	// Latex renders labels with the LaTeX text handler.
	Latex bool `yaml:"latex,omitempty"`
	// Functions maps a function name to an expression in x.
	Functions map[string]string `yaml:"functions"`
	// XLabel is the x-axis text (default "x").
	XLabel string `yaml:"xlabel,omitempty"`
	// YLabel is the y-axis text (default "y").
	YLabel string `yaml:"ylabel,omitempty"`
	// Steps are the drawing directives, applied in order.
	Steps []Step `yaml:"steps"`
}

// Op names a drawing directive.
type Op string

const (
	OpPlot           Op = "plot"
	OpPoint          Op = "point"
	OpPointF         Op = "pointf"
	OpLabel          Op = "label"
	OpLabelF         Op = "labelf"
	OpTangent        Op = "tangent"
	OpIntegral       Op = "integral"
	OpBetween        Op = "between"
	OpVLine          Op = "vline"
	OpVLineF         Op = "vlinef"
	OpXTicks         Op = "xticks"
	OpYTicks         Op = "yticks"
	OpHideTickLabels Op = "hidetickslabels"
)

// Step represents one drawing directive. Fields not used by Op are ignored.
type Step struct {
	// Op is the directive name.
	Op Op `yaml:"op"`
	// Fn is the function name for plot, pointf, labelf, tangent, integral and vlinef.
	Fn string `yaml:"fn,omitempty"`
	// Fn2 is the second function for between.
	Fn2 string `yaml:"fn2,omitempty"`
	// Domain is [x1, x2] for plot, integral and between.
	Domain []float64 `yaml:"domain,omitempty"`
	// Range is the optional [y1, y2] for plot.
	Range []float64 `yaml:"range,omitempty"`
	// X is the x-coordinate for point, label, tangent and vline steps.
	X float64 `yaml:"x,omitempty"`
	// Y is the y-coordinate for point and label.
	Y float64 `yaml:"y,omitempty"`
	// Text is the annotation text.
	Text string `yaml:"text,omitempty"`
	// Location is "upper" or "lower".
	Location string `yaml:"location,omitempty"`
	// Marker is "o", "." or "none".
	Marker string `yaml:"marker,omitempty"`
	// XOffset and YOffset fine tune text placement, in points.
	XOffset float64 `yaml:"xoffset,omitempty"`
	YOffset float64 `yaml:"yoffset,omitempty"`
	// Color is the stroke color.
	Color string `yaml:"color,omitempty"`
	// Style is the line style identifier ("-", "--", ":", ...).
	Style string `yaml:"style,omitempty"`
	// Points is the sample count for plot.
	Points int `yaml:"points,omitempty"`
	// H is the finite-difference step for tangent.
	H float64 `yaml:"h,omitempty"`
	// YMin and YMax bound a vline. Nil means the current y bounds.
	YMin *float64 `yaml:"ymin,omitempty"`
	YMax *float64 `yaml:"ymax,omitempty"`
	// Step is the tick spacing for xticks and yticks. Nil hides the ticks.
	Step *float64 `yaml:"step,omitempty"`
	// HideX and HideY select which tick labels hidetickslabels hides.
	HideX *bool `yaml:"hide_x,omitempty"`
	HideY *bool `yaml:"hide_y,omitempty"`
}
