package script

import (
	"fmt"

	"github.com/ukaji3/mathplot-go/pkg/mathplot"
	"github.com/ukaji3/mathplot-go/pkg/mathplot/geom"
	"github.com/ukaji3/mathplot-go/pkg/mathplot/models"
)

// Run applies the figure's labels and steps to s in order, stopping at the
// first failing step. It does not call s.Done.
func Run(s *mathplot.Session, fig *models.Figure, funcs map[string]geom.Func) error {
	if fig.XLabel != "" {
		s.SetXLabel(fig.XLabel)
	}
	if fig.YLabel != "" {
		s.SetYLabel(fig.YLabel)
	}

	for i, step := range fig.Steps {
		if err := runStep(s, step, funcs); err != nil {
			return NewStepError(i, step.Op, err)
		}
	}
	return nil
}

func runStep(s *mathplot.Session, st models.Step, funcs map[string]geom.Func) error {
	switch st.Op {
	case models.OpPlot:
		fn, err := lookup(funcs, st.Fn)
		if err != nil {
			return err
		}
		domain, err := interval("domain", st.Domain)
		if err != nil {
			return err
		}
		style, err := mathplot.ParseLineStyle(st.Style)
		if err != nil {
			return err
		}
		opts := mathplot.PlotOptions{Name: st.Fn, Color: st.Color, Points: st.Points, Style: style}
		if st.Range != nil {
			r, err := interval("range", st.Range)
			if err != nil {
				return err
			}
			opts.Range = &r
		}
		return s.PlotFunc(fn, domain, opts)

	case models.OpPoint, models.OpPointF:
		opts, err := pointOptions(st)
		if err != nil {
			return err
		}
		if st.Op == models.OpPoint {
			return s.Point(st.X, st.Y, opts)
		}
		fn, err := lookup(funcs, st.Fn)
		if err != nil {
			return err
		}
		return s.PointOnFunc(fn, st.X, opts)

	case models.OpLabel, models.OpLabelF:
		opts := mathplot.DefaultLabelOptions()
		if st.Location != "" {
			loc, err := mathplot.ParseTextLocation(st.Location)
			if err != nil {
				return err
			}
			opts.Align = loc
		}
		opts.XOffset, opts.YOffset = st.XOffset, st.YOffset
		if st.Op == models.OpLabel {
			return s.Label(st.X, st.Y, st.Text, opts)
		}
		fn, err := lookup(funcs, st.Fn)
		if err != nil {
			return err
		}
		return s.LabelOnFunc(fn, st.X, st.Text, opts)

	case models.OpTangent:
		fn, err := lookup(funcs, st.Fn)
		if err != nil {
			return err
		}
		_, _, err = s.Tangent(fn, st.X, mathplot.TangentOptions{H: st.H, Color: st.Color})
		return err

	case models.OpIntegral:
		fn, err := lookup(funcs, st.Fn)
		if err != nil {
			return err
		}
		d, err := interval("domain", st.Domain)
		if err != nil {
			return err
		}
		return s.Integral(fn, d.Min, d.Max)

	case models.OpBetween:
		fn1, err := lookup(funcs, st.Fn)
		if err != nil {
			return err
		}
		fn2, err := lookup(funcs, st.Fn2)
		if err != nil {
			return err
		}
		d, err := interval("domain", st.Domain)
		if err != nil {
			return err
		}
		return s.ShadeBetween(fn1, fn2, d.Min, d.Max)

	case models.OpVLine, models.OpVLineF:
		style, err := mathplot.ParseLineStyle(st.Style)
		if err != nil {
			return err
		}
		opts := mathplot.VLineOptions{YMin: st.YMin, YMax: st.YMax, Color: st.Color, Style: style}
		if st.Op == models.OpVLine {
			return s.VLine(st.X, opts)
		}
		fn, err := lookup(funcs, st.Fn)
		if err != nil {
			return err
		}
		return s.VLineToFunc(fn, st.X, opts)

	case models.OpXTicks:
		if st.Step == nil {
			s.HideXTicks()
			return nil
		}
		return s.XTicks(*st.Step)

	case models.OpYTicks:
		if st.Step == nil {
			s.HideYTicks()
			return nil
		}
		return s.YTicks(*st.Step)

	case models.OpHideTickLabels:
		s.HideTickLabels(boolOr(st.HideX, true), boolOr(st.HideY, true))
		return nil
	}
	return fmt.Errorf("%w: unknown op %q", ErrInvalidScript, st.Op)
}

func pointOptions(st models.Step) (mathplot.PointOptions, error) {
	opts := mathplot.DefaultPointOptions()
	opts.Text = st.Text
	opts.XOffset, opts.YOffset = st.XOffset, st.YOffset
	if st.Location != "" {
		loc, err := mathplot.ParseTextLocation(st.Location)
		if err != nil {
			return opts, err
		}
		opts.Location = loc
	}
	if st.Marker != "" {
		m, err := mathplot.ParseMarker(st.Marker)
		if err != nil {
			return opts, err
		}
		opts.Marker = m
	}
	return opts, nil
}

func lookup(funcs map[string]geom.Func, name string) (geom.Func, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: missing function name", ErrInvalidScript)
	}
	fn, ok := funcs[name]
	if !ok {
		return nil, fmt.Errorf("%w: undefined function %q", ErrInvalidScript, name)
	}
	return fn, nil
}

func interval(field string, v []float64) (geom.Interval, error) {
	if len(v) != 2 {
		return geom.Interval{}, fmt.Errorf("%w: %s needs 2 values, got %d", ErrInvalidScript, field, len(v))
	}
	return geom.Interval{Min: v[0], Max: v[1]}, nil
}

func boolOr(b *bool, def bool) bool {
	if b == nil {
		return def
	}
	return *b
}
