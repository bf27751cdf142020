package script

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ukaji3/mathplot-go/pkg/mathplot"
	"github.com/ukaji3/mathplot-go/pkg/mathplot/canvas"
	"github.com/ukaji3/mathplot-go/pkg/mathplot/models"
	"github.com/ukaji3/mathplot-go/pkg/mathplot/table"
	"go.uber.org/zap"
)

// Options overrides parts of a figure script when rendering.
// Zero fields keep the script's values.
type Options struct {
	// Output is the image path.
	Output string
	// Format is the image encoding. If empty, it follows the output extension.
	Format string
	// Width and Height are the image size in pixels.
	Width  int
	Height int
	// TablePath, if set, also exports the plotted series as an xlsx workbook.
	TablePath string
	// Logger receives debug output. Nil disables logging.
	Logger *zap.Logger
}

// Result describes what Render produced.
type Result struct {
	// Image is the path of the written figure.
	Image string
	// Table is the path of the value table, if one was written.
	Table string
	// Series are the curves the script plotted.
	Series []models.Series
}

// Render runs fig and writes the figure, and optionally its value table.
func Render(fig *models.Figure, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	cfg := canvasConfig(fig, opts)
	output := opts.Output
	if output == "" {
		output = fig.Output
	}
	if output == "" {
		return nil, fmt.Errorf("%w: no output path", ErrInvalidScript)
	}

	funcs, err := Compile(fig)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	c, err := canvas.New(&buf, cfg)
	if err != nil {
		return nil, err
	}
	s := mathplot.New(c, mathplot.WithLogger(log))
	if err := Run(s, fig, funcs); err != nil {
		return nil, err
	}
	if err := s.Done(); err != nil {
		return nil, err
	}

	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		return nil, fmt.Errorf("failed to write figure: %w", err)
	}
	log.Info("figure written",
		zap.String("path", output),
		zap.String("format", cfg.Format),
		zap.Int("steps", len(fig.Steps)))

	res := &Result{Image: output, Series: s.Series()}
	if opts.TablePath != "" {
		if err := table.WriteFile(opts.TablePath, res.Series, table.DefaultOptions()); err != nil {
			return nil, fmt.Errorf("failed to write value table: %w", err)
		}
		res.Table = opts.TablePath
		log.Info("value table written", zap.String("path", opts.TablePath))
	}
	return res, nil
}

func canvasConfig(fig *models.Figure, opts Options) canvas.Config {
	cfg := canvas.DefaultConfig()
	cfg.Latex = fig.Latex
	if fig.Width > 0 {
		cfg.Width = fig.Width
	}
	if fig.Height > 0 {
		cfg.Height = fig.Height
	}
	if opts.Width > 0 {
		cfg.Width = opts.Width
	}
	if opts.Height > 0 {
		cfg.Height = opts.Height
	}

	output := opts.Output
	if output == "" {
		output = fig.Output
	}
	switch {
	case opts.Format != "":
		cfg.Format = opts.Format
	case canvas.FormatFromPath(output) != "":
		cfg.Format = canvas.FormatFromPath(output)
	}
	return cfg
}
