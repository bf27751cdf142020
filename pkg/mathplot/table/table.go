// Package table exports plotted series as value tables in an xlsx workbook.
package table

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/ukaji3/mathplot-go/pkg/mathplot/geom"
	"github.com/ukaji3/mathplot-go/pkg/mathplot/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoSeries indicates there is nothing to export.
var ErrNoSeries = errors.New("no series to export")

// Options configures the exported workbook.
type Options struct {
	// Chart adds a scatter chart of each series next to its table.
	Chart bool
	// TableStyle is the Excel table style name.
	TableStyle string
}

// DefaultOptions returns default export options.
func DefaultOptions() Options {
	return Options{
		Chart:      true,
		TableStyle: "TableStyleLight9",
	}
}

// chartCell is the anchor of the per-sheet chart.
const chartCell = "D2"

// Build creates a workbook with one sheet per series. Each sheet holds a
// header row ("x", "<name>(x)") followed by the samples; undefined samples
// are left blank.
func Build(series []models.Series, opts Options) (*excelize.File, error) {
	if len(series) == 0 {
		return nil, ErrNoSeries
	}

	f := excelize.NewFile()
	used := make(map[string]bool)
	for i, s := range series {
		name := sheetName(s.Name, used)
		if i == 0 {
			if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
				f.Close()
				return nil, err
			}
		} else if _, err := f.NewSheet(name); err != nil {
			f.Close()
			return nil, err
		}
		if err := writeSeries(f, name, i, s, opts); err != nil {
			f.Close()
			return nil, fmt.Errorf("sheet %q: %w", name, err)
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

// Write encodes the workbook for series to w.
func Write(w io.Writer, series []models.Series, opts Options) error {
	f, err := Build(series, opts)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Write(w)
}

// WriteFile saves the workbook for series to path.
func WriteFile(path string, series []models.Series, opts Options) error {
	f, err := Build(series, opts)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.SaveAs(path)
}

func writeSeries(f *excelize.File, sheet string, index int, s models.Series, opts Options) error {
	header := []interface{}{"x", s.Name + "(x)"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, p := range s.Points {
		rowNum := i + 2 // 1-based, below the header
		xCell, _ := excelize.CoordinatesToCellName(1, rowNum)
		if err := f.SetCellFloat(sheet, xCell, p.X, -1, 64); err != nil {
			return err
		}
		if !geom.IsFinite(p.Y) {
			continue
		}
		yCell, _ := excelize.CoordinatesToCellName(2, rowNum)
		if err := f.SetCellFloat(sheet, yCell, p.Y, -1, 64); err != nil {
			return err
		}
	}

	area := Area{R1: 1, C1: 1, R2: len(s.Points) + 1, C2: 2}
	if len(s.Points) > 0 {
		rng, err := area.Range()
		if err != nil {
			return err
		}
		if err := f.AddTable(sheet, &excelize.Table{
			Range:     rng,
			Name:      "Series" + strconv.Itoa(index+1),
			StyleName: opts.TableStyle,
		}); err != nil {
			return err
		}
	}

	ref, err := area.Reference(sheet)
	if err != nil {
		return err
	}
	if err := f.SetDefinedName(&excelize.DefinedName{
		Name:     "_xlnm.Print_Area",
		RefersTo: ref,
		Scope:    sheet,
	}); err != nil {
		return err
	}

	if opts.Chart && len(s.Points) > 1 {
		return addChart(f, sheet, s.Name, len(s.Points)+1)
	}
	return nil
}

func addChart(f *excelize.File, sheet, name string, lastRow int) error {
	xs, err := Column(sheet, 1, 2, lastRow)
	if err != nil {
		return err
	}
	ys, err := Column(sheet, 2, 2, lastRow)
	if err != nil {
		return err
	}
	return f.AddChart(sheet, chartCell, &excelize.Chart{
		Type: excelize.Scatter,
		Series: []excelize.ChartSeries{{
			Name:       name,
			Categories: xs,
			Values:     ys,
			Marker:     excelize.ChartMarker{Symbol: "none"},
		}},
		Title:  []excelize.RichTextRun{{Text: name + "(x)"}},
		Legend: excelize.ChartLegend{Position: "none"},
	})
}
