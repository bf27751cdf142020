package table

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Area represents cell coordinate bounds on a sheet.
type Area struct {
	// R1 is the start row (1-based).
	R1 int `json:"r1"`
	// C1 is the start column (1-based).
	C1 int `json:"c1"`
	// R2 is the end row (1-based, inclusive).
	R2 int `json:"r2"`
	// C2 is the end column (1-based, inclusive).
	C2 int `json:"c2"`
}

// Range returns the area in A1 notation, e.g. "A1:B51".
func (a Area) Range() (string, error) {
	start, err := excelize.CoordinatesToCellName(a.C1, a.R1)
	if err != nil {
		return "", err
	}
	end, err := excelize.CoordinatesToCellName(a.C2, a.R2)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s:%s", start, end), nil
}

// Reference returns the absolute sheet-qualified reference, e.g. 'f'!$A$1:$B$51.
func (a Area) Reference(sheet string) (string, error) {
	start, err := excelize.CoordinatesToCellName(a.C1, a.R1, true)
	if err != nil {
		return "", err
	}
	end, err := excelize.CoordinatesToCellName(a.C2, a.R2, true)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s!%s:%s", quoteSheet(sheet), start, end), nil
}

// Column returns the reference of column col restricted to rows r1..r2.
func Column(sheet string, col, r1, r2 int) (string, error) {
	return Area{R1: r1, C1: col, R2: r2, C2: col}.Reference(sheet)
}

// parseReference parses a reference string.
// Format: 'SheetName'!$A$1:$D$10 or SheetName!$A$1:$D$10
func parseReference(ref string) (string, Area, error) {
	idx := strings.LastIndex(ref, "!")
	if idx < 0 {
		return "", Area{}, fmt.Errorf("reference %q has no sheet", ref)
	}
	sheet := strings.Trim(ref[:idx], "'")
	sheet = strings.ReplaceAll(sheet, "''", "'")

	// Remove $ signs
	rangeStr := strings.ReplaceAll(ref[idx+1:], "$", "")

	parts := strings.Split(rangeStr, ":")
	if len(parts) != 2 {
		return "", Area{}, fmt.Errorf("reference %q is not a range", ref)
	}
	c1, r1, err := excelize.CellNameToCoordinates(parts[0])
	if err != nil {
		return "", Area{}, err
	}
	c2, r2, err := excelize.CellNameToCoordinates(parts[1])
	if err != nil {
		return "", Area{}, err
	}
	return sheet, Area{R1: r1, C1: c1, R2: r2, C2: c2}, nil
}

func quoteSheet(name string) string {
	return "'" + strings.ReplaceAll(name, "'", "''") + "'"
}

// maxSheetName is the longest sheet name Excel accepts.
const maxSheetName = 31

// sheetName turns a series name into a valid, unused sheet name.
func sheetName(name string, used map[string]bool) string {
	clean := strings.Map(func(r rune) rune {
		switch r {
		case '[', ']', ':', '*', '?', '/', '\\':
			return '_'
		}
		return r
	}, strings.Trim(name, "'"))
	if clean == "" {
		clean = "series"
	}
	if r := []rune(clean); len(r) > maxSheetName {
		clean = string(r[:maxSheetName])
	}

	candidate := clean
	for i := 2; used[strings.ToLower(candidate)]; i++ {
		suffix := fmt.Sprintf(" (%d)", i)
		r := []rune(clean)
		if len(r)+len(suffix) > maxSheetName {
			r = r[:maxSheetName-len(suffix)]
		}
		candidate = string(r) + suffix
	}
	used[strings.ToLower(candidate)] = true
	return candidate
}
