package mathplot

import (
	"errors"
	"testing"
)

func TestParseLineStyle(t *testing.T) {
	tests := []struct {
		input    string
		expected LineStyle
		wantErr  bool
	}{
		{"", LineSolid, false},
		{"-", LineSolid, false},
		{"--", LineDashed, false},
		{".", LineDotted, false},
		{"..", LineDotted, false},
		{":", LineDotted, false},
		{"dashed", LineDashed, false},
		{"-.", "", true},
		{"wavy", "", true},
	}

	for _, tt := range tests {
		result, err := ParseLineStyle(tt.input)
		if tt.wantErr {
			if !errors.Is(err, ErrUnsupportedStyle) {
				t.Errorf("ParseLineStyle(%q) error = %v, expected ErrUnsupportedStyle", tt.input, err)
			}
			continue
		}
		if err != nil || result != tt.expected {
			t.Errorf("ParseLineStyle(%q) = %q, %v, expected %q", tt.input, result, err, tt.expected)
		}
	}
}

func TestParseMarker(t *testing.T) {
	tests := []struct {
		input    string
		expected Marker
		wantErr  bool
	}{
		{"", MarkerNone, false},
		{"none", MarkerNone, false},
		{"o", MarkerCircle, false},
		{".", MarkerDot, false},
		{"x", "", true},
	}

	for _, tt := range tests {
		result, err := ParseMarker(tt.input)
		if (err != nil) != tt.wantErr || result != tt.expected {
			t.Errorf("ParseMarker(%q) = %q, %v, expected %q (error: %v)",
				tt.input, result, err, tt.expected, tt.wantErr)
		}
	}
}

func TestParseTextLocation(t *testing.T) {
	if loc, err := ParseTextLocation("upper"); err != nil || loc != TextUpper {
		t.Errorf("ParseTextLocation(upper) = %q, %v", loc, err)
	}
	if _, err := ParseTextLocation("left"); !errors.Is(err, ErrUnsupportedStyle) {
		t.Errorf("ParseTextLocation(left) error = %v, expected ErrUnsupportedStyle", err)
	}
}

func TestOptionDefaults(t *testing.T) {
	if n := (PlotOptions{}).points(); n != DefaultPoints {
		t.Errorf("zero PlotOptions points = %d, expected %d", n, DefaultPoints)
	}
	if n := (PlotOptions{Points: 7}).points(); n != 7 {
		t.Errorf("PlotOptions{Points: 7}.points() = %d", n)
	}
	if h := (TangentOptions{}).step(); h != DefaultTangentStep {
		t.Errorf("zero TangentOptions step = %g, expected %g", h, DefaultTangentStep)
	}
	if o := DefaultPointOptions(); o.Marker != MarkerCircle || o.Location != TextLower {
		t.Errorf("DefaultPointOptions() = %+v", o)
	}
}
