package breakpoints

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestCSVReaderRead(t *testing.T) {
	path := writeTempFile(t, "colors.csv",
		"#ffffff,10.0\n"+
			"#000000,0.0,0.5\n"+
			"\n"+
			"#ff0000,5.0\n")

	bps, err := NewCSVReader().Read(path)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}

	if len(bps) != 3 {
		t.Fatalf("Expected 3 breakpoints, got %d", len(bps))
	}
	// records come back sorted ascending by value
	wantValues := []float64{0, 5, 10}
	wantHex := []string{"#000000", "#ff0000", "#ffffff"}
	for i, bp := range bps {
		if bp.Value != wantValues[i] {
			t.Errorf("Breakpoint %d: expected value %v, got %v", i, wantValues[i], bp.Value)
		}
		if bp.Hex() != wantHex[i] {
			t.Errorf("Breakpoint %d: expected color %s, got %s", i, wantHex[i], bp.Hex())
		}
	}
	if bps[0].Opacity != 0.5 {
		t.Errorf("Expected explicit opacity 0.5, got %v", bps[0].Opacity)
	}
	if bps[1].Opacity != 1 {
		t.Errorf("Expected default opacity 1, got %v", bps[1].Opacity)
	}
}

func TestCSVReaderMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"Bad color", "#zzzzzz,0\n#ffffff,1\n", "color"},
		{"Bad value", "#000000,abc\n#ffffff,1\n", "value"},
		{"Missing value", "#000000\n#ffffff,1\n", "value"},
		{"Bad opacity", "#000000,0,2.5\n#ffffff,1\n", "opacity"},
		{"Non-finite value", "#000000,NaN\n#ffffff,1\n", "value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, "colors.csv", tt.content)
			_, err := NewCSVReader().Read(path)

			var malformed *MalformedBreakpointError
			if !errors.As(err, &malformed) {
				t.Fatalf("Expected MalformedBreakpointError, got %v", err)
			}
			if malformed.Field != tt.field {
				t.Errorf("Expected field %q, got %q", tt.field, malformed.Field)
			}
			if malformed.Line != 1 {
				t.Errorf("Expected line 1, got %d", malformed.Line)
			}
		})
	}
}

func TestCSVReaderInsufficient(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"Empty file", ""},
		{"Single record", "#ffffff,0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, "colors.csv", tt.content)
			_, err := NewCSVReader().Read(path)
			if !errors.Is(err, ErrInsufficientBreakpoints) {
				t.Errorf("Expected ErrInsufficientBreakpoints, got %v", err)
			}
		})
	}
}

func TestCSVReaderMissingFile(t *testing.T) {
	_, err := NewCSVReader().Read(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Error("Expected an error for a missing file")
	}
}

const sampleSLD = `<?xml version="1.0" encoding="UTF-8"?>` +
	`<sld:UserStyle xmlns="http://www.opengis.net/sld" xmlns:sld="http://www.opengis.net/sld">
	<sld:FeatureTypeStyle>
		<sld:Rule>
			<sld:RasterSymbolizer>
				<sld:ColorMap type="intervals">
					<sld:ColorMapEntry color="#0000ff" opacity="0" quantity="-1"/>
					<sld:ColorMapEntry color="#ffff00" opacity="1" quantity="0.5"/>
					<sld:ColorMapEntry color="#00ff00" quantity="1"/>
				</sld:ColorMap>
			</sld:RasterSymbolizer>
		</sld:Rule>
	</sld:FeatureTypeStyle>
</sld:UserStyle>`

func TestSLDReaderRead(t *testing.T) {
	path := writeTempFile(t, "style.sld", sampleSLD)

	bps, err := NewSLDReader().Read(path)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}

	if len(bps) != 3 {
		t.Fatalf("Expected 3 breakpoints, got %d", len(bps))
	}
	if bps[0].Hex() != "#0000ff" || bps[0].Value != -1 || bps[0].Opacity != 0 {
		t.Errorf("Unexpected first breakpoint: %+v", bps[0])
	}
	if bps[1].Value != 0.5 {
		t.Errorf("Expected middle value 0.5, got %v", bps[1].Value)
	}
	// omitted opacity attribute defaults to fully opaque
	if bps[2].Opacity != 1 {
		t.Errorf("Expected default opacity 1, got %v", bps[2].Opacity)
	}
}

func TestSLDReaderMalformed(t *testing.T) {
	content := `<sld:ColorMap xmlns:sld="x"><sld:ColorMapEntry color="#123456" quantity="oops"/></sld:ColorMap>`
	path := writeTempFile(t, "style.sld", content)

	_, err := NewSLDReader().Read(path)
	var malformed *MalformedBreakpointError
	if !errors.As(err, &malformed) {
		t.Fatalf("Expected MalformedBreakpointError, got %v", err)
	}
	if malformed.Field != "value" {
		t.Errorf("Expected field value, got %q", malformed.Field)
	}
}

func TestBreakpointHex(t *testing.T) {
	tests := []struct {
		name string
		bp   Breakpoint
		want string
	}{
		{"Black", Breakpoint{}, "#000000"},
		{"White", Breakpoint{R: 255, G: 255, B: 255}, "#ffffff"},
		{"Mixed", Breakpoint{R: 1, G: 2, B: 171}, "#0102ab"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bp.Hex(); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}
