package preset

import (
	"errors"
	"strings"
	"testing"

	"github.com/earthviz/colormap_gen/pkg/gradient"
)

func TestGenerate(t *testing.T) {
	out, err := Generate(Params{Colormap: "viridis", Min: 0, Max: 100, NoData: "nv"})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	// GDAL text: the nv row plus one line per sampled entry
	if !strings.HasPrefix(out.LUT, "nv 0 0 0 0\n") {
		t.Error("Expected a leading nv row")
	}
	if got := strings.Count(out.LUT, "\n"); got != Entries+1 {
		t.Errorf("Expected %d LUT lines, got %d", Entries+1, got)
	}

	// GIBS XML: the no-data entry plus one entry per sample
	if !strings.Contains(out.XML, `<ColorMapEntry rgb="0,0,0" transparent="true" label="no data"/>`) {
		t.Error("Expected the transparent no-data entry")
	}
	if got := strings.Count(out.XML, `transparent="false"`); got != Entries {
		t.Errorf("Expected %d opaque entries, got %d", Entries, got)
	}
	if !strings.HasSuffix(out.XML, "</ColorMap>") {
		t.Error("Missing closing ColorMap tag")
	}

	// samples span the full data range
	if !strings.Contains(out.LUT, "\n0 ") {
		t.Error("Expected a sample labeled 0")
	}
	if !strings.Contains(out.LUT, "\n100 ") {
		t.Error("Expected a sample labeled 100")
	}
}

func TestGenerateNoData(t *testing.T) {
	tests := []struct {
		name     string
		nodata   string
		leading  bool
		trailing bool
	}{
		{"Below minimum leads", "-9999", true, false},
		{"Above maximum trails", "9999", false, true},
		{"Interior nodata is dropped", "50", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Generate(Params{Colormap: "turbo", Min: 0, Max: 100, NoData: tt.nodata})
			if err != nil {
				t.Fatalf("Generate returned error: %v", err)
			}
			row := tt.nodata + " 0 0 0 0\n"
			if got := strings.HasPrefix(out.LUT, row); got != tt.leading {
				t.Errorf("Leading nodata row: expected %v, got %v", tt.leading, got)
			}
			if got := strings.HasSuffix(out.LUT, row); got != tt.trailing {
				t.Errorf("Trailing nodata row: expected %v, got %v", tt.trailing, got)
			}
		})
	}
}

func TestGeneratePercent(t *testing.T) {
	// percent mode overrides min/max and suffixes every label
	out, err := Generate(Params{Colormap: "magma", Min: -5, Max: 5, NoData: "nv", Percent: true})
	if err != nil {
		t.Fatalf("Generate returned error: %v", err)
	}

	if got := strings.Count(out.XML, `%"/>`); got != Entries {
		t.Errorf("Expected %d percent labels, got %d", Entries, got)
	}
	if !strings.Contains(out.LUT, "\n100% ") {
		t.Error("Expected the 100% sample")
	}
	if strings.Contains(out.LUT, "\n-5") {
		t.Error("Percent mode must ignore the configured minimum")
	}
}

func TestGenerateInvalid(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{"Unknown colormap", Params{Colormap: "gist_ncar", Min: 0, Max: 1, NoData: "nv"}},
		{"Inverted range", Params{Colormap: "viridis", Min: 10, Max: 0, NoData: "nv"}},
		{"Bad nodata", Params{Colormap: "viridis", Min: 0, Max: 1, NoData: "oops"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.params)
			if !errors.Is(err, gradient.ErrInvalidConfiguration) {
				t.Errorf("Expected ErrInvalidConfiguration, got %v", err)
			}
		})
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != len(presets) {
		t.Fatalf("Expected %d names, got %d", len(presets), len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names not sorted at %d: %s >= %s", i, names[i-1], names[i])
		}
	}
	if _, err := Lookup("Viridis"); err != nil {
		t.Errorf("Lookup must be case-insensitive: %v", err)
	}
}
