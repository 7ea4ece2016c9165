// Package preset samples named perceptual colormaps into the GIBS
// ColorMap XML and GDAL color-relief text formats, for layers that use
// a standard palette instead of hand-picked breakpoints.
package preset

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mazznoer/colorgrad"

	"github.com/earthviz/colormap_gen/pkg/gradient"
)

// Entries is the number of colormap samples generated, matching the
// 8-bit palette size expected by the MRF tooling.
const Entries = 255

// Params configures one colormap generation run.
type Params struct {
	Colormap string
	Min, Max float64
	NoData   string // numeric string, or "nv" for no nodata value
	Percent  bool   // sample 0-100% instead of min/max data values
}

// Output holds the two generated artifacts.
type Output struct {
	XML string // GIBS ColorMap document
	LUT string // GDAL color-relief text
}

var presets = map[string]func() colorgrad.Gradient{
	"blues":     colorgrad.Blues,
	"cividis":   colorgrad.Cividis,
	"cool":      colorgrad.Cool,
	"cubehelix": colorgrad.CubehelixDefault,
	"greens":    colorgrad.Greens,
	"greys":     colorgrad.Greys,
	"inferno":   colorgrad.Inferno,
	"magma":     colorgrad.Magma,
	"oranges":   colorgrad.Oranges,
	"plasma":    colorgrad.Plasma,
	"purples":   colorgrad.Purples,
	"rainbow":   colorgrad.Rainbow,
	"rdylbu":    colorgrad.RdYlBu,
	"rdylgn":    colorgrad.RdYlGn,
	"reds":      colorgrad.Reds,
	"sinebow":   colorgrad.Sinebow,
	"spectral":  colorgrad.Spectral,
	"turbo":     colorgrad.Turbo,
	"viridis":   colorgrad.Viridis,
	"warm":      colorgrad.Warm,
	"ylgnbu":    colorgrad.YlGnBu,
	"ylorrd":    colorgrad.YlOrRd,
}

// Names returns the available colormap names, sorted
func Names() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup resolves a colormap by name
func Lookup(name string) (colorgrad.Gradient, error) {
	build, ok := presets[strings.ToLower(name)]
	if !ok {
		return colorgrad.Gradient{}, fmt.Errorf("%w: unknown colormap %q (available: %s)",
			gradient.ErrInvalidConfiguration, name, strings.Join(Names(), ", "))
	}
	return build(), nil
}

// Generate samples the named colormap into Entries evenly spaced
// values over [Min,Max] and renders both output artifacts. A numeric
// NoData value at or below Min produces a leading transparent row, one
// at or above Max a trailing row; "nv" produces the GDAL nv row.
func Generate(p Params) (*Output, error) {
	grad, err := Lookup(p.Colormap)
	if err != nil {
		return nil, err
	}

	min, max := p.Min, p.Max
	if p.Percent {
		min, max = 0, 100
	}
	if max <= min {
		return nil, fmt.Errorf("%w: max (%v) must exceed min (%v)", gradient.ErrInvalidConfiguration, max, min)
	}

	var nodata float64
	hasNoData := p.NoData != "" && p.NoData != "nv"
	if hasNoData {
		nodata, err = strconv.ParseFloat(p.NoData, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: bad nodata value %q", gradient.ErrInvalidConfiguration, p.NoData)
		}
	}

	var xml, lut strings.Builder
	xml.WriteString(gibsPresetHeader)
	xml.WriteString("    <ColorMapEntry rgb=\"0,0,0\" transparent=\"true\" label=\"no data\"/>\n")

	switch {
	case !hasNoData:
		lut.WriteString("nv 0 0 0 0\n")
	case nodata <= min:
		fmt.Fprintf(&lut, "%s 0 0 0 0\n", p.NoData)
	}

	for i := 0; i < Entries; i++ {
		t := float64(i) / float64(Entries-1)
		val := t*(max-min) + min
		r, g, b := grad.At(t).RGB255()

		label := strconv.FormatFloat(val, 'f', -1, 64)
		if p.Percent {
			label += "%"
		}
		fmt.Fprintf(&lut, "%s %d %d %d 255\n", label, r, g, b)
		fmt.Fprintf(&xml, "    <ColorMapEntry rgb=\"%d,%d,%d\" transparent=\"false\" label=\"%s\"/>\n", r, g, b, label)
	}

	if hasNoData && nodata >= max {
		fmt.Fprintf(&lut, "%s 0 0 0 0\n", p.NoData)
	}
	xml.WriteString("</ColorMap>")

	return &Output{XML: xml.String(), LUT: lut.String()}, nil
}

const gibsPresetHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
	`<ColorMap xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:noNamespaceSchemaLocation="http://gibs.earthdata.nasa.gov/schemas/ColorMap_v1.0.xsd">` + "\n"
