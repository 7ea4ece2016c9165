package encoder

import (
	"fmt"
	"strings"

	"github.com/earthviz/colormap_gen/pkg/gradient"
)

// CSS encodes the gradient as a GeoServer raster CSS style block.
type CSS struct{}

// Name identifies the output format
func (CSS) Name() string { return "geoserverCSS" }

// Encode renders the GeoServer CSS style
func (CSS) Encode(g *gradient.Gradient) (string, error) {
	if err := checkStops("geoserverCSS", g); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("* {\nraster-channels:auto;\nraster-color-map:")
	for _, s := range g.Stops {
		fmt.Fprintf(&b, "\n\tcolor-map-entry(%q,%s,%s)", s.Hex(), s.Label, gradient.FormatOpacity(s.Opacity))
	}
	b.WriteString(";\nraster-color-map-type:intervals;\n}")
	return b.String(), nil
}
