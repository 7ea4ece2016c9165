package encoder

import (
	"fmt"
	"strings"

	"github.com/earthviz/colormap_gen/pkg/gradient"
)

// GIBS encodes the gradient as a GIBS ColorMap XML document.
type GIBS struct{}

const gibsHeader = `<?xml version="1.0" encoding="UTF-8"?>` + "\n" +
	`<ColorMap xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:noNamespaceSchemaLocation=` +
	`"http://gibs.earthdata.nasa.gov/schemas/ColorMap_v1.0.xsd">` + "\n"

// Name identifies the output format
func (GIBS) Name() string { return "gibs" }

// Encode renders the GIBS ColorMap XML
func (GIBS) Encode(g *gradient.Gradient) (string, error) {
	if err := checkStops("gibs", g); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(gibsHeader)
	for _, s := range g.Stops {
		transparent := "false"
		if s.Opacity == 0 {
			transparent = "true"
		}
		fmt.Fprintf(&b, "\t<ColorMapEntry rgb=\"%d,%d,%d\" transparent=\"%s\" label=\"%s\"/>\n",
			s.R, s.G, s.B, transparent, s.Label)
	}
	b.WriteString("</ColorMap>")
	return b.String(), nil
}
