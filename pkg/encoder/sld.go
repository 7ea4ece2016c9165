package encoder

import (
	"fmt"
	"strings"

	"github.com/earthviz/colormap_gen/pkg/gradient"
)

// SLD encodes the gradient as a GeoServer SLD user style. The envelope
// and entry indentation are assembled verbatim; consumers diff these
// files, so the layout is part of the format.
type SLD struct{}

const sldHeader = `<?xml version="1.0" encoding="UTF-8"?>` +
	`<sld:UserStyle xmlns="http://www.opengis.net/sld" xmlns:sld="http://www.opengis.net/sld" ` +
	`xmlns:ogc="http://www.opengis.net/ogc" xmlns:gml="http://www.opengis.net/gml">` + "\n" +
	"\t<sld:Name>Default Styler</sld:Name>\n" +
	"\t<sld:FeatureTypeStyle>\n" +
	"\t\t<sld:Name>name</sld:Name>\n" +
	"\t\t<sld:Rule>\n" +
	"\t\t\t<sld:RasterSymbolizer>\n" +
	"\t\t\t\t<sld:ColorMap type=\"intervals\">"

const sldFooter = "\n\t\t\t\t</sld:ColorMap>\n" +
	"\t\t\t</sld:RasterSymbolizer>\n" +
	"\t\t</sld:Rule>\n" +
	"\t</sld:FeatureTypeStyle>\n" +
	"</sld:UserStyle>\n"

// Name identifies the output format
func (SLD) Name() string { return "geoserverSLD" }

// Encode renders the GeoServer SLD style
func (SLD) Encode(g *gradient.Gradient) (string, error) {
	if err := checkStops("geoserverSLD", g); err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(sldHeader)
	for _, s := range g.Stops {
		fmt.Fprintf(&b, "\n\t\t\t\t\t<sld:ColorMapEntry color=%q opacity=%q quantity=%q/>",
			s.Hex(), gradient.FormatOpacity(s.Opacity), s.Label)
	}
	b.WriteString(sldFooter)
	return b.String(), nil
}
