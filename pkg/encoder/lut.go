package encoder

import (
	"fmt"
	"strings"

	"github.com/earthviz/colormap_gen/pkg/gradient"
)

// LUT encodes the gradient as a GDAL color lookup table, one
// "<stop> <r> <g> <b> <alpha>" line per stop. Alpha is binary: 0 for a
// fully transparent stop, 255 otherwise.
type LUT struct{}

// Name identifies the output format
func (LUT) Name() string { return "LUT" }

// Encode renders the GDAL LUT text
func (LUT) Encode(g *gradient.Gradient) (string, error) {
	if err := checkStops("LUT", g); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, s := range g.Stops {
		alpha := 255
		if s.Opacity == 0 {
			alpha = 0
		}
		fmt.Fprintf(&b, "%s %d %d %d %d\n", s.Label, s.R, s.G, s.B, alpha)
	}
	return b.String(), nil
}
