package encoder

import (
	"strings"

	"github.com/earthviz/colormap_gen/pkg/gradient"
)

// Ranges encodes the gradient's color to value-range map as a JSON
// object. Keys appear in the order their color was first produced;
// colliding colors keep only their most recent range.
type Ranges struct{}

// Name identifies the output format
func (Ranges) Name() string { return "ranges" }

// Encode renders the range-map JSON
func (Ranges) Encode(g *gradient.Gradient) (string, error) {
	if err := checkStops("ranges", g); err != nil {
		return "", err
	}

	// built by hand to keep first-written key order; hex colors and
	// fixed-precision ranges never need JSON escaping
	ranges := g.Ranges()
	var b strings.Builder
	b.WriteByte('{')
	for i, hex := range g.RangeOrder() {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(hex)
		b.WriteString(`":"`)
		b.WriteString(ranges[hex])
		b.WriteByte('"')
	}
	b.WriteByte('}')
	return b.String(), nil
}
