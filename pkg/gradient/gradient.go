package gradient

import (
	"fmt"
	"strconv"

	"github.com/earthviz/colormap_gen/pkg/breakpoints"
)

// DefaultBudget is the total number of quantized stops a gradient may
// contain. Downstream formats such as the GDAL LUT expect the full
// range to be covered by exactly this many entries.
const DefaultBudget = 255

// Stop is one quantized color sample of the final gradient together
// with the data value sub-range it covers.
type Stop struct {
	R, G, B    uint8
	Opacity    float64
	RangeStart float64
	RangeEnd   float64
	Label      string // RangeStart in fixed precision, shared by all encoders
}

// Hex returns the stop color as a lowercase "#rrggbb" string
func (s Stop) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", s.R, s.G, s.B)
}

// RangeLabel returns the "<start>,<end>" range string in fixed
// precision
func (s Stop) RangeLabel() string {
	return s.Label + "," + FormatValue(s.RangeEnd)
}

// Gradient is the full ordered stop sequence produced by one run,
// immutable once assembled.
type Gradient struct {
	Stops  []Stop
	ranges map[string]string // hex -> "start,end", last write wins
	order  []string          // hex keys in first-written order
}

// Ranges returns the color to value-range map. Stops that quantize to
// the same hex color collide; the most recently written range is kept.
func (g *Gradient) Ranges() map[string]string {
	return g.ranges
}

// RangeOrder returns the range map keys in the order they were first
// written during assembly
func (g *Gradient) RangeOrder() []string {
	return g.order
}

// DistinctColors returns the number of distinct hex colors in the
// gradient after collisions
func (g *Gradient) DistinctColors() int {
	return len(g.ranges)
}

// ColorAt looks up the stop covering the given data value using binary
// search over the stop ranges. The second return is false when the
// value falls outside the gradient entirely.
func (g *Gradient) ColorAt(value float64) (Stop, bool) {
	if len(g.Stops) == 0 {
		return Stop{}, false
	}
	if value < g.Stops[0].RangeStart || value > g.Stops[len(g.Stops)-1].RangeEnd {
		return Stop{}, false
	}

	// Binary search for the last stop starting at or below the value
	var idx int
	lo, hi := 0, len(g.Stops)-1
	for lo <= hi {
		mid := (lo + hi) / 2
		if g.Stops[mid].RangeStart > value {
			hi = mid - 1
		} else {
			lo = mid + 1
			idx = mid
		}
	}
	return g.Stops[idx], true
}

// Assemble builds the gradient for the given breakpoints using the
// default stop budget
func Assemble(bps []breakpoints.Breakpoint) (*Gradient, error) {
	return AssembleN(bps, DefaultBudget)
}

// AssembleN builds the gradient for the given breakpoints, spending
// exactly totalBudget stops across all segments. The breakpoints must
// already be sorted ascending by value.
func AssembleN(bps []breakpoints.Breakpoint, totalBudget int) (*Gradient, error) {
	if len(bps) < 2 {
		return nil, fmt.Errorf("%w: got %d", breakpoints.ErrInsufficientBreakpoints, len(bps))
	}

	numSegments := len(bps) - 1
	bins, err := AllocateBins(numSegments, totalBudget)
	if err != nil {
		return nil, err
	}

	g := &Gradient{
		Stops:  make([]Stop, 0, totalBudget),
		ranges: make(map[string]string),
	}
	for i := 0; i < numSegments; i++ {
		// every segment except the last excludes its own endpoint; the
		// next segment emits it as its first stop
		excludeEnd := i != numSegments-1
		for _, stop := range Interpolate(bps[i], bps[i+1], bins[i], excludeEnd) {
			hex := stop.Hex()
			if _, seen := g.ranges[hex]; !seen {
				g.order = append(g.order, hex)
			}
			g.ranges[hex] = stop.RangeLabel()
			g.Stops = append(g.Stops, stop)
		}
	}
	return g, nil
}

// FormatValue renders a data value with the fixed precision shared by
// every output format
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', 10, 64)
}

// FormatOpacity renders an opacity with the shortest exact
// representation ("0", "1", "0.5")
func FormatOpacity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
