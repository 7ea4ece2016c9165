package gradient

import (
	"github.com/earthviz/colormap_gen/pkg/breakpoints"
)

// Interpolate generates the n stops of one segment by per-channel
// linear interpolation between the segment's endpoint breakpoints.
//
// With excludeEnd set the end color itself is not emitted; it becomes
// the first stop of the following segment instead. Opacity is a
// property of the endpoints only: the first stop carries the start
// opacity, the last the end opacity, and every interior stop is fully
// opaque.
func Interpolate(start, end breakpoints.Breakpoint, n int, excludeEnd bool) []Stop {
	steps := float64(n - 1)
	if excludeEnd {
		steps = float64(n)
	}
	if steps == 0 {
		// degenerate single-stop segment takes the start color
		steps = 1
	}
	delta := (end.Value - start.Value) / steps

	stops := make([]Stop, 0, n)
	stepVal := start.Value
	for t := 0; t < n; t++ {
		opacity := 1.0
		switch {
		case t == 0:
			opacity = start.Opacity
		case t == n-1:
			opacity = end.Opacity
		}

		p := float64(t) / steps

		// cap the upper bound, then force the second-to-last stop to
		// land on the segment end exactly; accumulated deltas drift
		upper := stepVal + delta
		if upper > end.Value {
			upper = end.Value
		}
		if t == n-2 {
			upper = end.Value
		}

		stops = append(stops, Stop{
			R:          lerpChannel(start.R, end.R, p),
			G:          lerpChannel(start.G, end.G, p),
			B:          lerpChannel(start.B, end.B, p),
			Opacity:    opacity,
			RangeStart: stepVal,
			RangeEnd:   upper,
			Label:      FormatValue(stepVal),
		})
		stepVal += delta
	}
	return stops
}

// lerpChannel interpolates a single color channel, truncating toward
// zero like the GIBS reference tool does
func lerpChannel(s, e uint8, p float64) uint8 {
	return uint8(int(float64(s) + p*(float64(e)-float64(s))))
}
