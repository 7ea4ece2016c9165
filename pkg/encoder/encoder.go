// Package encoder renders an assembled gradient into the textual
// styling formats consumed by downstream raster tools. Every encoder is
// a pure function over the same immutable gradient; they share no state
// and may run concurrently.
package encoder

import (
	"errors"
	"fmt"
	"math"

	"github.com/earthviz/colormap_gen/pkg/gradient"
)

// ErrEncodingFailure is returned when a stop cannot be rendered into an
// output format.
var ErrEncodingFailure = errors.New("encoding failure")

// Encoder is the interface for gradient output format encoders
type Encoder interface {
	// Name identifies the output format
	Name() string

	// Encode renders the gradient into the format's full text artifact
	Encode(g *gradient.Gradient) (string, error)
}

// EncodingFailureError reports the stop that an encoder failed to
// render.
type EncodingFailureError struct {
	Format string
	Stop   int // index into the gradient's stop sequence
	Err    error
}

func (e *EncodingFailureError) Error() string {
	return fmt.Sprintf("%s: cannot encode stop %d: %v", e.Format, e.Stop, e.Err)
}

func (e *EncodingFailureError) Unwrap() error {
	return e.Err
}

// checkStops rejects gradients whose stops cannot be rendered to text,
// so a failure surfaces before any output is assembled
func checkStops(format string, g *gradient.Gradient) error {
	for i, s := range g.Stops {
		if !isFinite(s.RangeStart) || !isFinite(s.RangeEnd) || !isFinite(s.Opacity) {
			return &EncodingFailureError{Format: format, Stop: i, Err: fmt.Errorf("%w: non-finite value", ErrEncodingFailure)}
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
