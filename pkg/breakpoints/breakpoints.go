package breakpoints

import (
	"errors"
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInsufficientBreakpoints is returned when fewer than two breakpoints
// are available; a gradient needs at least one segment.
var ErrInsufficientBreakpoints = errors.New("at least 2 breakpoints are required")

// Breakpoint is a user-specified color anchor the gradient must pass
// through exactly at the given data value.
type Breakpoint struct {
	R, G, B uint8
	Value   float64
	Opacity float64 // defaults to 1.0 when the input omits it
}

// Reader is the interface for breakpoint file readers
type Reader interface {
	// Read parses a breakpoint file and returns its records sorted
	// ascending by value
	Read(filePath string) ([]Breakpoint, error)
}

// Hex returns the breakpoint color as a lowercase "#rrggbb" string
func (b Breakpoint) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", b.R, b.G, b.B)
}

// MalformedBreakpointError reports an input record that could not be
// parsed into a breakpoint.
type MalformedBreakpointError struct {
	Line  int    // 1-based input line or entry number
	Field string // "color", "value" or "opacity"
	Value string // the offending raw text
	Err   error
}

func (e *MalformedBreakpointError) Error() string {
	return fmt.Sprintf("malformed breakpoint at line %d: bad %s %q: %v", e.Line, e.Field, e.Value, e.Err)
}

func (e *MalformedBreakpointError) Unwrap() error {
	return e.Err
}

// parseHexColor validates and decodes a "#RRGGBB" color string
func parseHexColor(s string) (r, g, b uint8, err error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, 0, 0, err
	}
	r, g, b = c.RGB255()
	return r, g, b, nil
}

// checkValue rejects non-finite data values before they can poison the
// stop ranges
func checkValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return errors.New("value is not finite")
	}
	return nil
}

// checkOpacity rejects opacities outside [0,1]
func checkOpacity(v float64) error {
	if math.IsNaN(v) || v < 0 || v > 1 {
		return errors.New("opacity must be in [0,1]")
	}
	return nil
}
