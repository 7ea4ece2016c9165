package gradient

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidConfiguration is returned when the stop budget cannot cover
// every segment with at least one stop.
var ErrInvalidConfiguration = errors.New("invalid stop budget configuration")

// AllocateBins splits totalBudget stops across numSegments segments.
// The result has one entry per segment, each >= 1, summing to exactly
// totalBudget.
//
// Each segment takes ceil(totalBudget/numSegments) stops while at least
// twice that amount remains; the first segment for which it does not
// absorbs the whole remainder. Exhausting the budget early would leave
// a later segment with zero stops, which is rejected rather than
// silently dropping that segment's colors.
func AllocateBins(numSegments, totalBudget int) ([]int, error) {
	if numSegments < 1 {
		return nil, fmt.Errorf("%w: need at least 1 segment, got %d", ErrInvalidConfiguration, numSegments)
	}
	if numSegments > totalBudget {
		return nil, fmt.Errorf("%w: %d segments exceed a budget of %d stops", ErrInvalidConfiguration, numSegments, totalBudget)
	}

	perSegment := int(math.Ceil(float64(totalBudget) / float64(numSegments)))
	remaining := totalBudget

	bins := make([]int, numSegments)
	for i := range bins {
		n := perSegment
		if remaining < 2*perSegment {
			n = remaining
		}
		if n < 1 {
			return nil, fmt.Errorf("%w: budget of %d stops exhausted before segment %d of %d", ErrInvalidConfiguration, totalBudget, i+1, numSegments)
		}
		bins[i] = n
		remaining -= n
	}
	return bins, nil
}
