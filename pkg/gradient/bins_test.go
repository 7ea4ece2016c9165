package gradient

import (
	"errors"
	"testing"
)

func TestAllocateBins(t *testing.T) {
	tests := []struct {
		name        string
		numSegments int
		totalBudget int
		want        []int
	}{
		{"Single segment takes everything", 1, 255, []int{255}},
		{"Even split", 2, 10, []int{5, 5}},
		{"Three-way split of default budget", 3, 255, []int{85, 85, 85}},
		{"Five-way split of default budget", 5, 255, []int{51, 51, 51, 51, 51}},
		{"One stop per segment", 3, 3, []int{1, 1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AllocateBins(tt.numSegments, tt.totalBudget)
			if err != nil {
				t.Fatalf("AllocateBins(%d, %d) returned error: %v", tt.numSegments, tt.totalBudget, err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %d bins, got %d", len(tt.want), len(got))
			}
			sum := 0
			for i, n := range got {
				if n != tt.want[i] {
					t.Errorf("Bin %d: expected %d, got %d", i, tt.want[i], n)
				}
				sum += n
			}
			if sum != tt.totalBudget {
				t.Errorf("Bins sum to %d, expected the full budget of %d", sum, tt.totalBudget)
			}
		})
	}
}

func TestAllocateBinsInvalid(t *testing.T) {
	tests := []struct {
		name        string
		numSegments int
		totalBudget int
	}{
		{"More segments than budget", 5, 3},
		{"Zero segments", 0, 255},
		// ceil(11/2)=6, 11 < 2*6, so the first segment absorbs all 11
		// stops and the second would be proposed 0
		{"Early takeover starves a later segment", 2, 11},
		{"Default budget over two segments starves the second", 2, 255},
		// ceil(10/3)=4, the second segment absorbs the remaining 6
		{"Mid-run takeover starves the final segment", 3, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := AllocateBins(tt.numSegments, tt.totalBudget)
			if !errors.Is(err, ErrInvalidConfiguration) {
				t.Errorf("AllocateBins(%d, %d): expected ErrInvalidConfiguration, got %v", tt.numSegments, tt.totalBudget, err)
			}
		})
	}
}
