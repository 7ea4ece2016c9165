package encoder

import (
	"encoding/json"

	"github.com/earthviz/colormap_gen/pkg/gradient"
)

// Stops encodes the gradient as a JSON array of color/stop pairs in
// assembly order.
type Stops struct{}

type stopEntry struct {
	Color string `json:"color"`
	Stop  string `json:"stop"`
}

// Name identifies the output format
func (Stops) Name() string { return "stops" }

// Encode renders the stop-list JSON
func (Stops) Encode(g *gradient.Gradient) (string, error) {
	if err := checkStops("stops", g); err != nil {
		return "", err
	}

	entries := make([]stopEntry, 0, len(g.Stops))
	for _, s := range g.Stops {
		entries = append(entries, stopEntry{Color: s.Hex(), Stop: s.Label})
	}

	out, err := json.Marshal(entries)
	if err != nil {
		return "", &EncodingFailureError{Format: "stops", Err: err}
	}
	return string(out), nil
}
