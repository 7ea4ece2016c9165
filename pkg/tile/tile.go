// Package tile builds empty (single-color) paletted map tiles from a
// GIBS ColorMap, used as the placeholder tile for regions with no data.
package tile

import (
	"encoding/xml"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/earthviz/colormap_gen/pkg/gradient"
)

// Entry is one palette entry read from a GIBS ColorMap document.
type Entry struct {
	R, G, B     uint8
	Transparent bool
	Label       string
}

// ParseColorMap reads the ColorMapEntry elements of a GIBS ColorMap
// document in order
func ParseColorMap(r io.Reader) ([]Entry, error) {
	var entries []Entry

	decoder := xml.NewDecoder(r)
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "ColorMapEntry" {
			continue
		}

		entry, err := parseEntry(start, len(entries)+1)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("colormap contains no entries")
	}
	return entries, nil
}

// ParseColorMapFile reads a GIBS ColorMap from disk
func ParseColorMapFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ParseColorMap(file)
}

func parseEntry(start xml.StartElement, entryNum int) (Entry, error) {
	var entry Entry
	var rgbAttr string
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "rgb":
			rgbAttr = attr.Value
		case "transparent":
			entry.Transparent = attr.Value == "true"
		case "label":
			entry.Label = attr.Value
		}
	}

	channels := strings.Split(rgbAttr, ",")
	if len(channels) != 3 {
		return Entry{}, fmt.Errorf("entry %d: bad rgb attribute %q", entryNum, rgbAttr)
	}
	var rgb [3]uint8
	for i, ch := range channels {
		v, err := strconv.Atoi(strings.TrimSpace(ch))
		if err != nil || v < 0 || v > 255 {
			return Entry{}, fmt.Errorf("entry %d: bad rgb channel %q", entryNum, ch)
		}
		rgb[i] = uint8(v)
	}
	entry.R, entry.G, entry.B = rgb[0], rgb[1], rgb[2]
	return entry, nil
}

// Palette converts colormap entries into an image palette. PNG palettes
// hold at most 256 colors; longer colormaps are truncated.
func Palette(entries []Entry) color.Palette {
	n := len(entries)
	if n > 256 {
		n = 256
	}
	palette := make(color.Palette, n)
	for i, e := range entries[:n] {
		alpha := uint8(255)
		if e.Transparent {
			alpha = 0
		}
		palette[i] = color.NRGBA{R: e.R, G: e.G, B: e.B, A: alpha}
	}
	return palette
}

// Generate fills a paletted tile of the given size with the palette
// entry at index
func Generate(entries []Entry, index, width, height int) (*image.Paletted, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: tile size %dx%d", gradient.ErrInvalidConfiguration, width, height)
	}

	palette := Palette(entries)
	if index < 0 || index >= len(palette) {
		return nil, fmt.Errorf("%w: palette index %d out of range [0,%d)", gradient.ErrInvalidConfiguration, index, len(palette))
	}

	img := image.NewPaletted(image.Rect(0, 0, width, height), palette)
	if index != 0 {
		for i := range img.Pix {
			img.Pix[i] = uint8(index)
		}
	}
	return img, nil
}

// WritePNG encodes the tile as a PNG
func WritePNG(w io.Writer, img *image.Paletted) error {
	return png.Encode(w, img)
}
