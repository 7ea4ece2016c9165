package breakpoints

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strconv"
)

// SLDReader reads breakpoint files in the GeoServer SLD format, taking
// one record per sld:ColorMapEntry element.
type SLDReader struct{}

// NewSLDReader creates a new SLD breakpoint reader
func NewSLDReader() *SLDReader {
	return &SLDReader{}
}

// Read parses an SLD style file and returns its color map entries
// sorted ascending by value
func (r *SLDReader) Read(filePath string) ([]Breakpoint, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	bps, err := parseSLD(file)
	if err != nil {
		return nil, err
	}
	if len(bps) < 2 {
		return nil, fmt.Errorf("%s: %w", filePath, ErrInsufficientBreakpoints)
	}

	sortByValue(bps)
	return bps, nil
}

// parseSLD walks the XML token stream collecting ColorMapEntry
// elements regardless of their namespace prefix
func parseSLD(reader io.Reader) ([]Breakpoint, error) {
	var bps []Breakpoint
	entryNum := 0

	decoder := xml.NewDecoder(reader)
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
		entryNum++

		bp, err := parseSLDEntry(start, entryNum)
		if err != nil {
			return nil, err
		}
		bps = append(bps, bp)
	}
	return bps, nil
}

// parseSLDEntry extracts color, quantity and opacity attributes from
// one ColorMapEntry element
func parseSLDEntry(start xml.StartElement, entryNum int) (Breakpoint, error) {
	var colorAttr, quantityAttr, opacityAttr string
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "color":
			colorAttr = attr.Value
		case "quantity":
			quantityAttr = attr.Value
		case "opacity":
			opacityAttr = attr.Value
		}
	}

	r, g, b, err := parseHexColor(colorAttr)
	if err != nil {
		return Breakpoint{}, &MalformedBreakpointError{Line: entryNum, Field: "color", Value: colorAttr, Err: err}
	}

	value, err := strconv.ParseFloat(quantityAttr, 64)
	if err == nil {
		err = checkValue(value)
	}
	if err != nil {
		return Breakpoint{}, &MalformedBreakpointError{Line: entryNum, Field: "value", Value: quantityAttr, Err: err}
	}

	opacity := 1.0
	if opacityAttr != "" {
		opacity, err = strconv.ParseFloat(opacityAttr, 64)
		if err == nil {
			err = checkOpacity(opacity)
		}
		if err != nil {
			return Breakpoint{}, &MalformedBreakpointError{Line: entryNum, Field: "opacity", Value: opacityAttr, Err: err}
		}
	}

	return Breakpoint{R: r, G: g, B: b, Value: value, Opacity: opacity}, nil
}
