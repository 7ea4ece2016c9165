package breakpoints

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// CSVReader reads breakpoint files in the CSV format, one record per
// line: #RRGGBB,<value>[,<opacity>]
type CSVReader struct{}

// NewCSVReader creates a new CSV breakpoint reader
func NewCSVReader() *CSVReader {
	return &CSVReader{}
}

// Read parses a CSV breakpoint file and returns its records sorted
// ascending by value
func (r *CSVReader) Read(filePath string) ([]Breakpoint, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var bps []Breakpoint
	lineNum := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		bp, err := parseCSVLine(line, lineNum)
		if err != nil {
			return nil, err
		}
		bps = append(bps, bp)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(bps) < 2 {
		return nil, fmt.Errorf("%s: %w", filePath, ErrInsufficientBreakpoints)
	}

	sortByValue(bps)
	return bps, nil
}

// parseCSVLine parses a single "#RRGGBB,<value>[,<opacity>]" record
func parseCSVLine(line string, lineNum int) (Breakpoint, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 2 {
		return Breakpoint{}, &MalformedBreakpointError{
			Line:  lineNum,
			Field: "value",
			Value: line,
			Err:   fmt.Errorf("expected at least 2 fields, got %d", len(fields)),
		}
	}

	r, g, b, err := parseHexColor(strings.TrimSpace(fields[0]))
	if err != nil {
		return Breakpoint{}, &MalformedBreakpointError{Line: lineNum, Field: "color", Value: fields[0], Err: err}
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err == nil {
		err = checkValue(value)
	}
	if err != nil {
		return Breakpoint{}, &MalformedBreakpointError{Line: lineNum, Field: "value", Value: fields[1], Err: err}
	}

	opacity := 1.0
	if len(fields) > 2 {
		opacity, err = strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
		if err == nil {
			err = checkOpacity(opacity)
		}
		if err != nil {
			return Breakpoint{}, &MalformedBreakpointError{Line: lineNum, Field: "opacity", Value: fields[2], Err: err}
		}
	}

	return Breakpoint{R: r, G: g, B: b, Value: value, Opacity: opacity}, nil
}

// sortByValue orders breakpoints ascending by data value
func sortByValue(bps []Breakpoint) {
	sort.SliceStable(bps, func(i, j int) bool {
		return bps[i].Value < bps[j].Value
	})
}
