package metrics

import (
	"fmt"
	"time"
)

// PrintSummary prints a table with the run's phase timings and counts
func PrintSummary(m *Metrics) {
	fmt.Println("┌ Run Summary ─┬──────────────┬──────────────┬──────────────┬──────────────┐")
	fmt.Printf("│ %-12s │ %-12s │ %-12s │ %-12s │ %-12s │\n",
		"Load", "Assemble", "Encode", "Write", "Total")
	fmt.Println("├──────────────┼──────────────┼──────────────┼──────────────┼──────────────┤")

	loadMag, loadUnit := getMagnitudeAndUnit(m.LoadTime)
	asmMag, asmUnit := getMagnitudeAndUnit(m.AssembleTime)
	encMag, encUnit := getMagnitudeAndUnit(m.EncodeTime)
	writeMag, writeUnit := getMagnitudeAndUnit(m.WriteTime)
	totalMag, totalUnit := getMagnitudeAndUnit(m.TotalTime)

	fmt.Printf("│ %9.2f %-2s │ %9.2f %-2s │ %9.2f %-2s │ %9.2f %-2s │ %9.2f %-2s │\n",
		loadMag, loadUnit,
		asmMag, asmUnit,
		encMag, encUnit,
		writeMag, writeUnit,
		totalMag, totalUnit)
	fmt.Println("└──────────────┴──────────────┴──────────────┴──────────────┴──────────────┘")

	fmt.Printf("Input: %s (%s)  Breakpoints: %d  Segments: %d  Stops: %d  Outputs: %d\n",
		m.InputFile, m.InputFormat, m.Breakpoints, m.Segments, m.Stops, m.OutputsWritten)
}

// getMagnitudeAndUnit returns the appropriate magnitude and unit for a duration
func getMagnitudeAndUnit(d time.Duration) (float64, string) {
	if d < time.Microsecond {
		return float64(d.Nanoseconds()), "ns"
	} else if d < time.Millisecond {
		return float64(d.Nanoseconds()) / 1000, "µs"
	} else if d < time.Second {
		return float64(d.Nanoseconds()) / 1000000, "ms"
	} else {
		return d.Seconds(), "s"
	}
}
