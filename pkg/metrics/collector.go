package metrics

import (
	"time"
)

// Collector handles collecting and managing metrics for a generation run
type Collector struct {
	metrics *Metrics
}

// NewCollector creates a new metrics collector
func NewCollector(inputFile, inputFormat string) *Collector {
	return &Collector{
		metrics: &Metrics{
			InputFile:   inputFile,
			InputFormat: inputFormat,
		},
	}
}

// StartTiming starts measuring total time
func (c *Collector) StartTiming() time.Time {
	return time.Now()
}

// StopTiming stops measuring total time
func (c *Collector) StopTiming(start time.Time) {
	c.metrics.TotalTime = time.Since(start)
}

// SetLoadMetrics records the breakpoint loading phase
func (c *Collector) SetLoadMetrics(breakpoints int, d time.Duration) {
	c.metrics.Breakpoints = breakpoints
	c.metrics.Segments = breakpoints - 1
	c.metrics.LoadTime = d
}

// SetAssembleMetrics records the gradient assembly phase
func (c *Collector) SetAssembleMetrics(stops, distinctColors int, d time.Duration) {
	c.metrics.Stops = stops
	c.metrics.DistinctColors = distinctColors
	c.metrics.AssembleTime = d
}

// SetEncodeMetrics records the format encoding phase
func (c *Collector) SetEncodeMetrics(d time.Duration) {
	c.metrics.EncodeTime = d
}

// SetWriteMetrics records the output writing phase
func (c *Collector) SetWriteMetrics(outputs int, d time.Duration) {
	c.metrics.OutputsWritten = outputs
	c.metrics.WriteTime = d
}

// GetMetrics returns the collected metrics
func (c *Collector) GetMetrics() *Metrics {
	return c.metrics
}
