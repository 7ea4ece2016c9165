package metrics

import "time"

// Metrics contains all the metrics for one color map generation run
type Metrics struct {
	InputFile    string
	InputFormat  string // "csv" or "sld"
	TotalTime    time.Duration
	LoadTime     time.Duration
	AssembleTime time.Duration
	EncodeTime   time.Duration
	WriteTime    time.Duration

	Breakpoints    int
	Segments       int
	Stops          int
	DistinctColors int
	OutputsWritten int
}
