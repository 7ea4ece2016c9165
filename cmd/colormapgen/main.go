package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/earthviz/colormap_gen/pkg/breakpoints"
	"github.com/earthviz/colormap_gen/pkg/encoder"
	"github.com/earthviz/colormap_gen/pkg/gradient"
	"github.com/earthviz/colormap_gen/pkg/metrics"
)

var (
	// Command-line flags
	csvFile   = flag.String("c", "", "CSV breakpoint input file (#RRGGBB,value[,opacity] per line; default format)")
	sldFile   = flag.String("s", "", "SLD breakpoint input file")
	stopsOut  = flag.String("stops", "", "Output file for the color:stop pairs (json)")
	rangesOut = flag.String("ranges", "", "Output file for the color:range pairs (json)")
	cssOut    = flag.String("geoserverCSS", "", "Output file for the GeoServer CSS style")
	sldOut    = flag.String("geoserverSLD", "", "Output file for the GeoServer SLD style")
	lutOut    = flag.String("LUT", "", "Output file for the GDAL LUT style")
	gibsOut   = flag.String("gibs", "", "Output file for the GIBS colormap style")
)

// output pairs an encoder with its destination file
type output struct {
	enc  encoder.Encoder
	path string
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	flag.Parse()

	// Select the input reader; a bare positional argument is read as CSV
	inputFile, inputFormat, reader := selectInput()

	// Validate required parameters
	if inputFile == "" {
		fmt.Println("Error: a breakpoint input file must be specified (-c or -s)")
		flag.Usage()
		os.Exit(1)
	}
	if *csvFile != "" && *sldFile != "" {
		fmt.Println("Error: -c and -s are mutually exclusive")
		flag.Usage()
		os.Exit(1)
	}
	if _, err := os.Stat(inputFile); err != nil {
		fmt.Printf("Error: cannot read input file %s: %v\n", inputFile, err)
		flag.Usage()
		os.Exit(1)
	}

	outputs := selectOutputs()

	// Create metrics collector
	collector := metrics.NewCollector(inputFile, inputFormat)
	startTime := collector.StartTiming()

	// Load breakpoints
	startLoad := time.Now()
	bps, err := reader.Read(inputFile)
	if err != nil {
		var malformed *breakpoints.MalformedBreakpointError
		if errors.As(err, &malformed) {
			log.Fatal().Int("line", malformed.Line).Str("value", malformed.Value).Err(err).Msg("invalid breakpoint input")
		}
		log.Fatal().Err(err).Msg("failed to read breakpoints")
	}
	collector.SetLoadMetrics(len(bps), time.Since(startLoad))

	// Assemble the gradient
	startAssemble := time.Now()
	grad, err := gradient.Assemble(bps)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to assemble gradient")
	}
	collector.SetAssembleMetrics(len(grad.Stops), grad.DistinctColors(), time.Since(startAssemble))

	// Encode all requested formats in parallel; the encoders share the
	// immutable gradient and nothing else
	startEncode := time.Now()
	results := make([]string, len(outputs))
	encodeErrs := make([]error, len(outputs))

	var wg sync.WaitGroup
	wg.Add(len(outputs))
	for i, out := range outputs {
		go func(i int, out output) {
			defer wg.Done()
			results[i], encodeErrs[i] = out.enc.Encode(grad)
		}(i, out)
	}
	wg.Wait()

	// No output file is written unless every encoding succeeded
	for i, err := range encodeErrs {
		if err != nil {
			log.Fatal().Str("format", outputs[i].enc.Name()).Err(err).Msg("failed to encode gradient")
		}
	}
	collector.SetEncodeMetrics(time.Since(startEncode))

	// Write output files
	startWrite := time.Now()
	for i, out := range outputs {
		if err := os.WriteFile(out.path, []byte(results[i]), 0o644); err != nil {
			log.Fatal().Str("format", out.enc.Name()).Err(err).Msg("failed to write output file")
		}
	}
	collector.SetWriteMetrics(len(outputs), time.Since(startWrite))

	collector.StopTiming(startTime)

	fmt.Printf("Complete. Distinct Color Mappings: %d\n", grad.DistinctColors())
	metrics.PrintSummary(collector.GetMetrics())
}

// selectInput resolves the input file, its format name and reader from
// the -c/-s flags. CSV is the default format for a positional argument.
func selectInput() (string, string, breakpoints.Reader) {
	switch {
	case *sldFile != "":
		return *sldFile, "sld", breakpoints.NewSLDReader()
	case *csvFile != "":
		return *csvFile, "csv", breakpoints.NewCSVReader()
	case flag.NArg() > 0:
		return flag.Arg(0), "csv", breakpoints.NewCSVReader()
	}
	return "", "", nil
}

// selectOutputs collects the encoders requested on the command line
func selectOutputs() []output {
	var outputs []output
	for _, o := range []output{
		{encoder.Stops{}, *stopsOut},
		{encoder.Ranges{}, *rangesOut},
		{encoder.CSS{}, *cssOut},
		{encoder.SLD{}, *sldOut},
		{encoder.LUT{}, *lutOut},
		{encoder.GIBS{}, *gibsOut},
	} {
		if o.path != "" {
			outputs = append(outputs, o)
		}
	}
	return outputs
}
