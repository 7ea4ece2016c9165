package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/earthviz/colormap_gen/pkg/preset"
)

var (
	// Command-line flags
	colormap = flag.String("colormap", "turbo", "Named colormap to sample ("+strings.Join(preset.Names(), ", ")+")")
	minVal   = flag.String("min", "0", "Minimum data value")
	maxVal   = flag.String("max", "100", "Maximum data value")
	nodata   = flag.String("nodata", "nv", "Nodata value, or 'nv' for none")
	percent  = flag.Bool("p", false, "Use percent instead of min/max")
	output   = flag.String("o", "output", "Output filename without extension")
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	flag.Parse()

	min, err := strconv.ParseFloat(*minVal, 64)
	if err != nil {
		fmt.Printf("Error: invalid -min value: %s\n", *minVal)
		flag.Usage()
		os.Exit(1)
	}
	max, err := strconv.ParseFloat(*maxVal, 64)
	if err != nil {
		fmt.Printf("Error: invalid -max value: %s\n", *maxVal)
		flag.Usage()
		os.Exit(1)
	}

	out, err := preset.Generate(preset.Params{
		Colormap: *colormap,
		Min:      min,
		Max:      max,
		NoData:   *nodata,
		Percent:  *percent,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to generate colormap")
	}

	xmlPath := *output + ".xml"
	lutPath := *output + ".txt"
	if err := os.WriteFile(xmlPath, []byte(out.XML), 0o644); err != nil {
		log.Fatal().Err(err).Msg("failed to write colormap XML")
	}
	if err := os.WriteFile(lutPath, []byte(out.LUT), 0o644); err != nil {
		log.Fatal().Err(err).Msg("failed to write colormap LUT")
	}

	fmt.Printf("Created %s and %s\n", xmlPath, lutPath)
}
