package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/earthviz/colormap_gen/pkg/tile"
)

var (
	// Command-line flags
	colormap = flag.String("colormap", "", "GIBS ColorMap XML file to take the palette from")
	width    = flag.Int("width", 512, "Tile width in pixels")
	height   = flag.Int("height", 512, "Tile height in pixels")
	index    = flag.Int("index", 0, "Palette index to fill the tile with")
	output   = flag.String("o", "empty_tile.png", "Output PNG filename")
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	flag.Parse()

	if *colormap == "" {
		fmt.Println("Error: a colormap file must be specified (-colormap)")
		flag.Usage()
		os.Exit(1)
	}

	entries, err := tile.ParseColorMapFile(*colormap)
	if err != nil {
		log.Fatal().Str("colormap", *colormap).Err(err).Msg("failed to parse colormap")
	}

	img, err := tile.Generate(entries, *index, *width, *height)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to generate tile")
	}

	file, err := os.Create(*output)
	if err != nil {
		log.Fatal().Str("output", *output).Err(err).Msg("failed to create output file")
	}
	defer file.Close()

	if err := tile.WritePNG(file, img); err != nil {
		log.Fatal().Err(err).Msg("failed to encode tile")
	}

	fmt.Printf("Created %s (%dx%d, %d palette entries)\n", *output, *width, *height, len(entries))
}
