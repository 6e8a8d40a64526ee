package main

import (
	"flag"
	"fmt"
	"image/png"
	"os"

	"weathericons/src/icon"
	"weathericons/src/logging"
)

func main() {
	size := flag.Int("size", 128, "Edge length in pixels")
	antialias := flag.Bool("antialias", false, "Rasterize with area coverage")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Println("Usage: go run ./src/cmd/render_icon [-size N] [-antialias] <output.png>")
		os.Exit(1)
	}

	outPath := flag.Arg(0)
	log := logging.New(os.Stderr, true)

	style := icon.DefaultStyle()
	style.Antialias = *antialias

	g := icon.Layout(*size)
	log.Debug().Int("corner_radius", g.CornerRadius).Msg("Background")
	log.Debug().Int("x", g.Sun.X).Int("y", g.Sun.Y).Int("r", g.Sun.R).Msg("Sun")
	for i, c := range g.Cloud {
		log.Debug().Int("x", c.X).Int("y", c.Y).Int("r", c.R).Msgf("Cloud %d", i+1)
	}

	f, err := os.Create(outPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", outPath).Msg("Failed to create output file")
	}
	defer f.Close()

	if err := png.Encode(f, icon.Render(*size, style)); err != nil {
		log.Fatal().Err(err).Msg("Failed to encode icon")
	}

	fmt.Printf("✅ Wrote %dx%d icon to %s\n", *size, *size, outPath)
}
