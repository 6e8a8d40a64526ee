// Package exporter renders every configured icon size and writes the PNGs.
package exporter

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"weathericons/src/config"
	"weathericons/src/icon"
)

// Exporter runs the render-and-save pipeline for one configuration
type Exporter struct {
	cfg *config.Config
	log zerolog.Logger
}

// New creates a new exporter
func New(cfg *config.Config, log zerolog.Logger) *Exporter {
	return &Exporter{cfg: cfg, log: log}
}

// Path returns the output file for an icon size.
func (e *Exporter) Path(size int) string {
	return filepath.Join(e.cfg.Output.Dir, fmt.Sprintf("%s-%d.png", e.cfg.Output.Prefix, size))
}

// Run renders each size in order and writes it to Path(size), creating the
// output directory first. The first failure aborts the remaining sizes.
// It returns the paths written.
func (e *Exporter) Run() ([]string, error) {
	style, err := e.cfg.IconStyle()
	if err != nil {
		return nil, fmt.Errorf("invalid style: %w", err)
	}

	if err := os.MkdirAll(e.cfg.Output.Dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	written := make([]string, 0, len(e.cfg.Sizes))
	for _, size := range e.cfg.Sizes {
		path := e.Path(size)
		e.log.Debug().Int("size", size).Bool("antialias", style.Antialias).Msg("Rendering icon")

		if err := writePNG(path, icon.Render(size, style)); err != nil {
			return written, err
		}

		e.log.Info().Str("path", path).Msg("Generated icon")
		written = append(written, path)
	}

	e.log.Info().Int("count", len(written)).Msg("All icons generated successfully")
	return written, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}
