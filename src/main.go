package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"weathericons/src/config"
	"weathericons/src/exporter"
	"weathericons/src/logging"
	"weathericons/src/watcher"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults are used when empty)")
	outDir := flag.String("out", "", "Output directory, overrides the config")
	watch := flag.Bool("watch", false, "Regenerate icons whenever the config file changes")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	fmt.Println("Weather Icons - Extension Icon Generator")
	fmt.Println("========================================")

	log := logging.New(os.Stdout, *debug)

	load := func() (*config.Config, error) {
		var (
			cfg *config.Config
			err error
		)
		if *configPath != "" {
			cfg, err = config.Load(*configPath)
		} else {
			cfg, err = config.FromEnv()
		}
		if err != nil {
			return nil, err
		}
		if *outDir != "" {
			cfg.Output.Dir = *outDir
		}
		return cfg, nil
	}

	generate := func() error {
		cfg, err := load()
		if err != nil {
			return err
		}
		_, err = exporter.New(cfg, log).Run()
		return err
	}

	if err := generate(); err != nil {
		log.Fatal().Err(err).Msg("Icon generation failed")
	}

	if !*watch {
		return
	}
	if *configPath == "" {
		log.Fatal().Msg("-watch requires -config")
	}

	runWatcher(*configPath, generate, log)
}

func runWatcher(path string, generate func() error, log zerolog.Logger) {
	w, err := watcher.New(path, generate, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create watcher")
	}

	if err := w.Start(); err != nil {
		log.Fatal().Err(err).Msg("Failed to start watcher")
	}

	log.Info().Msg("Press Ctrl+C to stop")

	go func() {
		for event := range w.Events() {
			if event.Err == nil {
				log.Debug().Str("file", event.Path).Msg("Reload complete")
			}
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("Shutting down...")
	w.Stop()
}
