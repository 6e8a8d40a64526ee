package config

import (
	"fmt"
	"image/color"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"weathericons/src/icon"
)

// MaxSize bounds the edge length of a generated icon.
const MaxSize = 4096

// Config represents the application configuration
type Config struct {
	Output OutputConfig `yaml:"output"`
	Sizes  []int        `yaml:"sizes" env:"WEATHERICONS_SIZES" envSeparator:","`
	Style  StyleConfig  `yaml:"style"`
}

type OutputConfig struct {
	Dir    string `yaml:"dir" env:"WEATHERICONS_OUTPUT_DIR"`
	Prefix string `yaml:"prefix" env:"WEATHERICONS_PREFIX"`
}

// StyleConfig holds colors as hex strings ("#RRGGBB").
type StyleConfig struct {
	Background    string `yaml:"background" env:"WEATHERICONS_BACKGROUND"`
	BackgroundEnd string `yaml:"background_end" env:"WEATHERICONS_BACKGROUND_END"`
	Sun           string `yaml:"sun" env:"WEATHERICONS_SUN"`
	Cloud         string `yaml:"cloud" env:"WEATHERICONS_CLOUD"`
	Antialias     bool   `yaml:"antialias" env:"WEATHERICONS_ANTIALIAS"`
}

// Default returns the configuration used when no file is given: the four
// extension icon sizes written as icons/default-<size>.png.
func Default() *Config {
	return &Config{
		Output: OutputConfig{
			Dir:    "icons",
			Prefix: "default",
		},
		Sizes: []int{16, 32, 48, 128},
		Style: StyleConfig{
			Background: "#4FC3F7",
			Sun:        "#FFD54F",
			Cloud:      "#FFFFFF",
		},
	}
}

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return finish(cfg)
}

// FromEnv returns the defaults with environment overrides applied.
func FromEnv() (*Config, error) {
	return finish(Default())
}

func finish(cfg *Config) (*Config, error) {
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if required configuration fields are set
func (c *Config) Validate() error {
	if c.Output.Dir == "" {
		return fmt.Errorf("output.dir is required")
	}
	if c.Output.Prefix == "" {
		return fmt.Errorf("output.prefix is required")
	}
	if len(c.Sizes) == 0 {
		return fmt.Errorf("at least one size is required")
	}

	seen := make(map[int]bool, len(c.Sizes))
	for _, size := range c.Sizes {
		if size < 1 || size > MaxSize {
			return fmt.Errorf("size %d out of range [1, %d]", size, MaxSize)
		}
		if seen[size] {
			return fmt.Errorf("duplicate size %d", size)
		}
		seen[size] = true
	}

	if _, err := c.IconStyle(); err != nil {
		return err
	}
	return nil
}

// IconStyle converts the configured colors into a renderer style.
func (c *Config) IconStyle() (icon.Style, error) {
	s := icon.Style{Antialias: c.Style.Antialias}

	var err error
	if s.Background, err = parseColor("style.background", c.Style.Background); err != nil {
		return icon.Style{}, err
	}
	if c.Style.BackgroundEnd != "" {
		if s.BackgroundEnd, err = parseColor("style.background_end", c.Style.BackgroundEnd); err != nil {
			return icon.Style{}, err
		}
	}
	if s.Sun, err = parseColor("style.sun", c.Style.Sun); err != nil {
		return icon.Style{}, err
	}
	if s.Cloud, err = parseColor("style.cloud", c.Style.Cloud); err != nil {
		return icon.Style{}, err
	}
	return s, nil
}

func parseColor(field, value string) (color.Color, error) {
	if value == "" {
		return nil, fmt.Errorf("%s is required", field)
	}
	c, err := icon.ParseHex(value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return c, nil
}
