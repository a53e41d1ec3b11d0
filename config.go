package main

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config is the file form of the command line: the channel shape, the
// cutting parameters, and job presentation options.
type Config struct {
	// scalar keys come first so the marshalled file is valid TOML
	Speed    float64           `toml:"speed"`
	Imperial bool              `toml:"imperial"`
	Shape    Shape             `toml:"shape"`
	Cutting  CuttingParameters `toml:"cutting"`
}

// DefaultConfig holds the same values the command-line flags default to.
func DefaultConfig() *Config {
	return &Config{
		Speed: 10000,
		Shape: Shape{
			Length:         50,
			StockDiameter:  35,
			NumberOfTurns:  3,
			TargetCutDepth: 3,
			TargetCutWidth: 6,
		},
		Cutting: CuttingParameters{
			CutFeedRate:          200,
			FastFeedRate:         1500,
			FastFeedRateZ:        500,
			MaxCutDepth:          1,
			InstrumentDiameter:   4,
			InitialZOffset:       2,
			InitialYOffset:       0,
			InitialXOffset:       0,
			LastPassCuttingDepth: 0.2,
		},
	}
}

func LoadConfig(path string) (*Config, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(buf, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return cfg, nil
}

// WriteExampleConfig writes a config file populated with the default
// values, as a starting point for editing.
func WriteExampleConfig(path string) error {
	buf, err := toml.Marshal(DefaultConfig())
	if err != nil {
		return err
	}

	return os.WriteFile(path, buf, 0644)
}
