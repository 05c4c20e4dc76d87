// Package config provides configuration loading for the simulation driver.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/talgya/aeternitas/internal/sim"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all driver configuration. The simulation constants live
// here so every run fixes them in one place.
type Config struct {
	World     WorldConfig     `yaml:"world"`
	Energy    EnergyConfig    `yaml:"energy"`
	Output    OutputConfig    `yaml:"output"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// WorldConfig holds world construction inputs.
type WorldConfig struct {
	Size     int    `yaml:"size"`     // Grid side length; positions span [0, size)
	Seed     uint64 `yaml:"seed"`     // Generator seed; zero is valid
	Founders int    `yaml:"founders"` // Initial population size
	Ticks    uint64 `yaml:"ticks"`    // Ticks to run
}

// EnergyConfig holds the fixed energy-economy constants.
type EnergyConfig struct {
	InitialEnergy         float64 `yaml:"initial_energy"`
	MoveCost              float64 `yaml:"move_cost"`
	ReproductionThreshold float64 `yaml:"reproduction_threshold"`
	SplitCost             float64 `yaml:"split_cost"`
	SenescenceFactor      float64 `yaml:"senescence_factor"`
}

// OutputConfig holds event record and archive destinations.
type OutputConfig struct {
	EventLog string `yaml:"event_log"` // JSONL path; empty disables
	Archive  string `yaml:"archive"`   // SQLite path; empty disables
}

// TelemetryConfig holds telemetry output settings.
type TelemetryConfig struct {
	Dir      string `yaml:"dir"`      // CSV output directory; empty disables
	Interval uint64 `yaml:"interval"` // Ticks between stat rows
}

// Load reads configuration from a YAML file merged over the embedded
// defaults. An empty path uses the defaults alone.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into the same struct: only fields present in the file
		// overwrite the defaults.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if cfg.World.Size <= 0 {
		return nil, fmt.Errorf("world size must be positive, got %d", cfg.World.Size)
	}

	return cfg, nil
}

// SimParams converts the energy section into simulation parameters.
func (c *Config) SimParams() sim.Params {
	return sim.Params{
		InitialEnergy:         c.Energy.InitialEnergy,
		MoveCost:              c.Energy.MoveCost,
		ReproductionThreshold: c.Energy.ReproductionThreshold,
		SplitCost:             c.Energy.SplitCost,
		SenescenceFactor:      c.Energy.SenescenceFactor,
	}
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
