// Package config provides configuration loading and access for the
// simulation.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/drift/genetics"
	"github.com/pthm-cable/drift/reproduction"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
type Config struct {
	World        WorldConfig         `yaml:"world"`
	Population   PopulationConfig    `yaml:"population"`
	Energy       EnergyConfig        `yaml:"energy"`
	Genetics     genetics.Config     `yaml:"genetics"`
	Reproduction reproduction.Config `yaml:"reproduction"`
	Environment  EnvironmentConfig   `yaml:"environment"`
	Telemetry    TelemetryConfig     `yaml:"telemetry"`
}

// WorldConfig holds simulation world dimensions in world units.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PopulationConfig holds population management parameters.
type PopulationConfig struct {
	Initial   int `yaml:"initial"`    // Founder population size
	MaxAgents int `yaml:"max_agents"` // Hard cap; offspring beyond it are dropped
}

// EnergyConfig holds the driver's energy economics. Costs are base
// values scaled per agent by the metabolism and energy-efficiency
// traits.
type EnergyConfig struct {
	Initial   float64 `yaml:"initial"`    // Starting energy for founders
	Max       float64 `yaml:"max"`        // Energy capacity
	BaseCost  float64 `yaml:"base_cost"`  // Drain per tick for existing
	RegenRate float64 `yaml:"regen_rate"` // Passive intake per tick
}

// EnvironmentConfig holds the ambient environmental pressures the
// driver applies to live genomes.
type EnvironmentConfig struct {
	Factors       genetics.Factors `yaml:"factors"`
	ApplyInterval int              `yaml:"apply_interval"` // Ticks between applications (0 = never)
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow int `yaml:"stats_window"` // Ticks per stats window
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded
// defaults if path is empty. Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Load loads configuration from a YAML file, merging with embedded
// defaults. If path is empty, only embedded defaults are used.
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
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the full configuration, delegating to the engine
// configs for their sections.
func (c *Config) Validate() error {
	if c.World.Width <= 0 || c.World.Height <= 0 {
		return fmt.Errorf("config: world dimensions must be positive")
	}
	if c.Population.Initial < 0 {
		return fmt.Errorf("config: population.initial must be >= 0, got %d", c.Population.Initial)
	}
	if c.Population.MaxAgents <= 0 {
		return fmt.Errorf("config: population.max_agents must be > 0, got %d", c.Population.MaxAgents)
	}
	if c.Energy.Max <= 0 || c.Energy.Initial < 0 || c.Energy.Initial > c.Energy.Max {
		return fmt.Errorf("config: need 0 <= energy.initial <= energy.max with energy.max > 0")
	}
	if c.Telemetry.StatsWindow <= 0 {
		return fmt.Errorf("config: telemetry.stats_window must be > 0, got %d", c.Telemetry.StatsWindow)
	}
	if err := c.Genetics.Validate(); err != nil {
		return err
	}
	if err := c.Reproduction.Validate(); err != nil {
		return err
	}
	return nil
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
