package reproduction

import "fmt"

// Config holds reproduction lifecycle parameters.
type Config struct {
	EnergyThreshold float64 `yaml:"energy_threshold"` // Minimum fraction of max energy for both mates
	MaturityAge     float64 `yaml:"maturity_age"`     // Age at which Immature becomes Ready
	EnergyCost      float64 `yaml:"energy_cost"`      // Deducted from each parent on a successful mating
	CooldownTicks   int     `yaml:"cooldown_ticks"`   // Ticks spent in Cooldown after mating or birth
	MatingRadius    float64 `yaml:"mating_radius"`    // Maximum distance between mates
	GestationTicks  int     `yaml:"gestation_ticks"`  // Ticks from mating to birth
	InfertilityAge  float64 `yaml:"infertility_age"`  // Age past which agents become Infertile

	// Sub-score weights for the overall mating compatibility score.
	GeneticWeight   float64 `yaml:"genetic_weight"`
	AgeWeight       float64 `yaml:"age_weight"`
	EnergyWeight    float64 `yaml:"energy_weight"`
	ProximityWeight float64 `yaml:"proximity_weight"`
}

// DefaultConfig returns the reproduction defaults.
func DefaultConfig() Config {
	return Config{
		EnergyThreshold: 0.6,
		MaturityAge:     100,
		EnergyCost:      15,
		CooldownTicks:   120,
		MatingRadius:    80,
		GestationTicks:  90,
		InfertilityAge:  2000,
		GeneticWeight:   0.4,
		AgeWeight:       0.2,
		EnergyWeight:    0.2,
		ProximityWeight: 0.2,
	}
}

// Validate checks for malformed configuration.
func (c Config) Validate() error {
	if c.EnergyThreshold < 0 || c.EnergyThreshold > 1 {
		return fmt.Errorf("reproduction config: energy_threshold must be in [0,1], got %v", c.EnergyThreshold)
	}
	if c.MaturityAge < 0 {
		return fmt.Errorf("reproduction config: maturity_age must be >= 0, got %v", c.MaturityAge)
	}
	if c.InfertilityAge <= c.MaturityAge {
		return fmt.Errorf("reproduction config: infertility_age %v must exceed maturity_age %v", c.InfertilityAge, c.MaturityAge)
	}
	if c.EnergyCost < 0 {
		return fmt.Errorf("reproduction config: energy_cost must be >= 0, got %v", c.EnergyCost)
	}
	if c.CooldownTicks <= 0 {
		return fmt.Errorf("reproduction config: cooldown_ticks must be > 0, got %d", c.CooldownTicks)
	}
	if c.GestationTicks <= 0 {
		return fmt.Errorf("reproduction config: gestation_ticks must be > 0, got %d", c.GestationTicks)
	}
	if c.MatingRadius <= 0 {
		return fmt.Errorf("reproduction config: mating_radius must be > 0, got %v", c.MatingRadius)
	}
	if c.GeneticWeight < 0 || c.AgeWeight < 0 || c.EnergyWeight < 0 || c.ProximityWeight < 0 {
		return fmt.Errorf("reproduction config: score weights must be >= 0")
	}
	if c.GeneticWeight+c.AgeWeight+c.EnergyWeight+c.ProximityWeight <= 0 {
		return fmt.Errorf("reproduction config: score weights must not all be zero")
	}
	return nil
}
