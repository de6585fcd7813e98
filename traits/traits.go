// Package traits defines the closed set of heritable trait categories.
package traits

// Trait identifies a heritable trait category.
type Trait uint8

const (
	Speed Trait = iota
	Size
	EnergyEfficiency
	AttackPower
	Defense
	Perception
	Intelligence
	Fertility
	Longevity
	Metabolism
	Aggression
	Sociability

	// Count is the number of trait categories; not a trait itself.
	Count
)

// Definition holds the heritable parameters for one trait category.
// Min/Max bound every gene value for the trait; SpeciesDefault is the
// value consumers observe when a gene is not expressed.
type Definition struct {
	Name           string
	Min            float64
	Max            float64
	BaseDominance  float64
	MutationRate   float64
	SpeciesDefault float64
}

// Definitions is indexed by Trait, giving compile-time exhaustiveness
// for per-trait loops.
var Definitions = [Count]Definition{
	Speed:            {Name: "speed", Min: 0.5, Max: 10.0, BaseDominance: 0.55, MutationRate: 0.05, SpeciesDefault: 3.0},
	Size:             {Name: "size", Min: 0.1, Max: 5.0, BaseDominance: 0.50, MutationRate: 0.03, SpeciesDefault: 1.0},
	EnergyEfficiency: {Name: "energy_efficiency", Min: 0.5, Max: 2.0, BaseDominance: 0.45, MutationRate: 0.04, SpeciesDefault: 1.0},
	AttackPower:      {Name: "attack_power", Min: 0.0, Max: 10.0, BaseDominance: 0.60, MutationRate: 0.05, SpeciesDefault: 2.0},
	Defense:          {Name: "defense", Min: 0.0, Max: 10.0, BaseDominance: 0.55, MutationRate: 0.05, SpeciesDefault: 2.0},
	Perception:       {Name: "perception", Min: 1.0, Max: 20.0, BaseDominance: 0.50, MutationRate: 0.04, SpeciesDefault: 8.0},
	Intelligence:     {Name: "intelligence", Min: 0.0, Max: 10.0, BaseDominance: 0.40, MutationRate: 0.06, SpeciesDefault: 3.0},
	Fertility:        {Name: "fertility", Min: 0.1, Max: 3.0, BaseDominance: 0.50, MutationRate: 0.04, SpeciesDefault: 1.0},
	Longevity:        {Name: "longevity", Min: 200.0, Max: 3000.0, BaseDominance: 0.45, MutationRate: 0.02, SpeciesDefault: 1200.0},
	Metabolism:       {Name: "metabolism", Min: 0.5, Max: 2.0, BaseDominance: 0.50, MutationRate: 0.04, SpeciesDefault: 1.0},
	Aggression:       {Name: "aggression", Min: 0.0, Max: 1.0, BaseDominance: 0.55, MutationRate: 0.06, SpeciesDefault: 0.3},
	Sociability:      {Name: "sociability", Min: 0.0, Max: 1.0, BaseDominance: 0.45, MutationRate: 0.06, SpeciesDefault: 0.5},
}

// Valid reports whether t names a known trait category.
func (t Trait) Valid() bool {
	return t < Count
}

// Def returns the trait's definition.
func (t Trait) Def() Definition {
	return Definitions[t]
}

// String returns the trait's configuration name.
func (t Trait) String() string {
	if !t.Valid() {
		return "unknown"
	}
	return Definitions[t].Name
}

// Range returns the width of the trait's value range.
func (t Trait) Range() float64 {
	d := Definitions[t]
	return d.Max - d.Min
}

// Normalize maps a value into [0,1] using the trait's own bounds.
func (t Trait) Normalize(v float64) float64 {
	d := Definitions[t]
	if d.Max == d.Min {
		return 0
	}
	n := (v - d.Min) / (d.Max - d.Min)
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}

// Denormalize maps a [0,1] fraction back into the trait's value range.
func (t Trait) Denormalize(n float64) float64 {
	d := Definitions[t]
	return d.Min + n*(d.Max-d.Min)
}

// Clamp bounds a value to the trait's range.
func (t Trait) Clamp(v float64) float64 {
	d := Definitions[t]
	if v < d.Min {
		return d.Min
	}
	if v > d.Max {
		return d.Max
	}
	return v
}
