// Package genetics implements the heritable-trait engine: genome
// creation, two-parent combination with dominance-weighted inheritance
// and mutation, compatibility and diversity metrics, environmental
// modifiers, and the genome registry.
package genetics

import "github.com/pthm-cable/drift/traits"

// Gene is a single bounded heritable trait. Min <= Value <= Max holds
// at all times; writes clamp, reads never check.
type Gene struct {
	Trait                 traits.Trait `yaml:"trait" json:"trait"`
	Value                 float64      `yaml:"value" json:"value"`
	Min                   float64      `yaml:"min" json:"min"`
	Max                   float64      `yaml:"max" json:"max"`
	Dominance             float64      `yaml:"dominance" json:"dominance"`
	MutationRate          float64      `yaml:"mutation_rate" json:"mutation_rate"`
	Expressed             bool         `yaml:"expressed" json:"expressed"`
	EnvironmentalModifier float64      `yaml:"environmental_modifier" json:"environmental_modifier"`
}

// SetValue writes a value, clamping to the gene's bounds.
func (g *Gene) SetValue(v float64) {
	g.Value = clamp(v, g.Min, g.Max)
}

// SetDominance writes a dominance weight, clamped to [0,1].
func (g *Gene) SetDominance(d float64) {
	g.Dominance = clamp(d, 0, 1)
}

// Normalized returns the gene's value mapped into [0,1] by its own bounds.
func (g *Gene) Normalized() float64 {
	if g.Max == g.Min {
		return 0
	}
	return (g.Value - g.Min) / (g.Max - g.Min)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
