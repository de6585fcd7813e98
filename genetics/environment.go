package genetics

import (
	"fmt"

	"github.com/pthm-cable/drift/traits"
)

// Environmental modifiers compose multiplicatively and are clamped
// per gene to this band, so no environment can erase or explode a trait.
const (
	envModifierMin = 0.5
	envModifierMax = 2.0
)

// Factors describes the environmental pressures that modulate trait
// expression. Temperature is deviation from the species optimum (0 is
// neutral); scarcity and pressure are intensities in [0,1].
type Factors struct {
	Temperature      float64 `yaml:"temperature"`
	FoodScarcity     float64 `yaml:"food_scarcity"`
	PredatorPressure float64 `yaml:"predator_pressure"`
}

// Zero reports whether no factor is active.
func (f Factors) Zero() bool {
	return f.Temperature == 0 && f.FoodScarcity == 0 && f.PredatorPressure == 0
}

// ApplyEnvironmentalFactors multiplies the affected genes' modifiers by
// factor-specific formulas: temperature stress raises metabolism, food
// scarcity raises energy efficiency, predator pressure raises speed and
// perception. Repeated calls compose multiplicatively rather than
// resetting; callers control call frequency. A no-op when the
// epigenetics toggle is off.
func (e *Engine) ApplyEnvironmentalFactors(g *Genome, f Factors) {
	if !e.cfg.Epigenetics || g == nil || f.Zero() {
		return
	}
	if f.Temperature != 0 {
		dev := f.Temperature
		if dev < 0 {
			dev = -dev
		}
		e.scaleModifier(g, traits.Metabolism, 1+0.1*dev)
	}
	if f.FoodScarcity > 0 {
		e.scaleModifier(g, traits.EnergyEfficiency, 1+0.2*f.FoodScarcity)
	}
	if f.PredatorPressure > 0 {
		e.scaleModifier(g, traits.Speed, 1+0.15*f.PredatorPressure)
		e.scaleModifier(g, traits.Perception, 1+0.15*f.PredatorPressure)
	}
}

// SetEnvironmentalModifier writes a gene's modifier directly, clamped
// to the modifier band. Factors applied later still compose on top.
func (e *Engine) SetEnvironmentalModifier(g *Genome, t traits.Trait, m float64) error {
	if !t.Valid() {
		return fmt.Errorf("genetics: unknown trait %d", t)
	}
	if g == nil {
		return fmt.Errorf("genetics: nil genome")
	}
	g.Genes[t].EnvironmentalModifier = clamp(m, envModifierMin, envModifierMax)
	return nil
}

func (e *Engine) scaleModifier(g *Genome, t traits.Trait, mult float64) {
	gene := &g.Genes[t]
	gene.EnvironmentalModifier = clamp(gene.EnvironmentalModifier*mult, envModifierMin, envModifierMax)
}
