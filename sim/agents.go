package sim

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/drift/components"
	"github.com/pthm-cable/drift/genetics"
	"github.com/pthm-cable/drift/traits"
)

// agentView adapts one ECS row to the reproduction.Agent interface.
// The component pointers stay valid for the duration of a tick because
// all structural changes (spawns, removals) happen between passes.
type agentView struct {
	entity ecs.Entity
	pos    *components.Position
	energy *components.Energy
	org    *components.Organism
}

func (v *agentView) ID() uint64 {
	return v.org.ID
}

func (v *agentView) Position() (float64, float64) {
	return v.pos.X, v.pos.Y
}

func (v *agentView) Energy() float64 {
	return v.energy.Value
}

func (v *agentView) MaxEnergy() float64 {
	return v.energy.Max
}

func (v *agentView) Age() float64 {
	return v.energy.Age
}

func (v *agentView) Genome() *genetics.Genome {
	return v.org.Genome
}

func (v *agentView) ConsumeEnergy(amount float64) {
	v.energy.Value -= amount
	if v.energy.Value < 0 {
		v.energy.Value = 0
	}
}

// traitOf reads an effective trait value, falling back to the species
// default when the genome cannot express it.
func (s *Simulation) traitOf(v *agentView, t traits.Trait) float64 {
	value, err := s.engine.TraitValue(v.org.Genome, t)
	if err != nil {
		return t.Def().SpeciesDefault
	}
	return value
}
