// Package components defines the ECS components for the simulation
// driver.
package components

import "github.com/pthm-cable/drift/genetics"

// Position is a location in world units.
type Position struct {
	X, Y float64
}

// Energy tracks an agent's metabolic state. Value is in absolute energy
// units; Max is the per-agent capacity. Age is in ticks.
type Energy struct {
	Value float64
	Max   float64
	Age   float64
	Alive bool
}

// Organism bundles identity and the heritable genome.
type Organism struct {
	ID     uint64
	Genome *genetics.Genome
}
