package sim

import (
	"github.com/pthm-cable/drift/components"
	"github.com/pthm-cable/drift/genetics"
	"github.com/pthm-cable/drift/telemetry"
)

// Founder placement and deferred offspring insertion.

const birthScatter = 12.0

// spawnFounders seeds the initial population with random genomes at
// random positions.
func (s *Simulation) spawnFounders() {
	for i := 0; i < s.cfg.Population.Initial; i++ {
		x := s.rng.Range(0, s.cfg.World.Width)
		y := s.rng.Range(0, s.cfg.World.Height)
		s.spawnAgent(x, y, s.engine.NewRandomGenome())
	}
	Logf("spawned %d founders", s.cfg.Population.Initial)
}

// spawnAgent materializes one agent entity and returns its ID.
func (s *Simulation) spawnAgent(x, y float64, g *genetics.Genome) uint64 {
	s.nextAgentID++
	id := s.nextAgentID

	pos := components.Position{X: x, Y: y}
	en := components.Energy{
		Value: s.cfg.Energy.Initial,
		Max:   s.cfg.Energy.Max,
		Alive: true,
	}
	org := components.Organism{ID: id, Genome: g}

	entity := s.mapper.NewEntity(&pos, &en, &org)
	s.entities[id] = entity
	s.aliveCount++
	return id
}

// flushBirths inserts queued offspring near their carrier, respecting
// the population cap. Overflow genomes stay in the registry but never
// become agents.
func (s *Simulation) flushBirths() {
	for _, b := range s.pending {
		if s.aliveCount >= s.cfg.Population.MaxAgents {
			continue
		}

		x := s.rng.Range(0, s.cfg.World.Width)
		y := s.rng.Range(0, s.cfg.World.Height)
		if entity, ok := s.entities[b.carrierID]; ok && s.world.Alive(entity) {
			pos, _, _ := s.mapper.Get(entity)
			x = wrap(pos.X+s.rng.Range(-birthScatter, birthScatter), s.cfg.World.Width)
			y = wrap(pos.Y+s.rng.Range(-birthScatter, birthScatter), s.cfg.World.Height)
		}
		s.spawnAgent(x, y, b.genome)

		if err := s.output.WriteBirth(telemetry.BirthRecord{
			Tick:           s.tick,
			GenomeID:       b.genome.ID,
			Generation:     b.genome.Generation,
			CarrierID:      b.carrierID,
			PartnerID:      b.partnerID,
			DiversityScore: b.genome.DiversityScore,
			Mutations:      len(b.genome.Mutations),
		}); err != nil {
			Logf("birth write failed: %v", err)
		}
	}
	s.pending = s.pending[:0]
}
