package genetics

import (
	"gonum.org/v1/gonum/stat"
)

// Registry is the identity-keyed store of every genome the engine has
// produced, kept in registration order for deterministic enumeration.
// Genomes are retained after their owning agent dies so lineage
// statistics survive the agent; Reset drops everything and restarts the
// ID counter. Exactly one registry exists per engine, constructed with
// it and never reached through package state.
type Registry struct {
	genomes map[uint64]*Genome
	order   []uint64
	nextID  uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		genomes: make(map[uint64]*Genome),
	}
}

// nextGenomeID hands out sequential IDs starting at 1. Sequential IDs
// keep replays deterministic; random IDs would need entropy outside the
// seeded source.
func (r *Registry) nextGenomeID() uint64 {
	r.nextID++
	return r.nextID
}

func (r *Registry) add(g *Genome) {
	r.genomes[g.ID] = g
	r.order = append(r.order, g.ID)
}

// Get looks up a genome by ID.
func (r *Registry) Get(id uint64) (*Genome, bool) {
	g, ok := r.genomes[id]
	return g, ok
}

// Len returns the number of registered genomes.
func (r *Registry) Len() int {
	return len(r.genomes)
}

// Each calls fn for every genome in registration order until fn
// returns false.
func (r *Registry) Each(fn func(*Genome) bool) {
	for _, id := range r.order {
		if !fn(r.genomes[id]) {
			return
		}
	}
}

// Stats aggregates registry-wide statistics.
type Stats struct {
	Genomes             int
	Founders            int
	Mutations           int
	MutationsByKind     [mutationKindCount]int
	MaxGeneration       int
	GenerationHistogram map[int]int
	MeanDiversity       float64
	StdDevDiversity     float64
}

// Stats computes aggregate statistics over all registered genomes.
func (r *Registry) Stats() Stats {
	s := Stats{
		Genomes:             len(r.order),
		GenerationHistogram: make(map[int]int),
	}
	diversities := make([]float64, 0, len(r.order))
	for _, id := range r.order {
		g := r.genomes[id]
		if g.IsFounder() {
			s.Founders++
		}
		s.Mutations += len(g.Mutations)
		for _, m := range g.Mutations {
			s.MutationsByKind[m.Kind]++
		}
		if g.Generation > s.MaxGeneration {
			s.MaxGeneration = g.Generation
		}
		s.GenerationHistogram[g.Generation]++
		diversities = append(diversities, g.DiversityScore)
	}
	switch len(diversities) {
	case 0:
	case 1:
		s.MeanDiversity = diversities[0]
	default:
		s.MeanDiversity, s.StdDevDiversity = stat.MeanStdDev(diversities, nil)
	}
	return s
}

// Reset clears all genomes and restarts the ID counter.
func (r *Registry) Reset() {
	r.genomes = make(map[uint64]*Genome)
	r.order = r.order[:0]
	r.nextID = 0
}
