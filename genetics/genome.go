package genetics

import "github.com/pthm-cable/drift/traits"

// MutationKind identifies one of the four mutation operators.
type MutationKind uint8

const (
	MutationPoint MutationKind = iota // multiplicative jitter, most common
	MutationShift                     // additive Gaussian offset
	MutationInversion                 // reflect across the range midpoint
	MutationNovel                     // uniform resample, rarest

	mutationKindCount
)

// String returns the mutation kind's name.
func (k MutationKind) String() string {
	switch k {
	case MutationPoint:
		return "point"
	case MutationShift:
		return "shift"
	case MutationInversion:
		return "inversion"
	case MutationNovel:
		return "novel"
	default:
		return "unknown"
	}
}

// MutationRecord logs one applied mutation. Records are only kept when
// the change exceeds the configured epsilon, so floating noise never
// pollutes the log.
type MutationRecord struct {
	Kind       MutationKind `yaml:"kind" json:"kind"`
	Trait      traits.Trait `yaml:"trait" json:"trait"`
	OldValue   float64      `yaml:"old_value" json:"old_value"`
	NewValue   float64      `yaml:"new_value" json:"new_value"`
	Generation int          `yaml:"generation" json:"generation"`
}

// Genome is an agent's full heritable trait set: one gene per trait
// category. Genomes are plain data with no behavior attached, so any
// persistence layer can snapshot and restore them unchanged. After
// creation only the per-gene Expressed flag and EnvironmentalModifier
// are mutated, and only through the engine.
type Genome struct {
	ID             uint64                  `yaml:"id" json:"id"`
	Genes          [traits.Count]Gene      `yaml:"genes" json:"genes"`
	Generation     int                     `yaml:"generation" json:"generation"`
	ParentIDs      []uint64                `yaml:"parent_ids,omitempty" json:"parent_ids,omitempty"`
	Mutations      []MutationRecord        `yaml:"mutations,omitempty" json:"mutations,omitempty"`
	DiversityScore float64                 `yaml:"diversity_score" json:"diversity_score"`
}

// Gene returns the genome's gene for a trait, or nil for an unknown trait.
func (g *Genome) Gene(t traits.Trait) *Gene {
	if !t.Valid() {
		return nil
	}
	return &g.Genes[t]
}

// IsFounder reports whether the genome was created without parents.
func (g *Genome) IsFounder() bool {
	return len(g.ParentIDs) == 0
}
