package genetics

import (
	"fmt"
	"math"

	"github.com/pthm-cable/drift/traits"
)

// Dominance-averaging noise and the mutation operator sigmas. The shift
// sigma is in normalized range units so traits with wide bounds drift
// proportionally.
const (
	dominanceNoiseSigma = 0.05
	shiftSigma          = 0.1
	pointSigma          = 0.05
	blendLow            = 0.3
	blendHigh           = 0.7
)

// Combine produces an offspring genome from two parents. Per trait:
// dominance-weighted inheritance picks a source parent, co-dominance
// blending averages the values when neither parent clearly dominates,
// the child's dominance and mutation rate average the parents', and the
// mutation operator runs once before the gene is inserted. The child is
// registered and its generation is max(parent generations)+1.
func (e *Engine) Combine(p1, p2 *Genome) (*Genome, error) {
	if p1 == nil || p2 == nil {
		return nil, fmt.Errorf("genetics: cannot combine nil genomes")
	}
	child := &Genome{
		ID:         e.registry.nextGenomeID(),
		Generation: max(p1.Generation, p2.Generation) + 1,
		ParentIDs:  []uint64{p1.ID, p2.ID},
	}
	for t := traits.Trait(0); t < traits.Count; t++ {
		g1, g2 := &p1.Genes[t], &p2.Genes[t]

		// Inheritance probability is the first parent's share of the
		// combined dominance.
		prob := 0.5
		if total := g1.Dominance + g2.Dominance; total > 0 {
			prob = g1.Dominance / total
		}
		source := g1
		if e.rng.Float64() >= prob {
			source = g2
		}
		value := source.Value

		// Co-dominance blending: when neither trait clearly dominates,
		// polygenic blending replaces the hard pick.
		if math.Abs(g1.Dominance-g2.Dominance) < e.cfg.CoDominanceThreshold {
			f := e.rng.Range(blendLow, blendHigh)
			value = g1.Value*f + g2.Value*(1-f)
		}

		def := t.Def()
		gene := Gene{
			Trait:                 t,
			Min:                   def.Min,
			Max:                   def.Max,
			MutationRate:          (g1.MutationRate + g2.MutationRate) / 2,
			Expressed:             true,
			EnvironmentalModifier: 1.0,
		}
		gene.SetValue(value)
		gene.SetDominance((g1.Dominance+g2.Dominance)/2 + e.rng.Gauss(0, dominanceNoiseSigma))

		e.mutateGene(&gene, child)
		child.Genes[t] = gene
	}
	child.DiversityScore = diversityScore(child)
	e.registry.add(child)
	return child, nil
}

// mutateGene applies the mutation operator once. The effective rate
// scales the gene's own rate by the global base rate and the
// environmental multiplier; a uniform draw above it skips mutation.
func (e *Engine) mutateGene(g *Gene, genome *Genome) {
	rate := g.MutationRate * e.cfg.BaseMutationRate * e.cfg.EnvMutationMultiplier
	if e.rng.Float64() > rate {
		return
	}

	old := g.Value
	kind := e.pickMutationKind()
	switch kind {
	case MutationNovel:
		// De-novo trait emergence: resample across the full range.
		g.SetValue(e.rng.Range(g.Min, g.Max))
	case MutationInversion:
		// Reflect the normalized value across the range midpoint.
		g.SetValue(g.Min + (1-g.Normalized())*(g.Max-g.Min))
	case MutationShift:
		g.SetValue(g.Value + e.rng.Gauss(0, shiftSigma)*(g.Max-g.Min))
	case MutationPoint:
		g.SetValue(g.Value * (1 + e.rng.Gauss(0, pointSigma)))
	}

	if math.Abs(g.Value-old) > e.cfg.MutationEpsilon {
		genome.Mutations = append(genome.Mutations, MutationRecord{
			Kind:       kind,
			Trait:      g.Trait,
			OldValue:   old,
			NewValue:   g.Value,
			Generation: genome.Generation,
		})
	}
}

// pickMutationKind selects a kind via a single draw against the
// cumulative-probability table.
func (e *Engine) pickMutationKind() MutationKind {
	r := e.rng.Float64()
	for _, c := range e.choices {
		if r < c.cum {
			return c.kind
		}
	}
	return MutationPoint
}
