package genetics

import (
	"math"

	"github.com/pthm-cable/drift/traits"
)

// Compatibility scores a pair of genomes in [0,1] for mating. The score
// is a triangular function of mean normalized trait distance, peaking
// at the configured optimal distance: near-identical genomes score
// toward 0 (anti-inbreeding pressure, so a genome is fully incompatible
// with its clone) and wildly divergent genomes fall back toward 0.
// Distances below the minimum-diversity floor or above the maximum
// genetic distance score exactly 0.
func (e *Engine) Compatibility(g1, g2 *Genome) float64 {
	if g1 == nil || g2 == nil {
		return 0
	}
	d := GeneticDistance(g1, g2)
	if d < e.cfg.MinGeneticDiversity || d > e.cfg.MaxGeneticDistance {
		return 0
	}
	opt := e.cfg.OptimalDistance
	var score float64
	if d <= opt {
		score = d / opt
	} else {
		score = (1 - d) / (1 - opt)
	}
	return clamp(score, 0, 1)
}

// GeneticDistance is the mean absolute difference of normalized trait
// values across all traits, in [0,1].
func GeneticDistance(g1, g2 *Genome) float64 {
	var sum float64
	for t := traits.Trait(0); t < traits.Count; t++ {
		sum += math.Abs(g1.Genes[t].Normalized() - g2.Genes[t].Normalized())
	}
	return sum / float64(traits.Count)
}

// diversityScore measures a genome's mean normalized deviation from the
// species-default trait values, in [0,1].
func diversityScore(g *Genome) float64 {
	var sum float64
	for t := traits.Trait(0); t < traits.Count; t++ {
		def := t.Def()
		sum += math.Abs(g.Genes[t].Normalized() - t.Normalize(def.SpeciesDefault))
	}
	return sum / float64(traits.Count)
}
