package reproduction

import "math"

// Hard-constraint reasons reported on a failed mating check. Every
// violated constraint is listed, not just the first, so callers and
// tests can assert on the exact cause.
const (
	ReasonSelf         = "cannot mate with self"
	ReasonUnregistered = "not registered"
	ReasonNotReady     = "not ready"
	ReasonLowEnergy    = "insufficient energy"
	ReasonOutOfRange   = "out of mating range"
)

// Compatibility is the result of a pairwise mating check: four
// independent sub-scores, the weighted overall score, and the hard
// CanMate gate with every failed constraint.
type Compatibility struct {
	Genetic   float64
	Age       float64
	Energy    float64
	Proximity float64
	Overall   float64
	Distance  float64
	CanMate   bool
	Failed    []string
}

// MatingCompatibility scores a candidate pair. The sub-scores are
// soft signals; CanMate is the logical AND of the hard constraints:
// both Ready, both holding at least the configured energy fraction,
// and within mating radius.
func (m *Manager) MatingCompatibility(a, b Agent) Compatibility {
	var c Compatibility
	if a.ID() == b.ID() {
		c.Failed = append(c.Failed, ReasonSelf)
		return c
	}

	ra, okA := m.records[a.ID()]
	rb, okB := m.records[b.ID()]
	if !okA {
		c.Failed = append(c.Failed, ReasonUnregistered)
	}
	if !okB {
		c.Failed = append(c.Failed, ReasonUnregistered)
	}
	if !okA || !okB {
		return c
	}

	if ra.State != Ready {
		c.Failed = append(c.Failed, ReasonNotReady)
	}
	if rb.State != Ready {
		c.Failed = append(c.Failed, ReasonNotReady)
	}

	// Energy: both agents must hold the threshold fraction of their own
	// maximum, and enough to pay the mating cost.
	fracA := energyFraction(a)
	fracB := energyFraction(b)
	if fracA < m.cfg.EnergyThreshold || a.Energy() < m.cfg.EnergyCost {
		c.Failed = append(c.Failed, ReasonLowEnergy)
	}
	if fracB < m.cfg.EnergyThreshold || b.Energy() < m.cfg.EnergyCost {
		c.Failed = append(c.Failed, ReasonLowEnergy)
	}
	c.Energy = math.Min(fracA, fracB)

	// Proximity.
	ax, ay := a.Position()
	bx, by := b.Position()
	dx, dy := ax-bx, ay-by
	c.Distance = math.Sqrt(dx*dx + dy*dy)
	if c.Distance > m.cfg.MatingRadius {
		c.Failed = append(c.Failed, ReasonOutOfRange)
	}
	c.Proximity = clamp01(1 - c.Distance/m.cfg.MatingRadius)

	// Soft scores: genetic compatibility delegates to the genetics
	// engine; age compatibility favors closer ages.
	c.Genetic = m.engine.Compatibility(a.Genome(), b.Genome())
	c.Age = clamp01(1 - math.Abs(a.Age()-b.Age())/m.cfg.InfertilityAge)

	weightSum := m.cfg.GeneticWeight + m.cfg.AgeWeight + m.cfg.EnergyWeight + m.cfg.ProximityWeight
	overall := (m.cfg.GeneticWeight*c.Genetic +
		m.cfg.AgeWeight*c.Age +
		m.cfg.EnergyWeight*c.Energy +
		m.cfg.ProximityWeight*c.Proximity) / weightSum

	// Fertility modifiers scale willingness; the mean keeps the score
	// symmetric in the pair.
	overall *= (ra.FertilityModifier + rb.FertilityModifier) / 2
	c.Overall = clamp01(overall)

	c.CanMate = len(c.Failed) == 0
	return c
}

func energyFraction(a Agent) float64 {
	maxE := a.MaxEnergy()
	if maxE <= 0 {
		return 0
	}
	return a.Energy() / maxE
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
