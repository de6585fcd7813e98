package telemetry

import (
	"github.com/pthm-cable/drift/genetics"
	"github.com/pthm-cable/drift/reproduction"
)

// BirthRecord is one offspring event for births.csv.
type BirthRecord struct {
	Tick           int64   `csv:"tick"`
	GenomeID       uint64  `csv:"genome_id"`
	Generation     int     `csv:"generation"`
	CarrierID      uint64  `csv:"carrier_id"`
	PartnerID      uint64  `csv:"partner_id"`
	DiversityScore float64 `csv:"diversity"`
	Mutations      int     `csv:"mutations"`
}

// Collector accumulates per-window event counts and turns cumulative
// manager/registry counters into window deltas.
type Collector struct {
	deaths int

	lastMatings int
	lastBirths  int
	lastFailed  int
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// RecordDeath counts one agent death in the current window.
func (c *Collector) RecordDeath() {
	c.deaths++
}

// Snapshot builds the window stats at the end of a window and resets
// the window counters. Diversity and energy are sampled from the live
// population at window end.
func (c *Collector) Snapshot(tick int64, diversities, energies []float64, rep reproduction.Stats, reg genetics.Stats) WindowStats {
	s := WindowStats{
		WindowEndTick: tick,
		Agents:        rep.Agents,
		Immature:      rep.Count(reproduction.Immature),
		Ready:         rep.Count(reproduction.Ready),
		Pregnant:      rep.Count(reproduction.Pregnant),
		Cooldown:      rep.Count(reproduction.Cooldown),
		Infertile:     rep.Count(reproduction.Infertile),
		Births:        rep.Births - c.lastBirths,
		Matings:       rep.Matings - c.lastMatings,
		FailedMatings: rep.FailedAttempts - c.lastFailed,
		Deaths:        c.deaths,
		Genomes:       reg.Genomes,
		MaxGeneration: reg.MaxGeneration,
		Mutations:     reg.Mutations,
	}
	s.DiversityMean, s.DiversityStd, s.DiversityP10, s.DiversityP50, s.DiversityP90 = Distribution(diversities)
	s.EnergyMean, _, s.EnergyP10, s.EnergyP50, s.EnergyP90 = Distribution(energies)

	c.lastBirths = rep.Births
	c.lastMatings = rep.Matings
	c.lastFailed = rep.FailedAttempts
	c.deaths = 0
	return s
}
