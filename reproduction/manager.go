package reproduction

import (
	"fmt"
	"sort"

	"github.com/pthm-cable/drift/genetics"
	"github.com/pthm-cable/drift/rng"
	"github.com/pthm-cable/drift/traits"
)

// Result reports the outcome of a mating attempt. Failures are ordinary
// simulation outcomes, not errors: the reasons list the violated hard
// constraints and nothing about either agent changed.
type Result struct {
	Success       bool
	Reasons       []string
	CarrierID     uint64
	PartnerID     uint64
	EnergyCost    float64
	Compatibility Compatibility
}

// Mate pairs a candidate with its compatibility result, as returned by
// FindPotentialMates.
type Mate struct {
	Agent         Agent
	Compatibility Compatibility
}

// Stats aggregates manager-wide counters and a per-state census.
type Stats struct {
	Agents           int
	ByState          [stateCount]int
	Matings          int
	Births           int
	FailedAttempts   int
	FailuresByReason map[string]int
}

// Count returns the census for one state.
func (s Stats) Count(st State) int {
	if st >= stateCount {
		return 0
	}
	return s.ByState[st]
}

// Manager owns the per-agent reproduction records and advances the
// lifecycle state machine once per tick. It is the only writer of its
// record table; offspring are handed to the spawn hook rather than
// inserted in place, so the agent list never grows mid-pass.
type Manager struct {
	cfg    Config
	engine *genetics.Engine
	rng    *rng.Source
	spawn  SpawnFunc

	records map[uint64]*Record
	order   []uint64

	matings  int
	births   int
	failed   int
	failures map[string]int
}

// NewManager creates a manager sharing the genetics engine's random
// source so one top-level seed governs the whole run.
func NewManager(cfg Config, engine *genetics.Engine, src *rng.Source, spawn SpawnFunc) (*Manager, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if engine == nil {
		return nil, fmt.Errorf("reproduction: nil genetics engine")
	}
	if src == nil {
		return nil, fmt.Errorf("reproduction: nil random source")
	}
	if spawn == nil {
		return nil, fmt.Errorf("reproduction: nil spawn hook")
	}
	return &Manager{
		cfg:      cfg,
		engine:   engine,
		rng:      src,
		spawn:    spawn,
		records:  make(map[uint64]*Record),
		failures: make(map[string]int),
	}, nil
}

// Config returns the manager configuration.
func (m *Manager) Config() Config {
	return m.cfg
}

// SetConfig replaces the configuration after validating it.
func (m *Manager) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	m.cfg = cfg
	return nil
}

// Register creates a reproduction record for an agent if it has none.
// The initial state follows the agent's age; the fertility modifier is
// derived from the genome's fertility trait relative to the species
// default.
func (m *Manager) Register(a Agent) {
	if _, ok := m.records[a.ID()]; ok {
		return
	}
	rec := &Record{
		State:             Immature,
		FertilityModifier: 1.0,
	}
	if a.Age() >= m.cfg.MaturityAge {
		rec.State = Ready
	}
	if a.Age() > m.cfg.InfertilityAge {
		rec.State = Infertile
	}
	if fert, err := m.engine.TraitValue(a.Genome(), traits.Fertility); err == nil {
		if def := traits.Fertility.Def().SpeciesDefault; def > 0 {
			rec.FertilityModifier = fert / def
		}
	}
	m.records[a.ID()] = rec
	m.order = append(m.order, a.ID())
}

// Record returns a copy of an agent's reproduction record.
func (m *Manager) Record(id uint64) (Record, bool) {
	rec, ok := m.records[id]
	if !ok {
		return Record{}, false
	}
	return *rec, true
}

// Remove destroys an agent's record. Call when the agent leaves the
// population; its genome stays in the registry for lineage statistics.
func (m *Manager) Remove(id uint64) {
	if _, ok := m.records[id]; !ok {
		return
	}
	delete(m.records, id)
	for i, oid := range m.order {
		if oid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Update advances every registered agent's lifecycle by dticks, then
// runs one mating pass. Agents are processed in registration order so a
// fixed seed replays identically. Unregistered agents in the slice are
// registered first.
func (m *Manager) Update(agents []Agent, dticks int) {
	if dticks <= 0 {
		return
	}
	byID := make(map[uint64]Agent, len(agents))
	for _, a := range agents {
		m.Register(a)
		byID[a.ID()] = a
	}

	for _, id := range m.order {
		a, ok := byID[id]
		if !ok {
			continue
		}
		m.advance(a, m.records[id], dticks)
	}

	m.matingPass(byID)
}

// advance applies the state transitions for one agent.
func (m *Manager) advance(a Agent, rec *Record, dticks int) {
	switch rec.State {
	case Immature:
		if a.Age() >= m.cfg.MaturityAge {
			rec.State = Ready
		}
	case Ready:
		if a.Age() > m.cfg.InfertilityAge {
			rec.State = Infertile
		}
	case Pregnant:
		rec.GestationRemaining -= dticks
		if rec.GestationRemaining <= 0 {
			rec.GestationRemaining = 0
			m.deliver(a, rec)
		}
	case Cooldown:
		rec.CooldownRemaining -= dticks
		if a.Age() > m.cfg.InfertilityAge {
			rec.CooldownRemaining = 0
			rec.State = Infertile
			return
		}
		if rec.CooldownRemaining <= 0 {
			rec.CooldownRemaining = 0
			rec.State = Ready
		}
	case Infertile:
		// Terminal.
	}
}

// deliver completes a gestation: combines the stored parent genomes,
// hands the offspring to the spawn hook, and moves the carrier into
// cooldown.
func (m *Manager) deliver(a Agent, rec *Record) {
	child, err := m.engine.Combine(a.Genome(), rec.partnerGenome)
	if err == nil {
		m.spawn(child, a.ID(), rec.PartnerID)
		m.births++
	}
	rec.State = Cooldown
	rec.CooldownRemaining = m.cfg.CooldownTicks
	rec.ReproductionCount++
	rec.PartnerID = 0
	rec.partnerGenome = nil
}

// matingPass lets each still-unpaired Ready agent attempt one mating
// with its best-scoring eligible candidate. Candidates are scanned in
// registration order; at most one mating per agent per tick.
func (m *Manager) matingPass(byID map[uint64]Agent) {
	mated := make(map[uint64]bool)
	for _, id := range m.order {
		a, ok := byID[id]
		if !ok || mated[id] {
			continue
		}
		if m.records[id].State != Ready {
			continue
		}

		candidates := make([]Agent, 0, len(m.order))
		for _, cid := range m.order {
			if cid == id || mated[cid] {
				continue
			}
			if c, ok := byID[cid]; ok {
				candidates = append(candidates, c)
			}
		}
		mates := m.FindPotentialMates(a, candidates)
		if len(mates) == 0 {
			continue
		}
		if res := m.AttemptReproduction(a, mates[0].Agent); res.Success {
			mated[id] = true
			mated[mates[0].Agent.ID()] = true
		}
	}
}

// FindPotentialMates returns the candidates that pass every hard
// constraint against agent, sorted by descending overall compatibility
// with an ID tie-break for determinism. The agent itself is excluded.
func (m *Manager) FindPotentialMates(agent Agent, candidates []Agent) []Mate {
	var mates []Mate
	for _, c := range candidates {
		if c.ID() == agent.ID() {
			continue
		}
		comp := m.MatingCompatibility(agent, c)
		if !comp.CanMate {
			continue
		}
		mates = append(mates, Mate{Agent: c, Compatibility: comp})
	}
	sort.SliceStable(mates, func(i, j int) bool {
		if mates[i].Compatibility.Overall != mates[j].Compatibility.Overall {
			return mates[i].Compatibility.Overall > mates[j].Compatibility.Overall
		}
		return mates[i].Agent.ID() < mates[j].Agent.ID()
	})
	return mates
}

// AttemptReproduction validates the pair and, on success, deducts the
// energy cost from both parents and starts gestation. The lower-ID
// participant gestates; the other enters cooldown immediately. This
// rule is arbitrary but deterministic, which is what replaying a run
// requires. On failure nothing changes: no energy, no state.
func (m *Manager) AttemptReproduction(a, b Agent) Result {
	comp := m.MatingCompatibility(a, b)
	if !comp.CanMate {
		m.failed++
		for _, r := range comp.Failed {
			m.failures[r]++
		}
		return Result{Reasons: comp.Failed, Compatibility: comp}
	}

	// All constraints validated above; both deductions happen together.
	cost := m.cfg.EnergyCost
	a.ConsumeEnergy(cost)
	b.ConsumeEnergy(cost)

	carrier, partner := a, b
	if b.ID() < a.ID() {
		carrier, partner = b, a
	}

	rc := m.records[carrier.ID()]
	rc.State = Pregnant
	rc.GestationRemaining = m.cfg.GestationTicks
	rc.PartnerID = partner.ID()
	rc.partnerGenome = partner.Genome()

	rp := m.records[partner.ID()]
	rp.State = Cooldown
	rp.CooldownRemaining = m.cfg.CooldownTicks
	rp.PartnerID = 0
	rp.ReproductionCount++

	m.matings++
	return Result{
		Success:       true,
		CarrierID:     carrier.ID(),
		PartnerID:     partner.ID(),
		EnergyCost:    cost,
		Compatibility: comp,
	}
}

// Stats returns a snapshot of the manager counters and state census.
func (m *Manager) Stats() Stats {
	s := Stats{
		Agents:           len(m.order),
		Matings:          m.matings,
		Births:           m.births,
		FailedAttempts:   m.failed,
		FailuresByReason: make(map[string]int, len(m.failures)),
	}
	for _, rec := range m.records {
		s.ByState[rec.State]++
	}
	for k, v := range m.failures {
		s.FailuresByReason[k] = v
	}
	return s
}

// Reset drops all records and counters.
func (m *Manager) Reset() {
	m.records = make(map[uint64]*Record)
	m.order = m.order[:0]
	m.matings = 0
	m.births = 0
	m.failed = 0
	m.failures = make(map[string]int)
}
