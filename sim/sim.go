// Package sim runs the headless tick-driven simulation: an ark ECS
// world of grid-dwelling agents whose heredity flows through the
// genetics engine and reproduction manager.
package sim

import (
	"math"
	"sort"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/drift/components"
	"github.com/pthm-cable/drift/config"
	"github.com/pthm-cable/drift/genetics"
	"github.com/pthm-cable/drift/reproduction"
	"github.com/pthm-cable/drift/rng"
	"github.com/pthm-cable/drift/telemetry"
	"github.com/pthm-cable/drift/traits"
)

// Movement scale applied to the speed trait per tick.
const moveScale = 0.3

// Options configures a simulation run.
type Options struct {
	Seed      int64
	LogStats  bool // Emit slog window stats
	LogWorld  bool // Emit console world-state summaries
	OutputDir string
}

// pendingBirth is an offspring genome waiting for deferred insertion.
// The manager hands offspring out during its update pass; materializing
// them between ticks avoids growing the agent list while iterating it.
type pendingBirth struct {
	genome    *genetics.Genome
	carrierID uint64
	partnerID uint64
}

// Simulation holds the complete simulation state.
type Simulation struct {
	cfg     *config.Config
	rng     *rng.Source
	engine  *genetics.Engine
	manager *reproduction.Manager

	world  *ecs.World
	mapper *ecs.Map3[components.Position, components.Energy, components.Organism]
	filter *ecs.Filter3[components.Position, components.Energy, components.Organism]

	entities map[uint64]ecs.Entity
	pending  []pendingBirth

	collector *telemetry.Collector
	output    *telemetry.OutputManager

	tick        int64
	nextAgentID uint64
	aliveCount  int
	deadCount   int
	logStats    bool
	logWorld    bool
}

// New creates a simulation from the loaded configuration and spawns the
// founder population.
func New(opts Options) (*Simulation, error) {
	cfg := config.Cfg()
	src := rng.New(opts.Seed)

	engine, err := genetics.NewEngine(cfg.Genetics, src)
	if err != nil {
		return nil, err
	}

	world := ecs.NewWorld()
	s := &Simulation{
		cfg:       cfg,
		rng:       src,
		engine:    engine,
		world:     world,
		mapper:    ecs.NewMap3[components.Position, components.Energy, components.Organism](world),
		filter:    ecs.NewFilter3[components.Position, components.Energy, components.Organism](world),
		entities:  make(map[uint64]ecs.Entity),
		collector: telemetry.NewCollector(),
		logStats:  opts.LogStats,
		logWorld:  opts.LogWorld,
	}

	s.manager, err = reproduction.NewManager(cfg.Reproduction, engine, src, s.queueBirth)
	if err != nil {
		return nil, err
	}

	s.output, err = telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := s.output.WriteConfig(cfg); err != nil {
		return nil, err
	}

	s.spawnFounders()
	return s, nil
}

// queueBirth is the manager's spawn hook; offspring are inserted
// between ticks.
func (s *Simulation) queueBirth(g *genetics.Genome, carrierID, partnerID uint64) {
	s.pending = append(s.pending, pendingBirth{genome: g, carrierID: carrierID, partnerID: partnerID})
}

// Step advances the simulation by one tick.
func (s *Simulation) Step() {
	s.tick++

	views := s.liveViews()

	s.applyEnvironment(views)
	s.metabolize(views)
	s.cleanupDead()

	// Rebuild after removals so the manager only sees live agents.
	views = s.liveViews()
	agents := make([]reproduction.Agent, len(views))
	for i, v := range views {
		agents[i] = v
	}
	s.manager.Update(agents, 1)

	s.flushBirths()

	if s.tick%int64(s.cfg.Telemetry.StatsWindow) == 0 {
		s.emitWindowStats()
	}
}

// Run steps the simulation until maxTicks (0 = unlimited) or
// extinction.
func (s *Simulation) Run(maxTicks int64) {
	for maxTicks == 0 || s.tick < maxTicks {
		s.Step()
		if s.aliveCount == 0 {
			Logf("population extinct at tick %d", s.tick)
			return
		}
	}
}

// Tick returns the current tick.
func (s *Simulation) Tick() int64 {
	return s.tick
}

// Population returns the live agent count.
func (s *Simulation) Population() int {
	return s.aliveCount
}

// Engine returns the genetics engine.
func (s *Simulation) Engine() *genetics.Engine {
	return s.engine
}

// Manager returns the reproduction manager.
func (s *Simulation) Manager() *reproduction.Manager {
	return s.manager
}

// Close flushes and closes telemetry output.
func (s *Simulation) Close() error {
	return s.output.Close()
}

// liveViews collects the live agents in ascending ID order. Creation
// IDs are sequential, so this is registration order and every pass over
// it is deterministic regardless of ECS storage order.
func (s *Simulation) liveViews() []*agentView {
	var views []*agentView
	query := s.filter.Query()
	for query.Next() {
		pos, en, org := query.Get()
		if !en.Alive {
			continue
		}
		views = append(views, &agentView{
			entity: query.Entity(),
			pos:    pos,
			energy: en,
			org:    org,
		})
	}
	sort.Slice(views, func(i, j int) bool { return views[i].org.ID < views[j].org.ID })
	return views
}

// applyEnvironment applies the configured environmental factors to
// every live genome on the configured interval.
func (s *Simulation) applyEnvironment(views []*agentView) {
	interval := int64(s.cfg.Environment.ApplyInterval)
	if interval <= 0 || s.tick%interval != 0 {
		return
	}
	for _, v := range views {
		s.engine.ApplyEnvironmentalFactors(v.org.Genome, s.cfg.Environment.Factors)
	}
}

// metabolize ages agents, drains and regenerates energy by trait, and
// moves each agent one random-walk step scaled by its speed trait.
func (s *Simulation) metabolize(views []*agentView) {
	w := s.cfg.World.Width
	h := s.cfg.World.Height
	for _, v := range views {
		v.energy.Age++

		metabolism := s.traitOf(v, traits.Metabolism)
		efficiency := s.traitOf(v, traits.EnergyEfficiency)
		speed := s.traitOf(v, traits.Speed)
		longevity := s.traitOf(v, traits.Longevity)

		drain := s.cfg.Energy.BaseCost * metabolism
		regen := s.cfg.Energy.RegenRate * efficiency
		v.energy.Value = math.Min(v.energy.Max, v.energy.Value-drain+regen)

		angle := s.rng.Range(0, 2*math.Pi)
		v.pos.X = wrap(v.pos.X+math.Cos(angle)*speed*moveScale, w)
		v.pos.Y = wrap(v.pos.Y+math.Sin(angle)*speed*moveScale, h)

		if v.energy.Value <= 0 || v.energy.Age > longevity {
			v.energy.Alive = false
		}
	}
}

// cleanupDead removes dead entities. Collection completes before any
// removal so the query never observes a structural change.
func (s *Simulation) cleanupDead() {
	type deadInfo struct {
		entity ecs.Entity
		id     uint64
	}
	var toRemove []deadInfo

	query := s.filter.Query()
	for query.Next() {
		_, en, org := query.Get()
		if !en.Alive {
			toRemove = append(toRemove, deadInfo{entity: query.Entity(), id: org.ID})
		}
	}

	for _, dead := range toRemove {
		s.collector.RecordDeath()
		s.manager.Remove(dead.id)
		s.mapper.Remove(dead.entity)
		delete(s.entities, dead.id)
		s.aliveCount--
		s.deadCount++
	}
}

// emitWindowStats samples the live population and writes the window.
func (s *Simulation) emitWindowStats() {
	views := s.liveViews()
	diversities := make([]float64, 0, len(views))
	energies := make([]float64, 0, len(views))
	for _, v := range views {
		diversities = append(diversities, v.org.Genome.DiversityScore)
		energies = append(energies, v.energy.Value/v.energy.Max)
	}

	stats := s.collector.Snapshot(s.tick, diversities, energies, s.manager.Stats(), s.engine.Registry().Stats())
	if s.logStats {
		stats.LogStats()
	}
	if s.logWorld {
		s.logWorldState(stats)
	}
	if err := s.output.WriteTelemetry(stats); err != nil {
		Logf("telemetry write failed: %v", err)
	}
}

// wrap keeps a coordinate inside [0, limit) with toroidal wrapping.
func wrap(v, limit float64) float64 {
	if v < 0 {
		return v + limit
	}
	if v >= limit {
		return v - limit
	}
	return v
}
