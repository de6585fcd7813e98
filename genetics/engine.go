package genetics

import (
	"fmt"

	"github.com/pthm-cable/drift/rng"
	"github.com/pthm-cable/drift/traits"
)

// Config holds genetics engine parameters.
//
// CoDominanceThreshold and OptimalDistance are inherited evolutionary-
// pressure constants: documented upstream but never justified or tuned.
// They are configuration, not contract.
type Config struct {
	BaseMutationRate      float64 `yaml:"base_mutation_rate"`      // Global multiplier on per-gene mutation rates
	NovelTraitChance      float64 `yaml:"novel_trait_chance"`      // Probability budget for novel mutations
	InversionChance       float64 `yaml:"inversion_chance"`        // Probability budget for inversion mutations
	ShiftChance           float64 `yaml:"shift_chance"`            // Probability budget for shift mutations; point takes the remainder
	EnvMutationMultiplier float64 `yaml:"env_mutation_multiplier"` // Environmental scaling of the effective mutation rate
	Epigenetics           bool    `yaml:"epigenetics"`             // Enables environmental-factor modifiers
	MinGeneticDiversity   float64 `yaml:"min_genetic_diversity"`   // Below this distance mates score 0 (anti-inbreeding floor)
	MaxGeneticDistance    float64 `yaml:"max_genetic_distance"`    // Above this distance mates score 0
	CoDominanceThreshold  float64 `yaml:"co_dominance_threshold"`  // Dominance gap below which values blend instead of picking
	OptimalDistance       float64 `yaml:"optimal_distance"`        // Genetic distance at which compatibility peaks
	MutationEpsilon       float64 `yaml:"mutation_epsilon"`        // Minimum change worth logging as a mutation
}

// DefaultConfig returns the engine defaults.
func DefaultConfig() Config {
	return Config{
		BaseMutationRate:      1.0,
		NovelTraitChance:      0.05,
		InversionChance:       0.10,
		ShiftChance:           0.25,
		EnvMutationMultiplier: 1.0,
		Epigenetics:           true,
		MinGeneticDiversity:   0.02,
		MaxGeneticDistance:    0.95,
		CoDominanceThreshold:  0.3,
		OptimalDistance:       0.3,
		MutationEpsilon:       1e-6,
	}
}

// Validate checks for malformed configuration. A bad config is a
// defect, not emergent simulation state, and fails hard.
func (c Config) Validate() error {
	if c.BaseMutationRate < 0 {
		return fmt.Errorf("genetics config: base_mutation_rate must be >= 0, got %v", c.BaseMutationRate)
	}
	if c.EnvMutationMultiplier < 0 {
		return fmt.Errorf("genetics config: env_mutation_multiplier must be >= 0, got %v", c.EnvMutationMultiplier)
	}
	if c.NovelTraitChance < 0 || c.InversionChance < 0 || c.ShiftChance < 0 {
		return fmt.Errorf("genetics config: mutation kind chances must be >= 0")
	}
	if sum := c.NovelTraitChance + c.InversionChance + c.ShiftChance; sum > 1 {
		return fmt.Errorf("genetics config: mutation kind chances sum to %v, must be <= 1", sum)
	}
	if c.OptimalDistance <= 0 || c.OptimalDistance >= 1 {
		return fmt.Errorf("genetics config: optimal_distance must be in (0,1), got %v", c.OptimalDistance)
	}
	if c.CoDominanceThreshold < 0 || c.CoDominanceThreshold > 1 {
		return fmt.Errorf("genetics config: co_dominance_threshold must be in [0,1], got %v", c.CoDominanceThreshold)
	}
	if c.MinGeneticDiversity < 0 || c.MaxGeneticDistance > 1 || c.MinGeneticDiversity >= c.MaxGeneticDistance {
		return fmt.Errorf("genetics config: need 0 <= min_genetic_diversity < max_genetic_distance <= 1")
	}
	if c.MutationEpsilon < 0 {
		return fmt.Errorf("genetics config: mutation_epsilon must be >= 0, got %v", c.MutationEpsilon)
	}
	return nil
}

// mutationChoice is one row of the weighted-choice table: a kind and
// its cumulative probability bound.
type mutationChoice struct {
	kind MutationKind
	cum  float64
}

// Engine owns trait genetics: genome creation, combination, metrics,
// and the registry. It draws all entropy from the shared source so a
// fixed seed reproduces every genome.
type Engine struct {
	cfg      Config
	rng      *rng.Source
	registry *Registry
	choices  []mutationChoice
}

// NewEngine creates an engine with its own registry. The random source
// is shared with the reproduction manager by the caller.
func NewEngine(cfg Config, src *rng.Source) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("genetics: nil random source")
	}
	e := &Engine{
		cfg:      cfg,
		rng:      src,
		registry: NewRegistry(),
	}
	e.buildMutationTable()
	return e, nil
}

// buildMutationTable lays out the explicit cumulative-probability table
// for mutation kind selection. Rarest first; point takes the remainder.
func (e *Engine) buildMutationTable() {
	novel := e.cfg.NovelTraitChance
	inversion := novel + e.cfg.InversionChance
	shift := inversion + e.cfg.ShiftChance
	e.choices = []mutationChoice{
		{MutationNovel, novel},
		{MutationInversion, inversion},
		{MutationShift, shift},
		{MutationPoint, 1.0},
	}
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// SetConfig replaces the engine configuration after validating it.
func (e *Engine) SetConfig(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	e.cfg = cfg
	e.buildMutationTable()
	return nil
}

// Registry returns the engine's genome registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Reset clears the registry and restarts genome IDs.
func (e *Engine) Reset() {
	e.registry.Reset()
}

// NewRandomGenome creates a founder genome: values drawn uniformly
// within each trait's bounds, dominance around the trait's base with
// Gaussian noise, generation 0 and no parents.
func (e *Engine) NewRandomGenome() *Genome {
	g := &Genome{
		ID:         e.registry.nextGenomeID(),
		Generation: 0,
	}
	for t := traits.Trait(0); t < traits.Count; t++ {
		def := t.Def()
		gene := Gene{
			Trait:                 t,
			Min:                   def.Min,
			Max:                   def.Max,
			MutationRate:          def.MutationRate,
			Expressed:             true,
			EnvironmentalModifier: 1.0,
		}
		gene.SetValue(e.rng.Range(def.Min, def.Max))
		gene.SetDominance(e.rng.Gauss(def.BaseDominance, 0.1))
		g.Genes[t] = gene
	}
	g.DiversityScore = diversityScore(g)
	e.registry.add(g)
	return g
}

// TraitValue returns the expressed value of a trait: the gene value
// scaled by its environmental modifier, or the species default when the
// gene is not expressed. It never returns zero for an unexpressed
// trait, so consumers never observe a traitless agent.
func (e *Engine) TraitValue(g *Genome, t traits.Trait) (float64, error) {
	if !t.Valid() {
		return 0, fmt.Errorf("genetics: unknown trait %d", t)
	}
	if g == nil {
		return 0, fmt.Errorf("genetics: nil genome")
	}
	gene := &g.Genes[t]
	if !gene.Expressed {
		return t.Def().SpeciesDefault, nil
	}
	return gene.Value * gene.EnvironmentalModifier, nil
}

// SetTraitValue writes a trait value, clamping to the trait's bounds.
// Out-of-range values are a bounds violation, silently clamped; only an
// unknown trait is an error.
func (e *Engine) SetTraitValue(g *Genome, t traits.Trait, v float64) error {
	if !t.Valid() {
		return fmt.Errorf("genetics: unknown trait %d", t)
	}
	if g == nil {
		return fmt.Errorf("genetics: nil genome")
	}
	g.Genes[t].SetValue(v)
	return nil
}

// SetExpressed toggles whether a trait's gene is expressed.
func (e *Engine) SetExpressed(g *Genome, t traits.Trait, expressed bool) error {
	if !t.Valid() {
		return fmt.Errorf("genetics: unknown trait %d", t)
	}
	if g == nil {
		return fmt.Errorf("genetics: nil genome")
	}
	g.Genes[t].Expressed = expressed
	return nil
}
