package reproduction

import (
	"math"
	"testing"

	"github.com/pthm-cable/drift/genetics"
	"github.com/pthm-cable/drift/rng"
)

// testAgent is a minimal in-memory Agent for exercising the manager.
type testAgent struct {
	id     uint64
	x, y   float64
	energy float64
	maxE   float64
	age    float64
	genome *genetics.Genome
}

func (a *testAgent) ID() uint64                   { return a.id }
func (a *testAgent) Position() (float64, float64) { return a.x, a.y }
func (a *testAgent) Energy() float64              { return a.energy }
func (a *testAgent) MaxEnergy() float64           { return a.maxE }
func (a *testAgent) Age() float64                 { return a.age }
func (a *testAgent) Genome() *genetics.Genome     { return a.genome }
func (a *testAgent) ConsumeEnergy(amt float64) {
	a.energy -= amt
	if a.energy < 0 {
		a.energy = 0
	}
}

// spawnRecorder captures offspring handed to the spawn hook.
type spawnRecorder struct {
	children []*genetics.Genome
	carriers []uint64
	partners []uint64
}

func (s *spawnRecorder) hook(g *genetics.Genome, carrierID, partnerID uint64) {
	s.children = append(s.children, g)
	s.carriers = append(s.carriers, carrierID)
	s.partners = append(s.partners, partnerID)
}

func newTestManager(t *testing.T, cfg Config) (*Manager, *genetics.Engine, *spawnRecorder) {
	t.Helper()
	src := rng.New(1)
	engine, err := genetics.NewEngine(genetics.DefaultConfig(), src)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}
	rec := &spawnRecorder{}
	m, err := NewManager(cfg, engine, src, rec.hook)
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	return m, engine, rec
}

func newAgent(e *genetics.Engine, id uint64, x, y, energy, age float64) *testAgent {
	return &testAgent{
		id: id, x: x, y: y,
		energy: energy, maxE: 100,
		age:    age,
		genome: e.NewRandomGenome(),
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func TestMatingCompatibilityEligiblePair(t *testing.T) {
	m, e, _ := newTestManager(t, DefaultConfig())

	// Two mature, well-fed agents one diagonal cell apart.
	a := newAgent(e, 1, 0, 0, 80, 200)
	b := newAgent(e, 2, 1, 1, 80, 250)
	m.Register(a)
	m.Register(b)

	c := m.MatingCompatibility(a, b)
	if !c.CanMate {
		t.Fatalf("eligible pair cannot mate: %v", c.Failed)
	}
	if len(c.Failed) != 0 {
		t.Errorf("failed constraints on eligible pair: %v", c.Failed)
	}
	if math.Abs(c.Distance-math.Sqrt2) > 1e-9 {
		t.Errorf("distance = %v, want sqrt(2)", c.Distance)
	}
	for name, score := range map[string]float64{
		"genetic":   c.Genetic,
		"age":       c.Age,
		"energy":    c.Energy,
		"proximity": c.Proximity,
		"overall":   c.Overall,
	} {
		if score < 0 || score > 1 {
			t.Errorf("%s score %v outside [0,1]", name, score)
		}
	}
	if math.Abs(c.Energy-0.8) > 1e-9 {
		t.Errorf("energy score = %v, want 0.8 (weaker agent's fraction)", c.Energy)
	}
}

func TestMatingCompatibilityOutOfRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MatingRadius = 5
	m, e, _ := newTestManager(t, cfg)

	a := newAgent(e, 1, 0, 0, 80, 200)
	b := newAgent(e, 2, 10, 10, 80, 250)
	m.Register(a)
	m.Register(b)

	c := m.MatingCompatibility(a, b)
	if c.CanMate {
		t.Fatal("out-of-range pair should not mate")
	}
	if !contains(c.Failed, ReasonOutOfRange) {
		t.Errorf("failed reasons %v missing %q", c.Failed, ReasonOutOfRange)
	}
	if c.Proximity != 0 {
		t.Errorf("proximity beyond radius = %v, want 0", c.Proximity)
	}
}

func TestMatingCompatibilitySelf(t *testing.T) {
	m, e, _ := newTestManager(t, DefaultConfig())
	a := newAgent(e, 1, 0, 0, 80, 200)
	m.Register(a)

	c := m.MatingCompatibility(a, a)
	if c.CanMate {
		t.Error("agent should not mate with itself")
	}
	if !contains(c.Failed, ReasonSelf) {
		t.Errorf("failed reasons %v missing %q", c.Failed, ReasonSelf)
	}
}

func TestMatingCompatibilityUnregistered(t *testing.T) {
	m, e, _ := newTestManager(t, DefaultConfig())
	a := newAgent(e, 1, 0, 0, 80, 200)
	b := newAgent(e, 2, 1, 1, 80, 250)
	m.Register(a)

	c := m.MatingCompatibility(a, b)
	if c.CanMate {
		t.Error("pair with unregistered agent should not mate")
	}
	if !contains(c.Failed, ReasonUnregistered) {
		t.Errorf("failed reasons %v missing %q", c.Failed, ReasonUnregistered)
	}
}

func TestMatingCompatibilityNotReady(t *testing.T) {
	m, e, _ := newTestManager(t, DefaultConfig())
	a := newAgent(e, 1, 0, 0, 80, 50) // immature
	b := newAgent(e, 2, 1, 1, 80, 250)
	m.Register(a)
	m.Register(b)

	c := m.MatingCompatibility(a, b)
	if c.CanMate {
		t.Error("immature agent should not mate")
	}
	if !contains(c.Failed, ReasonNotReady) {
		t.Errorf("failed reasons %v missing %q", c.Failed, ReasonNotReady)
	}
}

func TestMatingCompatibilityEnergyThreshold(t *testing.T) {
	tests := []struct {
		name    string
		energy  float64
		canMate bool
	}{
		{"well above threshold", 80, true},
		{"exactly at threshold", 60, true},
		{"just below threshold", 59.9, false},
		{"empty", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, e, _ := newTestManager(t, DefaultConfig())
			a := newAgent(e, 1, 0, 0, tt.energy, 200)
			b := newAgent(e, 2, 1, 1, 80, 250)
			m.Register(a)
			m.Register(b)

			c := m.MatingCompatibility(a, b)
			if c.CanMate != tt.canMate {
				t.Errorf("canMate = %v, want %v (failed: %v)", c.CanMate, tt.canMate, c.Failed)
			}
			if !tt.canMate && !contains(c.Failed, ReasonLowEnergy) {
				t.Errorf("failed reasons %v missing %q", c.Failed, ReasonLowEnergy)
			}
		})
	}
}

func TestMatingCompatibilityListsAllViolations(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MatingRadius = 5
	m, e, _ := newTestManager(t, cfg)

	// Immature, starving, and far away all at once.
	a := newAgent(e, 1, 0, 0, 10, 50)
	b := newAgent(e, 2, 100, 100, 80, 250)
	m.Register(a)
	m.Register(b)

	c := m.MatingCompatibility(a, b)
	for _, want := range []string{ReasonNotReady, ReasonLowEnergy, ReasonOutOfRange} {
		if !contains(c.Failed, want) {
			t.Errorf("failed reasons %v missing %q", c.Failed, want)
		}
	}
}
