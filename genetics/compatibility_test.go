package genetics

import (
	"math"
	"testing"

	"github.com/pthm-cable/drift/traits"
)

// genomeAt creates a genome whose every trait sits at the same
// normalized position n, giving exact control over genetic distance.
func genomeAt(e *Engine, n float64) *Genome {
	g := e.NewRandomGenome()
	for tr := traits.Trait(0); tr < traits.Count; tr++ {
		g.Genes[tr].SetValue(tr.Denormalize(n))
	}
	return g
}

func TestGeneticDistance(t *testing.T) {
	e := newTestEngine(t, 20)

	tests := []struct {
		name   string
		n1, n2 float64
		want   float64
	}{
		{"identical", 0.5, 0.5, 0},
		{"quarter apart", 0.25, 0.5, 0.25},
		{"full span", 0, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g1 := genomeAt(e, tt.n1)
			g2 := genomeAt(e, tt.n2)
			got := GeneticDistance(g1, g2)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("GeneticDistance = %v, want %v", got, tt.want)
			}
			if rev := GeneticDistance(g2, g1); rev != got {
				t.Errorf("distance not symmetric: %v vs %v", got, rev)
			}
		})
	}
}

func TestCompatibilityIdenticalGenomesScoreZero(t *testing.T) {
	e := newTestEngine(t, 21)
	g := e.NewRandomGenome()

	if got := e.Compatibility(g, g); got != 0 {
		t.Errorf("self compatibility = %v, want 0", got)
	}
}

func TestCompatibilityTriangular(t *testing.T) {
	e := newTestEngine(t, 22)
	opt := e.Config().OptimalDistance

	tests := []struct {
		name   string
		n1, n2 float64
		want   float64
	}{
		{"below diversity floor", 0.5, 0.51, 0}, // d = 0.01 < 0.02
		{"half way up", 0.2, 0.35, 0.5},         // d = 0.15 = opt/2
		{"at peak", 0.2, 0.5, 1.0},              // d = 0.3 = opt
		{"descending", 0.1, 0.7, (1 - 0.6) / (1 - 0.3)},
		{"beyond max distance", 0, 1, 0}, // d = 1 > 0.95
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g1 := genomeAt(e, tt.n1)
			g2 := genomeAt(e, tt.n2)
			got := e.Compatibility(g1, g2)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Compatibility(d=%v) = %v, want %v", math.Abs(tt.n1-tt.n2), got, tt.want)
			}
		})
	}

	t.Logf("optimal distance %v", opt)
}

func TestCompatibilityBounded(t *testing.T) {
	e := newTestEngine(t, 23)
	for i := 0; i < 100; i++ {
		g1 := e.NewRandomGenome()
		g2 := e.NewRandomGenome()
		got := e.Compatibility(g1, g2)
		if got < 0 || got > 1 {
			t.Fatalf("compatibility %v outside [0,1]", got)
		}
	}
}

func TestCompatibilityNilGenome(t *testing.T) {
	e := newTestEngine(t, 24)
	g := e.NewRandomGenome()

	if got := e.Compatibility(nil, g); got != 0 {
		t.Errorf("nil genome compatibility = %v, want 0", got)
	}
	if got := e.Compatibility(g, nil); got != 0 {
		t.Errorf("nil genome compatibility = %v, want 0", got)
	}
}

func TestDiversityScore(t *testing.T) {
	e := newTestEngine(t, 25)

	// A genome sitting exactly on the species defaults has zero diversity.
	g := e.NewRandomGenome()
	for tr := traits.Trait(0); tr < traits.Count; tr++ {
		g.Genes[tr].SetValue(tr.Def().SpeciesDefault)
	}
	if got := diversityScore(g); math.Abs(got) > 1e-9 {
		t.Errorf("default-valued genome diversity = %v, want 0", got)
	}

	for i := 0; i < 50; i++ {
		d := e.NewRandomGenome().DiversityScore
		if d < 0 || d > 1 {
			t.Fatalf("diversity score %v outside [0,1]", d)
		}
	}
}
