package genetics

import "testing"

func TestRegistryLookup(t *testing.T) {
	e := newTestEngine(t, 40)
	g := e.NewRandomGenome()

	got, ok := e.Registry().Get(g.ID)
	if !ok || got != g {
		t.Error("registered genome not found by ID")
	}
	if _, ok := e.Registry().Get(9999); ok {
		t.Error("lookup of unknown ID should fail")
	}
}

func TestRegistryEachOrder(t *testing.T) {
	e := newTestEngine(t, 41)
	want := []uint64{
		e.NewRandomGenome().ID,
		e.NewRandomGenome().ID,
		e.NewRandomGenome().ID,
	}

	var got []uint64
	e.Registry().Each(func(g *Genome) bool {
		got = append(got, g.ID)
		return true
	})
	if len(got) != len(want) {
		t.Fatalf("visited %d genomes, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("position %d: got ID %d, want %d (registration order)", i, got[i], want[i])
		}
	}

	// Early stop.
	var visited int
	e.Registry().Each(func(*Genome) bool {
		visited++
		return false
	})
	if visited != 1 {
		t.Errorf("early-stop visited %d genomes, want 1", visited)
	}
}

func TestRegistryStats(t *testing.T) {
	e := newTestEngine(t, 42)
	p1 := e.NewRandomGenome()
	p2 := e.NewRandomGenome()
	child, err := e.Combine(p1, p2)
	if err != nil {
		t.Fatalf("Combine failed: %v", err)
	}

	s := e.Registry().Stats()
	if s.Genomes != 3 {
		t.Errorf("Genomes = %d, want 3", s.Genomes)
	}
	if s.Founders != 2 {
		t.Errorf("Founders = %d, want 2", s.Founders)
	}
	if s.MaxGeneration != child.Generation {
		t.Errorf("MaxGeneration = %d, want %d", s.MaxGeneration, child.Generation)
	}
	if s.GenerationHistogram[0] != 2 || s.GenerationHistogram[1] != 1 {
		t.Errorf("generation histogram = %v, want {0:2 1:1}", s.GenerationHistogram)
	}
	if s.Mutations != len(child.Mutations) {
		t.Errorf("Mutations = %d, want %d", s.Mutations, len(child.Mutations))
	}
	if s.MeanDiversity < 0 || s.MeanDiversity > 1 {
		t.Errorf("MeanDiversity = %v outside [0,1]", s.MeanDiversity)
	}
}

func TestRegistryStatsSmallSamples(t *testing.T) {
	e := newTestEngine(t, 43)

	if s := e.Registry().Stats(); s.MeanDiversity != 0 || s.StdDevDiversity != 0 {
		t.Error("empty registry should have zero diversity stats")
	}

	g := e.NewRandomGenome()
	s := e.Registry().Stats()
	if s.MeanDiversity != g.DiversityScore {
		t.Errorf("single-genome mean = %v, want %v", s.MeanDiversity, g.DiversityScore)
	}
	if s.StdDevDiversity != 0 {
		t.Errorf("single-genome stddev = %v, want 0", s.StdDevDiversity)
	}
}
