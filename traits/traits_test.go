package traits

import (
	"math"
	"testing"
)

func TestDefinitionsAreSane(t *testing.T) {
	seen := make(map[string]bool)
	for tr := Trait(0); tr < Count; tr++ {
		def := tr.Def()

		if def.Name == "" {
			t.Errorf("trait %d has no name", tr)
		}
		if seen[def.Name] {
			t.Errorf("duplicate trait name %q", def.Name)
		}
		seen[def.Name] = true

		if def.Min >= def.Max {
			t.Errorf("%s: min %v must be below max %v", def.Name, def.Min, def.Max)
		}
		if def.SpeciesDefault < def.Min || def.SpeciesDefault > def.Max {
			t.Errorf("%s: species default %v outside [%v, %v]", def.Name, def.SpeciesDefault, def.Min, def.Max)
		}
		if def.SpeciesDefault == 0 {
			t.Errorf("%s: species default must be non-zero", def.Name)
		}
		if def.BaseDominance < 0 || def.BaseDominance > 1 {
			t.Errorf("%s: base dominance %v outside [0,1]", def.Name, def.BaseDominance)
		}
		if def.MutationRate <= 0 || def.MutationRate > 1 {
			t.Errorf("%s: mutation rate %v outside (0,1]", def.Name, def.MutationRate)
		}
	}
}

func TestValid(t *testing.T) {
	if !Speed.Valid() {
		t.Error("Speed should be valid")
	}
	if Count.Valid() {
		t.Error("Count sentinel should not be valid")
	}
	if Trait(200).Valid() {
		t.Error("out-of-range trait should not be valid")
	}
}

func TestNormalizeDenormalizeRoundtrip(t *testing.T) {
	for tr := Trait(0); tr < Count; tr++ {
		for _, n := range []float64{0, 0.25, 0.5, 0.75, 1} {
			v := tr.Denormalize(n)
			got := tr.Normalize(v)
			if math.Abs(got-n) > 1e-9 {
				t.Errorf("%s: Normalize(Denormalize(%v)) = %v", tr, n, got)
			}
		}
	}
}

func TestNormalizeClamps(t *testing.T) {
	def := Speed.Def()
	if got := Speed.Normalize(def.Min - 100); got != 0 {
		t.Errorf("below-range normalize = %v, want 0", got)
	}
	if got := Speed.Normalize(def.Max + 100); got != 1 {
		t.Errorf("above-range normalize = %v, want 1", got)
	}
}

func TestClamp(t *testing.T) {
	def := Longevity.Def()
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"below min", def.Min - 1, def.Min},
		{"at min", def.Min, def.Min},
		{"inside", (def.Min + def.Max) / 2, (def.Min + def.Max) / 2},
		{"at max", def.Max, def.Max},
		{"above max", def.Max + 1, def.Max},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Longevity.Clamp(tt.in); got != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	if got := Metabolism.String(); got != "metabolism" {
		t.Errorf("Metabolism.String() = %q", got)
	}
	if got := Count.String(); got != "unknown" {
		t.Errorf("Count.String() = %q, want unknown", got)
	}
}
