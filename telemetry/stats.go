// Package telemetry collects windowed simulation statistics and writes
// them to structured CSV output.
package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for one stats window.
type WindowStats struct {
	WindowEndTick int64 `csv:"window_end"`

	// Population census at window end
	Agents    int `csv:"agents"`
	Immature  int `csv:"immature"`
	Ready     int `csv:"ready"`
	Pregnant  int `csv:"pregnant"`
	Cooldown  int `csv:"cooldown"`
	Infertile int `csv:"infertile"`

	// Events during window
	Births        int `csv:"births"`
	Matings       int `csv:"matings"`
	FailedMatings int `csv:"failed_matings"`
	Deaths        int `csv:"deaths"`

	// Registry aggregates at window end
	Genomes       int `csv:"genomes"`
	MaxGeneration int `csv:"max_generation"`
	Mutations     int `csv:"mutations"`

	// Diversity distribution over the live population
	DiversityMean float64 `csv:"diversity_mean"`
	DiversityStd  float64 `csv:"diversity_std"`
	DiversityP10  float64 `csv:"diversity_p10"`
	DiversityP50  float64 `csv:"diversity_p50"`
	DiversityP90  float64 `csv:"diversity_p90"`

	// Energy distribution over the live population
	EnergyMean float64 `csv:"energy_mean"`
	EnergyP10  float64 `csv:"energy_p10"`
	EnergyP50  float64 `csv:"energy_p50"`
	EnergyP90  float64 `csv:"energy_p90"`
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// Distribution summarizes a sample: mean, stddev, and p10/p50/p90.
func Distribution(values []float64) (mean, std, p10, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}
	if n == 1 {
		return values[0], 0, values[0], values[0], values[0]
	}

	mean, std = stat.MeanStdDev(values, nil)

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	p10 = Percentile(sorted, 0.10)
	p50 = Percentile(sorted, 0.50)
	p90 = Percentile(sorted, 0.90)
	return mean, std, p10, p50, p90
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("window_end", s.WindowEndTick),
		slog.Int("agents", s.Agents),
		slog.Int("immature", s.Immature),
		slog.Int("ready", s.Ready),
		slog.Int("pregnant", s.Pregnant),
		slog.Int("cooldown", s.Cooldown),
		slog.Int("infertile", s.Infertile),
		slog.Int("births", s.Births),
		slog.Int("matings", s.Matings),
		slog.Int("failed_matings", s.FailedMatings),
		slog.Int("deaths", s.Deaths),
		slog.Int("genomes", s.Genomes),
		slog.Int("max_generation", s.MaxGeneration),
		slog.Int("mutations", s.Mutations),
		slog.Float64("diversity_mean", s.DiversityMean),
		slog.Float64("diversity_std", s.DiversityStd),
		slog.Float64("diversity_p10", s.DiversityP10),
		slog.Float64("diversity_p50", s.DiversityP50),
		slog.Float64("diversity_p90", s.DiversityP90),
		slog.Float64("energy_mean", s.EnergyMean),
		slog.Float64("energy_p10", s.EnergyP10),
		slog.Float64("energy_p50", s.EnergyP50),
		slog.Float64("energy_p90", s.EnergyP90),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
