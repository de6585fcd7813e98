package sim

import (
	"fmt"
	"io"

	"github.com/pthm-cable/drift/telemetry"
)

// logWriter is the destination for log output.
var logWriter io.Writer

// SetLogWriter sets the log output destination.
func SetLogWriter(w io.Writer) {
	logWriter = w
}

// Logf writes a formatted log message.
func Logf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if logWriter != nil {
		fmt.Fprintln(logWriter, msg)
	} else {
		fmt.Println(msg)
	}
}

// logWorldState logs a console summary of the current window.
func (s *Simulation) logWorldState(stats telemetry.WindowStats) {
	Logf("=== World @ Tick %d ===", s.tick)
	Logf("Agents: %d (immature %d, ready %d, pregnant %d, cooldown %d, infertile %d)",
		stats.Agents, stats.Immature, stats.Ready, stats.Pregnant, stats.Cooldown, stats.Infertile)
	Logf("Window: %d births, %d matings, %d failed, %d deaths",
		stats.Births, stats.Matings, stats.FailedMatings, stats.Deaths)
	Logf("Lineage: %d genomes, max generation %d, %d mutations (lifetime deaths %d)",
		stats.Genomes, stats.MaxGeneration, stats.Mutations, s.deadCount)
	Logf("Diversity: mean %.3f ± %.3f (p10 %.3f, p50 %.3f, p90 %.3f)",
		stats.DiversityMean, stats.DiversityStd, stats.DiversityP10, stats.DiversityP50, stats.DiversityP90)
	Logf("Energy: mean %.2f (p10 %.2f, p50 %.2f, p90 %.2f)",
		stats.EnergyMean, stats.EnergyP10, stats.EnergyP50, stats.EnergyP90)
	Logf("")
}
