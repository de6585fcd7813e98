// Package reproduction implements the per-agent reproductive lifecycle:
// the immature/ready/pregnant/cooldown/infertile state machine, mating
// eligibility gating, and offspring production through the genetics
// engine.
package reproduction

import "github.com/pthm-cable/drift/genetics"

// State is an agent's position in the reproductive lifecycle. The
// progression is strict: Infertile is terminal, and nothing cycles back
// from it.
type State uint8

const (
	Immature State = iota
	Ready
	Pregnant
	Cooldown
	Infertile

	stateCount
)

// String returns the state's name.
func (s State) String() string {
	switch s {
	case Immature:
		return "immature"
	case Ready:
		return "ready"
	case Pregnant:
		return "pregnant"
	case Cooldown:
		return "cooldown"
	case Infertile:
		return "infertile"
	default:
		return "unknown"
	}
}

// Record is the per-agent reproduction state. It is created when an
// agent is first registered and destroyed with the agent.
//
// While pregnant, the record snapshots the partner's genome so gestation
// completes even if the partner dies before birth; genomes are read-only
// after creation, so the snapshot is just the pointer.
type Record struct {
	State              State
	ReproductionCount  int
	FertilityModifier  float64
	GestationRemaining int
	CooldownRemaining  int
	PartnerID          uint64

	partnerGenome *genetics.Genome
}
