package reproduction

import "github.com/pthm-cable/drift/genetics"

// Agent is the minimal capability surface the reproduction layer needs
// from the world. The world satisfies it by composition; this package
// never reaches into agent internals.
type Agent interface {
	ID() uint64
	Position() (x, y float64)
	Energy() float64
	MaxEnergy() float64
	Age() float64
	Genome() *genetics.Genome
	// ConsumeEnergy deducts an energy cost. The manager only calls it
	// after validating both participants, so the pair deduction is
	// all-or-nothing.
	ConsumeEnergy(amount float64)
}

// SpawnFunc receives a completed offspring genome together with the
// carrier and partner IDs. The world materializes the new agent itself,
// outside the update pass, so the agent list never grows while it is
// being iterated.
type SpawnFunc func(offspring *genetics.Genome, carrierID, partnerID uint64)
