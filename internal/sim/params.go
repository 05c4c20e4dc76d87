// Package sim provides the simulacrum lifecycle and the per-tick world
// engine: energy-field sampling, movement, metabolism, death and
// reproduction over a bounded grid population.
package sim

// Params holds the fixed simulation constants. Historical variants of the
// model disagreed on several of these values; they are unified here and
// must stay internally consistent for a run.
type Params struct {
	// InitialEnergy is the energy buffer every driver-spawned agent
	// starts with.
	InitialEnergy float64

	// MoveCost scales movement cost: distance * mass * MoveCost.
	MoveCost float64

	// ReproductionThreshold is the energy above which an agent becomes
	// eligible to reproduce during a tick.
	ReproductionThreshold float64

	// SplitCost is debited from a reproducing parent and becomes the
	// child's entire starting energy.
	SplitCost float64

	// SenescenceFactor multiplies the metabolic cost once the telomere
	// budget is exhausted, permanently.
	SenescenceFactor float64
}

// DefaultParams returns the documented constant set.
func DefaultParams() Params {
	return Params{
		InitialEnergy:         100.0,
		MoveCost:              0.01,
		ReproductionThreshold: 50.0,
		SplitCost:             25.0,
		SenescenceFactor:      1.5,
	}
}
