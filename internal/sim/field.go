package sim

import "math"

// Energy field bounds: the ambient gain available at any cell on any tick.
const (
	FieldMinGain = 1.0
	FieldMaxGain = 11.0
)

// EnergyField returns the ambient energy available for harvesting at grid
// position (x, y) on the given tick. It is a pure function of its inputs:
// an interference pattern of two slow waves, normalized from [-1, 1] to
// [0, 1] and rescaled to [FieldMinGain, FieldMaxGain].
func EnergyField(tick uint64, x, y int) float64 {
	t := float64(tick)
	pattern := math.Sin(0.01*t+0.1*float64(x)) * math.Cos(0.01*t+0.1*float64(y))
	normalized := (pattern + 1) / 2
	return FieldMinGain + (FieldMaxGain-FieldMinGain)*normalized
}
