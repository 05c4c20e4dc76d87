// Package genome provides the 512-bit genome representation, its
// deterministic random synthesis, crossover and mutation operators, and the
// Gray-coded phenotype codec.
package genome

import "math"

// Knuth MMIX linear congruential generator constants.
const (
	lcgMultiplier uint64 = 6364136223846793005
	lcgIncrement  uint64 = 1442695040888963407
)

// Generator is a seeded linear congruential pseudo-random stream. It is the
// sole source of randomness in the simulation: given the same seed and call
// sequence the output is bit-for-bit reproducible. A zero seed is valid.
type Generator struct {
	state uint64
}

// NewGenerator returns a Generator with the given starting state.
func NewGenerator(seed uint64) *Generator {
	return &Generator{state: seed}
}

// Next advances the state by state = state*A + C (mod 2^64) and returns it.
func (g *Generator) Next() uint64 {
	g.state = g.state*lcgMultiplier + lcgIncrement
	return g.state
}

// NextUnitFloat returns the upper 32 bits of Next divided by the maximum
// 32-bit value. The high bits carry the better-mixed output of an LCG.
func (g *Generator) NextUnitFloat() float32 {
	return float32(g.Next()>>32) / float32(math.MaxUint32)
}
