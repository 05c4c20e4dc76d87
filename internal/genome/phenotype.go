package genome

import (
	"encoding/binary"
	"math"
)

// Phenotype holds the four real-valued traits expressed by a genome.
// It is pure derived data: recomputed whenever its source genome changes,
// never mutated independently.
type Phenotype struct {
	BMR              float32 // Basal metabolic rate [0.5, 2.0]
	BodyMass         float32 // Mass in kg [1.0, 100.0]
	PerceptionRadius float32 // Perception range [1.0, 100.0]
	MaxLifespan      float32 // Maximum lifespan in ticks [1000.0, 5000.0]
}

// Trait word offsets into the genome, in bytes. These are fixed historical
// constants; offset 34 deliberately straddles a 32-bit block boundary and
// must not be "corrected".
const (
	offBMR        = 0
	offMass       = 4
	offPerception = 16
	offLifespan   = 34
)

// Decode expresses the genome as a Phenotype. Each trait is a little-endian
// 32-bit word read at a fixed offset, Gray-decoded to binary, normalized by
// the maximum 32-bit value, and rescaled linearly into the trait's range.
// Decode is pure: identical genomes always yield identical phenotypes.
func (g Genome) Decode() Phenotype {
	word := func(off int) float32 {
		raw := binary.LittleEndian.Uint32(g[off:])
		return float32(GrayDecode(raw)) / float32(math.MaxUint32)
	}

	return Phenotype{
		BMR:              word(offBMR)*(2.0-0.5) + 0.5,
		BodyMass:         word(offMass)*(100.0-1.0) + 1.0,
		PerceptionRadius: word(offPerception)*(100.0-1.0) + 1.0,
		MaxLifespan:      word(offLifespan)*(5000.0-1000.0) + 1000.0,
	}
}

// GrayDecode converts a reflected-binary Gray code to a standard binary
// integer by folding the value onto itself with shrinking shifts.
func GrayDecode(n uint32) uint32 {
	for p := n >> 1; p > 0; p >>= 1 {
		n ^= p
	}
	return n
}

// GrayEncode converts a binary integer to its reflected-binary Gray code.
// Adjacent integers differ by exactly one bit in this encoding, which is
// what makes point mutations produce locally smooth trait changes.
func GrayEncode(n uint32) uint32 {
	return n ^ (n >> 1)
}
