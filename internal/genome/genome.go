package genome

import (
	"encoding/binary"
	"encoding/hex"
)

// Size is the genome length in bytes (512 bits).
const Size = 64

// MutationRate is the independent per-bit flip probability applied by Mutate.
const MutationRate = 0.0001

// Genome is a fixed 64-byte bit sequence encoding an organism's traits.
// Value semantics: assignment copies the whole array, so a child genome is
// never aliased to its parent's.
type Genome [Size]byte

// Random synthesizes a genome from a fresh Generator seeded with seed. Each
// byte is the high byte of one successive draw.
func Random(seed uint64) Genome {
	gen := NewGenerator(seed)
	var g Genome
	for i := range g {
		g[i] = byte(gen.Next() >> 56)
	}
	return g
}

// Crossover combines two parent genomes with uniform per-bit selection.
// It works in eight 64-bit chunks: each chunk draws one mask from gen and
// takes the masked bits from a and the rest from b, so every child bit
// equals one parent's bit at that position.
func Crossover(a, b Genome, gen *Generator) Genome {
	var child Genome
	for i := 0; i < Size; i += 8 {
		mask := gen.Next()
		ac := binary.LittleEndian.Uint64(a[i:])
		bc := binary.LittleEndian.Uint64(b[i:])
		binary.LittleEndian.PutUint64(child[i:], (ac&mask)|(bc&^mask))
	}
	return child
}

// Mutate flips each of the 512 bits independently with probability
// MutationRate, consuming exactly one unit-float draw per bit. It operates
// in place and must only be applied to a private copy, never to the genome
// of a living parent.
func (g *Genome) Mutate(gen *Generator) {
	for bit := 0; bit < Size*8; bit++ {
		if gen.NextUnitFloat() < MutationRate {
			g[bit/8] ^= 1 << (bit % 8)
		}
	}
}

// String renders the genome as a 128-character lowercase hex string, the
// form carried by Birth event payloads.
func (g Genome) String() string {
	return hex.EncodeToString(g[:])
}
