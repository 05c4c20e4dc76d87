package genome

import (
	"math"
	"testing"
)

func TestGrayRoundTrip(t *testing.T) {
	values := []uint32{0, 1, 2, 3, 255, 12345, 1 << 31, math.MaxUint32}
	for _, v := range values {
		if got := GrayDecode(GrayEncode(v)); got != v {
			t.Errorf("GrayDecode(GrayEncode(%d)) = %d", v, got)
		}
	}
	// A wider deterministic sweep.
	for v := uint32(0); v < 1<<20; v += 4099 {
		if got := GrayDecode(GrayEncode(v)); got != v {
			t.Fatalf("round trip failed at %d: got %d", v, got)
		}
	}
}

func TestGrayAdjacencyProperty(t *testing.T) {
	// Consecutive integers differ by exactly one bit in Gray code.
	for v := uint32(0); v < 4096; v++ {
		diff := GrayEncode(v) ^ GrayEncode(v + 1)
		if bits := popcount(diff); bits != 1 {
			t.Fatalf("gray(%d) and gray(%d) differ in %d bits", v, v+1, bits)
		}
	}
}

func popcount(v uint32) int {
	n := 0
	for ; v != 0; v &= v - 1 {
		n++
	}
	return n
}

func TestDecodeIsPure(t *testing.T) {
	g := Random(7)
	if g.Decode() != g.Decode() {
		t.Error("decoding the same genome twice gave different phenotypes")
	}
}

func TestDecodeKnownGenome(t *testing.T) {
	g := Random(7)
	p := g.Decode()

	approx := func(name string, got, want float32) {
		if math.Abs(float64(got-want)) > 1e-4 {
			t.Errorf("%s = %v, want %v", name, got, want)
		}
	}
	approx("BMR", p.BMR, 1.2108004)
	approx("BodyMass", p.BodyMass, 39.566494)
	approx("PerceptionRadius", p.PerceptionRadius, 65.23186)
	approx("MaxLifespan", p.MaxLifespan, 1037.0939)
}

func TestDecodeZeroGenome(t *testing.T) {
	// The all-zero genome decodes to the bottom of every trait range.
	var g Genome
	p := g.Decode()
	want := Phenotype{BMR: 0.5, BodyMass: 1.0, PerceptionRadius: 1.0, MaxLifespan: 1000.0}
	if p != want {
		t.Errorf("zero genome decoded to %+v, want %+v", p, want)
	}
}

func TestDecodeRanges(t *testing.T) {
	for seed := uint64(0); seed < 200; seed++ {
		p := Random(seed).Decode()
		if p.BMR < 0.5 || p.BMR > 2.0 {
			t.Fatalf("seed %d: BMR %v out of range", seed, p.BMR)
		}
		if p.BodyMass < 1.0 || p.BodyMass > 100.0 {
			t.Fatalf("seed %d: BodyMass %v out of range", seed, p.BodyMass)
		}
		if p.PerceptionRadius < 1.0 || p.PerceptionRadius > 100.0 {
			t.Fatalf("seed %d: PerceptionRadius %v out of range", seed, p.PerceptionRadius)
		}
		if p.MaxLifespan < 1000.0 || p.MaxLifespan > 5000.0 {
			t.Fatalf("seed %d: MaxLifespan %v out of range", seed, p.MaxLifespan)
		}
	}
}
