package sim

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/aeternitas/internal/genome"
)

// Spawner places the founding population. Positions are chosen from a
// static fertility map (simplex noise over the grid) so founders cluster in
// fertile regions rather than a uniform scatter; genomes are synthesized
// deterministically from the base seed. This is driver territory: the world
// sees only pre-built agents pushed before the first tick.
type Spawner struct {
	seed      uint64
	fertility opensimplex.Noise
}

// NewSpawner creates a spawner for the given base seed.
func NewSpawner(seed uint64) *Spawner {
	return &Spawner{
		seed:      seed,
		fertility: opensimplex.NewNormalized(int64(seed)),
	}
}

// Fertility samples the fertility map at a grid cell, in [0, 1].
func (s *Spawner) Fertility(x, y int, worldSize int) float64 {
	// Sample at a scale that gives a few fertile patches per grid.
	scale := 4.0 / float64(worldSize)
	return s.fertility.Eval2(float64(x)*scale, float64(y)*scale)
}

// SpawnFounders seeds a world with count agents placed greedily on the most
// fertile cells, one agent per cell, and returns their Birth events. Ties
// resolve in row-major scan order, keeping placement deterministic.
func (s *Spawner) SpawnFounders(w *World, count int) []Event {
	type cell struct {
		pos       Position
		fertility float64
	}

	best := make([]cell, 0, count)
	for y := 0; y < w.Size; y++ {
		for x := 0; x < w.Size; x++ {
			f := s.Fertility(x, y, w.Size)
			if len(best) < count {
				best = append(best, cell{Position{x, y}, f})
				continue
			}
			// Replace the weakest kept cell if this one is strictly better.
			weakest := 0
			for i := 1; i < len(best); i++ {
				if best[i].fertility < best[weakest].fertility {
					weakest = i
				}
			}
			if f > best[weakest].fertility {
				best[weakest] = cell{Position{x, y}, f}
			}
		}
	}

	events := make([]Event, 0, len(best))
	for i, c := range best {
		g := genome.Random(s.seed + uint64(i))
		_, ev := w.SpawnAgent(g, c.pos)
		events = append(events, ev)
	}
	return events
}
