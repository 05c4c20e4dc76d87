// Package telemetry collects per-tick population statistics and writes
// them to CSV for offline analysis.
package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/talgya/aeternitas/internal/sim"
)

// TickStats is one telemetry row: the population and energy distribution
// at the end of a tick, plus the tick's event counts.
type TickStats struct {
	Tick       uint64  `csv:"tick"`
	Population int     `csv:"population"`
	Births     int     `csv:"births"`
	Deaths     int     `csv:"deaths"`
	Moves      int     `csv:"moves"`
	MeanEnergy float64 `csv:"mean_energy"`
	P50Energy  float64 `csv:"p50_energy"`
	P90Energy  float64 `csv:"p90_energy"`
	MeanMass   float64 `csv:"mean_mass"`
}

// Collect computes the stats row for a world after a tick, given the
// tick's event batch.
func Collect(w *sim.World, events []sim.Event) TickStats {
	s := TickStats{
		Tick:       w.TickCount,
		Population: w.Population(),
	}

	for _, e := range events {
		switch e.Type {
		case sim.EventBirth:
			s.Births++
		case sim.EventDeath:
			s.Deaths++
		case sim.EventMove:
			s.Moves++
		}
	}

	if len(w.Agents) == 0 {
		return s
	}

	energies := make([]float64, 0, len(w.Agents))
	masses := make([]float64, 0, len(w.Agents))
	for _, a := range w.Agents {
		energies = append(energies, a.Energy)
		masses = append(masses, float64(a.Phenotype.BodyMass))
	}

	s.MeanEnergy = stat.Mean(energies, nil)
	s.MeanMass = stat.Mean(masses, nil)

	sort.Float64s(energies)
	s.P50Energy = stat.Quantile(0.5, stat.Empirical, energies, nil)
	s.P90Energy = stat.Quantile(0.9, stat.Empirical, energies, nil)

	return s
}
