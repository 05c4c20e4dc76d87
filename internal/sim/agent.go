package sim

import (
	"math"

	"github.com/talgya/aeternitas/internal/genome"
)

// Position is a grid coordinate. Both axes are constrained to
// [0, worldSize) and only a successful move may change it.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Simulacrum is one simulated organism: its immutable genome and cached
// phenotype plus the mutable position, energy, telomere budget and
// liveness. A simulacrum is owned exclusively by its world's population
// slice and is never shared outside a tick's processing window.
type Simulacrum struct {
	ID        uint64
	Genome    genome.Genome
	Phenotype genome.Phenotype
	Pos       Position
	Energy    float64

	// Telomeres counts down one per tick; senescence begins when it
	// reaches zero and is irreversible.
	Telomeres float64
	Alive     bool

	senescent        bool
	moveCost         float64
	senescenceFactor float64
}

// TickResult reports the outcome of one metabolic step.
type TickResult struct {
	CostPaid  float64
	Alive     bool
	Telomeres float64
}

// NewSimulacrum creates a living agent: the phenotype is decoded once and
// cached, the telomere budget starts at the phenotype's maximum lifespan.
func NewSimulacrum(id uint64, g genome.Genome, pos Position, params Params) *Simulacrum {
	p := g.Decode()
	return &Simulacrum{
		ID:               id,
		Genome:           g,
		Phenotype:        p,
		Pos:              pos,
		Energy:           params.InitialEnergy,
		Telomeres:        float64(p.MaxLifespan),
		Alive:            true,
		moveCost:         params.MoveCost,
		senescenceFactor: params.SenescenceFactor,
	}
}

// AdvanceTick ages the agent by one tick and debits its metabolic cost:
// bmr * mass^0.75 (Kleiber scaling), multiplied by the senescence factor
// once the telomere budget is spent. A dead agent is a no-op.
func (s *Simulacrum) AdvanceTick() TickResult {
	if !s.Alive {
		return TickResult{CostPaid: 0, Alive: false, Telomeres: s.Telomeres}
	}

	s.Telomeres--
	if s.Telomeres <= 0 {
		s.senescent = true
	}

	cost := float64(s.Phenotype.BMR) * math.Pow(float64(s.Phenotype.BodyMass), 0.75)
	if s.senescent {
		cost *= s.senescenceFactor
	}

	s.debit(cost)
	return TickResult{CostPaid: cost, Alive: s.Alive, Telomeres: s.Telomeres}
}

// MoveTo attempts to relocate the agent. A target outside [0, worldSize)
// on either axis is rejected with no state change. On success the movement
// cost distance * mass * moveCost is debited (in addition to, and
// independent of, the tick's metabolic cost) and the position updated.
func (s *Simulacrum) MoveTo(target Position, worldSize int) (float64, bool) {
	if !s.Alive {
		return 0, false
	}
	if target.X < 0 || target.X >= worldSize || target.Y < 0 || target.Y >= worldSize {
		return 0, false
	}

	dx := float64(target.X - s.Pos.X)
	dy := float64(target.Y - s.Pos.Y)
	cost := math.Hypot(dx, dy) * float64(s.Phenotype.BodyMass) * s.moveCost

	s.Pos = target
	s.debit(cost)
	return cost, true
}

// debit subtracts cost from energy, clamping to exactly zero and flipping
// liveness when the balance is exhausted. Death is terminal: energy never
// changes again afterwards.
func (s *Simulacrum) debit(cost float64) {
	s.Energy -= cost
	if s.Energy <= 0 {
		s.Energy = 0
		s.Alive = false
	}
}
