package sim

import (
	"sort"

	"github.com/talgya/aeternitas/internal/genome"
)

// WorldStats tracks aggregate counters across the life of a world.
type WorldStats struct {
	Births uint64 `json:"births"`
	Deaths uint64 `json:"deaths"`
	Moves  uint64 `json:"moves"`
}

// World owns the agent population, the shared random generator, and the
// tick and id counters. All simulation state changes flow through Tick;
// the only other sanctioned mutation is SpawnAgent before the first tick.
type World struct {
	Size      int
	Agents    []*Simulacrum
	TickCount uint64
	Params    Params
	Stats     WorldStats

	gen    *genome.Generator
	nextID uint64
}

// NewWorld creates an empty world of the given grid size seeded with the
// given 64-bit seed, and the Genesis event recording its creation.
func NewWorld(size int, seed uint64, params Params) (*World, Event) {
	w := &World{
		Size:   size,
		Params: params,
		gen:    genome.NewGenerator(seed),
		nextID: 1,
	}
	return w, NewGenesisEvent(0)
}

// Population returns the number of agents currently in the world.
func (w *World) Population() int {
	return len(w.Agents)
}

// SpawnAgent constructs an agent with the next monotonic id at the given
// position, appends it to the population, and returns it with its Birth
// event. Ids are never reused, even across deaths.
func (w *World) SpawnAgent(g genome.Genome, pos Position) (*Simulacrum, Event) {
	id := w.nextID
	w.nextID++

	agent := NewSimulacrum(id, g, pos, w.Params)
	w.Agents = append(w.Agents, agent)
	w.Stats.Births++
	return agent, NewBirthEvent(w.TickCount, id, 0, g)
}

// Tick advances the whole population by one time step and returns the
// events produced, deaths before births. Three ordered passes keep the
// "read old state, write new state" protocol race-free: analyze and act,
// remove the dead by descending index, then append the newborn. Offspring
// never participate in the tick that produced them.
func (w *World) Tick() []Event {
	w.TickCount++

	var events []Event
	var dead []int
	var parents []uint64

	// Pass 1: field sampling, metabolism, movement.
	for i, agent := range w.Agents {
		gain := EnergyField(w.TickCount, agent.Pos.X, agent.Pos.Y)
		agent.Energy += gain

		result := agent.AdvanceTick()

		if result.Alive {
			dx := int(w.gen.Next()%3) - 1
			dy := int(w.gen.Next()%3) - 1
			if dx != 0 || dy != 0 {
				target := Position{X: agent.Pos.X + dx, Y: agent.Pos.Y + dy}
				if _, ok := agent.MoveTo(target, w.Size); ok {
					w.Stats.Moves++
					events = append(events, NewMoveEvent(w.TickCount, agent.ID, agent.Pos.X, agent.Pos.Y))
				}
			}
		}

		if !agent.Alive {
			dead = append(dead, i)
		} else if agent.Energy > w.Params.ReproductionThreshold {
			parents = append(parents, agent.ID)
		}
	}

	// Pass 2: death cleanup. Removal must run from the highest index down
	// so earlier removals cannot shift the indices still pending.
	sort.Sort(sort.Reverse(sort.IntSlice(dead)))
	prev := -1
	for _, idx := range dead {
		if idx == prev {
			continue
		}
		prev = idx
		agent := w.Agents[idx]
		w.Agents = append(w.Agents[:idx], w.Agents[idx+1:]...)
		w.Stats.Deaths++
		events = append(events, NewDeathEvent(w.TickCount, agent.ID, "starvation"))
	}

	// Pass 3: reproduction. A parent that died in pass 2 has vanished and
	// is skipped silently; newborns are held back until every decision for
	// this tick is final.
	var offspring []*Simulacrum
	for _, parentID := range parents {
		parent := w.findAgent(parentID)
		if parent == nil {
			continue
		}
		if parent.Energy <= w.Params.SplitCost {
			continue
		}
		parent.Energy -= w.Params.SplitCost

		childGenome := parent.Genome
		childGenome.Mutate(w.gen)

		id := w.nextID
		w.nextID++

		child := NewSimulacrum(id, childGenome, parent.Pos, w.Params)
		child.Energy = w.Params.SplitCost
		offspring = append(offspring, child)
		w.Stats.Births++
		events = append(events, NewBirthEvent(w.TickCount, id, parentID, childGenome))
	}
	w.Agents = append(w.Agents, offspring...)

	return events
}

// findAgent locates a live agent by identity. The population is a dense
// slice, so this is a linear scan; it keeps iteration order deterministic
// where a map would not.
func (w *World) findAgent(id uint64) *Simulacrum {
	for _, a := range w.Agents {
		if a.ID == id {
			return a
		}
	}
	return nil
}
