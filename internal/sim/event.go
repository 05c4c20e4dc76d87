package sim

import "github.com/talgya/aeternitas/internal/genome"

// EventType identifies the kind of occurrence an Event records.
type EventType uint8

const (
	EventGenesis EventType = iota
	EventBirth
	EventDeath
	EventMove
)

// String returns the event type name used in the textual record.
func (t EventType) String() string {
	switch t {
	case EventGenesis:
		return "Genesis"
	case EventBirth:
		return "Birth"
	case EventDeath:
		return "Death"
	case EventMove:
		return "Move"
	default:
		return "Unknown"
	}
}

// Event is an immutable record of one notable occurrence, consumed by the
// logging collaborator. Tick and EntityID are always set; the remaining
// fields depend on the type.
type Event struct {
	Type     EventType
	Tick     uint64
	EntityID uint64

	// Birth
	ParentID uint64
	Genome   genome.Genome

	// Move
	X, Y int

	// Death
	Reason string
}

// NewGenesisEvent records the creation of a world.
func NewGenesisEvent(tick uint64) Event {
	return Event{Type: EventGenesis, Tick: tick}
}

// NewBirthEvent records a new agent entering the population.
func NewBirthEvent(tick, childID, parentID uint64, g genome.Genome) Event {
	return Event{Type: EventBirth, Tick: tick, EntityID: childID, ParentID: parentID, Genome: g}
}

// NewDeathEvent records an agent's removal from the population.
func NewDeathEvent(tick, entityID uint64, reason string) Event {
	return Event{Type: EventDeath, Tick: tick, EntityID: entityID, Reason: reason}
}

// NewMoveEvent records a successful position change.
func NewMoveEvent(tick, entityID uint64, x, y int) Event {
	return Event{Type: EventMove, Tick: tick, EntityID: entityID, X: x, Y: y}
}
