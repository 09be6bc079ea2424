package room

import (
	"github.com/google/uuid"

	"github.com/samdwyer/dungen/internal/geometry"
)

// Direction is an ordinal facing for portals.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// Opposite returns the reverse facing.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case East:
		return West
	case South:
		return North
	default:
		return East
	}
}

// Portal connects a room position to another room. The target is referenced
// by id only and resolved through a Registry after generation; portals never
// hold live room references.
type Portal struct {
	Position  geometry.LocalPosition
	Direction Direction
	Target    uuid.UUID
}
