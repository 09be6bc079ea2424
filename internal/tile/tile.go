// Package tile defines the tile enumeration and the backing stores used by
// room backends.
package tile

// Type identifies what occupies a map position. The zero value is Void, so
// any position never written to reads as Void.
type Type uint8

const (
	// Void is the absence of a tile.
	Void Type = iota
	// Floor is a passable interior tile.
	Floor
	// Wall is an impassable boundary tile.
	Wall
	// Portal marks a connection to another room.
	Portal
)

// Rune returns the tile's display character.
func (t Type) Rune() rune {
	switch t {
	case Floor:
		return '.'
	case Wall:
		return '#'
	case Portal:
		return '+'
	default:
		return ' '
	}
}

// IsPassable returns true if the tile can be walked on.
func (t Type) IsPassable() bool {
	return t == Floor || t == Portal
}

func (t Type) String() string {
	switch t {
	case Void:
		return "void"
	case Floor:
		return "floor"
	case Wall:
		return "wall"
	case Portal:
		return "portal"
	default:
		return "unknown"
	}
}
