// Package room provides the map surface that generation steps mutate. Two
// backends share one capability interface: an expandable sparse store and a
// fixed-size dense grid.
package room

import (
	"github.com/google/uuid"

	"github.com/samdwyer/dungen/internal/geometry"
	"github.com/samdwyer/dungen/internal/tile"
)

// Room is the capability surface shared by all backends. Generation steps
// only ever see this interface, never a concrete backend.
type Room interface {
	// ID returns the room's stable identity, used by portals to reference
	// target rooms without holding them.
	ID() uuid.UUID

	// Size returns the current bounds size. For the expandable backend this
	// is the bounding rectangle of all written positions; for the fixed
	// backend it is the declared size.
	Size() geometry.Size

	// Bounds returns the current bounding rectangle in local space. The
	// expandable backend permits a negative minimum corner.
	Bounds() geometry.Area

	// TileAt returns the tile at the position. The second result is false
	// outside the current bounds; inside the bounds an unwritten position
	// reads as Void.
	TileAt(p geometry.LocalPosition) (tile.Type, bool)

	// SetTileAt writes a tile. The expandable backend grows its bounds to
	// cover the position; the fixed backend returns an *OutOfBoundsError
	// for positions beyond the declared size.
	SetTileAt(p geometry.LocalPosition, t tile.Type) error

	// Origin returns the room's world-space origin.
	Origin() geometry.Position

	// ToWorld converts a local position to world space.
	ToWorld(p geometry.LocalPosition) geometry.Position

	// ToLocal converts a world position to local space. ToLocal(ToWorld(p))
	// is the identity.
	ToLocal(p geometry.Position) geometry.LocalPosition

	// AddPortal records a portal on this room.
	AddPortal(p Portal)

	// Portals returns the recorded portals in insertion order.
	Portals() []Portal

	// PortalCount returns the number of recorded portals.
	PortalCount() int
}

// Bounded is implemented by backends with a fixed declared capacity. Steps
// use it to pre-check geometry before writing.
type Bounded interface {
	Room
	Capacity() geometry.Size
}
