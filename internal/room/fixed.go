package room

import (
	"github.com/google/uuid"

	"github.com/samdwyer/dungen/internal/geometry"
	"github.com/samdwyer/dungen/internal/tile"
)

// Fixed is a room with a declared size backed by a dense grid. Local
// positions run over [0,width) x [0,height); writes outside that range fail
// with an *OutOfBoundsError.
type Fixed struct {
	id      uuid.UUID
	origin  geometry.Position
	tiles   *tile.DenseStore
	portals []Portal
}

// NewFixed creates a fixed-size room at the world origin, all Void.
func NewFixed(size geometry.Size) *Fixed {
	return NewFixedAt(geometry.Position{}, size)
}

// NewFixedAt creates a fixed-size room at the given world origin.
func NewFixedAt(origin geometry.Position, size geometry.Size) *Fixed {
	return &Fixed{
		id:     uuid.New(),
		origin: origin,
		tiles:  tile.NewDenseStore(size),
	}
}

func (r *Fixed) ID() uuid.UUID {
	return r.id
}

func (r *Fixed) Size() geometry.Size {
	return r.tiles.Size()
}

func (r *Fixed) Bounds() geometry.Area {
	return geometry.AreaOf(r.tiles.Size())
}

// Capacity returns the declared size. Fixed implements Bounded.
func (r *Fixed) Capacity() geometry.Size {
	return r.tiles.Size()
}

func (r *Fixed) TileAt(p geometry.LocalPosition) (tile.Type, bool) {
	if !r.Bounds().Contains(p) {
		return tile.Void, false
	}
	return r.tiles.Get(p), true
}

func (r *Fixed) SetTileAt(p geometry.LocalPosition, t tile.Type) error {
	if !r.tiles.Set(p, t) {
		return &OutOfBoundsError{Position: p, Size: r.tiles.Size()}
	}
	return nil
}

func (r *Fixed) Origin() geometry.Position {
	return r.origin
}

func (r *Fixed) ToWorld(p geometry.LocalPosition) geometry.Position {
	return geometry.Position{X: r.origin.X + p.X, Y: r.origin.Y + p.Y}
}

func (r *Fixed) ToLocal(p geometry.Position) geometry.LocalPosition {
	return geometry.LocalPosition{X: p.X - r.origin.X, Y: p.Y - r.origin.Y}
}

func (r *Fixed) AddPortal(p Portal) {
	r.portals = append(r.portals, p)
}

func (r *Fixed) Portals() []Portal {
	return r.portals
}

func (r *Fixed) PortalCount() int {
	return len(r.portals)
}
