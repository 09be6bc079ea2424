package room

import (
	"github.com/google/uuid"

	"github.com/samdwyer/dungen/internal/geometry"
	"github.com/samdwyer/dungen/internal/tile"
)

// Sparse is an expandable room backed by a hash map. Writes never fail:
// the bounds grow to cover every written position and never shrink.
type Sparse struct {
	id      uuid.UUID
	origin  geometry.Position
	tiles   *tile.SparseStore
	bounds  geometry.Area
	portals []Portal
}

// NewSparse creates an empty expandable room at the world origin.
func NewSparse() *Sparse {
	return NewSparseAt(geometry.Position{})
}

// NewSparseAt creates an empty expandable room at the given world origin.
func NewSparseAt(origin geometry.Position) *Sparse {
	return &Sparse{
		id:     uuid.New(),
		origin: origin,
		tiles:  tile.NewSparseStore(),
	}
}

func (r *Sparse) ID() uuid.UUID {
	return r.id
}

func (r *Sparse) Size() geometry.Size {
	return r.bounds.Size
}

func (r *Sparse) Bounds() geometry.Area {
	return r.bounds
}

func (r *Sparse) TileAt(p geometry.LocalPosition) (tile.Type, bool) {
	if !r.bounds.Contains(p) {
		return tile.Void, false
	}
	return r.tiles.Get(p), true
}

func (r *Sparse) SetTileAt(p geometry.LocalPosition, t tile.Type) error {
	r.tiles.Set(p, t)
	r.bounds = r.bounds.Extend(p)
	return nil
}

func (r *Sparse) Origin() geometry.Position {
	return r.origin
}

func (r *Sparse) ToWorld(p geometry.LocalPosition) geometry.Position {
	return geometry.Position{X: r.origin.X + p.X, Y: r.origin.Y + p.Y}
}

func (r *Sparse) ToLocal(p geometry.Position) geometry.LocalPosition {
	return geometry.LocalPosition{X: p.X - r.origin.X, Y: p.Y - r.origin.Y}
}

func (r *Sparse) AddPortal(p Portal) {
	r.portals = append(r.portals, p)
}

func (r *Sparse) Portals() []Portal {
	return r.portals
}

func (r *Sparse) PortalCount() int {
	return len(r.portals)
}
