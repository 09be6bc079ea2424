package gen

import (
	"context"
	"fmt"

	"github.com/samdwyer/dungen/internal/geometry"
	"github.com/samdwyer/dungen/internal/room"
	"github.com/samdwyer/dungen/internal/tile"
)

// FillTiles writes one tile type across a rectangular area. A zero-size
// area means "the room's current bounds", so a fill can be re-applied after
// the room has grown.
type FillTiles struct {
	area geometry.Area
	fill tile.Type
}

// NewFillTiles creates a fill step for the given area and tile type.
func NewFillTiles(area geometry.Area, fill tile.Type) *FillTiles {
	return &FillTiles{area: area, fill: fill}
}

func (s *FillTiles) Name() string {
	return "fill_tiles"
}

func (s *FillTiles) Apply(ctx context.Context, r room.Room) error {
	area := s.area
	if area.Size.IsZero() {
		area = r.Bounds()
	}
	if area.Size.IsZero() {
		return nil
	}

	// Capacity is checked up front so a failing fill writes nothing.
	if b, ok := r.(room.Bounded); ok {
		capacity := b.Capacity()
		if area.Position.X < 0 || area.Position.Y < 0 ||
			area.Right() > capacity.Width || area.Bottom() > capacity.Height {
			return &CapacityError{Step: s.Name(), Area: area, Capacity: capacity}
		}
	}

	for y := area.Position.Y; y < area.Bottom(); y++ {
		for x := area.Position.X; x < area.Right(); x++ {
			p := geometry.NewLocalPosition(x, y)
			if err := r.SetTileAt(p, s.fill); err != nil {
				return fmt.Errorf("fill at (%d,%d): %w", x, y, err)
			}
		}
	}
	return nil
}

// EmptyRoom carves a Floor rectangle anchored at the local origin. It is
// idempotent: re-applying with the same size changes nothing.
type EmptyRoom struct {
	forward *FillTiles
}

// NewEmptyRoom creates a carve step for the given size. A zero size carves
// the room's current bounds.
func NewEmptyRoom(size geometry.Size) *EmptyRoom {
	return &EmptyRoom{forward: NewFillTiles(geometry.AreaOf(size), tile.Floor)}
}

func (s *EmptyRoom) Name() string {
	return "empty_room"
}

func (s *EmptyRoom) Apply(ctx context.Context, r room.Room) error {
	return s.forward.Apply(ctx, r)
}
