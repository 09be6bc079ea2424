package gen

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/samdwyer/dungen/internal/geometry"
	"github.com/samdwyer/dungen/internal/room"
	"github.com/samdwyer/dungen/internal/tile"
)

// RoomFactory produces target rooms for newly placed portals.
type RoomFactory func() room.Room

// EdgePortals places portals at random non-corner positions on the room's
// edge. Each portal gets a fresh target room from the factory, registered in
// the registry under its id; the portal records only the id.
//
// Edge choice is weighted by side length so portals spread evenly around the
// perimeter. Rooms narrower than 3 tiles on either axis are left untouched.
// The tile at the chosen spot becomes Portal unconditionally: on a walled
// room that replaces a Wall, on an unwalled room a Floor tile on the edge is
// converted too.
type EdgePortals struct {
	count    int
	rng      *rand.Rand
	factory  RoomFactory
	registry *room.Registry
}

// NewEdgePortals creates a portal-placement step. The rng is supplied by the
// caller so generation stays reproducible under a fixed seed.
func NewEdgePortals(count int, rng *rand.Rand, factory RoomFactory, registry *room.Registry) *EdgePortals {
	return &EdgePortals{count: count, rng: rng, factory: factory, registry: registry}
}

func (s *EdgePortals) Name() string {
	return "edge_portals"
}

func (s *EdgePortals) Apply(ctx context.Context, r room.Room) error {
	size := r.Size()
	if size.Width < 3 || size.Height < 3 {
		return nil
	}
	bounds := r.Bounds()

	for i := 0; i < s.count; i++ {
		var pos geometry.LocalPosition
		var dir room.Direction

		totalOdds := float64(size.Width + size.Height)
		if s.rng.Float64() < float64(size.Height)/totalOdds {
			y := bounds.Position.Y + 1 + s.rng.Intn(size.Height-2)
			if s.rng.Intn(2) == 0 {
				pos = geometry.NewLocalPosition(bounds.Position.X, y)
				dir = room.East
			} else {
				pos = geometry.NewLocalPosition(bounds.Right()-1, y)
				dir = room.West
			}
		} else {
			x := bounds.Position.X + 1 + s.rng.Intn(size.Width-2)
			if s.rng.Intn(2) == 0 {
				pos = geometry.NewLocalPosition(x, bounds.Position.Y)
				dir = room.South
			} else {
				pos = geometry.NewLocalPosition(x, bounds.Bottom()-1)
				dir = room.North
			}
		}

		if err := r.SetTileAt(pos, tile.Portal); err != nil {
			return fmt.Errorf("portal at (%d,%d): %w", pos.X, pos.Y, err)
		}
		target := s.factory()
		if s.registry != nil {
			s.registry.Add(target)
		}
		r.AddPortal(room.Portal{Position: pos, Direction: dir, Target: target.ID()})
	}
	return nil
}

// ReciprocatePortals makes portals two-way: for every portal on the room
// whose target has no portal pointing back, a return portal is placed on the
// target's edge. The return portal faces the opposite direction and lands on
// the matching edge, so leaving through a room's west edge arrives on the
// target's east edge.
//
// Targets missing from the registry, targets narrower than 3 tiles on either
// axis, and targets that already link back are skipped, which also makes the
// step idempotent.
type ReciprocatePortals struct {
	rng      *rand.Rand
	registry *room.Registry
}

// NewReciprocatePortals creates a portal-reciprocation step.
func NewReciprocatePortals(rng *rand.Rand, registry *room.Registry) *ReciprocatePortals {
	return &ReciprocatePortals{rng: rng, registry: registry}
}

func (s *ReciprocatePortals) Name() string {
	return "reciprocate_portals"
}

func (s *ReciprocatePortals) Apply(ctx context.Context, r room.Room) error {
	for _, p := range r.Portals() {
		target, ok := s.registry.Get(p.Target)
		if !ok {
			continue
		}
		size := target.Size()
		if size.Width < 3 || size.Height < 3 {
			continue
		}
		if linksBack(target, r.ID()) {
			continue
		}

		dir := p.Direction.Opposite()
		pos := edgePosition(target.Bounds(), dir, s.rng)
		if err := target.SetTileAt(pos, tile.Portal); err != nil {
			return fmt.Errorf("return portal at (%d,%d): %w", pos.X, pos.Y, err)
		}
		target.AddPortal(room.Portal{Position: pos, Direction: dir, Target: r.ID()})
	}
	return nil
}

// linksBack reports whether the room already has a portal to the given id.
func linksBack(r room.Room, id uuid.UUID) bool {
	for _, p := range r.Portals() {
		if p.Target == id {
			return true
		}
	}
	return false
}

// edgePosition picks a random non-corner position on the edge a portal of
// the given direction sits on: East portals sit on the west edge, South
// portals on the north edge, and so on, mirroring EdgePortals placement.
func edgePosition(b geometry.Area, dir room.Direction, rng *rand.Rand) geometry.LocalPosition {
	switch dir {
	case room.East:
		return geometry.NewLocalPosition(b.Position.X, b.Position.Y+1+rng.Intn(b.Size.Height-2))
	case room.West:
		return geometry.NewLocalPosition(b.Right()-1, b.Position.Y+1+rng.Intn(b.Size.Height-2))
	case room.South:
		return geometry.NewLocalPosition(b.Position.X+1+rng.Intn(b.Size.Width-2), b.Position.Y)
	default:
		return geometry.NewLocalPosition(b.Position.X+1+rng.Intn(b.Size.Width-2), b.Bottom()-1)
	}
}
