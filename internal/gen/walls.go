package gen

import (
	"context"
	"errors"
	"fmt"

	"github.com/samdwyer/dungen/internal/geometry"
	"github.com/samdwyer/dungen/internal/room"
	"github.com/samdwyer/dungen/internal/tile"
)

// Adjacency selects which neighbors wall synthesis inspects.
type Adjacency int

const (
	// Adjacent8 inspects all eight neighbors. This is the default: it seals
	// the diagonal gaps at rectangle corners, so a carved rectangle ends up
	// with a closed wall ring.
	Adjacent8 Adjacency = iota
	// Adjacent4 inspects only the cardinal neighbors.
	Adjacent4
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{
		{-1, -1}, {0, -1}, {1, -1},
		{-1, 0}, {1, 0},
		{-1, 1}, {0, 1}, {1, 1},
	}
)

// WalledRoom surrounds existing floor with walls. Every neighbor of a Floor
// tile that reads as Void, or lies outside the current bounds, becomes Wall.
//
// Only tiles the replace filter accepts are overwritten; the default filter
// accepts Void alone, so Floor and Portal tiles are never replaced. Because
// the step only transitions Void to Wall over a snapshot of the floor, the
// result is independent of scan order and applying it twice equals applying
// it once.
//
// On a fixed-size room a wall position beyond the declared size is skipped:
// floor legally reaching the boundary does not make the step fail.
type WalledRoom struct {
	adjacency Adjacency
	replace   func(tile.Type) bool
}

// WallOption configures a WalledRoom step.
type WallOption func(*WalledRoom)

// WithAdjacency selects 4- or 8-neighbor inspection.
func WithAdjacency(a Adjacency) WallOption {
	return func(s *WalledRoom) { s.adjacency = a }
}

// WithReplaceFilter overrides which tile types a wall may overwrite. The
// default replaces only Void.
func WithReplaceFilter(f func(tile.Type) bool) WallOption {
	return func(s *WalledRoom) { s.replace = f }
}

// NewWalledRoom creates a wall-synthesis step with 8-neighbor adjacency and
// the Void-only replace filter.
func NewWalledRoom(opts ...WallOption) *WalledRoom {
	s := &WalledRoom{
		adjacency: Adjacent8,
		replace:   func(t tile.Type) bool { return t == tile.Void },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *WalledRoom) Name() string {
	return "walled_room"
}

func (s *WalledRoom) Apply(ctx context.Context, r room.Room) error {
	bounds := r.Bounds()
	if bounds.Size.IsZero() {
		return nil
	}

	// Snapshot the floor first; walls written below must not feed back
	// into the scan.
	var floors []geometry.LocalPosition
	for y := bounds.Position.Y; y < bounds.Bottom(); y++ {
		for x := bounds.Position.X; x < bounds.Right(); x++ {
			p := geometry.NewLocalPosition(x, y)
			if t, ok := r.TileAt(p); ok && t == tile.Floor {
				floors = append(floors, p)
			}
		}
	}

	offsets := offsets8
	if s.adjacency == Adjacent4 {
		offsets = offsets4
	}

	for _, p := range floors {
		for _, d := range offsets {
			n := p.Add(d[0], d[1])
			t, ok := r.TileAt(n)
			if !ok {
				// Outside current bounds reads as Void.
				t = tile.Void
			}
			if !s.replace(t) {
				continue
			}
			if err := r.SetTileAt(n, tile.Wall); err != nil {
				if errors.Is(err, room.ErrOutOfBounds) {
					continue
				}
				return fmt.Errorf("wall at (%d,%d): %w", n.X, n.Y, err)
			}
		}
	}
	return nil
}
