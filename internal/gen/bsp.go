package gen

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/samdwyer/dungen/internal/geometry"
	"github.com/samdwyer/dungen/internal/room"
	"github.com/samdwyer/dungen/internal/tile"
)

// BSPParams controls the binary space partition layout step.
type BSPParams struct {
	Bounds      geometry.Size // total area to partition
	MinRoomSize int           // minimum room dimension in a leaf
	MaxRoomSize int           // maximum room dimension in a leaf
	MinLeafSize int           // minimum leaf dimension before splitting stops
}

// DefaultBSPParams returns the layout parameters for a classic 80x24 map.
func DefaultBSPParams() BSPParams {
	return BSPParams{
		Bounds:      geometry.NewSize(80, 24),
		MinRoomSize: 8,
		MaxRoomSize: 15,
		MinLeafSize: 10,
	}
}

// BSPRooms partitions an area with a BSP tree, carves a Floor room inside
// each leaf, and joins room centers with L-shaped Floor corridors. With a
// fixed rng the layout is fully deterministic.
type BSPRooms struct {
	params BSPParams
	rng    *rand.Rand
	rooms  []geometry.Area
}

// NewBSPRooms creates a BSP layout step. The rng is supplied by the caller
// so generation stays reproducible under a fixed seed.
func NewBSPRooms(params BSPParams, rng *rand.Rand) *BSPRooms {
	return &BSPRooms{params: params, rng: rng}
}

func (s *BSPRooms) Name() string {
	return "bsp_rooms"
}

// Rooms returns the areas carved by the most recent Apply.
func (s *BSPRooms) Rooms() []geometry.Area {
	return s.rooms
}

func (s *BSPRooms) Apply(ctx context.Context, r room.Room) error {
	if s.params.Bounds.IsZero() {
		return nil
	}
	if b, ok := r.(room.Bounded); ok {
		capacity := b.Capacity()
		if s.params.Bounds.Width > capacity.Width || s.params.Bounds.Height > capacity.Height {
			return &CapacityError{Step: s.Name(), Area: geometry.AreaOf(s.params.Bounds), Capacity: capacity}
		}
	}

	s.rooms = nil
	root := &bspNode{
		x:      1,
		y:      1,
		width:  s.params.Bounds.Width - 2,
		height: s.params.Bounds.Height - 2,
	}

	s.splitNode(root)
	if err := s.createRooms(r, root); err != nil {
		return err
	}
	return s.connectRooms(r, root)
}

// bspNode is a node in the partition tree.
type bspNode struct {
	x, y          int
	width, height int
	left, right   *bspNode
	area          *geometry.Area
}

func (n *bspNode) isLeaf() bool {
	return n.left == nil && n.right == nil
}

// splitNode recursively splits a node until leaves drop below twice the
// minimum leaf size.
func (s *BSPRooms) splitNode(node *bspNode) {
	minLeaf := s.params.MinLeafSize
	if node.width < minLeaf*2 && node.height < minLeaf*2 {
		return
	}

	var splitHorizontally bool
	switch {
	case node.width > node.height && node.width >= minLeaf*2:
		splitHorizontally = false
	case node.height >= minLeaf*2:
		splitHorizontally = true
	case node.width >= minLeaf*2:
		splitHorizontally = false
	default:
		return
	}

	var splitPos int
	if splitHorizontally {
		if node.height-minLeaf <= minLeaf {
			return
		}
		splitPos = minLeaf + s.rng.Intn(node.height-minLeaf*2+1)
	} else {
		if node.width-minLeaf <= minLeaf {
			return
		}
		splitPos = minLeaf + s.rng.Intn(node.width-minLeaf*2+1)
	}

	if splitHorizontally {
		node.left = &bspNode{x: node.x, y: node.y, width: node.width, height: splitPos}
		node.right = &bspNode{x: node.x, y: node.y + splitPos, width: node.width, height: node.height - splitPos}
	} else {
		node.left = &bspNode{x: node.x, y: node.y, width: splitPos, height: node.height}
		node.right = &bspNode{x: node.x + splitPos, y: node.y, width: node.width - splitPos, height: node.height}
	}

	s.splitNode(node.left)
	s.splitNode(node.right)
}

// createRooms carves a floor rectangle inside every leaf.
func (s *BSPRooms) createRooms(r room.Room, node *bspNode) error {
	if node == nil {
		return nil
	}
	if !node.isLeaf() {
		if err := s.createRooms(r, node.left); err != nil {
			return err
		}
		return s.createRooms(r, node.right)
	}

	minRoom, maxRoom := s.params.MinRoomSize, s.params.MaxRoomSize
	if maxRoom < minRoom {
		maxRoom = minRoom
	}
	// A leaf needs a one-tile margin around a minimum-size room; smaller
	// leaves carve nothing.
	if node.width < minRoom+2 || node.height < minRoom+2 {
		return nil
	}
	roomWidth := minRoom + s.rng.Intn(min(maxRoom-minRoom+1, node.width-minRoom+1))
	roomHeight := minRoom + s.rng.Intn(min(maxRoom-minRoom+1, node.height-minRoom+1))
	if roomWidth > node.width-2 {
		roomWidth = node.width - 2
	}
	if roomHeight > node.height-2 {
		roomHeight = node.height - 2
	}

	roomX := node.x + 1 + s.rng.Intn(node.width-roomWidth-1)
	roomY := node.y + 1 + s.rng.Intn(node.height-roomHeight-1)

	area := geometry.NewArea(geometry.NewLocalPosition(roomX, roomY), geometry.NewSize(roomWidth, roomHeight))
	node.area = &area
	s.rooms = append(s.rooms, area)

	for y := area.Position.Y; y < area.Bottom(); y++ {
		for x := area.Position.X; x < area.Right(); x++ {
			if err := r.SetTileAt(geometry.NewLocalPosition(x, y), tile.Floor); err != nil {
				return fmt.Errorf("carve at (%d,%d): %w", x, y, err)
			}
		}
	}
	return nil
}

// connectRooms joins a room from each subtree with an L-shaped corridor.
func (s *BSPRooms) connectRooms(r room.Room, node *bspNode) error {
	if node == nil || node.isLeaf() {
		return nil
	}
	if err := s.connectRooms(r, node.left); err != nil {
		return err
	}
	if err := s.connectRooms(r, node.right); err != nil {
		return err
	}

	left := s.anyRoom(node.left)
	right := s.anyRoom(node.right)
	if left == nil || right == nil {
		return nil
	}

	c1, c2 := left.Center(), right.Center()
	if s.rng.Intn(2) == 0 {
		if err := s.carveTunnel(r, c1.X, c2.X, c1.Y, true); err != nil {
			return err
		}
		return s.carveTunnel(r, c1.Y, c2.Y, c2.X, false)
	}
	if err := s.carveTunnel(r, c1.Y, c2.Y, c1.X, false); err != nil {
		return err
	}
	return s.carveTunnel(r, c1.X, c2.X, c2.Y, true)
}

// anyRoom returns a carved room area from the subtree.
func (s *BSPRooms) anyRoom(node *bspNode) *geometry.Area {
	if node == nil {
		return nil
	}
	if node.area != nil {
		return node.area
	}
	if area := s.anyRoom(node.left); area != nil {
		return area
	}
	return s.anyRoom(node.right)
}

// carveTunnel writes a straight floor segment from a to b along one axis,
// at the fixed cross coordinate.
func (s *BSPRooms) carveTunnel(r room.Room, a, b, cross int, horizontal bool) error {
	if a > b {
		a, b = b, a
	}
	for i := a; i <= b; i++ {
		p := geometry.NewLocalPosition(i, cross)
		if !horizontal {
			p = geometry.NewLocalPosition(cross, i)
		}
		if err := r.SetTileAt(p, tile.Floor); err != nil {
			return fmt.Errorf("corridor at (%d,%d): %w", p.X, p.Y, err)
		}
	}
	return nil
}
