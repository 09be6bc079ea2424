// Package geometry provides the integer value types shared by rooms and
// generation steps: world positions, room-local positions, sizes and areas.
package geometry

// Position is a world-space coordinate.
type Position struct {
	X, Y int
}

// NewPosition creates a world-space position.
func NewPosition(x, y int) Position {
	return Position{X: x, Y: y}
}

// LocalPosition is a coordinate relative to a room's origin. Expandable
// backends permit negative components; fixed backends do not.
type LocalPosition struct {
	X, Y int
}

// NewLocalPosition creates a room-local position.
func NewLocalPosition(x, y int) LocalPosition {
	return LocalPosition{X: x, Y: y}
}

// Add returns the position offset by the given deltas.
func (p LocalPosition) Add(dx, dy int) LocalPosition {
	return LocalPosition{X: p.X + dx, Y: p.Y + dy}
}
