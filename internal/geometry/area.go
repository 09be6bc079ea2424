package geometry

import "fmt"

// Area is a rectangle in room-local space, anchored at its minimum corner.
type Area struct {
	Position LocalPosition // Minimum corner
	Size     Size
}

// NewArea creates an area from its minimum corner and size.
func NewArea(position LocalPosition, size Size) Area {
	return Area{Position: position, Size: size}
}

// AreaOf creates an area of the given size anchored at the local origin.
func AreaOf(size Size) Area {
	return Area{Size: size}
}

// Right returns the exclusive right edge.
func (a Area) Right() int {
	return a.Position.X + a.Size.Width
}

// Bottom returns the exclusive bottom edge.
func (a Area) Bottom() int {
	return a.Position.Y + a.Size.Height
}

// Contains reports whether the position lies inside the area.
func (a Area) Contains(p LocalPosition) bool {
	return p.X >= a.Position.X && p.X < a.Right() &&
		p.Y >= a.Position.Y && p.Y < a.Bottom()
}

// Extend returns the smallest area covering both this area and the position.
// Extending a zero area yields the single-tile area at the position.
func (a Area) Extend(p LocalPosition) Area {
	if a.Size.IsZero() {
		return Area{Position: p, Size: Size{Width: 1, Height: 1}}
	}
	minX, minY := a.Position.X, a.Position.Y
	maxX, maxY := a.Right(), a.Bottom()
	if p.X < minX {
		minX = p.X
	}
	if p.Y < minY {
		minY = p.Y
	}
	if p.X+1 > maxX {
		maxX = p.X + 1
	}
	if p.Y+1 > maxY {
		maxY = p.Y + 1
	}
	return Area{
		Position: LocalPosition{X: minX, Y: minY},
		Size:     Size{Width: maxX - minX, Height: maxY - minY},
	}
}

// Intersects reports whether two areas overlap.
func (a Area) Intersects(other Area) bool {
	return a.Position.X < other.Right() &&
		a.Right() > other.Position.X &&
		a.Position.Y < other.Bottom() &&
		a.Bottom() > other.Position.Y
}

// Center returns the center position of the area.
func (a Area) Center() LocalPosition {
	return LocalPosition{
		X: a.Position.X + a.Size.Width/2,
		Y: a.Position.Y + a.Size.Height/2,
	}
}

func (a Area) String() string {
	return fmt.Sprintf("(%d,%d)+%s", a.Position.X, a.Position.Y, a.Size)
}
