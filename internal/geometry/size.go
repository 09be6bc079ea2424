package geometry

import "fmt"

// Size is a non-negative width and height. Zero-area sizes are legal and
// describe an empty room.
type Size struct {
	Width, Height int
}

// NewSize creates a size. Negative dimensions are a programming error and
// panic.
func NewSize(width, height int) Size {
	if width < 0 || height < 0 {
		panic(fmt.Sprintf("geometry: invalid size %dx%d", width, height))
	}
	return Size{Width: width, Height: height}
}

// IsZero reports whether the size covers no tiles.
func (s Size) IsZero() bool {
	return s.Width == 0 || s.Height == 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}
