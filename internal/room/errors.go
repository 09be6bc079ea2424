package room

import (
	"errors"
	"fmt"

	"github.com/samdwyer/dungen/internal/geometry"
)

// ErrOutOfBounds matches any out-of-bounds write rejection via errors.Is.
var ErrOutOfBounds = errors.New("position out of bounds")

// OutOfBoundsError reports a write rejected by a fixed-size backend.
type OutOfBoundsError struct {
	Position geometry.LocalPosition
	Size     geometry.Size
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("position (%d,%d) out of bounds for %s room", e.Position.X, e.Position.Y, e.Size)
}

func (e *OutOfBoundsError) Is(target error) bool {
	return target == ErrOutOfBounds
}
