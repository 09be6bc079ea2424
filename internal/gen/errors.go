package gen

import (
	"errors"
	"fmt"

	"github.com/samdwyer/dungen/internal/geometry"
)

// ErrCapacityExceeded matches any capacity rejection via errors.Is.
var ErrCapacityExceeded = errors.New("capacity exceeded")

// CapacityError reports step geometry that cannot fit a fixed-size room.
// The step detects this before writing, so the room is left exactly as the
// previous step left it.
type CapacityError struct {
	Step     string
	Area     geometry.Area
	Capacity geometry.Size
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: area %s exceeds room capacity %s", e.Step, e.Area, e.Capacity)
}

func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}
