// Package gen provides the composable generation steps a pipeline applies
// to a room: floor carving, wall synthesis, portal placement, BSP room
// layout, and combinators for sequencing them.
package gen

import (
	"context"

	"github.com/samdwyer/dungen/internal/room"
)

// Step applies one transformation to a room. Steps are constructed, applied
// once, and discarded; they must not retain the room beyond Apply.
type Step interface {
	// Name identifies the step in errors and trace spans.
	Name() string

	// Apply mutates the room in place. The context is used for tracing
	// only; steps are bounded, synchronous scans with no I/O.
	Apply(ctx context.Context, r room.Room) error
}
