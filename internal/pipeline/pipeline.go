// Package pipeline sequences generation steps over a single room.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungen/internal/gen"
	"github.com/samdwyer/dungen/internal/room"
	"github.com/samdwyer/dungen/internal/telemetry"
)

// ErrBuilt is returned when a builder is used after Build.
var ErrBuilt = errors.New("pipeline already built")

// Builder applies steps to one room in the order they are queued. It holds
// exclusive ownership of the room until Build hands it to the caller.
//
// The first failing step aborts the chain: later GenWith calls do nothing
// and Build returns the error alongside the partially generated room. Tiles
// written by earlier steps are retained; there is no rollback.
type Builder struct {
	room  room.Room
	steps int
	err   error
	built bool
}

// New creates a builder that generates on the given room.
func New(r room.Room) *Builder {
	return &Builder{room: r}
}

// GenWith applies the step immediately and returns the builder for
// chaining. Steps constructed with default parameters and steps carrying
// explicit parameters go through the same call; they differ only in how the
// step was constructed.
func (b *Builder) GenWith(ctx context.Context, step gen.Step) *Builder {
	if b.err != nil {
		return b
	}
	if b.built {
		b.err = ErrBuilt
		return b
	}

	tracer := telemetry.Tracer("pipeline")
	ctx, span := tracer.Start(ctx, "pipeline.step")
	defer span.End()

	start := time.Now()
	err := step.Apply(ctx, b.room)
	b.steps++

	span.SetAttributes(
		attribute.String("step.name", step.Name()),
		attribute.Int("step.index", b.steps-1),
		attribute.Int("room.width", b.room.Size().Width),
		attribute.Int("room.height", b.room.Size().Height),
		attribute.Int64("step.duration_ms", time.Since(start).Milliseconds()),
	)
	if err != nil {
		span.SetAttributes(attribute.String("step.error", err.Error()))
		b.err = fmt.Errorf("%s: %w", step.Name(), err)
	}
	return b
}

// Err returns the first step error, if any.
func (b *Builder) Err() error {
	return b.err
}

// Build finishes the pipeline and hands the room to the caller. The room is
// returned even on error so callers can inspect the partial result; the
// builder accepts no further steps.
func (b *Builder) Build(ctx context.Context) (room.Room, error) {
	if !b.built {
		b.built = true
		_, span := telemetry.Tracer("pipeline").Start(ctx, "pipeline.build")
		span.SetAttributes(
			attribute.Int("pipeline.steps", b.steps),
			attribute.Int("room.width", b.room.Size().Width),
			attribute.Int("room.height", b.room.Size().Height),
			attribute.Int("room.portals", b.room.PortalCount()),
		)
		span.End()
	}
	return b.room, b.err
}
