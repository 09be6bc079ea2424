package gen

import (
	"context"
	"fmt"

	"github.com/samdwyer/dungen/internal/room"
)

// Sequential applies a list of steps in order, stopping at the first error.
type Sequential struct {
	steps []Step
}

// NewSequential creates a composite step from the given steps.
func NewSequential(steps ...Step) *Sequential {
	return &Sequential{steps: steps}
}

func (s *Sequential) Name() string {
	return "sequential"
}

func (s *Sequential) Apply(ctx context.Context, r room.Room) error {
	for _, step := range s.steps {
		if err := step.Apply(ctx, r); err != nil {
			return fmt.Errorf("%s: %w", step.Name(), err)
		}
	}
	return nil
}

// If applies a step only when the predicate holds for the room.
type If struct {
	pred func(room.Room) bool
	step Step
}

// NewIf creates a conditional step.
func NewIf(pred func(room.Room) bool, step Step) *If {
	return &If{pred: pred, step: step}
}

func (s *If) Name() string {
	return "if"
}

func (s *If) Apply(ctx context.Context, r room.Room) error {
	if !s.pred(r) {
		return nil
	}
	return s.step.Apply(ctx, r)
}

// TraversePortals applies a step to the target room of every portal on the
// room, in portal insertion order. Targets missing from the registry are
// skipped. Only direct portals are visited; targets' own portals are not
// followed.
type TraversePortals struct {
	registry *room.Registry
	step     Step
}

// NewTraversePortals creates a portal-traversal step.
func NewTraversePortals(registry *room.Registry, step Step) *TraversePortals {
	return &TraversePortals{registry: registry, step: step}
}

func (s *TraversePortals) Name() string {
	return "traverse_portals"
}

func (s *TraversePortals) Apply(ctx context.Context, r room.Room) error {
	for _, p := range r.Portals() {
		target, ok := s.registry.Get(p.Target)
		if !ok {
			continue
		}
		if err := s.step.Apply(ctx, target); err != nil {
			return fmt.Errorf("%s on portal target %s: %w", s.step.Name(), p.Target, err)
		}
	}
	return nil
}
