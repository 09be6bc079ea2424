package pipeline

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/samdwyer/dungen/internal/gen"
	"github.com/samdwyer/dungen/internal/geometry"
	"github.com/samdwyer/dungen/internal/room"
	"github.com/samdwyer/dungen/internal/tile"
)

func TestBuilderWalledRoomChain(t *testing.T) {
	ctx := context.Background()

	built, err := New(room.NewSparse()).
		GenWith(ctx, gen.NewEmptyRoom(geometry.NewSize(8, 6))).
		GenWith(ctx, gen.NewWalledRoom()).
		Build(ctx)
	if err != nil {
		t.Fatal(err)
	}

	// 8x6 floor plus the one-tile wall ring.
	if built.Size() != geometry.NewSize(10, 8) {
		t.Errorf("Size() = %s, want 10x8", built.Size())
	}
	if got, _ := built.TileAt(geometry.NewLocalPosition(-1, -1)); got != tile.Wall {
		t.Errorf("ring tile = %v, want wall", got)
	}
	if got, _ := built.TileAt(geometry.NewLocalPosition(1, 1)); got != tile.Floor {
		t.Errorf("interior tile = %v, want floor", got)
	}
}

func TestBuilderAbortsOnFailingStep(t *testing.T) {
	ctx := context.Background()
	applied := false
	probe := probeStep{fn: func() { applied = true }}

	built, err := New(room.NewFixed(geometry.NewSize(4, 4))).
		GenWith(ctx, gen.NewEmptyRoom(geometry.NewSize(2, 2))).
		GenWith(ctx, gen.NewEmptyRoom(geometry.NewSize(10, 10))).
		GenWith(ctx, probe).
		Build(ctx)

	if !errors.Is(err, gen.ErrCapacityExceeded) {
		t.Fatalf("err = %v, want capacity exceeded", err)
	}
	if applied {
		t.Error("steps after the failure must be skipped")
	}

	// The partially generated room is still handed back, with the work of
	// the successful step intact.
	if built == nil {
		t.Fatal("Build returned no room")
	}
	if got, _ := built.TileAt(geometry.NewLocalPosition(1, 1)); got != tile.Floor {
		t.Errorf("tile from first step = %v, want floor", got)
	}
	if got, _ := built.TileAt(geometry.NewLocalPosition(3, 3)); got != tile.Void {
		t.Errorf("tile beyond first carve = %v, want void", got)
	}
}

func TestBuilderRejectsStepsAfterBuild(t *testing.T) {
	ctx := context.Background()
	b := New(room.NewSparse())

	if _, err := b.Build(ctx); err != nil {
		t.Fatal(err)
	}

	b.GenWith(ctx, gen.NewEmptyRoom(geometry.NewSize(3, 3)))
	if !errors.Is(b.Err(), ErrBuilt) {
		t.Errorf("Err() = %v, want ErrBuilt", b.Err())
	}

	built, err := b.Build(ctx)
	if !errors.Is(err, ErrBuilt) {
		t.Errorf("Build err = %v, want ErrBuilt", err)
	}
	if !built.Size().IsZero() {
		t.Errorf("room mutated after Build, size = %s", built.Size())
	}
}

func TestBuilderPortalChain(t *testing.T) {
	ctx := context.Background()
	rng := rand.New(rand.NewSource(42))
	reg := room.NewRegistry()

	built, err := New(room.NewSparse()).
		GenWith(ctx, gen.NewEmptyRoom(geometry.NewSize(12, 8))).
		GenWith(ctx, gen.NewWalledRoom()).
		GenWith(ctx, gen.NewEdgePortals(2, rng, func() room.Room { return room.NewSparse() }, reg)).
		GenWith(ctx, gen.NewTraversePortals(reg, gen.NewSequential(
			gen.NewEmptyRoom(geometry.NewSize(3, 10)),
			gen.NewWalledRoom(),
		))).
		Build(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if built.PortalCount() != 2 {
		t.Fatalf("PortalCount() = %d, want 2", built.PortalCount())
	}
	for _, p := range built.Portals() {
		target, ok := reg.Get(p.Target)
		if !ok {
			t.Fatalf("portal target %s not registered", p.Target)
		}
		if target.Size() != geometry.NewSize(5, 12) {
			t.Errorf("target size = %s, want 5x12", target.Size())
		}
	}
}

// probeStep records whether it ran.
type probeStep struct {
	fn func()
}

func (s probeStep) Name() string { return "probe" }

func (s probeStep) Apply(ctx context.Context, r room.Room) error {
	s.fn()
	return nil
}
