// Package main generates a dungeon map and displays it in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/joho/godotenv"

	"github.com/samdwyer/dungen/internal/gen"
	"github.com/samdwyer/dungen/internal/geometry"
	"github.com/samdwyer/dungen/internal/pipeline"
	"github.com/samdwyer/dungen/internal/room"
	"github.com/samdwyer/dungen/internal/telemetry"
	"github.com/samdwyer/dungen/internal/ui"
)

func main() {
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for generation")
	width := flag.Int("width", 40, "floor width of the generated room")
	height := flag.Int("height", 30, "floor height of the generated room")
	portals := flag.Int("portals", 3, "number of edge portals")
	bsp := flag.Bool("bsp", false, "generate a multi-room BSP layout instead of a single room")
	printOut := flag.Bool("print", false, "print the map to stdout instead of opening the viewer")
	flag.Parse()

	// Load .env for local development; env vars may also be set directly.
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
		log.Printf("Generation will run without observability")
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	built, registry, err := generate(ctx, *seed, *width, *height, *portals, *bsp)
	if err != nil {
		log.Fatalf("Generation failed: %v", err)
	}
	log.Printf("Generated %s map with %d portals (seed %d, %d rooms total)",
		built.Size(), built.PortalCount(), *seed, registry.Len())

	if *printOut {
		printRoom(built)
		return
	}
	if err := view(built); err != nil {
		log.Fatalf("Viewer error: %v", err)
	}
}

// generate runs the full pipeline for the selected mode and returns the
// finished room plus the registry holding portal target rooms.
func generate(ctx context.Context, seed int64, width, height, portals int, bsp bool) (room.Room, *room.Registry, error) {
	rng := rand.New(rand.NewSource(seed))
	registry := room.NewRegistry()

	base := room.NewSparse()
	registry.Add(base)

	b := pipeline.New(base)
	if bsp {
		params := gen.DefaultBSPParams()
		params.Bounds = geometry.NewSize(width+2, height+2)
		b.GenWith(ctx, gen.NewBSPRooms(params, rng))
	} else {
		b.GenWith(ctx, gen.NewEmptyRoom(geometry.NewSize(width, height)))
	}
	b.GenWith(ctx, gen.NewWalledRoom())
	b.GenWith(ctx, gen.NewEdgePortals(portals, rng, func() room.Room { return room.NewSparse() }, registry))
	b.GenWith(ctx, gen.NewTraversePortals(registry, gen.NewSequential(
		gen.NewEmptyRoom(geometry.NewSize(3, 10)),
		gen.NewWalledRoom(),
	)))

	built, err := b.Build(ctx)
	return built, registry, err
}

// printRoom writes the map to stdout row by row.
func printRoom(r room.Room) {
	b := r.Bounds()
	for y := b.Position.Y; y < b.Bottom(); y++ {
		for x := b.Position.X; x < b.Right(); x++ {
			t, ok := r.TileAt(geometry.NewLocalPosition(x, y))
			if !ok {
				fmt.Print(" ")
				continue
			}
			fmt.Printf("%c", t.Rune())
		}
		fmt.Println()
	}
}

// view opens the terminal viewer. Arrow keys pan, q or Escape quits.
func view(r room.Room) error {
	screen, err := ui.NewScreen()
	if err != nil {
		return err
	}
	defer screen.Close()
	renderer := ui.NewRenderer(screen)

	offsetX, offsetY := 0, 0
	for {
		renderer.Render(r, offsetX, offsetY)

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return nil
			case tcell.KeyUp:
				offsetY++
			case tcell.KeyDown:
				offsetY--
			case tcell.KeyLeft:
				offsetX++
			case tcell.KeyRight:
				offsetX--
			case tcell.KeyRune:
				if ev.Rune() == 'q' || ev.Rune() == 'Q' {
					return nil
				}
			}
		}
	}
}
