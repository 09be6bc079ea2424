package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/dungen/internal/geometry"
	"github.com/samdwyer/dungen/internal/room"
	"github.com/samdwyer/dungen/internal/tile"
)

// Renderer draws a generated room to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the room with its minimum bound at the given screen offset,
// so rooms whose walls grew into negative local coordinates still start at
// the top-left of the viewport. The offset pans the view.
func (r *Renderer) Render(rm room.Room, offsetX, offsetY int) {
	r.screen.Clear()

	b := rm.Bounds()
	for y := b.Position.Y; y < b.Bottom(); y++ {
		for x := b.Position.X; x < b.Right(); x++ {
			t, ok := rm.TileAt(geometry.NewLocalPosition(x, y))
			if !ok || t == tile.Void {
				continue
			}
			sx := x - b.Position.X + offsetX
			sy := y - b.Position.Y + offsetY
			r.screen.SetContent(sx, sy, t.Rune(), tileStyle(t))
		}
	}

	r.screen.Show()
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	for i, ch := range msg {
		r.screen.SetContent(i, y, ch, style)
	}
}

func tileStyle(t tile.Type) tcell.Style {
	switch t {
	case tile.Wall:
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	case tile.Floor:
		return tcell.StyleDefault.Foreground(tcell.ColorGray)
	case tile.Portal:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	default:
		return tcell.StyleDefault
	}
}
