// Package game drives the field one frame at a time through ebiten.
//
// Nothing here knows what the field looks like. Each draw hands the pipeline
// the current viewport size and the clock reading, and that is the whole
// per-frame state.
package game

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/iburimskiy/lavafield/internal/render"
)

// Drawer is what the loop submits frames to.
type Drawer interface {
	Draw(dst *ebiten.Image, f render.Frame)
}

type Game struct {
	drawer Drawer
	clock  Clock
	title  string

	width, height int

	setTitle  func(string)
	actualFPS func() float64
	lastTitle string

	// TitleStats puts the elapsed time and FPS into the window title.
	TitleStats bool
}

func NewGame(drawer Drawer, clock Clock, title string) *Game {
	return &Game{
		drawer: drawer,
		clock:  clock,
		title:  title,

		setTitle:  ebiten.SetWindowTitle,
		actualFPS: ebiten.ActualFPS,
	}
}

func (g *Game) Update() error {
	// clocks that don't follow wall time advance once per tick
	if t, ok := g.clock.(Ticker); ok {
		t.Tick()
	}

	if g.TitleStats {
		if title := g.Title(g.actualFPS()); title != g.lastTitle {
			g.setTitle(title)
			g.lastTitle = title
		}
	}

	return nil
}

// Frame is what the next Draw will submit.
func (g *Game) Frame() render.Frame {
	return render.Frame{
		Width:  g.width,
		Height: g.height,
		Time:   g.clock.Now().Seconds(),
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawer.Draw(screen, g.Frame())
}

// Layout renders at the size of the window, so a resize changes the resolution
// the field sees on the next frame.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width = outsideWidth
	g.height = outsideHeight
	return outsideWidth, outsideHeight
}

func (g *Game) Title(fps float64) string {
	return fmt.Sprintf("%s %s FPS: %.2f", g.title, formatDuration(g.clock.Now()), fps)
}
