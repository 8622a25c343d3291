//go:build ebiten

package app

import (
	"image/color"
	"time"

	"life-ca/internal/render"
	"life-ca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	minInterval = 10 * time.Millisecond
	maxInterval = 2 * time.Second
)

// Game adapts a Controller to the ebiten.Game interface. Input and timer
// ticks are both handled inside Update, so every engine call happens on the
// ebiten game goroutine.
type Game struct {
	ctl     *Controller
	view    Viewport
	painter *render.GridPainter
	hud     *ui.HUD

	width, height int

	dragging     bool
	dragX, dragY int
}

// New constructs a Game for the provided controller and window size.
func New(ctl *Controller, width, height int) *Game {
	n := ctl.Sim().SideLength()
	return &Game{
		ctl:     ctl,
		view:    NewViewport(n, width, height),
		painter: render.NewGridPainter(n),
		hud:     ui.NewHUD(),
		width:   width,
		height:  height,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctl.TogglePlay()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		g.ctl.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctl.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctl.Reset()
	}
	g.hud.Update()
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		g.view = NewViewport(g.view.N, g.width, g.height)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.ctl.SetInterval(max(g.ctl.Interval()/2, minInterval))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.ctl.SetInterval(min(g.ctl.Interval()*2, maxInterval))
	}

	g.handleMouse()
	g.ctl.Tick(time.Now())
	return nil
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ctl.ToggleAt(g.view, mx, my)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.dragging = true
		g.dragX, g.dragY = mx, my
	}
	if g.dragging {
		if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
			g.view.Pan(mx-g.dragX, my-g.dragY)
			g.dragX, g.dragY = mx, my
		} else {
			g.dragging = false
		}
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		step := 1
		if wy < 0 {
			step = -1
		}
		g.view.Zoom(step*2, mx, my)
	}
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 24, B: 28, A: 255})
	sim := g.ctl.Sim()
	g.painter.Draw(screen, sim.Cells(), g.view.CellSize, g.view.OffsetX, g.view.OffsetY)
	g.hud.Draw(screen, ui.Status{
		Generation: sim.Generation(),
		Population: sim.Population(),
		Size:       sim.SideLength(),
		Playing:    g.ctl.Playing(),
		Interval:   g.ctl.Interval(),
	})
}

// Layout tracks the window size so panning and click mapping use real pixels.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.width, g.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
