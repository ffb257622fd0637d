package display

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/olivierh59500/heartbeat-go/internal/heartbeat"
)

// Game drives a heartbeat simulation from ebiten's frame loop. Each Draw is
// one tick, stamped with milliseconds on a monotonic clock.
type Game struct {
	sim     *heartbeat.Simulation
	surface *Surface
	start   time.Time

	width, height int
}

func NewGame(sim *heartbeat.Simulation) *Game {
	w, h := sim.Size()
	return &Game{
		sim:    sim,
		start:  time.Now(),
		width:  int(w),
		height: int(h),
	}
}

// Update is called each tick by Ebitengine. All work happens in Draw so the
// simulation steps once per displayed frame.
func (g *Game) Update() error {
	return nil
}

// Draw is called each frame by Ebitengine
func (g *Game) Draw(screen *ebiten.Image) {
	if g.surface == nil {
		g.surface = NewSurface(screen)
	}
	g.surface.SetTarget(screen)
	g.sim.Tick(g.now(), g.surface)
}

// Layout follows the window size and forwards changes to the simulation.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.sim.Resize(float64(outsideWidth), float64(outsideHeight))
	}
	return g.width, g.height
}

// time.Since reads the monotonic clock.
func (g *Game) now() float64 {
	return float64(time.Since(g.start)) / float64(time.Millisecond)
}
