package heartbeat

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Share of the shorter canvas side covered by the center glow.
const radianceReach = 0.32

var white = colorful.Color{R: 1, G: 1, B: 1}

// Look is the resolved appearance of one particle for one frame.
// Color.A carries the particle's alpha.
type Look struct {
	Size  float64
	Color Fill
}

// Compositor turns simulation state into draw calls.
type Compositor struct {
	Background colorful.Color
	TrailAlpha float64
	SizeBoost  float64
	AlphaBoost float64
}

// ParticleLook computes size, alpha and tint for p at dist from the center.
func (c *Compositor) ParticleLook(p *Particle, dist, maxDist, pulse, waveAmp float64) Look {
	distFactor := 0.0
	if maxDist > 0 {
		distFactor = 1 - math.Min(dist/maxDist, 1)
	}

	baseAlpha := 0.2 + 0.25*distFactor
	flicker := 0.5 + 0.5*math.Sin(p.Life/400+p.FlickerSeed)

	// At the wavefront particles shrink and brighten
	waveSizeScale := math.Max(0.2, 1-waveAmp*c.SizeBoost)
	waveAlphaScale := 1 + waveAmp*c.AlphaBoost

	whiten := math.Min(1, waveAmp*1.1)
	r, g, b := p.Color.BlendRgb(white, whiten).RGB255()

	return Look{
		Size:  p.Size * (0.8 + 0.4*distFactor + 0.2*pulse*distFactor) * waveSizeScale,
		Color: Fill{R: r, G: g, B: b, A: baseAlpha * (0.65 + 0.35*flicker) * waveAlphaScale},
	}
}

// Render draws one frame: trail fade, decayed center glow, then every particle.
func (c *Compositor) Render(s Surface, sim *Simulation, now float64) {
	bg := c.Background.Clamped()
	r, g, b := bg.RGB255()

	s.SetBlendMode(BlendNormal)
	s.FillRect(0, 0, sim.width, sim.height, Fill{R: r, G: g, B: b, A: c.TrailAlpha})

	sim.radiance.Decay()

	s.SetBlendMode(BlendAdditive)
	sim.radiance.Draw(s, sim.cx, sim.cy, math.Min(sim.width, sim.height)*radianceReach)

	maxDist := sim.waves.MaxDist()
	pulse := sim.radiance.Pulse()
	particles := sim.pool.Particles()
	for i := range particles {
		p := &particles[i]
		dist := math.Hypot(p.X-sim.cx, p.Y-sim.cy)
		look := c.ParticleLook(p, dist, maxDist, pulse, sim.waves.SampleIntensity(dist, now))
		s.FillCircle(p.X, p.Y, look.Size, look.Color)
	}
}
