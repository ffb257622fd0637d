package heartbeat

import (
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/olivierh59500/heartbeat-go/internal/config"
)

// Wandering turn rate bound in rad/s.
const maxTurnRate = 0.2

// Particle is a single drifting light.
type Particle struct {
	X, Y        float64 // Position, px
	VX, VY      float64 // Velocity, px/s
	Size        float64 // Base radius
	Life        float64 // ms since spawn
	MaxLife     float64 // ms
	Color       colorful.Color
	FlickerSeed float64 // Phase offset in [0, 10)
}

// Pool owns a fixed number of particles and recycles them as they expire.
type Pool struct {
	particles []Particle
	palette   Palette
	rng       Rand

	minSpeed, maxSpeed float64
	baseSize           float64
	lifeMin, lifeMax   float64
	margin             float64

	Width, Height float64

	noise         *perlin.Perlin
	driftStrength float64
	driftScale    float64

	resets int
}

// NewPool creates an empty pool; call Initialize to populate it.
func NewPool(cfg config.Config, palette Palette, rng Rand, width, height float64) *Pool {
	p := &Pool{
		palette:       palette,
		rng:           rng,
		minSpeed:      cfg.MinSpeed,
		maxSpeed:      cfg.MaxSpeed,
		baseSize:      cfg.ParticleBaseSize,
		lifeMin:       cfg.ParticleLifeMin,
		lifeMax:       cfg.ParticleLifeMax,
		margin:        cfg.WrapMargin,
		Width:         width,
		Height:        height,
		driftStrength: cfg.DriftStrength,
		driftScale:    cfg.DriftScale,
	}
	if p.driftStrength > 0 {
		p.noise = perlin.NewPerlin(2, 2, 3, rng.Int63())
	}
	return p
}

// Initialize replaces the pool contents with count fresh particles spread
// uniformly over the canvas.
func (p *Pool) Initialize(count int) {
	p.particles = make([]Particle, count)
	for i := range p.particles {
		p.particles[i] = p.Spawn(false)
	}
}

// Spawn generates a fresh particle. When centered is set it starts within
// 15% of the shorter canvas side from the center, along its heading.
func (p *Pool) Spawn(centered bool) Particle {
	angle := p.rng.Float64() * math.Pi * 2
	speed := randRange(p.rng, p.minSpeed, p.maxSpeed)

	var x, y float64
	if centered {
		radius := randRange(p.rng, 0, math.Min(p.Width, p.Height)*0.15)
		x = p.Width/2 + math.Cos(angle)*radius
		y = p.Height/2 + math.Sin(angle)*radius
	} else {
		x = p.rng.Float64() * p.Width
		y = p.rng.Float64() * p.Height
	}

	return Particle{
		X:           x,
		Y:           y,
		VX:          math.Cos(angle) * speed,
		VY:          math.Sin(angle) * speed,
		Size:        randRange(p.rng, p.baseSize*0.6, p.baseSize*1.4),
		Life:        0,
		MaxLife:     randRange(p.rng, p.lifeMin, p.lifeMax),
		Color:       p.palette.Pick(p.rng),
		FlickerSeed: p.rng.Float64() * 10,
	}
}

// Advance ages, steers and moves every particle by dtMs. Expired particles
// are regenerated in place and do not move this step.
func (p *Pool) Advance(dtMs float64) {
	if dtMs <= 0 {
		return
	}
	dt := dtMs / 1000

	for i := range p.particles {
		pt := &p.particles[i]

		pt.Life += dtMs
		if pt.Life > pt.MaxLife {
			*pt = p.Spawn(false)
			p.resets++
			continue
		}

		// Gentle wandering: slight random turn, optionally bent by the drift field
		turn := randRange(p.rng, -maxTurnRate, maxTurnRate) * dt
		if p.noise != nil {
			turn += p.noise.Noise2D(pt.X*p.driftScale, pt.Y*p.driftScale) * p.driftStrength * dt
		}
		cosT, sinT := math.Cos(turn), math.Sin(turn)
		vx, vy := pt.VX, pt.VY
		pt.VX = vx*cosT - vy*sinT
		pt.VY = vx*sinT + vy*cosT

		pt.X += pt.VX * dt
		pt.Y += pt.VY * dt

		pt.X = wrap(pt.X, p.Width, p.margin)
		pt.Y = wrap(pt.Y, p.Height, p.margin)
	}
}

// wrap teleports a coordinate that left [-margin, size+margin] to the opposite edge.
func wrap(v, size, margin float64) float64 {
	if v < -margin {
		return size + margin
	}
	if v > size+margin {
		return -margin
	}
	return v
}

// Resize records new canvas bounds. Existing positions are left as they are.
func (p *Pool) Resize(width, height float64) {
	p.Width, p.Height = width, height
}

// Len returns the pool size.
func (p *Pool) Len() int { return len(p.particles) }

// Particles exposes the pool's backing slice. Callers must not modify it.
func (p *Pool) Particles() []Particle { return p.particles }

// Resets counts particles recycled by Advance since creation.
func (p *Pool) Resets() int { return p.resets }
