package heartbeat

import (
	"fmt"

	"github.com/olivierh59500/heartbeat-go/internal/config"
)

// Stats counts what the engine has done since it was created.
type Stats struct {
	Frames          int
	PrimaryBeats    int
	SecondaryBeats  int
	ParticleResets  int
	SkippedTicks    int // ticks with a non-positive elapsed time
	ClampedTicks    int // ticks whose elapsed time hit the ceiling
	LastFrameMillis float64
}

// Simulation owns all heartbeat state: particles, beat timing, waves and the
// center glow. It is driven by one Tick per displayed frame and is not safe
// for concurrent use.
type Simulation struct {
	cfg config.Config

	width, height float64
	cx, cy        float64

	pool       *Pool
	clock      *BeatClock
	waves      *WaveField
	radiance   *Radiance
	compositor *Compositor

	lastFrame float64
	started   bool
	stats     Stats
}

// NewSimulation validates cfg and populates the particle pool for a
// width x height canvas.
func NewSimulation(cfg config.Config, width, height float64, rng Rand) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	cols, err := cfg.Colors()
	if err != nil {
		return nil, err
	}
	bg, err := cfg.BackgroundColor()
	if err != nil {
		return nil, err
	}

	s := &Simulation{
		cfg:      cfg,
		pool:     NewPool(cfg, NewPalette(cols), rng, width, height),
		clock:    NewBeatClock(cfg),
		waves:    NewWaveField(cfg.WaveDurationMs, cfg.WaveWidthFactor),
		radiance: NewRadiance(cfg.CenterBaseOpacity, cfg.PulseDecay),
		compositor: &Compositor{
			Background: bg,
			TrailAlpha: cfg.TrailAlpha,
			SizeBoost:  cfg.WaveSizeBoost,
			AlphaBoost: cfg.WaveAlphaBoost,
		},
	}
	s.Resize(width, height)
	s.pool.Initialize(cfg.TotalParticles)

	return s, nil
}

// Resize updates the canvas size and center. Particles keep their positions.
func (s *Simulation) Resize(width, height float64) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	s.width, s.height = width, height
	s.cx, s.cy = width/2, height/2
	s.pool.Resize(width, height)
	s.waves.SetExtent(width, height)
}

// Start primes the frame clock so the next Tick measures elapsed time from now.
func (s *Simulation) Start(now float64) {
	s.lastFrame = now
	s.started = true
}

// Tick advances the simulation to now and draws the frame onto surf.
// The first call only primes the clock; ticks with no elapsed time draw nothing.
func (s *Simulation) Tick(now float64, surf Surface) {
	if s.Advance(now) {
		s.Render(surf, now)
	}
}

// Advance runs the beat clock, wave pruning and particle motion. It reports
// whether any time elapsed since the previous call.
func (s *Simulation) Advance(now float64) bool {
	if !s.started {
		s.Start(now)
		return false
	}

	dt := now - s.lastFrame
	s.lastFrame = now
	if dt <= 0 {
		s.stats.SkippedTicks++
		return false
	}
	if dt > s.cfg.MaxFrameDelta {
		dt = s.cfg.MaxFrameDelta
		s.stats.ClampedTicks++
	}

	for _, b := range s.clock.Update(now, dt) {
		switch b.Kind {
		case PrimaryBeat:
			s.radiance.Peak(b.Pulse)
			s.stats.PrimaryBeats++
		case SecondaryBeat:
			s.radiance.Raise(b.Pulse)
			s.stats.SecondaryBeats++
		}
		s.waves.Emit(b.Time, b.Strength)
	}

	s.waves.Prune(now)
	s.pool.Advance(dt)
	s.stats.ParticleResets = s.pool.Resets()
	s.stats.LastFrameMillis = dt

	return true
}

// Render composites the current state onto surf. It also applies one step of
// center pulse decay.
func (s *Simulation) Render(surf Surface, now float64) {
	s.compositor.Render(surf, s, now)
	s.stats.Frames++
}

func (s *Simulation) Size() (width, height float64) { return s.width, s.height }
func (s *Simulation) Center() (x, y float64) { return s.cx, s.cy }
func (s *Simulation) Pulse() float64 { return s.radiance.Pulse() }
func (s *Simulation) Particles() []Particle { return s.pool.Particles() }
func (s *Simulation) Waves() []WaveBurst { return s.waves.Bursts() }
func (s *Simulation) Stats() Stats { return s.stats }
func (s *Simulation) Config() config.Config { return s.cfg }

// PendingSecondary reports the scheduled "dum" beat, if any.
func (s *Simulation) PendingSecondary() (float64, bool) { return s.clock.Pending() }
