package heartbeat

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/olivierh59500/heartbeat-go/internal/config"
)

func TestParticleLook(t *testing.T) {
	c := &Compositor{SizeBoost: 1.15, AlphaBoost: 1.6}
	tint, err := colorful.Hex("#B4DCFF")
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name      string
		seed      float64
		dist      float64
		waveAmp   float64
		wantSize  float64
		wantAlpha float64
		wantRGB   [3]uint8
	}{
		{"Center, bright flicker, no wave", math.Pi / 2, 0, 0, 1.6 * 1.296, 0.45, [3]uint8{180, 220, 255}},
		{"Center, full wave", math.Pi / 2, 0, 1, 1.6 * 1.296 * 0.2, 0.45 * 2.6, [3]uint8{255, 255, 255}},
		{"Center, half wave", math.Pi / 2, 0, 0.5, 1.6 * 1.296 * 0.425, 0.45 * 1.8, [3]uint8{221, 239, 255}},
		{"Beyond reach, dark flicker", 3 * math.Pi / 2, 1000, 0, 1.6 * 0.8, 0.2 * 0.65, [3]uint8{180, 220, 255}},
		{"Halfway", math.Pi / 2, 150, 0, 1.6 * (0.8 + 0.2 + 0.1*0.48), 0.325, [3]uint8{180, 220, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Particle{Size: 1.6, Color: tint, FlickerSeed: tt.seed}
			look := c.ParticleLook(p, tt.dist, 300, 0.48, tt.waveAmp)

			if !near(look.Size, tt.wantSize, 1e-9) {
				t.Errorf("size = %g, want %g", look.Size, tt.wantSize)
			}
			if !near(look.Color.A, tt.wantAlpha, 1e-9) {
				t.Errorf("alpha = %g, want %g", look.Color.A, tt.wantAlpha)
			}
			got := [3]uint8{look.Color.R, look.Color.G, look.Color.B}
			if got != tt.wantRGB {
				t.Errorf("rgb = %v, want %v", got, tt.wantRGB)
			}
		})
	}
}

func TestParticleLookZeroExtent(t *testing.T) {
	c := &Compositor{SizeBoost: 1.15, AlphaBoost: 1.6}
	p := &Particle{Size: 1, Color: colorful.Color{R: 1, G: 1, B: 1}}
	look := c.ParticleLook(p, 0, 0, 0.48, 0)
	if math.IsNaN(look.Size) || math.IsNaN(look.Color.A) || look.Size <= 0 {
		t.Errorf("degenerate look %+v", look)
	}
}

func TestRenderOrder(t *testing.T) {
	sim := newTestSim(t, 800, 600, func(cfg *config.Config) { cfg.TotalParticles = 25 })
	rec := &recorder{}

	sim.Start(0)
	sim.Tick(16, rec)

	if len(rec.calls) != 27 {
		t.Fatalf("got %d draw calls, want rect + gradient + 25 circles", len(rec.calls))
	}

	bg := rec.calls[0]
	if bg.op != "rect" || bg.mode != BlendNormal {
		t.Fatalf("first call %+v, want a normal-blend rect", bg)
	}
	if bg.x != 0 || bg.y != 0 || bg.w != 800 || bg.h != 600 {
		t.Errorf("trail rect %gx%g at (%g,%g), want full canvas", bg.w, bg.h, bg.x, bg.y)
	}
	if bg.fill != (Fill{R: 2, G: 6, B: 20, A: 0.24}) {
		t.Errorf("trail fill %+v", bg.fill)
	}

	glow := rec.calls[1]
	if glow.op != "gradient" || glow.mode != BlendAdditive {
		t.Fatalf("second call %+v, want an additive gradient", glow)
	}
	if glow.x != 400 || glow.y != 300 || !near(glow.r, 192, 1e-9) {
		t.Errorf("glow at (%g,%g) r=%g", glow.x, glow.y, glow.r)
	}

	particles := sim.Particles()
	for i, call := range rec.calls[2:] {
		if call.op != "circle" || call.mode != BlendAdditive {
			t.Fatalf("call %d: %+v, want an additive circle", i+2, call)
		}
		if call.x != particles[i].X || call.y != particles[i].Y {
			t.Errorf("circle %d not drawn in particle order", i)
		}
		if call.r <= 0 || call.fill.A <= 0 {
			t.Errorf("circle %d invisible: r=%g a=%g", i, call.r, call.fill.A)
		}
	}
}

func TestRenderDecaysPulseOncePerFrame(t *testing.T) {
	sim := newTestSim(t, 800, 600, nil)
	sim.radiance.Peak(1.05)

	rec := &recorder{}
	sim.Render(rec, 0)
	sim.Render(rec, 0)

	want := 1.05
	for i := 0; i < 2; i++ {
		want += (0.48 - want) * 0.02
	}
	if !near(sim.Pulse(), want, 1e-12) {
		t.Errorf("pulse = %g after two frames, want %g", sim.Pulse(), want)
	}

	glowAlpha := rec.calls[1].stops[0].Color.A
	if !near(glowAlpha, 0.6*(1.05+(0.48-1.05)*0.02), 1e-12) {
		t.Errorf("glow drawn with alpha %g, expected the decayed pulse", glowAlpha)
	}
}

func TestFillNRGBAClampsAlpha(t *testing.T) {
	tests := []struct {
		a    float64
		want uint8
	}{
		{-0.5, 0},
		{0, 0},
		{0.5, 128},
		{1, 255},
		{1.17, 255},
	}
	for _, tt := range tests {
		if got := (Fill{A: tt.a}).NRGBA().A; got != tt.want {
			t.Errorf("alpha %g -> %d, want %d", tt.a, got, tt.want)
		}
	}
}
