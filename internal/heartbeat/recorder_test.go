package heartbeat

import (
	"math/rand"
	"testing"

	"github.com/olivierh59500/heartbeat-go/internal/config"
)

type drawCall struct {
	op    string // "rect", "circle", "gradient"
	mode  BlendMode
	x, y  float64
	w, h  float64
	r     float64
	fill  Fill
	stops []GradientStop
}

// recorder is a Surface that keeps every call for later inspection.
type recorder struct {
	mode  BlendMode
	calls []drawCall
}

func (r *recorder) SetBlendMode(mode BlendMode) { r.mode = mode }

func (r *recorder) FillRect(x, y, w, h float64, c Fill) {
	r.calls = append(r.calls, drawCall{op: "rect", mode: r.mode, x: x, y: y, w: w, h: h, fill: c})
}

func (r *recorder) FillCircle(cx, cy, radius float64, c Fill) {
	r.calls = append(r.calls, drawCall{op: "circle", mode: r.mode, x: cx, y: cy, r: radius, fill: c})
}

func (r *recorder) FillRadialGradient(cx, cy, radius float64, stops []GradientStop) {
	r.calls = append(r.calls, drawCall{op: "gradient", mode: r.mode, x: cx, y: cy, r: radius, stops: stops})
}

func (r *recorder) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func newTestRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func testPool(t *testing.T, cfg config.Config, w, h float64, seed int64) *Pool {
	t.Helper()
	cols, err := cfg.Colors()
	if err != nil {
		t.Fatal(err)
	}
	return NewPool(cfg, NewPalette(cols), newTestRand(seed), w, h)
}

func near(a, b, eps float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= eps
}

func newTestSim(t *testing.T, w, h float64, mutate func(*config.Config)) *Simulation {
	t.Helper()
	cfg := config.Default()
	cfg.TotalParticles = 100
	if mutate != nil {
		mutate(&cfg)
	}
	sim, err := NewSimulation(cfg, w, h, newTestRand(42))
	if err != nil {
		t.Fatalf("NewSimulation: %v", err)
	}
	return sim
}
