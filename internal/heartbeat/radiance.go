package heartbeat

// Radiance is the pulsing glow at the center of the canvas.
type Radiance struct {
	pulse float64
	base  float64
	decay float64
}

func NewRadiance(base, decay float64) *Radiance {
	return &Radiance{pulse: base, base: base, decay: decay}
}

// Decay closes a fixed fraction of the gap to the base opacity. It runs once
// per frame regardless of elapsed time, so decay speed follows the frame rate.
func (r *Radiance) Decay() {
	r.pulse += (r.base - r.pulse) * r.decay
}

// Peak sets the pulse outright.
func (r *Radiance) Peak(v float64) { r.pulse = v }

// Raise lifts the pulse to v if it is currently lower.
func (r *Radiance) Raise(v float64) {
	if v > r.pulse {
		r.pulse = v
	}
}

func (r *Radiance) Pulse() float64 { return r.pulse }

// Stops returns the gradient colour stops for the current pulse.
func (r *Radiance) Stops() []GradientStop {
	return []GradientStop{
		{Offset: 0, Color: Fill{R: 235, G: 245, B: 255, A: 0.6 * r.pulse}},
		{Offset: 0.45, Color: Fill{R: 180, G: 220, B: 255, A: 0.3 * r.pulse}},
		{Offset: 1, Color: Fill{}},
	}
}

// Draw paints the glow as a radial gradient of the given radius.
func (r *Radiance) Draw(s Surface, cx, cy, radius float64) {
	if radius <= 0 {
		return
	}
	s.FillRadialGradient(cx, cy, radius, r.Stops())
}
