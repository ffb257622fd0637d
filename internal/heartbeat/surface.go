package heartbeat

import "image/color"

// BlendMode selects how new pixels combine with what is already drawn.
type BlendMode int

const (
	// BlendNormal is source-over alpha compositing.
	BlendNormal BlendMode = iota
	// BlendAdditive sums colour so overlapping light accumulates toward white.
	BlendAdditive
)

func (m BlendMode) String() string {
	switch m {
	case BlendNormal:
		return "normal"
	case BlendAdditive:
		return "additive"
	default:
		return "unknown"
	}
}

// Fill is an 8-bit colour with a straight (non-premultiplied) alpha that may
// leave [0, 1]; surfaces clamp it.
type Fill struct {
	R, G, B uint8
	A       float64
}

// NRGBA converts to a standard library colour, clamping alpha.
func (f Fill) NRGBA() color.NRGBA {
	return color.NRGBA{R: f.R, G: f.G, B: f.B, A: uint8(clamp01(f.A)*255 + 0.5)}
}

// GradientStop is one colour stop of a radial gradient, Offset in [0, 1].
type GradientStop struct {
	Offset float64
	Color  Fill
}

// Surface is the minimal drawing capability the compositor needs.
type Surface interface {
	SetBlendMode(mode BlendMode)
	FillRect(x, y, w, h float64, c Fill)
	FillCircle(cx, cy, r float64, c Fill)
	FillRadialGradient(cx, cy, r float64, stops []GradientStop)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
