package heartbeat

import "github.com/lucasb-eyer/go-colorful"

// Palette is the fixed set of tints particles are drawn with.
type Palette []colorful.Color

// NewPalette copies cols so later edits to the slice cannot leak in.
func NewPalette(cols []colorful.Color) Palette {
	p := make(Palette, len(cols))
	copy(p, cols)
	return p
}

// Pick returns a uniformly chosen palette entry. An empty palette yields white.
func (p Palette) Pick(rng Rand) colorful.Color {
	if len(p) == 0 {
		return colorful.Color{R: 1, G: 1, B: 1}
	}
	return p[rng.Intn(len(p))]
}
