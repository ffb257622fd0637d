package display

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/olivierh59500/heartbeat-go/internal/heartbeat"
)

const (
	gradientSegments = 96
	minCircleSegs    = 10
	maxCircleSegs    = 48
)

// Surface draws heartbeat frames onto an ebiten image.
// Normal blending goes through the vector helpers; additive blending is
// drawn as vertex-coloured triangles with ebiten.BlendLighter.
type Surface struct {
	dst   *ebiten.Image
	mode  heartbeat.BlendMode
	white *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewSurface wraps dst, which may be swapped later with SetTarget.
func NewSurface(dst *ebiten.Image) *Surface {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return &Surface{
		dst:   dst,
		white: img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// SetTarget redirects drawing, typically to this frame's screen.
func (s *Surface) SetTarget(dst *ebiten.Image) { s.dst = dst }

func (s *Surface) SetBlendMode(mode heartbeat.BlendMode) { s.mode = mode }

func (s *Surface) FillRect(x, y, w, h float64, c heartbeat.Fill) {
	if w <= 0 || h <= 0 || c.A <= 0 {
		return
	}
	if s.mode == heartbeat.BlendNormal {
		vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), c.NRGBA(), false)
		return
	}

	s.reset()
	s.vertex(x, y, c)
	s.vertex(x+w, y, c)
	s.vertex(x+w, y+h, c)
	s.vertex(x, y+h, c)
	s.indices = append(s.indices, 0, 1, 2, 0, 2, 3)
	s.flush()
}

func (s *Surface) FillCircle(cx, cy, r float64, c heartbeat.Fill) {
	if r <= 0 || c.A <= 0 {
		return
	}
	if s.mode == heartbeat.BlendNormal {
		vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), c.NRGBA(), true)
		return
	}

	segs := int(r * 4)
	segs = max(minCircleSegs, min(segs, maxCircleSegs))

	s.reset()
	s.vertex(cx, cy, c)
	for i := 0; i < segs; i++ {
		a := float64(i) / float64(segs) * 2 * math.Pi
		s.vertex(cx+math.Cos(a)*r, cy+math.Sin(a)*r, c)
	}
	for i := 0; i < segs; i++ {
		next := (i+1)%segs + 1
		s.indices = append(s.indices, 0, uint16(i+1), uint16(next))
	}
	s.flush()
}

// FillRadialGradient draws concentric rings, one per stop, as a triangle
// mesh; the GPU interpolates colour linearly between rings.
func (s *Surface) FillRadialGradient(cx, cy, r float64, stops []heartbeat.GradientStop) {
	if r <= 0 || len(stops) == 0 {
		return
	}

	s.reset()
	s.vertex(cx, cy, stops[0].Color)

	rings := 0
	for _, st := range stops {
		if st.Offset <= 0 {
			continue
		}
		rad := math.Min(st.Offset, 1) * r
		for i := 0; i < gradientSegments; i++ {
			a := float64(i) / float64(gradientSegments) * 2 * math.Pi
			s.vertex(cx+math.Cos(a)*rad, cy+math.Sin(a)*rad, st.Color)
		}
		rings++
	}

	// Center fan into the first ring
	for i := 0; i < gradientSegments && rings > 0; i++ {
		next := (i+1)%gradientSegments + 1
		s.indices = append(s.indices, 0, uint16(i+1), uint16(next))
	}
	// Quads between consecutive rings
	for ring := 1; ring < rings; ring++ {
		inner := 1 + (ring-1)*gradientSegments
		outer := 1 + ring*gradientSegments
		for i := 0; i < gradientSegments; i++ {
			j := (i + 1) % gradientSegments
			a, b := uint16(inner+i), uint16(inner+j)
			c, d := uint16(outer+i), uint16(outer+j)
			s.indices = append(s.indices, a, c, d, a, d, b)
		}
	}
	s.flush()
}

func (s *Surface) reset() {
	s.vertices = s.vertices[:0]
	s.indices = s.indices[:0]
}

func (s *Surface) vertex(x, y float64, c heartbeat.Fill) {
	s.vertices = append(s.vertices, ebiten.Vertex{
		DstX:   float32(x),
		DstY:   float32(y),
		SrcX:   1,
		SrcY:   1,
		ColorR: float32(c.R) / 255,
		ColorG: float32(c.G) / 255,
		ColorB: float32(c.B) / 255,
		ColorA: float32(math.Max(0, math.Min(1, c.A))),
	})
}

func (s *Surface) flush() {
	if len(s.indices) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{}
	if s.mode == heartbeat.BlendAdditive {
		op.Blend = ebiten.BlendLighter
	} else {
		op.Blend = ebiten.BlendSourceOver
	}
	s.dst.DrawTriangles(s.vertices, s.indices, s.white, op)
}
