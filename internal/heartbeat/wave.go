package heartbeat

import "math"

// The ring travels out to 60% of the canvas diagonal.
const waveReach = 0.6

// WaveBurst is one expanding ring anchored to a beat.
type WaveBurst struct {
	Time     float64
	Strength float64
}

// WaveField holds the bursts still travelling outward.
type WaveField struct {
	bursts      []WaveBurst
	duration    float64
	widthFactor float64
	maxDist     float64
}

func NewWaveField(durationMs, widthFactor float64) *WaveField {
	return &WaveField{duration: durationMs, widthFactor: widthFactor}
}

// SetExtent sizes the field for a width x height canvas.
func (w *WaveField) SetExtent(width, height float64) {
	w.maxDist = math.Hypot(width, height) * waveReach
}

// MaxDist is the radius a burst reaches at the end of its life.
func (w *WaveField) MaxDist() float64 { return w.maxDist }

func (w *WaveField) Emit(time, strength float64) {
	w.bursts = append(w.bursts, WaveBurst{Time: time, Strength: strength})
}

// Prune drops bursts whose age has reached the wave duration.
func (w *WaveField) Prune(now float64) {
	kept := w.bursts[:0]
	for _, b := range w.bursts {
		if now-b.Time < w.duration {
			kept = append(kept, b)
		}
	}
	w.bursts = kept
}

// SampleIntensity returns the strongest Gaussian ring contribution at
// distance from the center.
func (w *WaveField) SampleIntensity(distance, now float64) float64 {
	if w.maxDist <= 0 {
		return 0
	}
	sigma := w.widthFactor * w.maxDist

	amp := 0.0
	for _, b := range w.bursts {
		age := now - b.Time
		if age < 0 || age > w.duration {
			continue
		}
		radius := (age / w.duration) * w.maxDist
		diff := distance - radius
		local := math.Exp(-(diff*diff)/(2*sigma*sigma)) * b.Strength
		if local > amp {
			amp = local
		}
	}
	return amp
}

func (w *WaveField) Len() int { return len(w.bursts) }

// Bursts returns a copy of the active bursts.
func (w *WaveField) Bursts() []WaveBurst {
	out := make([]WaveBurst, len(w.bursts))
	copy(out, w.bursts)
	return out
}
