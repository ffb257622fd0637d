package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/lucasb-eyer/go-colorful"
)

// Config holds every tunable of the heartbeat visualization.
// It is built once at startup and never mutated afterwards.
type Config struct {
	TotalParticles   int     `json:"totalParticles"`
	MinSpeed         float64 `json:"minSpeed"` // px/s
	MaxSpeed         float64 `json:"maxSpeed"` // px/s
	ParticleBaseSize float64 `json:"particleBaseSize"`
	ParticleLifeMin  float64 `json:"particleLifeMin"` // ms
	ParticleLifeMax  float64 `json:"particleLifeMax"` // ms

	TrailAlpha float64 `json:"trailAlpha"`
	Background string  `json:"background"`

	BeatInterval     float64 `json:"beatInterval"`     // ms between main beats
	DoubleBeatOffset float64 `json:"doubleBeatOffset"` // ms after main beat for the second "dum"

	CenterBaseOpacity float64 `json:"centerBaseOpacity"`
	CenterPeakOpacity float64 `json:"centerPeakOpacity"`
	PulseDecay        float64 `json:"pulseDecay"` // fraction of the gap closed per frame

	WaveDurationMs  float64 `json:"waveDurationMs"`
	WaveWidthFactor float64 `json:"waveWidthFactor"`
	WaveSizeBoost   float64 `json:"waveSizeBoost"`
	WaveAlphaBoost  float64 `json:"waveAlphaBoost"`

	ColorPalette []string `json:"colorPalette"`

	MaxFrameDelta float64 `json:"maxFrameDelta"` // ms ceiling applied to elapsed time per tick
	WrapMargin    float64 `json:"wrapMargin"`    // px beyond the canvas before a particle wraps

	// Optional Perlin turbulence added to the particle turn rate. Zero disables it.
	DriftStrength float64 `json:"driftStrength"` // rad/s at full noise amplitude
	DriftScale    float64 `json:"driftScale"`    // noise frequency per px
}

// Default returns the stock tuning: slow drift, slow radiance, thin crisp wave ring.
func Default() Config {
	return Config{
		TotalParticles:   1600,
		MinSpeed:         9,
		MaxSpeed:         18,
		ParticleBaseSize: 1.6,
		ParticleLifeMin:  11000,
		ParticleLifeMax:  22000,

		TrailAlpha: 0.24,
		Background: "#020614",

		BeatInterval:     2600,
		DoubleBeatOffset: 320,

		CenterBaseOpacity: 0.48,
		CenterPeakOpacity: 1.05,
		PulseDecay:        0.02,

		WaveDurationMs:  1800,
		WaveWidthFactor: 0.1,
		WaveSizeBoost:   1.15,
		WaveAlphaBoost:  1.6,

		ColorPalette: []string{
			"#EBF5FF", // soft white
			"#C8E6FF", // pale icy blue
			"#B4DCFF", // light cyan
			"#DCFAFF", // almost white
		},

		MaxFrameDelta: 200,
		WrapMargin:    40,

		DriftStrength: 0,
		DriftScale:    0.004,
	}
}

// Load reads a JSON file whose fields override the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("decode config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports every out-of-range tunable at once.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.TotalParticles >= 0, "totalParticles must not be negative, got %d", c.TotalParticles)
	check(c.MinSpeed >= 0 && c.MinSpeed <= c.MaxSpeed, "speed range [%g, %g] is invalid", c.MinSpeed, c.MaxSpeed)
	check(c.ParticleBaseSize > 0, "particleBaseSize must be positive, got %g", c.ParticleBaseSize)
	check(c.ParticleLifeMin > 0 && c.ParticleLifeMin <= c.ParticleLifeMax, "life range [%g, %g] is invalid", c.ParticleLifeMin, c.ParticleLifeMax)
	check(c.TrailAlpha >= 0 && c.TrailAlpha <= 1, "trailAlpha must be in [0, 1], got %g", c.TrailAlpha)
	check(c.BeatInterval > 0, "beatInterval must be positive, got %g", c.BeatInterval)
	check(c.DoubleBeatOffset >= 0, "doubleBeatOffset must not be negative, got %g", c.DoubleBeatOffset)
	check(c.CenterBaseOpacity >= 0, "centerBaseOpacity must not be negative, got %g", c.CenterBaseOpacity)
	check(c.CenterPeakOpacity >= c.CenterBaseOpacity, "centerPeakOpacity %g is below centerBaseOpacity %g", c.CenterPeakOpacity, c.CenterBaseOpacity)
	check(c.PulseDecay >= 0 && c.PulseDecay <= 1, "pulseDecay must be in [0, 1], got %g", c.PulseDecay)
	check(c.WaveDurationMs > 0, "waveDurationMs must be positive, got %g", c.WaveDurationMs)
	check(c.WaveWidthFactor > 0, "waveWidthFactor must be positive, got %g", c.WaveWidthFactor)
	check(c.WaveSizeBoost >= 0, "waveSizeBoost must not be negative, got %g", c.WaveSizeBoost)
	check(c.WaveAlphaBoost >= 0, "waveAlphaBoost must not be negative, got %g", c.WaveAlphaBoost)
	check(c.MaxFrameDelta > 0, "maxFrameDelta must be positive, got %g", c.MaxFrameDelta)
	check(c.WrapMargin >= 0, "wrapMargin must not be negative, got %g", c.WrapMargin)
	check(c.DriftStrength >= 0, "driftStrength must not be negative, got %g", c.DriftStrength)
	check(c.DriftStrength == 0 || c.DriftScale > 0, "driftScale must be positive when drift is enabled, got %g", c.DriftScale)

	if _, err := c.Colors(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.BackgroundColor(); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

// Colors parses the palette.
func (c Config) Colors() ([]colorful.Color, error) {
	if len(c.ColorPalette) == 0 {
		return nil, errors.New("colorPalette must not be empty")
	}
	out := make([]colorful.Color, 0, len(c.ColorPalette))
	for i, hex := range c.ColorPalette {
		col, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("colorPalette[%d]: %w", i, err)
		}
		out = append(out, col)
	}
	return out, nil
}

// BackgroundColor parses the trail fade colour.
func (c Config) BackgroundColor() (colorful.Color, error) {
	col, err := colorful.Hex(c.Background)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("background: %w", err)
	}
	return col, nil
}
