package heartbeat

import "github.com/olivierh59500/heartbeat-go/internal/config"

const (
	// Secondary ("dum") beats are a little softer than the primary "ba".
	secondaryStrength  = 0.7
	secondaryPeakRatio = 0.95
)

// BeatKind distinguishes the two halves of a ba-dum.
type BeatKind int

const (
	PrimaryBeat BeatKind = iota
	SecondaryBeat
)

func (k BeatKind) String() string {
	if k == PrimaryBeat {
		return "primary"
	}
	return "secondary"
}

// Beat is one timing event emitted by the clock.
type Beat struct {
	Kind     BeatKind
	Time     float64 // driver timestamp, ms
	Strength float64 // wave amplitude
	Pulse    float64 // center radiance peak requested by this beat
}

// BeatClock emits a primary beat every interval and one secondary beat a
// fixed offset after each primary.
type BeatClock struct {
	interval float64
	offset   float64
	peak     float64

	sinceMain  float64
	pendingAt  float64
	hasPending bool
}

func NewBeatClock(cfg config.Config) *BeatClock {
	return &BeatClock{
		interval: cfg.BeatInterval,
		offset:   cfg.DoubleBeatOffset,
		peak:     cfg.CenterPeakOpacity,
	}
}

// Update advances the clock by an already clamped dt and returns the beats
// due at now, primary first. At most one primary beat fires per call even if
// dt spans several intervals; the remainder carries into later calls.
func (c *BeatClock) Update(now, dt float64) []Beat {
	var beats []Beat

	c.sinceMain += dt
	if c.sinceMain >= c.interval {
		c.sinceMain -= c.interval
		beats = append(beats, Beat{Kind: PrimaryBeat, Time: now, Strength: 1, Pulse: c.peak})
		// A new primary always supersedes a pending secondary.
		c.pendingAt = now + c.offset
		c.hasPending = true
	}

	if c.hasPending && now >= c.pendingAt {
		beats = append(beats, Beat{Kind: SecondaryBeat, Time: now, Strength: secondaryStrength, Pulse: c.peak * secondaryPeakRatio})
		c.hasPending = false
	}

	return beats
}

// Pending returns the scheduled secondary beat time, if any.
func (c *BeatClock) Pending() (float64, bool) {
	return c.pendingAt, c.hasPending
}

// Phase returns ms accumulated since the last primary beat.
func (c *BeatClock) Phase() float64 { return c.sinceMain }
