package heartbeat

// Rand is the random source the engine draws from. *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
	Intn(n int) int
	Int63() int64
}

func randRange(rng Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}
