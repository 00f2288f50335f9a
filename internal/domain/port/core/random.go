package core

// RandomSource abstracts the randomness that drives the simulation.
// Every probabilistic branch in the engine (latency windows, failure
// injection, ghost transactions, status progression) draws from this
// interface so tests can script exact outcomes.
type RandomSource interface {
	// Float64 returns a uniformly distributed value in [0, 1)
	Float64() float64
	// Intn returns a uniformly distributed value in [0, n)
	Intn(n int) int
}
