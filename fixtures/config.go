package fixtures

import "math/rand"

// Option customizes fixture generation. It mutates a config before the
// constructor runs.
type Option func(cfg *config)

// config holds fixture-generation parameters: rng drives any randomized
// perturbation, jitter bounds how far a point may be nudged off its exact
// grid/ring position.
type config struct {
	rng    *rand.Rand
	jitter float64
}

func newConfig(opts ...Option) *config {
	cfg := &config{rng: rand.New(rand.NewSource(1)), jitter: 0}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

// WithSeed fixes the RNG seed, for reproducible fixtures across runs.
func WithSeed(seed int64) Option {
	return func(cfg *config) { cfg.rng = rand.New(rand.NewSource(seed)) }
}

// WithJitter perturbs every generated point by up to +/- j on each axis,
// uniformly at random. A non-zero jitter is how fixtures manufacture the
// near-coincident points and near-crossings that exercise the rounding
// machinery rather than always landing exactly on a grid line.
func WithJitter(j float64) Option {
	return func(cfg *config) { cfg.jitter = j }
}

func (cfg *config) nudge(v float64) float64 {
	if cfg.jitter == 0 {
		return v
	}

	return v + (cfg.rng.Float64()*2-1)*cfg.jitter
}
