package snapround

import (
	"io"
	"log"
)

// defaultCapMultiplier bounds the defensive iteration cap: the loop
// aborts with core.ErrIterationLimit once it has run more than
// capMultiplier*(len(edges)+len(points)) passes, rather than looping forever
// on a pathological input.
const defaultCapMultiplier = 8

type config struct {
	capMultiplier int
	logger        *log.Logger
}

func defaultConfig() config {
	return config{
		capMultiplier: defaultCapMultiplier,
		logger:        log.New(io.Discard, "", 0),
	}
}

// Option configures CleanPSLG, following the functional-options pattern used
// across this module's constructors (fixtures.Option mirrors the same
// shape).
type Option func(*config)

// WithIterationCapMultiplier overrides the defensive iteration cap's
// multiplier k (cap = k*(len(edges)+len(points))). Panics if k <= 0 — a
// non-positive cap can never be satisfied by a single pass and indicates a
// caller error, not a runtime condition.
func WithIterationCapMultiplier(k int) Option {
	if k <= 0 {
		panic("snapround: iteration cap multiplier must be positive")
	}

	return func(c *config) { c.capMultiplier = k }
}

// WithLogger directs the engine's diagnostic messages (degenerate-crossing
// skips, iteration-cap near-misses, and a summary line when the input was
// modified) to l instead of discarding them.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}
