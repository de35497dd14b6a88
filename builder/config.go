package builder

import "math/rand"

// BuilderOption customizes a fixture constructor by mutating a
// builderConfig before generation begins — the same functional-options
// shape common to multi-parameter Go constructors.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	rng *rand.Rand
}

func newBuilderConfig(opts ...BuilderOption) *builderConfig {
	cfg := &builderConfig{rng: rand.New(rand.NewSource(1))}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithRand supplies an explicit RNG source.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed seeds a fresh RNG deterministically — the common case for
// reproducible tests.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewSource(seed)) }
}
