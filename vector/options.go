package vector

import (
	"math/rand/v2"
)

// Config controls random-fill construction.
type Config struct {
	// Source feeds the uniform distributions. Nil means a freshly seeded
	// source for every construction call.
	Source rand.Source
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns a Config with no fixed source.
func DefaultConfig() Config {
	return Config{}
}

// WithSource draws random values from src. Successive constructions sharing
// src continue its stream.
func WithSource(src rand.Source) Option {
	return func(cfg *Config) {
		if src != nil {
			cfg.Source = src
		}
	}
}

// WithSeed draws random values from a PCG source seeded with seed, so every
// construction using it yields the same values.
func WithSeed(seed uint64) Option {
	return func(cfg *Config) {
		cfg.Source = rand.NewPCG(seed, seed^pcgStream)
	}
}

const pcgStream = 0xda3e39cb94b95bdb

// ApplyOptions applies zero or more options to the default config and
// resolves a nil Source to a freshly seeded one.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.Source == nil {
		cfg.Source = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return cfg
}
