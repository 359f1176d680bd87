// SPDX-License-Identifier: MIT
// Package pointcloud - options and RNG policy.

package pointcloud

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed == 0.
const defaultRNGSeed int64 = 1

// Options configures SampleSurface.
//
// Seed – RNG seed; 0 selects defaultRNGSeed.
type Options struct {
	Seed int64
}

// Option represents a functional option for configuring SampleSurface.
type Option func(*Options)

// WithSeed sets the RNG seed. Equal seeds give identical samples.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = seed
	}
}

func gatherOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed == 0 ⇒ defaultRNGSeed; otherwise the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultRNGSeed
	}

	return rand.New(rand.NewSource(seed))
}
