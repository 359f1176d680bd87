// SPDX-License-Identifier: MIT
// Package gauss - configuration options.

package gauss

import (
	"errors"
	"math"
)

// Tolerance defaults.
const (
	// DefaultPivotTolerance: a best pivot with magnitude below it is degenerate.
	DefaultPivotTolerance = 1e-10
	// DefaultVerifyRTol and DefaultVerifyATol bound the A·R ≈ I check.
	DefaultVerifyRTol = 1e-10
	DefaultVerifyATol = 1e-10
)

// ErrBadTolerance indicates a negative or non-finite tolerance option.
// Option constructors panic with this message.
var ErrBadTolerance = errors.New("gauss: tolerance must be finite and non-negative")

// Options configures Invert.
//
// PivotTolerance – minimal accepted |pivot|. Default DefaultPivotTolerance.
// VerifyRTol     – relative tolerance of the final check. Default DefaultVerifyRTol.
// VerifyATol     – absolute tolerance of the final check. Default DefaultVerifyATol.
type Options struct {
	PivotTolerance float64
	VerifyRTol     float64
	VerifyATol     float64
}

// Option represents a functional option for configuring Invert.
type Option func(*Options)

// DefaultOptions returns Options with every tolerance at its default.
func DefaultOptions() Options {
	return Options{
		PivotTolerance: DefaultPivotTolerance,
		VerifyRTol:     DefaultVerifyRTol,
		VerifyATol:     DefaultVerifyATol,
	}
}

// WithPivotTolerance overrides the degeneracy threshold for pivots.
// Panics with ErrBadTolerance on a negative or non-finite value.
func WithPivotTolerance(tol float64) Option {
	return func(o *Options) {
		mustTolerance(tol)
		o.PivotTolerance = tol
	}
}

// WithVerifyTolerance overrides the rtol/atol pair of the A·R ≈ I check.
// Panics with ErrBadTolerance on a negative or non-finite value.
func WithVerifyTolerance(rtol, atol float64) Option {
	return func(o *Options) {
		mustTolerance(rtol)
		mustTolerance(atol)
		o.VerifyRTol, o.VerifyATol = rtol, atol
	}
}

func mustTolerance(tol float64) {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(ErrBadTolerance.Error())
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
