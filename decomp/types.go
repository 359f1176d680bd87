// SPDX-License-Identifier: MIT
// Package decomp - sentinel errors and configuration options.

package decomp

import (
	"errors"
	"fmt"
	"math"
)

// DefaultTolerance is the threshold below or at which a singular value is
// classified as numerically zero.
const DefaultTolerance = 1e-10

// Sentinel errors returned by the decomp package.
var (
	// ErrFactorization indicates that the underlying SVD did not converge.
	ErrFactorization = errors.New("decomp: factorization failed")

	// ErrBadTolerance indicates a negative or non-finite rank tolerance.
	// WithTolerance panics with this message.
	ErrBadTolerance = errors.New("decomp: tolerance must be finite and non-negative")
)

// Operation tags for error wrapping.
const (
	opDecompose    = "Decompose"
	opColumnBasis  = "ColumnBasis"
	opLeftVectors  = "LeftVectors"
	opRightVectors = "RightVectors"
	opBasis        = "Basis"
)

// decompErrorf wraps err with an operation tag; err is preserved via %w.
func decompErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Options configures rank classification.
//
// Tolerance – singular values <= Tolerance count as zero. Default DefaultTolerance.
type Options struct {
	Tolerance float64
}

// Option represents a functional option for configuring a decomposition.
type Option func(*Options)

// DefaultOptions returns Options initialized with DefaultTolerance.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

// WithTolerance overrides the rank tolerance.
// Must pass a finite, non-negative value; anything else panics with ErrBadTolerance.
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
			panic(ErrBadTolerance.Error())
		}
		o.Tolerance = tol
	}
}

// ResolveOptions returns the effective Options for opts, so callers that
// thread opts through to Decompose can apply the same tolerance themselves.
func ResolveOptions(opts ...Option) Options { return gatherOptions(opts) }

// gatherOptions applies opts over DefaultOptions in order; later options win.
func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
