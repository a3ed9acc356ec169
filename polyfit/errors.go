// SPDX-License-Identifier: MIT
// Package polyfit: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// polyfit package. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. No operation panics on user-triggered error
// conditions.

package polyfit

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "polyfit: ..." for consistency and to allow
// easy grepping across logs. ErrSolveFailed is the only sentinel that gets
// wrapped with extra context (the underlying solver diagnostic); callers
// still match it via errors.Is.

var (
	// ErrUnderdetermined is returned when the requested degree is not
	// strictly less than the number of samples: a degree-d polynomial has
	// d+1 coefficients, and a well-posed least-squares fit needs more
	// samples than that bound allows. Unrecoverable for the series; the
	// caller must lower the degree or supply more samples.
	ErrUnderdetermined = errors.New("polyfit: degree must be less than the number of samples")

	// ErrBadDegree is returned for a negative polynomial degree.
	ErrBadDegree = errors.New("polyfit: degree must be non-negative")

	// ErrNoSamples is returned when the x sequence is empty.
	ErrNoSamples = errors.New("polyfit: no samples provided")

	// ErrLengthMismatch is returned when the x and y sequences differ in
	// length; samples pair 1:1 by position.
	ErrLengthMismatch = errors.New("polyfit: x and y sequences differ in length")

	// ErrSolveFailed is returned when the dense QR solve breaks down
	// (e.g. a rank-deficient Vandermonde matrix from repeated x values).
	ErrSolveFailed = errors.New("polyfit: least-squares solve failed")
)
