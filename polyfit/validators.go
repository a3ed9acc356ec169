// SPDX-License-Identifier: MIT
// Package polyfit: canonical input validation.
// Centralizing the sample/degree guards keeps Fit and Score minimal and
// guarantees every call site fails with the same sentinel for the same
// violation. Validators return plain sentinels (no wrapping) so call sites
// can wrap uniformly where context matters.

package polyfit

// validateSamples checks the shared 1:1 pairing invariant of a sample set:
// x must be non-empty and y must match its length exactly.
func validateSamples(x, y []float64) error {
	if len(x) == 0 {
		return ErrNoSamples
	}
	if len(x) != len(y) {
		return ErrLengthMismatch
	}

	return nil
}

// validateDegree checks the well-posedness bound for a least-squares fit of
// the given degree over n samples: 0 ≤ degree < n.
func validateDegree(degree, n int) error {
	if degree < 0 {
		return ErrBadDegree
	}
	if degree >= n {
		return ErrUnderdetermined
	}

	return nil
}
