// Package polyfit fits least-squares polynomials that are constrained to
// pass through the first sample of a measured signal, then evaluates and
// scores them — the workhorse behind interpolating and extrapolating
// motion-log series recorded at known x-positions.
//
// 🚀 What is polyfit?
//
//	Given samples (x, y) and a target degree, polyfit produces:
//	  • a polynomial whose constant term is anchored on the first sample,
//	    so P(0) reproduces y[0] (shift-fit-unshift technique)
//	  • estimated y-values at arbitrary query positions, including
//	    extrapolation beyond the sampled range (the primary use case)
//	  • a sum-of-squared-residuals score over the original samples
//	  • per-series batches over a shared x-column, with isolated failures
//
// ✨ Key features:
//   - ordinary least squares via Vandermonde matrix + QR factorization
//   - coefficients in descending power order (textbook/numpy convention)
//   - fail-fast sentinel errors (ErrUnderdetermined, ErrLengthMismatch, …)
//   - pure functions, safe for unsynchronized concurrent use
//
// ⚙️ Usage:
//
//	import "github.com/kinemetrix/kinemath/polyfit"
//
//	p, err := polyfit.Fit(x, y, 5)
//	if err != nil {
//	  // handle ErrUnderdetermined etc.
//	}
//	estimates := p.Evaluate([]float64{0, 10, 20, 30})
//	sse, _ := p.Score(x, y)
//
// Multi-series:
//
//	batch := polyfit.FitAll(x, series, 5, queryX)
//	for _, id := range batch.IDs() {
//	  r, _ := batch.ByID(id)
//	  if r.Err != nil { ... } // one bad series never aborts the rest
//	}
//
// Errors:
//   - ErrUnderdetermined — degree ≥ sample count; lower the degree or
//     supply more samples.
//   - ErrLengthMismatch  — x and y sequences disagree in length.
//   - ErrBadDegree, ErrNoSamples, ErrSolveFailed — see errors.go.
//
// Performance: one fit runs a dense QR solve on an n×(degree+1) matrix,
// O(n·degree²) time; evaluation is Horner's method, O(degree) per point.
package polyfit
