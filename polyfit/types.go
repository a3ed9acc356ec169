// SPDX-License-Identifier: MIT
// Package polyfit: public value types.

package polyfit

import (
	"fmt"
	"strings"
)

// Polynomial is an immutable fitted polynomial. It is created by Fit and
// only evaluated afterwards; coefficients are stored in descending power
// order, the textbook (and numpy polyfit) convention.
//
// The constant term carries the first-sample anchor: P(0) reproduces the
// y-value paired with the first sample of the fitted series.
type Polynomial struct {
	coeffs []float64
}

// Degree returns the polynomial degree (number of coefficients minus one).
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coefficients returns a copy of the coefficients in descending power
// order: index 0 holds the x^degree term, the last index the constant.
func (p *Polynomial) Coefficients() []float64 {
	out := make([]float64, len(p.coeffs))
	copy(out, p.coeffs)

	return out
}

// String renders the polynomial as a single-line formula, highest power
// first, e.g. "P(x) = +1·x^2 +0·x +1".
func (p *Polynomial) String() string {
	var b strings.Builder
	b.WriteString("P(x) =")
	top := len(p.coeffs) - 1
	for i, c := range p.coeffs {
		pow := top - i
		fmt.Fprintf(&b, " %+.6g", c)
		if pow >= 1 {
			b.WriteString("·x")
		}
		if pow >= 2 {
			fmt.Fprintf(&b, "^%d", pow)
		}
	}

	return b.String()
}

// Series is one named y-sequence of a multi-series dataset. All series of a
// dataset share a single x-sequence; Y pairs with it 1:1 by position.
type Series struct {
	ID string
	Y  []float64
}

// FitResult is the per-series outcome of FitAll.
//
// Fields:
//   - Polynomial   — the fitted polynomial (nil when Err is set).
//   - Estimates    — the polynomial evaluated at the batch's query
//     x-values, aligned by position.
//   - SquaredError — sum of squared residuals over the series' samples.
//   - Err          — the series' own failure, if any; other series are
//     unaffected. Matches the package sentinels via errors.Is.
type FitResult struct {
	Polynomial   *Polynomial
	Estimates    []float64
	SquaredError float64
	Err          error
}

// Batch aggregates per-series fit results, preserving the series order of
// the input and supporting by-ID lookup.
//
// Series IDs are expected to be unique; a duplicate ID overwrites the
// earlier result (deterministic last-write-wins) while keeping the original
// position in the ordering.
type Batch struct {
	order   []string
	results map[string]*FitResult
}

// Len returns the number of distinct series in the batch.
func (b *Batch) Len() int {
	return len(b.order)
}

// IDs returns the series identifiers in input order. The slice is a copy.
func (b *Batch) IDs() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)

	return out
}

// Results returns the per-series results in input order. The slice is a
// copy; the pointed-to results are shared.
func (b *Batch) Results() []*FitResult {
	out := make([]*FitResult, 0, len(b.order))
	for _, id := range b.order {
		out = append(out, b.results[id])
	}

	return out
}

// ByID returns the result for the given series identifier.
func (b *Batch) ByID(id string) (*FitResult, bool) {
	r, ok := b.results[id]

	return r, ok
}
