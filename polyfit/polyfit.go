// SPDX-License-Identifier: MIT

package polyfit

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Fit fits a polynomial of the requested degree to the samples (x, y),
// anchored on the first sample: the constant term is rebuilt around y[0]
// so that P(0) reproduces it.
//
// Algorithm Outline (shift-fit-unshift):
//  1. Validate: x non-empty, len(x) == len(y), 0 ≤ degree < len(x).
//  2. Shift every y-value by −y[0].
//  3. Ordinary least squares on the shifted samples: Vandermonde matrix of
//     x, QR factorization, dense solve.
//  4. Add y[0] back to the constant coefficient only; every non-constant
//     term vanishes at x = 0, so the anchor rides on the constant term.
//
// The shift-fit-unshift step is a closed-form approximation of an
// equality-constrained regression: the anchor is exact whenever the
// least-squares residual at x = 0 vanishes (always the case for
// interpolating fits, i.e. degree = len(x)−1, and for noise-free data).
//
// Errors: ErrBadDegree, ErrNoSamples, ErrLengthMismatch,
// ErrUnderdetermined, ErrSolveFailed.
//
// Example:
//
//	p, err := polyfit.Fit([]float64{0, 1, 2, 3, 4}, []float64{1, 2, 5, 10, 17}, 2)
//	if err != nil { ... }
//	y5 := p.At(5) // ≈ 26
func Fit(x, y []float64, degree int) (*Polynomial, error) {
	if err := validateSamples(x, y); err != nil {
		return nil, err
	}
	if err := validateDegree(degree, len(x)); err != nil {
		return nil, err
	}

	y0 := y[0]
	shifted := make([]float64, len(y))
	for i, v := range y {
		shifted[i] = v - y0
	}

	coeffs, err := leastSquares(x, shifted, degree)
	if err != nil {
		return nil, err
	}
	coeffs[len(coeffs)-1] += y0 // constant term carries the anchor

	return &Polynomial{coeffs: coeffs}, nil
}

// At evaluates the polynomial at a single query position using Horner's
// method. Query positions outside the fitted x-range are legitimate:
// extrapolation is the primary use case.
func (p *Polynomial) At(x float64) float64 {
	acc := 0.0
	for _, c := range p.coeffs {
		acc = acc*x + c
	}

	return acc
}

// Evaluate evaluates the polynomial at every query position, preserving
// order. No range validation is applied (see At).
func (p *Polynomial) Evaluate(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		out[i] = p.At(x)
	}

	return out
}

// Score returns the sum of squared residuals Σ(y−P(x))² over the given
// samples. The score is non-negative and zero only for an exact fit.
//
// Errors: ErrNoSamples, ErrLengthMismatch.
func (p *Polynomial) Score(x, y []float64) (float64, error) {
	if err := validateSamples(x, y); err != nil {
		return 0, err
	}

	resid := make([]float64, len(x))
	for i, xv := range x {
		resid[i] = y[i] - p.At(xv)
	}

	return floats.Dot(resid, resid), nil
}

// leastSquares solves the ordinary least-squares problem V·c ≈ y for the
// Vandermonde matrix V of x, returning coefficients in descending power
// order. Callers must have validated degree < len(x).
func leastSquares(x, y []float64, degree int) ([]float64, error) {
	a := vandermonde(x, degree)
	b := mat.NewVecDense(len(y), y)
	c := mat.NewVecDense(degree+1, nil)

	var qr mat.QR
	qr.Factorize(a)
	if err := qr.SolveVecTo(c, false, b); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSolveFailed, err)
	}

	// The solver yields ascending powers (column j holds x^j).
	coeffs := make([]float64, degree+1)
	for j := 0; j <= degree; j++ {
		coeffs[degree-j] = c.AtVec(j)
	}

	return coeffs, nil
}

// vandermonde builds the len(x)×(degree+1) matrix with row i holding
// (1, x[i], x[i]², …, x[i]^degree).
func vandermonde(x []float64, degree int) *mat.Dense {
	v := mat.NewDense(len(x), degree+1, nil)
	for i := range x {
		for j, p := 0, 1.0; j <= degree; j, p = j+1, p*x[i] {
			v.Set(i, j, p)
		}
	}

	return v
}
