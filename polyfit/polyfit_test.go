package polyfit_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinemetrix/kinemath/polyfit"
)

// TestFit_Underdetermined verifies that degree ≥ sample count fails with
// ErrUnderdetermined, including the boundary degree == len(x).
func TestFit_Underdetermined(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{1, 4, 9}

	_, err := polyfit.Fit(x, y, 3)
	assert.ErrorIs(t, err, polyfit.ErrUnderdetermined, "3 samples with degree 3 must error")

	_, err = polyfit.Fit(x, y, len(x))
	assert.ErrorIs(t, err, polyfit.ErrUnderdetermined, "degree == sample count must error")

	_, err = polyfit.Fit(x, y, 2)
	assert.NoError(t, err, "degree == sample count − 1 is well-posed")
}

// TestFit_BadDegree ensures a negative degree is rejected before any work.
func TestFit_BadDegree(t *testing.T) {
	_, err := polyfit.Fit([]float64{0, 1}, []float64{1, 2}, -1)
	assert.ErrorIs(t, err, polyfit.ErrBadDegree, "negative degree must error")
}

// TestFit_NoSamples ensures an empty sample set is rejected.
func TestFit_NoSamples(t *testing.T) {
	_, err := polyfit.Fit(nil, nil, 0)
	assert.ErrorIs(t, err, polyfit.ErrNoSamples, "empty input must error")
}

// TestFit_LengthMismatch ensures the 1:1 pairing invariant is enforced.
func TestFit_LengthMismatch(t *testing.T) {
	_, err := polyfit.Fit([]float64{0, 1, 2}, []float64{1, 2}, 1)
	assert.ErrorIs(t, err, polyfit.ErrLengthMismatch, "x/y length disagreement must error")
}

// TestFit_QuadraticExact pins the concrete scenario y = x²+1 at degree 2:
// the fit reproduces every sample, anchors the constant term on the first
// sample, scores ≈ 0 and extrapolates x = 5 to ≈ 26.
func TestFit_QuadraticExact(t *testing.T) {
	x := []float64{0, 1, 2, 3, 4}
	y := []float64{1, 2, 5, 10, 17}

	p, err := polyfit.Fit(x, y, 2)
	require.NoError(t, err)

	assert.Equal(t, 2, p.Degree(), "degree must match the request")
	coeffs := p.Coefficients()
	require.Len(t, coeffs, 3, "degree+1 coefficients expected")
	assert.InDelta(t, 1.0, coeffs[0], 1e-9, "x² coefficient")
	assert.InDelta(t, 0.0, coeffs[1], 1e-9, "x coefficient")
	assert.InDelta(t, 1.0, coeffs[2], 1e-9, "constant coefficient")

	for i, xv := range x {
		assert.InDelta(t, y[i], p.At(xv), 1e-9, "sample %d must be reproduced", i)
	}
	assert.InDelta(t, 1.0, p.At(0), 1e-9, "P(0) must reproduce the first sample's y")
	assert.InDelta(t, 26.0, p.At(5), 1e-8, "extrapolation at x=5")

	sse, err := p.Score(x, y)
	require.NoError(t, err)
	assert.Less(t, sse, 1e-12, "exact fit must score ≈ 0")
}

// TestFit_LinearKnownCoefficients verifies a line fit recovers slope and
// intercept exactly on noise-free data.
func TestFit_LinearKnownCoefficients(t *testing.T) {
	x := []float64{0, 1, 2, 3}
	y := []float64{1, 3, 5, 7} // y = 2x + 1

	p, err := polyfit.Fit(x, y, 1)
	require.NoError(t, err)

	coeffs := p.Coefficients()
	assert.InDelta(t, 2.0, coeffs[0], 1e-9, "slope")
	assert.InDelta(t, 1.0, coeffs[1], 1e-9, "intercept")
}

// TestFit_AnchorOnInterpolatingFit verifies the first-sample anchor for an
// interpolating fit (degree = samples−1), where the residual at x = 0
// vanishes and the anchor is exact.
func TestFit_AnchorOnInterpolatingFit(t *testing.T) {
	x := []float64{0, 0.75, 1.5, 2.25}
	y := []float64{-2.5, 0.125, 4.75, 13.0}

	p, err := polyfit.Fit(x, y, len(x)-1)
	require.NoError(t, err)

	assert.InDelta(t, y[0], p.At(x[0]), 1e-9, "interpolating fit must pass through the first sample")
}

// TestPolynomial_EvaluateMatchesAt verifies Evaluate is a positional map of
// At over the query grid.
func TestPolynomial_EvaluateMatchesAt(t *testing.T) {
	p, err := polyfit.Fit([]float64{0, 1, 2, 3, 4}, []float64{1, 2, 5, 10, 17}, 2)
	require.NoError(t, err)

	queries := []float64{-3, 0, 0.5, 7, 42}
	got := p.Evaluate(queries)
	require.Len(t, got, len(queries))
	for i, q := range queries {
		assert.Equal(t, p.At(q), got[i], "Evaluate[%d] must equal At(%g)", i, q)
	}
}

// TestPolynomial_ExtrapolationFinite verifies that querying far beyond the
// sampled range returns finite values — no range validation exists.
func TestPolynomial_ExtrapolationFinite(t *testing.T) {
	x := []float64{0, 10, 20, 30, 40}
	y := []float64{0, 4.2, 8.1, 12.5, 16.3}

	p, err := polyfit.Fit(x, y, 2)
	require.NoError(t, err)

	for _, q := range []float64{-100, 120, 1000} {
		v := p.At(q)
		assert.False(t, math.IsNaN(v) || math.IsInf(v, 0), "extrapolation at %g must be finite, got %g", q, v)
	}
}

// TestPolynomial_Score verifies the residual metric: zero for an exact
// interpolant, strictly positive once any residual is non-zero.
func TestPolynomial_Score(t *testing.T) {
	x := []float64{0, 1, 2}
	y := []float64{3, 5, 7} // y = 2x + 3, exactly

	p, err := polyfit.Fit(x, y, 1)
	require.NoError(t, err)

	exact, err := p.Score(x, y)
	require.NoError(t, err)
	assert.Less(t, exact, 1e-18, "exact interpolant must score ≈ 0")

	perturbed := []float64{3, 5.5, 7}
	sse, err := p.Score(x, perturbed)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, sse, 1e-9, "one residual of 0.5 must score 0.25")
}

// TestPolynomial_ScoreLengthMismatch ensures Score enforces the pairing
// invariant like Fit does.
func TestPolynomial_ScoreLengthMismatch(t *testing.T) {
	p, err := polyfit.Fit([]float64{0, 1}, []float64{1, 2}, 1)
	require.NoError(t, err)

	_, err = p.Score([]float64{0, 1, 2}, []float64{1, 2})
	assert.ErrorIs(t, err, polyfit.ErrLengthMismatch)

	_, err = p.Score(nil, nil)
	assert.ErrorIs(t, err, polyfit.ErrNoSamples)
}

// TestPolynomial_CoefficientsCopy verifies the accessor hands out a copy:
// mutating it must not change the polynomial.
func TestPolynomial_CoefficientsCopy(t *testing.T) {
	p, err := polyfit.Fit([]float64{0, 1, 2, 3}, []float64{1, 3, 5, 7}, 1)
	require.NoError(t, err)

	before := p.At(10)
	coeffs := p.Coefficients()
	coeffs[0] = 999
	assert.Equal(t, before, p.At(10), "mutating the returned slice must not affect the polynomial")
}

// TestPolynomial_String verifies the formula rendering shape on a known fit.
func TestPolynomial_String(t *testing.T) {
	p, err := polyfit.Fit([]float64{0, 1, 2, 3}, []float64{1, 3, 5, 7}, 1)
	require.NoError(t, err)

	s := p.String()
	assert.Contains(t, s, "P(x) =", "formula prefix")
	assert.Contains(t, s, "·x", "linear term marker")
}
