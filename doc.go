// Package kinemath is a small numeric toolbox for motion and biomechanics
// analysis — rigid-body frame transforms and constrained polynomial
// interpolation of measured signals.
//
// 🚀 What is kinemath?
//
//	A pure-computation library (no I/O, no global state) that brings together:
//		• Rigid transforms: four measured points → rotation matrix, unit
//		  quaternion, translation vector and 4×4 homogeneous matrix
//		• Constrained fitting: least-squares polynomials forced through the
//		  first sample, with evaluation and squared-error scoring
//		• Multi-series batches: independent per-series fits with isolated
//		  failures and stable ordering
//
// ✨ Why choose kinemath?
//
//   - Deterministic – fixed axis-trust ordering and documented quaternion
//     convention reproduce lab results bit-for-bit
//   - Fail-fast – sentinel errors for degenerate frames and
//     underdetermined fits, matched via errors.Is
//   - Concurrency-friendly – every operation is a pure function; fit as
//     many series in parallel as you like, no locks needed
//
// Under the hood, everything is organized under two subpackages:
//
//	rigid/   — frame orthonormalization, rotation/quaternion/translation
//	polyfit/ — constrained least-squares fit, evaluation, error scoring
//
// Quick sketch:
//
//	    z◄──O──►x          y = [x,y,z]-series samples
//	        │               ┌─ fit ─ evaluate ─ score ─┐
//	        ▼y              └─ per series, in order  ──┘
//
//	four points define a frame; each signal column gets its own polynomial.
//
//	go get github.com/kinemetrix/kinemath
package kinemath
