// SPDX-License-Identifier: MIT
// Package rigid: public value types and numeric policy.

package rigid

import (
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/num/quat"
)

// DefaultEpsilon is the tolerance below which a vector length is treated as
// zero during orthonormalization. It also bounds the orthogonality error of
// the resulting rotation columns.
const DefaultEpsilon = 1e-9

// Frame is a target coordinate system described by four measured points:
// an origin plus one point along each of the desired x, y and z directions.
//
// Invariant: XRef, YRef and ZRef must each be distinct from Origin (their
// difference vectors must exceed Options.Epsilon in length), otherwise
// Solve fails with ErrZeroLengthAxis.
type Frame struct {
	Origin mgl64.Vec3
	XRef   mgl64.Vec3
	YRef   mgl64.Vec3
	ZRef   mgl64.Vec3
}

// RigidTransform is the rotation + translation mapping the canonical frame
// onto a measured Frame. It is derived from a Frame on every Solve call and
// has no lifecycle of its own.
//
// Fields:
//   - Rotation    — 3×3 orthonormal matrix; columns are the frame's unit
//     x, y, z axes, in that order. det = +1 for valid input.
//   - Quaternion  — the identical rotation as a unit quaternion. The sign
//     is canonical only up to a global flip (q and −q encode the same
//     rotation); use XYZW for the (x, y, z, w) component convention.
//   - Translation — the measured Origin, copied exactly.
//   - Homogeneous — the assembled 4×4 matrix: rotation top-left,
//     translation top-right, bottom row (0, 0, 0, 1).
type RigidTransform struct {
	Rotation    mgl64.Mat3
	Quaternion  mgl64.Quat
	Translation mgl64.Vec3
	Homogeneous mgl64.Mat4
}

// XYZW returns the quaternion components in (x, y, z, w) order.
//
// This is the wire convention of most motion-capture toolchains (scalar
// last); mgl64.Quat stores the scalar first, so downstream code should use
// this accessor instead of reading Quaternion's fields positionally.
func (t *RigidTransform) XYZW() [4]float64 {
	return [4]float64{t.Quaternion.X(), t.Quaternion.Y(), t.Quaternion.Z(), t.Quaternion.W}
}

// Number returns the rotation as a gonum quaternion for interop with
// gonum-based spatial pipelines.
func (t *RigidTransform) Number() quat.Number {
	return quat.Number{
		Real: t.Quaternion.W,
		Imag: t.Quaternion.X(),
		Jmag: t.Quaternion.Y(),
		Kmag: t.Quaternion.Z(),
	}
}

// Options configures the numeric policy of Solve.
//
// Fields:
//   - Epsilon — vector lengths at or below this value are treated as zero
//     when validating axis candidates and cross products. Must be finite
//     and non-negative.
//
// Example:
//
//	opts := rigid.DefaultOptions()
//	opts.Epsilon = 1e-6 // noisy tracker, loosen the degeneracy guard
//	tf, err := rigid.Solve(frame, &opts)
type Options struct {
	Epsilon float64
}

// DefaultOptions returns the canonical numeric policy (Epsilon = 1e-9).
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon}
}
