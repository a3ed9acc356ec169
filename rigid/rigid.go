// SPDX-License-Identifier: MIT

package rigid

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Solve converts the four measured points of f into a right-handed
// orthonormal basis and returns its rotation/quaternion/translation
// representation together with the assembled homogeneous matrix.
//
// Algorithm Outline:
//  1. Unit-normalize the three difference vectors (XRef−Origin),
//     (YRef−Origin), (ZRef−Origin). Any length ≤ Epsilon fails with
//     ErrZeroLengthAxis.
//  2. Re-derive y as normalize(ẑ × x̂), then z as x̂ × ŷ. The x candidate
//     is authoritative and never recomputed; the measured y direction only
//     participates through validation. A near-zero ẑ × x̂ cross product
//     fails with ErrCollinearAxes.
//  3. Assemble the rotation matrix with columns (x, y, z), convert it to a
//     unit quaternion, copy the translation from Origin and build the 4×4
//     homogeneous matrix.
//
// opts may be nil, which selects DefaultOptions.
//
// Guarantees (for a nil error): rotation columns are unit length and
// mutually orthogonal within Epsilon, det(Rotation) = +1, Translation
// equals f.Origin exactly. Solve is a pure function.
//
// Example:
//
//	tf, err := rigid.Solve(frame, nil)
//	if err != nil { ... }
//	q := tf.XYZW() // (x, y, z, w)
func Solve(f Frame, opts *Options) (*RigidTransform, error) {
	eps := DefaultEpsilon
	if opts != nil {
		eps = opts.Epsilon
	}
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return nil, ErrBadEpsilon
	}

	xAxis, ok := unit(f.XRef.Sub(f.Origin), eps)
	if !ok {
		return nil, ErrZeroLengthAxis
	}
	// The measured y direction is validated but fully re-derived below.
	if _, ok = unit(f.YRef.Sub(f.Origin), eps); !ok {
		return nil, ErrZeroLengthAxis
	}
	zCand, ok := unit(f.ZRef.Sub(f.Origin), eps)
	if !ok {
		return nil, ErrZeroLengthAxis
	}

	// Orthogonality enforcement. Trust order is a hard contract:
	// x authoritative, z second, y derived (see package doc).
	yAxis, ok := unit(zCand.Cross(xAxis), eps)
	if !ok {
		return nil, ErrCollinearAxes
	}
	zAxis := xAxis.Cross(yAxis) // unit by construction: x ⟂ y, |x|=|y|=1

	rot := mgl64.Mat3FromCols(xAxis, yAxis, zAxis)

	return &RigidTransform{
		Rotation:    rot,
		Quaternion:  mgl64.Mat4ToQuat(rot.Mat4()),
		Translation: f.Origin,
		Homogeneous: mgl64.Mat4FromCols(
			xAxis.Vec4(0),
			yAxis.Vec4(0),
			zAxis.Vec4(0),
			f.Origin.Vec4(1),
		),
	}, nil
}

// SolvePoints is a convenience wrapper around Solve for callers holding the
// four points individually; it applies DefaultOptions.
func SolvePoints(origin, xPoint, yPoint, zPoint mgl64.Vec3) (*RigidTransform, error) {
	return Solve(Frame{Origin: origin, XRef: xPoint, YRef: yPoint, ZRef: zPoint}, nil)
}

// unit returns v scaled to unit length, or ok=false when |v| ≤ eps.
// Division by a near-zero length is never attempted.
func unit(v mgl64.Vec3, eps float64) (mgl64.Vec3, bool) {
	l := v.Len()
	if l <= eps {
		return mgl64.Vec3{}, false
	}

	return v.Mul(1 / l), true
}
