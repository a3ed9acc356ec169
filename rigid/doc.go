// Package rigid computes rigid-body coordinate transforms (rotation +
// translation) from four measured points: an origin and three points that
// mark the directions of the target frame's x, y and z axes.
//
// 🚀 What is rigid?
//
//	Motion-capture and surgical-navigation rigs report landmark positions,
//	not rotation matrices.  rigid turns four landmarks into:
//	  • a 3×3 orthonormal rotation matrix (right-handed, det = +1)
//	  • the equivalent unit quaternion, (x, y, z, w) component order
//	  • the translation vector (the measured origin, unchanged)
//	  • the assembled 4×4 homogeneous transform
//
// ✨ Key features:
//   - cross-product re-orthogonalization absorbs small measurement noise
//   - fixed axis-trust ordering: x is authoritative, z second, y fully
//     derived (y = ẑ×x̂ normalized, then z = x̂×ŷ) — changing this order
//     changes every downstream rotation, so it is a hard contract
//   - fail-fast sentinel errors for zero-length and collinear inputs
//   - pure functions, safe for unsynchronized concurrent use
//
// ⚙️ Usage:
//
//	import "github.com/kinemetrix/kinemath/rigid"
//
//	f := rigid.Frame{
//	  Origin: mgl64.Vec3{12.1, -3.4, 880.2},
//	  XRef:   mgl64.Vec3{13.0, -3.3, 880.1},
//	  YRef:   mgl64.Vec3{12.2, -2.5, 880.3},
//	  ZRef:   mgl64.Vec3{12.0, -3.5, 881.1},
//	}
//
//	tf, err := rigid.Solve(f, nil) // nil → DefaultOptions
//	if err != nil {
//	  // handle ErrZeroLengthAxis / ErrCollinearAxes
//	}
//	fmt.Println(tf.Homogeneous)
//
// Errors:
//   - ErrZeroLengthAxis — a reference point coincides with the origin.
//   - ErrCollinearAxes  — the x and z candidates span no plane.
//
// Both match errors.Is(err, ErrDegenerateInput).
//
// Performance: O(1) time and memory per call.
package rigid
