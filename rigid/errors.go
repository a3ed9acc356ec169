// SPDX-License-Identifier: MIT
// Package rigid: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the rigid
// package. Solve MUST return these sentinels and tests MUST check them via
// errors.Is. No operation panics on user-triggered error conditions.

package rigid

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "rigid: ..." for consistency and to allow
// easy grepping across logs. ErrZeroLengthAxis and ErrCollinearAxes wrap
// ErrDegenerateInput, so errors.Is(err, ErrDegenerateInput) matches either
// failure while the specific sentinel still identifies the cause.

var (
	// ErrDegenerateInput is the base sentinel for every frame whose four
	// points cannot define a 3D basis. Match it when only "good frame vs.
	// bad frame" matters; match the specific sentinels below for the cause.
	ErrDegenerateInput = errors.New("rigid: degenerate frame input")

	// ErrZeroLengthAxis signals that a reference point coincides with the
	// origin (within Options.Epsilon), so its axis direction is undefined.
	ErrZeroLengthAxis = fmt.Errorf("%w: zero-length axis vector", ErrDegenerateInput)

	// ErrCollinearAxes signals that the x and z axis candidates are parallel
	// or anti-parallel, so their cross product cannot supply a y axis.
	ErrCollinearAxes = fmt.Errorf("%w: collinear axis candidates", ErrDegenerateInput)

	// ErrBadEpsilon signals a non-finite or negative Options.Epsilon.
	// This is a caller configuration mistake, not a data problem.
	ErrBadEpsilon = errors.New("rigid: epsilon must be finite and non-negative")
)
