// SPDX-License-Identifier: MIT

package polyfit

import "fmt"

// FitAll fits, evaluates and scores every series against the shared
// x-sequence, independently and in input order. One series failing (for
// example with ErrUnderdetermined or ErrLengthMismatch) records the error
// in its own FitResult and never aborts the remaining series.
//
// queryX is the caller-supplied evaluation grid; each result's Estimates
// aligns with it by position. Defaults for the grid or the degree are a
// caller concern.
//
// Series are processed sequentially; because every operation is pure,
// callers needing parallelism can simply invoke Fit on distinct series
// from separate goroutines instead.
//
// Example:
//
//	batch := polyfit.FitAll(x, []polyfit.Series{
//	  {ID: "knee_flexion", Y: flexion},
//	  {ID: "knee_rotation", Y: rotation},
//	}, 5, []float64{0, 10, 20, 30, 40, 50})
//	for _, id := range batch.IDs() {
//	  r, _ := batch.ByID(id)
//	  ...
//	}
func FitAll(x []float64, series []Series, degree int, queryX []float64) *Batch {
	b := &Batch{
		order:   make([]string, 0, len(series)),
		results: make(map[string]*FitResult, len(series)),
	}

	for _, s := range series {
		res := &FitResult{}
		poly, err := Fit(x, s.Y, degree)
		switch {
		case err != nil:
			res.Err = fmt.Errorf("series %q: %w", s.ID, err)
		default:
			res.Polynomial = poly
			res.Estimates = poly.Evaluate(queryX)
			res.SquaredError, res.Err = poly.Score(x, s.Y)
		}

		if _, seen := b.results[s.ID]; !seen {
			b.order = append(b.order, s.ID)
		}
		b.results[s.ID] = res
	}

	return b
}
