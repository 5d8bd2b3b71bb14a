package simplex

import (
	"math"

	"github.com/katalvlaran/linprog/lp"
)

// pivotResult identifies one base change: the entering column, the
// leaving row and the pivot entry. Produced and consumed within a single
// iteration of the loop.
type pivotResult struct {
	enter int
	leave int
	value float64
}

// chooseEntering scans the objective row for the most negative reduced
// cost beyond tolerance. Ties break toward the smallest column index
// (strict < keeps the first minimum), so the choice is reproducible.
// Basic columns hold an exact zero and never qualify. When
// blockArtificial is set (phase 2), artificial columns are skipped so a
// driven-out artificial cannot re-enter the basis.
// Returns -1 when every reduced cost is ≥ −tol: the tableau is optimal.
func (t *tableau) chooseEntering(tol float64, blockArtificial bool) int {
	obj := t.data[t.m*t.width:]
	enter, best := -1, -tol
	for j := 0; j < t.cols; j++ {
		if blockArtificial && t.artificial[j] {
			continue
		}
		if obj[j] < best {
			best = obj[j]
			enter = j
		}
	}

	return enter
}

// chooseLeaving runs the minimum-ratio test over rows with a strictly
// positive entry in the entering column. Ratio ties (within tol) break
// toward the smallest basic-variable index — the Bland-style rule that
// rules out infinite cycling under degeneracy.
// Returns -1 when no row has a positive entry: the problem is unbounded
// along the entering direction.
func (t *tableau) chooseLeaving(enter int, tol float64) int {
	leave := -1
	minRatio := math.Inf(1)
	for r := 0; r < t.m; r++ {
		entry := t.at(r, enter)
		if entry <= tol {
			continue
		}
		ratio := t.rhs(r) / entry
		if ratio < minRatio-tol ||
			(leave >= 0 && math.Abs(ratio-minRatio) <= tol && t.basis[r] < t.basis[leave]) {
			minRatio = ratio
			leave = r
		}
	}

	return leave
}

// pivot performs one Gauss-Jordan step: normalize the leaving row by the
// pivot entry, eliminate the entering column from every other row
// (objective row included), and swap the basis. The entering column is
// re-pinned to its exact unit vector afterwards so normal form never
// drifts. One pivot is a single O(m·cols) sweep of the owned buffer.
func (t *tableau) pivot(pr pivotResult) {
	lead := t.data[pr.leave*t.width : pr.leave*t.width+t.width]
	inv := 1 / pr.value
	for j := range lead {
		lead[j] *= inv
	}
	lead[pr.enter] = 1

	for r := 0; r <= t.m; r++ {
		if r == pr.leave {
			continue
		}
		row := t.data[r*t.width : r*t.width+t.width]
		factor := row[pr.enter]
		if factor == 0 {
			continue
		}
		for j := range row {
			row[j] -= factor * lead[j]
		}
		row[pr.enter] = 0
	}

	t.basis[pr.leave] = pr.enter
}

// run drives the pivot loop until optimality, unboundedness, or the
// iteration cap. The returned count is the number of pivots performed.
// Outcomes are statuses, never panics.
func (t *tableau) run(maxIter int, tol float64, blockArtificial bool) (lp.Status, int) {
	for iter := 0; ; iter++ {
		enter := t.chooseEntering(tol, blockArtificial)
		if enter < 0 {
			return lp.Optimal, iter
		}

		leave := t.chooseLeaving(enter, tol)
		if leave < 0 {
			return lp.Unbounded, iter
		}

		if iter >= maxIter {
			return lp.IterationLimit, iter
		}

		t.pivot(pivotResult{enter: enter, leave: leave, value: t.at(leave, enter)})
	}
}
