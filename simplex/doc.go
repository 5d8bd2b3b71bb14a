// Package simplex solves general-form linear programs with the tableau
// simplex method, seeded either by the Big-M penalty (default) or by an
// opt-in two-phase formulation.
//
// Pipeline:
//
//  1. Standard form — every ≤ row gains a slack column, every ≥ row a
//     surplus and an artificial column, every = row an artificial column.
//     Rows with negative right-hand sides are negated (flipping their
//     relation) before columns are assigned, so the initial basis of
//     slack/artificial variables is feasible at the non-negative RHS.
//  2. Initial tableau — Big-M folds a penalty M on each artificial column
//     into the objective row, then algebraically eliminates the M-weighted
//     contribution of every artificial basic row. From that point all
//     pivot arithmetic is purely numeric; M appears only as a coefficient,
//     never as a symbol.
//  3. Pivot loop — repeated entering/leaving selection and Gauss-Jordan
//     pivots until Optimal, Unbounded, or the iteration cap.
//  4. Extraction — basic structural variables are read off the final
//     tableau; an artificial variable still basic at a positive level
//     demotes the outcome to Infeasible.
//
// Determinism:
//
//	The entering column is the most negative reduced cost, ties broken by
//	smallest column index. The leaving row is the minimum RHS/entry ratio,
//	ties broken by smallest basic-variable index (Bland-style), which
//	guarantees termination under degeneracy. Re-solving the same Problem
//	yields a bit-for-bit identical Solution.
//
// Numerics:
//
//	M is not a hard-coded numeral: it scales with the input as
//	BigMFactor × (1 + Σ|c_j|), so the penalty dominates every finite
//	structural cost without drowning the objective row in cancellation
//	error. For poorly scaled inputs prefer WithTwoPhase, which replaces
//	the penalty with a phase-1 feasibility objective.
//
// Complexity:
//
//	– Each pivot is O(m·(n+s)) over one flat row-major buffer.
//	– The loop is bounded by MaxIterations (default 100×(n+m)).
//
// Statuses, not crashes: Infeasible, Unbounded and IterationLimit are
// ordinary lp.Solution outcomes. Solve returns an error only for
// structurally malformed problems.
package simplex
