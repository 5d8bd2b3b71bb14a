// Package presolve repairs equality-form LP systems before solving:
// it removes all-zero rows, proportional duplicate rows and linearly
// dependent rows, and certifies that the right-hand side lies in the
// column space of the reduced matrix.
//
// The simplex pipeline takes a problem as given; a rank-deficient
// equality system would seed it with redundant artificial variables and
// can hide plain inconsistencies (0 = b with b ≠ 0). Run catches both
// up front:
//
//  1. Zero rows — a row with all-zero coefficients is dropped when its
//     RHS is also zero, and certifies infeasibility otherwise.
//  2. Duplicate rows — a row proportional to an earlier row is dropped
//     when its RHS scales consistently, and certifies infeasibility
//     otherwise.
//  3. Dependent rows — a deterministic Gram-Schmidt sweep keeps the
//     lexicographically first maximal set of independent rows.
//  4. Feasibility — the SVD of the kept rows projects b onto the row
//     image; a residual beyond tolerance certifies that Ax = b has no
//     solution at all, feasible orthant or not.
//
// Run never mutates its input; it returns a fresh reduced Problem
// together with a Result describing what was dropped.
//
// Errors (sentinel):
//
//	– ErrNotEqualityForm if any constraint relation is not EQ.
//
// Complexity: O(m²·n) for the row sweeps plus one thin SVD, O(m·n·min(m,n)).
package presolve
