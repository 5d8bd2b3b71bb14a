// Package linprog is a small, deterministic toolkit for solving linear
// programs — from problem modeling to tableau simplex, presolve and
// post-hoc verification.
//
// 🚀 What is linprog?
//
//	A pure-Go LP solving library built around the classic tableau simplex:
//		• Problem model: objective, constraint matrix, ≤ / ≥ / = relations
//		• Standard form: slack, surplus and artificial variable construction
//		• Big-M initialization with numeric (non-symbolic) penalty folding
//		• Simplex pivoting with deterministic, cycle-safe tie-breaking
//		• Optional two-phase mode as a numerically safer Big-M substitute
//		• Presolve: zero/duplicate row removal and QR rank repair
//		• Verification: independent feasibility and objective round-trip
//
// ✨ Why choose linprog?
//
//   - Deterministic – fixed tie-break rules, same input ⇒ same Solution
//   - Honest outcomes – Infeasible, Unbounded and IterationLimit are
//     first-class statuses, never panics
//   - Explicit numerics – tolerance, iteration cap and Big-M scaling are
//     passed-in options, not ambient state
//
// Everything is organized under focused subpackages:
//
//	lp/       — Problem, Relation, Direction, Solution & Status types
//	simplex/  — standard form, Big-M tableau, pivot engine, Solve entry point
//	presolve/ — rank/feasibility pre-pass for equality-form systems
//	verify/   — post-hoc solution checking against the original problem
//	lpio/     — text problem format, solution writer, YAML solver config
//	cmd/      — the linprog command-line front end
//
// Quick start:
//
//	p, err := lp.NewProblem(
//	    []float64{3, 5},              // objective
//	    [][]float64{{1, 0}, {0, 2}, {3, 2}},
//	    []float64{4, 12, 18},
//	    []lp.Relation{lp.LE, lp.LE, lp.LE},
//	    lp.Maximize,
//	)
//	sol, err := simplex.Solve(p)
//	// sol.Status == lp.Optimal, sol.X == [2 6], sol.Objective == 36
//
//	go get github.com/katalvlaran/linprog
package linprog
