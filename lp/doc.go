// Package lp defines the data model shared by every linprog component:
// the immutable Problem, the closed Relation and Direction enums, and
// the Solution / Status terminal artifacts.
//
// A Problem captures a general-form linear program
//
//	opt  c·x
//	s.t. A_i·x (≤ | ≥ | =) b_i   for every constraint row i
//	     x ≥ 0
//
// where opt is Minimize or Maximize. Relations are parsed from their
// textual tokens ("<=", ">=", "=") exactly once, at the input boundary,
// and travel through the solver as the closed enum {LE, GE, EQ}.
//
// A Solution carries one of four terminal statuses:
//
//	Optimal        — a certified optimal basic feasible solution
//	Infeasible     — no point satisfies all constraints
//	Unbounded      — the objective improves without limit
//	IterationLimit — the pivot cap was reached before certification
//
// The last three are expected outcomes, not errors: callers branch on
// Status, never on recovered panics.
//
// Errors (sentinel):
//
//	– ErrNoVariables indicates n ≤ 0.
//	– ErrBadDimensions indicates mismatched objective/RHS/relation lengths.
//	– ErrRowMismatch indicates a constraint row whose length differs from n.
//	– ErrBadRelation indicates an unknown relation token.
package lp
