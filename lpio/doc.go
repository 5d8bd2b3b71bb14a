// Package lpio handles the textual boundary of the solver: reading
// general-form problems, writing solutions, and loading YAML solver
// configuration. No algorithmic state lives here — relation tokens are
// parsed into the closed lp.Relation enum on the way in and never travel
// further as strings.
//
// Problem format (whitespace separated):
//
//	n m
//	c1 c2 ... cn
//	a11 ... a1n b1 rel1
//	...
//	am1 ... amn bm relm
//
// where each rel is one of "<=", ">=", "=". The objective direction is
// not part of the format; the caller supplies it.
//
// Solution format: the status tag on the first line, the n variable
// values on the second (omitted unless OPTIMAL), the objective value on
// the last.
//
// Config format (YAML):
//
//	tolerance: 1e-9
//	max_iterations: 2000
//	big_m_factor: 10000
//	two_phase: false
//
// Errors (sentinel):
//
//	– ErrBadFormat for any malformed problem or config input, wrapped
//	  with the line number; lp.ErrBadRelation passes through for
//	  unknown relation tokens.
package lpio
