package lp

import "errors"

// Sentinel errors for problem construction and validation.
var (
	// ErrNoVariables indicates that the problem declares zero or fewer variables.
	ErrNoVariables = errors.New("lp: number of variables must be > 0")

	// ErrBadDimensions indicates that the objective, RHS or relation vectors
	// have lengths inconsistent with the declared problem size.
	ErrBadDimensions = errors.New("lp: inconsistent problem dimensions")

	// ErrRowMismatch indicates a constraint row whose coefficient count
	// does not equal the number of variables.
	ErrRowMismatch = errors.New("lp: constraint row length mismatch")

	// ErrBadRelation indicates a relation token outside {"<=", ">=", "="}.
	ErrBadRelation = errors.New("lp: unknown relation token")
)

// Relation is the closed set of constraint relations.
//
// LE – A_i·x ≤ b_i (slack variable seeds the initial basis)
// GE – A_i·x ≥ b_i (surplus + artificial variables)
// EQ – A_i·x = b_i (artificial variable only)
type Relation int

const (
	// LE marks a less-than-or-equal constraint.
	LE Relation = iota

	// GE marks a greater-than-or-equal constraint.
	GE

	// EQ marks an equality constraint.
	EQ
)

// String returns the textual token of the relation.
func (r Relation) String() string {
	switch r {
	case LE:
		return "<="
	case GE:
		return ">="
	case EQ:
		return "="
	default:
		return "?"
	}
}

// ParseRelation maps a textual token onto the Relation enum.
// Unknown tokens yield ErrBadRelation; free-form tokens never travel
// past the input boundary.
func ParseRelation(tok string) (Relation, error) {
	switch tok {
	case "<=":
		return LE, nil
	case ">=":
		return GE, nil
	case "=":
		return EQ, nil
	default:
		return 0, ErrBadRelation
	}
}

// Flip returns the relation mirrored around equality (LE↔GE, EQ→EQ).
// Negating both sides of a constraint row flips its inequality direction.
func (r Relation) Flip() Relation {
	switch r {
	case LE:
		return GE
	case GE:
		return LE
	default:
		return EQ
	}
}

// Direction states whether the objective is minimized or maximized.
type Direction int

const (
	// Minimize seeks the smallest objective value.
	Minimize Direction = iota

	// Maximize seeks the largest objective value.
	Maximize
)

// String returns "min" or "max".
func (d Direction) String() string {
	if d == Maximize {
		return "max"
	}

	return "min"
}

// Status is the terminal outcome of a solve.
type Status int

const (
	// Optimal means an optimal basic feasible solution was certified.
	Optimal Status = iota

	// Infeasible means no point satisfies every constraint.
	Infeasible

	// Unbounded means the objective improves without limit.
	Unbounded

	// IterationLimit means the pivot cap was reached before certification.
	IterationLimit
)

// String returns the canonical name of the status.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "OPTIMAL"
	case Infeasible:
		return "INFEASIBLE"
	case Unbounded:
		return "UNBOUNDED"
	case IterationLimit:
		return "ITERATION_LIMIT"
	default:
		return "UNKNOWN"
	}
}

// Solution is the terminal artifact of a solve. It is returned by value
// and never mutated by the solver afterwards.
//
// X holds the structural variables only (length NumVars of the source
// Problem); slack, surplus and artificial values are internal to the
// solver and never reported. X is nil unless Status == Optimal.
type Solution struct {
	Status     Status    // terminal outcome
	X          []float64 // structural variable values (nil unless Optimal)
	Objective  float64   // objective value in the problem's own direction
	Iterations int       // simplex pivots performed
}
