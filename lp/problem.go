package lp

import "fmt"

// Problem is a general-form linear program. Construct it with NewProblem;
// once built it is treated as read-only by every linprog component, so a
// single Problem may back any number of concurrent solves.
type Problem struct {
	NumVars        int         // n, structural variables
	NumConstraints int         // m, constraint rows
	Objective      []float64   // length n
	A              [][]float64 // m rows × n columns
	RHS            []float64   // length m
	Relations      []Relation  // length m
	Direction      Direction   // Minimize or Maximize
}

// NewProblem builds an immutable Problem from the given data.
// Stage 1 (Validate): dimensions are checked up front, before any copy.
// Stage 2 (Copy): every slice is deep-copied so later caller mutation
// cannot reach the solver's view of the problem.
// Complexity: O(m·n) time and memory.
func NewProblem(objective []float64, a [][]float64, rhs []float64, relations []Relation, dir Direction) (*Problem, error) {
	n := len(objective)
	m := len(a)

	p := &Problem{
		NumVars:        n,
		NumConstraints: m,
		Objective:      append([]float64(nil), objective...),
		A:              make([][]float64, m),
		RHS:            append([]float64(nil), rhs...),
		Relations:      append([]Relation(nil), relations...),
		Direction:      dir,
	}
	for i, row := range a {
		p.A[i] = append([]float64(nil), row...)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate checks the structural integrity of the problem: n > 0, m ≥ 0,
// matching vector lengths, and every constraint row of length n.
// Violations surface immediately, before any pivoting can start.
func (p *Problem) Validate() error {
	if p.NumVars <= 0 || len(p.Objective) != p.NumVars {
		return ErrNoVariables
	}
	if p.NumConstraints < 0 ||
		len(p.A) != p.NumConstraints ||
		len(p.RHS) != p.NumConstraints ||
		len(p.Relations) != p.NumConstraints {
		return ErrBadDimensions
	}
	for i, row := range p.A {
		if len(row) != p.NumVars {
			return fmt.Errorf("row %d has %d coefficients, want %d: %w", i, len(row), p.NumVars, ErrRowMismatch)
		}
	}
	for i, rel := range p.Relations {
		if rel != LE && rel != GE && rel != EQ {
			return fmt.Errorf("row %d: %w", i, ErrBadRelation)
		}
	}

	return nil
}
