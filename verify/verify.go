// Package verify re-checks a solver Solution against the original
// Problem, independently of any tableau state: constraint residuals,
// variable non-negativity, and the objective round-trip c·x.
//
// It consumes solver output only — a failed Report means either a solver
// defect or a tolerance too tight for the problem's scaling, never a new
// outcome for the LP itself.
package verify

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/linprog/lp"
)

// DefaultTolerance bounds acceptable constraint and objective residuals.
const DefaultTolerance = 1e-6

// Violation describes one unsatisfied constraint row.
type Violation struct {
	Row      int         // constraint index in the original problem
	Relation lp.Relation // the row's relation
	LHS      float64     // A_i·x
	RHS      float64     // b_i
}

// String renders the violated row, e.g. "row 2: 7.5 <= 6 violated".
func (v Violation) String() string {
	return fmt.Sprintf("row %d: %g %s %g violated", v.Row, v.LHS, v.Relation, v.RHS)
}

// Report is the outcome of a Check.
type Report struct {
	Feasible     bool        // every constraint and sign bound holds
	ObjectiveOK  bool        // |c·x − Solution.Objective| within tolerance
	Violations   []Violation // unsatisfied rows, in row order
	NegativeVars []int       // variables below −tolerance
	MaxResidual  float64     // largest constraint residual observed
	ObjectiveGap float64     // |c·x − Solution.Objective|
}

// OK reports whether the solution passed every check.
func (r Report) OK() bool {
	return r.Feasible && r.ObjectiveOK
}

// Check validates an Optimal solution against the original problem.
// Non-Optimal solutions have no variable values to check and pass
// vacuously. tol ≤ 0 selects DefaultTolerance.
func Check(p *lp.Problem, sol lp.Solution, tol float64) Report {
	if tol <= 0 {
		tol = DefaultTolerance
	}
	rep := Report{Feasible: true, ObjectiveOK: true}
	if p == nil || sol.Status != lp.Optimal {
		return rep
	}

	for j, x := range sol.X {
		if x < -tol {
			rep.NegativeVars = append(rep.NegativeVars, j)
			rep.Feasible = false
		}
	}

	for i, row := range p.A {
		lhs := floats.Dot(row, sol.X)
		resid := 0.0
		switch p.Relations[i] {
		case lp.LE:
			resid = lhs - p.RHS[i]
		case lp.GE:
			resid = p.RHS[i] - lhs
		case lp.EQ:
			resid = math.Abs(lhs - p.RHS[i])
		}
		if resid > rep.MaxResidual {
			rep.MaxResidual = resid
		}
		if resid > tol {
			rep.Feasible = false
			rep.Violations = append(rep.Violations, Violation{Row: i, Relation: p.Relations[i], LHS: lhs, RHS: p.RHS[i]})
		}
	}

	rep.ObjectiveGap = math.Abs(floats.Dot(p.Objective, sol.X) - sol.Objective)
	if rep.ObjectiveGap > tol {
		rep.ObjectiveOK = false
	}

	return rep
}
