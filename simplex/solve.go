package simplex

import "github.com/katalvlaran/linprog/lp"

// Solve runs the full pipeline — standard form, initial tableau, pivot
// loop, extraction — and returns the terminal Solution.
//
// An error is returned only for structural problems (nil pointer, bad
// dimensions); algorithmic outcomes (Infeasible, Unbounded,
// IterationLimit) are Solution statuses the caller can branch on.
//
// Maximization is normalized internally: costs are negated on the way in
// and the objective value is negated back on the way out.
func Solve(p *lp.Problem, opts ...Option) (lp.Solution, error) {
	if p == nil {
		return lp.Solution{}, ErrNilProblem
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultIterationFactor * (p.NumVars + p.NumConstraints)
	}

	sf, err := standardize(p)
	if err != nil {
		return lp.Solution{}, err
	}

	// Normalize to minimization.
	objective := p.Objective
	if p.Direction == lp.Maximize {
		objective = make([]float64, p.NumVars)
		for j, c := range p.Objective {
			objective[j] = -c
		}
	}

	t := newTableau(sf)
	var status lp.Status
	var iters int
	if o.TwoPhase {
		status, iters = solveTwoPhase(t, objective, o)
	} else {
		t.loadCosts(bigMCosts(t, objective, o.BigMFactor))
		status, iters = t.run(o.MaxIterations, o.Tolerance, false)
	}

	return extract(t, p, status, iters, o.Tolerance), nil
}

// solveTwoPhase first minimizes the artificial sum; a positive phase-1
// optimum certifies infeasibility. On a feasible phase 1, every
// artificial variable still basic at zero level is pivoted out (or left
// pinned at zero in an all-zero redundant row) before the true objective
// is reloaded, so no phase-2 pivot can lift an artificial back to a
// positive level. Phase 2 then finishes the solve with artificial
// columns barred from re-entering.
//
// The iteration cap bounds both phases jointly and drive-out pivots
// count toward it like any other pivot. An exhausted cap still reports
// Optimal when the phase-2 tableau needs no pivot at all: the loop runs
// its optimality scan before it enforces the cap.
func solveTwoPhase(t *tableau, objective []float64, o Options) (lp.Status, int) {
	t.loadCosts(phaseOneCosts(t))
	status, iters := t.run(o.MaxIterations, o.Tolerance, false)
	if status != lp.Optimal {
		return status, iters
	}
	if t.objective() > o.Tolerance {
		return lp.Infeasible, iters
	}
	iters += t.driveOutArtificials(o.Tolerance)

	t.loadCosts(structuralCosts(t, objective))
	status, more := t.run(o.MaxIterations-iters, o.Tolerance, true)

	return status, iters + more
}

// extract reads the terminal tableau into an lp.Solution.
//
// Unbounded and IterationLimit propagate as-is with no variable values.
// A tableau-optimal state with an artificial variable still basic at a
// strictly positive level is only feasible for the penalized relaxation,
// so it is demoted to Infeasible rather than reported as a spurious
// optimum. Otherwise each structural variable takes the RHS of the row
// where it is basic, or zero.
func extract(t *tableau, p *lp.Problem, status lp.Status, iters int, tol float64) lp.Solution {
	sol := lp.Solution{Status: status, Iterations: iters}
	if status != lp.Optimal {
		return sol
	}

	for r := 0; r < t.m; r++ {
		if t.artificial[t.basis[r]] && t.rhs(r) > tol {
			sol.Status = lp.Infeasible

			return sol
		}
	}

	sol.X = make([]float64, p.NumVars)
	for r := 0; r < t.m; r++ {
		if b := t.basis[r]; b < t.nStruct {
			sol.X[b] = t.rhs(r)
		}
	}
	sol.Objective = t.objective()
	if p.Direction == lp.Maximize {
		sol.Objective = -sol.Objective
	}

	return sol
}
