package presolve

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/linprog/lp"
)

// ErrNotEqualityForm indicates that Run was given a problem with ≤ or ≥
// rows; the rank pre-pass is defined on equality systems only.
var ErrNotEqualityForm = errors.New("presolve: all constraints must be equalities")

// DefaultTolerance is the zero threshold for row norms, proportionality
// residues and the RHS projection residual.
const DefaultTolerance = 1e-8

// Result reports what the pre-pass did to the system.
type Result struct {
	Infeasible        bool  // the system Ax = b has no solution
	KeptRows          []int // original indices of the surviving rows
	DroppedZero       int   // all-zero rows removed
	DroppedDuplicate  int   // proportional rows removed
	DroppedDependent  int   // linearly dependent rows removed
	ProjectionResidue float64
}

// Option configures Run.
type Option func(*options)

type options struct {
	tol float64
}

// WithTolerance overrides the numeric zero threshold.
// Must be positive; non-positive values panic (programmer error).
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol <= 0 {
			panic("presolve: tolerance must be positive")
		}
		o.tol = tol
	}
}

// Run reduces an equality-form problem to full row rank and checks that
// the right-hand side is reachable. On an infeasible certificate the
// returned problem is nil and Result.Infeasible is set; otherwise the
// returned problem contains only the kept rows, deep-copied, with the
// objective and direction unchanged.
func Run(p *lp.Problem, opts ...Option) (*lp.Problem, Result, error) {
	o := options{tol: DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}

	var res Result
	if p == nil {
		return nil, res, lp.ErrBadDimensions
	}
	if err := p.Validate(); err != nil {
		return nil, res, err
	}
	for _, rel := range p.Relations {
		if rel != lp.EQ {
			return nil, res, ErrNotEqualityForm
		}
	}

	kept := dropZeroRows(p, o.tol, &res)
	if res.Infeasible {
		return nil, res, nil
	}
	kept = dropDuplicateRows(p, kept, o.tol, &res)
	if res.Infeasible {
		return nil, res, nil
	}

	// Reachability runs before dependent rows are dropped: a row that is a
	// combination of earlier rows with a mismatched RHS is exactly the
	// inconsistency this projection exists to catch.
	if len(kept) > 0 && !rhsReachable(p, kept, o.tol, &res) {
		res.Infeasible = true

		return nil, res, nil
	}
	kept = dropDependentRows(p, kept, o.tol, &res)

	res.KeptRows = kept
	reduced, err := reducedProblem(p, kept)
	if err != nil {
		return nil, res, err
	}

	return reduced, res, nil
}

// dropZeroRows removes rows with all-zero coefficients. A zero row with a
// nonzero RHS is the plainest infeasibility certificate there is.
func dropZeroRows(p *lp.Problem, tol float64, res *Result) []int {
	kept := make([]int, 0, p.NumConstraints)
	for i, row := range p.A {
		if floats.Norm(row, math.Inf(1)) > tol {
			kept = append(kept, i)
			continue
		}
		if math.Abs(p.RHS[i]) > tol {
			res.Infeasible = true

			return nil
		}
		res.DroppedZero++
	}

	return kept
}

// dropDuplicateRows removes rows proportional to an earlier kept row.
// A consistent RHS ratio means redundancy; an inconsistent one means two
// parallel hyperplanes that never meet.
func dropDuplicateRows(p *lp.Problem, kept []int, tol float64, res *Result) []int {
	out := make([]int, 0, len(kept))
	for _, j := range kept {
		dup := false
		for _, i := range out {
			ratio, ok := rowRatio(p.A[i], p.A[j], tol)
			if !ok {
				continue
			}
			if math.Abs(p.RHS[j]-ratio*p.RHS[i]) <= tol*(1+math.Abs(p.RHS[i])) {
				res.DroppedDuplicate++
			} else {
				res.Infeasible = true

				return nil
			}
			dup = true

			break
		}
		if !dup {
			out = append(out, j)
		}
	}

	return out
}

// rowRatio reports whether b == ratio·a for some scalar ratio, using the
// first non-negligible entry of a as the anchor.
func rowRatio(a, b []float64, tol float64) (float64, bool) {
	anchor := -1
	for k, v := range a {
		if math.Abs(v) > tol {
			anchor = k

			break
		}
	}
	if anchor < 0 {
		return 0, false
	}

	ratio := b[anchor] / a[anchor]
	for k := range a {
		if math.Abs(b[k]-ratio*a[k]) > tol*(1+math.Abs(a[k])) {
			return 0, false
		}
	}

	return ratio, true
}

// dropDependentRows keeps the lexicographically first maximal independent
// subset of the rows: each candidate is orthogonalized against the
// accepted basis and rejected when its residual collapses. Deterministic
// by construction — row order decides every tie.
func dropDependentRows(p *lp.Problem, kept []int, tol float64, res *Result) []int {
	out := make([]int, 0, len(kept))
	basis := make([][]float64, 0, len(kept))
	for _, i := range kept {
		v := append([]float64(nil), p.A[i]...)
		for _, q := range basis {
			floats.AddScaled(v, -floats.Dot(q, v), q)
		}
		norm := floats.Norm(v, 2)
		if norm <= tol*(1+floats.Norm(p.A[i], 2)) {
			res.DroppedDependent++
			continue
		}
		floats.Scale(1/norm, v)
		basis = append(basis, v)
		out = append(out, i)
	}

	return out
}

// rhsReachable projects b onto the column space of the kept rows via a
// thin SVD and accepts when the residual vanishes. The orthant plays no
// role here: an unreachable b dooms the system outright.
func rhsReachable(p *lp.Problem, kept []int, tol float64, res *Result) bool {
	k, n := len(kept), p.NumVars
	a := mat.NewDense(k, n, nil)
	b := mat.NewVecDense(k, nil)
	for r, i := range kept {
		a.SetRow(r, p.A[i])
		b.SetVec(r, p.RHS[i])
	}

	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDThin) {
		// Factorization failure is treated as "cannot certify"; let the
		// solver's artificial variables arbitrate.
		return true
	}

	values := svd.Values(nil)
	rank := 0
	for _, s := range values {
		if s > tol*(1+values[0]) {
			rank++
		}
	}
	if rank == k {
		// Full row rank: b trivially lies in the row image.
		return true
	}

	var u mat.Dense
	svd.UTo(&u)
	ur := u.Slice(0, k, 0, rank)

	var coeff, proj mat.VecDense
	coeff.MulVec(ur.T(), b)
	proj.MulVec(ur, &coeff)

	resid := 0.0
	for r := 0; r < k; r++ {
		d := b.AtVec(r) - proj.AtVec(r)
		resid += d * d
	}
	res.ProjectionResidue = math.Sqrt(resid)

	return res.ProjectionResidue <= tol*(1+mat.Norm(b, 2))
}

// reducedProblem deep-copies the kept rows into a fresh Problem.
func reducedProblem(p *lp.Problem, kept []int) (*lp.Problem, error) {
	a := make([][]float64, len(kept))
	rhs := make([]float64, len(kept))
	rel := make([]lp.Relation, len(kept))
	for r, i := range kept {
		a[r] = p.A[i]
		rhs[r] = p.RHS[i]
		rel[r] = lp.EQ
	}

	return lp.NewProblem(p.Objective, a, rhs, rel, p.Direction)
}
