package simplex_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linprog/lp"
	"github.com/katalvlaran/linprog/simplex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const delta = 1e-6

func mustProblem(t *testing.T, c []float64, a [][]float64, b []float64, rel []lp.Relation, dir lp.Direction) *lp.Problem {
	t.Helper()
	p, err := lp.NewProblem(c, a, b, rel, dir)
	require.NoError(t, err)

	return p
}

// TestSolve_TextbookMaximize solves the classic bounded maximization
//
//	max 3x1 + 5x2
//	s.t. x1 ≤ 4, 2x2 ≤ 12, 3x1 + 2x2 ≤ 18
//
// whose optimum is x = (2, 6) with objective 36.
func TestSolve_TextbookMaximize(t *testing.T) {
	p := mustProblem(t,
		[]float64{3, 5},
		[][]float64{{1, 0}, {0, 2}, {3, 2}},
		[]float64{4, 12, 18},
		[]lp.Relation{lp.LE, lp.LE, lp.LE},
		lp.Maximize,
	)

	sol, err := simplex.Solve(p)
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, sol.Status)
	assert.InDelta(t, 2, sol.X[0], delta)
	assert.InDelta(t, 6, sol.X[1], delta)
	assert.InDelta(t, 36, sol.Objective, delta)
}

// TestSolve_Infeasible detects the contradictory single-variable system
// x ≥ 5 ∧ x ≤ 3: the Big-M relaxation converges with an artificial
// variable still basic at a positive level, which must be reported as
// Infeasible rather than a spurious optimum.
func TestSolve_Infeasible(t *testing.T) {
	p := mustProblem(t,
		[]float64{1},
		[][]float64{{1}, {1}},
		[]float64{5, 3},
		[]lp.Relation{lp.GE, lp.LE},
		lp.Minimize,
	)

	sol, err := simplex.Solve(p)
	require.NoError(t, err)
	assert.Equal(t, lp.Infeasible, sol.Status)
	assert.Nil(t, sol.X, "no variable values on infeasible outcomes")
}

// TestSolve_Unbounded verifies that maximizing x1 subject only to x1 ≥ 0
// terminates with Unbounded: no row bounds the entering column.
func TestSolve_Unbounded(t *testing.T) {
	p := mustProblem(t,
		[]float64{1},
		[][]float64{{1}},
		[]float64{0},
		[]lp.Relation{lp.GE},
		lp.Maximize,
	)

	sol, err := simplex.Solve(p)
	require.NoError(t, err)
	assert.Equal(t, lp.Unbounded, sol.Status)
	assert.Nil(t, sol.X)
}

// TestSolve_NoConstraints handles m = 0: minimizing a non-negative cost
// vector over the non-negative orthant is optimal at the origin.
func TestSolve_NoConstraints(t *testing.T) {
	p := mustProblem(t, []float64{2, 3}, nil, nil, nil, lp.Minimize)

	sol, err := simplex.Solve(p)
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, sol.Status)
	assert.Equal(t, []float64{0, 0}, sol.X)
	assert.Zero(t, sol.Objective)
	assert.Zero(t, sol.Iterations)
}

// TestSolve_NoConstraintsNegativeCost handles the complementary m = 0
// case: any negative cost makes the minimization unbounded.
func TestSolve_NoConstraintsNegativeCost(t *testing.T) {
	p := mustProblem(t, []float64{-1, 3}, nil, nil, nil, lp.Minimize)

	sol, err := simplex.Solve(p)
	require.NoError(t, err)
	assert.Equal(t, lp.Unbounded, sol.Status)
}

// TestSolve_EqualityMinimize ports a known equality-form system:
//
//	min −10x1 − 12x2 − 12x3
//	s.t. x1+2x2+2x3+x4 = 20, 2x1+x2+2x3+x5 = 20, 2x1+2x2+x3+x6 = 20
//
// with optimum x = (4,4,4,0,0,0) and objective −136.
func TestSolve_EqualityMinimize(t *testing.T) {
	p := mustProblem(t,
		[]float64{-10, -12, -12, 0, 0, 0},
		[][]float64{
			{1, 2, 2, 1, 0, 0},
			{2, 1, 2, 0, 1, 0},
			{2, 2, 1, 0, 0, 1},
		},
		[]float64{20, 20, 20},
		[]lp.Relation{lp.EQ, lp.EQ, lp.EQ},
		lp.Minimize,
	)

	sol, err := simplex.Solve(p)
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, sol.Status)
	assert.InDelta(t, -136, sol.Objective, delta)
	for j, want := range []float64{4, 4, 4, 0, 0, 0} {
		assert.InDelta(t, want, sol.X[j], delta, "x%d", j+1)
	}
}

// TestSolve_EqualityUnbounded ports the equality system x1 = x2 with
// objective −x1: the line x1 = x2 is unbounded in the improving direction.
func TestSolve_EqualityUnbounded(t *testing.T) {
	p := mustProblem(t,
		[]float64{-1, 0},
		[][]float64{{1, -1}, {-1, 1}},
		[]float64{0, 0},
		[]lp.Relation{lp.EQ, lp.EQ},
		lp.Minimize,
	)

	sol, err := simplex.Solve(p)
	require.NoError(t, err)
	assert.Equal(t, lp.Unbounded, sol.Status)
}

// TestSolve_DegenerateRatioTie pins termination on a degenerate tie:
// both rows of
//
//	max 2x1 + x2  s.t.  x1 ≤ 2,  x1 + x2 ≤ 2
//
// yield the same minimum ratio for the entering column; the smallest
// basic-index rule must break the tie and the loop must still terminate.
func TestSolve_DegenerateRatioTie(t *testing.T) {
	p := mustProblem(t,
		[]float64{2, 1},
		[][]float64{{1, 0}, {1, 1}},
		[]float64{2, 2},
		[]lp.Relation{lp.LE, lp.LE},
		lp.Maximize,
	)

	sol, err := simplex.Solve(p)
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, sol.Status)
	assert.InDelta(t, 4, sol.Objective, delta)
	assert.InDelta(t, 2, sol.X[0], delta)
	assert.InDelta(t, 0, sol.X[1], delta)
}

// TestSolve_NegativeRHS checks the row-flip path end to end:
// −x1 ≤ −2 is x1 ≥ 2, so minimizing x1 lands exactly on the bound.
func TestSolve_NegativeRHS(t *testing.T) {
	p := mustProblem(t,
		[]float64{1},
		[][]float64{{-1}},
		[]float64{-2},
		[]lp.Relation{lp.LE},
		lp.Minimize,
	)

	sol, err := simplex.Solve(p)
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, sol.Status)
	assert.InDelta(t, 2, sol.X[0], delta)
	assert.InDelta(t, 2, sol.Objective, delta)
}

// TestSolve_IterationLimit confirms the cap is reported as a status, not
// silently looped past: one pivot is not enough for the textbook problem.
func TestSolve_IterationLimit(t *testing.T) {
	p := mustProblem(t,
		[]float64{3, 5},
		[][]float64{{1, 0}, {0, 2}, {3, 2}},
		[]float64{4, 12, 18},
		[]lp.Relation{lp.LE, lp.LE, lp.LE},
		lp.Maximize,
	)

	sol, err := simplex.Solve(p, simplex.WithMaxIterations(1))
	require.NoError(t, err)
	assert.Equal(t, lp.IterationLimit, sol.Status)
	assert.Nil(t, sol.X)
	assert.Equal(t, 1, sol.Iterations)
}

// TestSolve_Deterministic re-solves the same problem and requires a
// bit-for-bit identical Solution — the fixed tie-break rules leave no
// room for run-to-run drift.
func TestSolve_Deterministic(t *testing.T) {
	p := mustProblem(t,
		[]float64{1, 4, 2},
		[][]float64{{1, 1, 1}, {2, 1, 0}, {0, 1, 3}},
		[]float64{10, 8, 9},
		[]lp.Relation{lp.LE, lp.GE, lp.EQ},
		lp.Minimize,
	)

	first, err := simplex.Solve(p)
	require.NoError(t, err)
	second, err := simplex.Solve(p)
	require.NoError(t, err)

	assert.Equal(t, first, second, "identical input must reproduce the identical Solution")
}

// TestSolve_TwoPhaseMatchesBigM solves mixed-relation systems in both
// modes and requires matching statuses and objective values.
func TestSolve_TwoPhaseMatchesBigM(t *testing.T) {
	problems := []*lp.Problem{
		mustProblem(t,
			[]float64{3, 5},
			[][]float64{{1, 0}, {0, 2}, {3, 2}},
			[]float64{4, 12, 18},
			[]lp.Relation{lp.LE, lp.LE, lp.LE},
			lp.Maximize,
		),
		mustProblem(t,
			[]float64{2, 3},
			[][]float64{{1, 1}, {1, 0}},
			[]float64{4, 1},
			[]lp.Relation{lp.EQ, lp.GE},
			lp.Minimize,
		),
	}

	for i, p := range problems {
		bigM, err := simplex.Solve(p)
		require.NoError(t, err, "problem %d", i)
		twoPhase, err := simplex.Solve(p, simplex.WithTwoPhase())
		require.NoError(t, err, "problem %d", i)

		require.Equal(t, bigM.Status, twoPhase.Status, "problem %d", i)
		assert.InDelta(t, bigM.Objective, twoPhase.Objective, delta, "problem %d", i)
	}
}

// TestSolve_TwoPhaseDegenerateArtificial covers a phase 1 that ends with
// an artificial variable still basic at zero level: in
//
//	min −x2  s.t.  x1 + x2 = 1,  x1 − x2 = 1
//
// the unique feasible point is (1, 0), so two-phase must report Optimal
// with objective 0 — not mistake the degenerate artificial for an
// infeasibility certificate once phase 2 starts pivoting.
func TestSolve_TwoPhaseDegenerateArtificial(t *testing.T) {
	p := mustProblem(t,
		[]float64{0, -1},
		[][]float64{{1, 1}, {1, -1}},
		[]float64{1, 1},
		[]lp.Relation{lp.EQ, lp.EQ},
		lp.Minimize,
	)

	sol, err := simplex.Solve(p, simplex.WithTwoPhase())
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, sol.Status)
	assert.InDelta(t, 1, sol.X[0], delta)
	assert.InDelta(t, 0, sol.X[1], delta)
	assert.InDelta(t, 0, sol.Objective, delta)
}

// TestSolve_TwoPhaseDependentRows keeps a redundant equality row in the
// system: after phase 1 its artificial sits at zero in an all-zero row
// that no pivot can leave, and phase 2 must still find the optimum of
// the underlying constraint.
func TestSolve_TwoPhaseDependentRows(t *testing.T) {
	p := mustProblem(t,
		[]float64{1, 1},
		[][]float64{{1, 1}, {2, 2}},
		[]float64{2, 4},
		[]lp.Relation{lp.EQ, lp.EQ},
		lp.Minimize,
	)

	sol, err := simplex.Solve(p, simplex.WithTwoPhase())
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, sol.Status)
	assert.InDelta(t, 2, sol.Objective, delta)
}

// TestSolve_TwoPhaseInfeasible certifies infeasibility through the
// phase-1 optimum instead of the penalty heuristic.
func TestSolve_TwoPhaseInfeasible(t *testing.T) {
	p := mustProblem(t,
		[]float64{1},
		[][]float64{{1}, {1}},
		[]float64{5, 3},
		[]lp.Relation{lp.GE, lp.LE},
		lp.Minimize,
	)

	sol, err := simplex.Solve(p, simplex.WithTwoPhase())
	require.NoError(t, err)
	assert.Equal(t, lp.Infeasible, sol.Status)
}

// TestSolve_RandomFeasibleBounded generates random LPs that are feasible
// (origin satisfies every ≤ row) and bounded (all coefficients strictly
// positive), and checks the feasibility round-trip: every optimum must
// satisfy the original constraints and reproduce c·x within tolerance.
func TestSolve_RandomFeasibleBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 25; trial++ {
		n := 2 + rng.Intn(5)
		m := 2 + rng.Intn(5)

		c := make([]float64, n)
		for j := range c {
			c[j] = rng.Float64() * 10
		}
		a := make([][]float64, m)
		b := make([]float64, m)
		rel := make([]lp.Relation, m)
		for i := range a {
			a[i] = make([]float64, n)
			for j := range a[i] {
				a[i][j] = 0.1 + rng.Float64()
			}
			b[i] = 1 + rng.Float64()*9
			rel[i] = lp.LE
		}

		p := mustProblem(t, c, a, b, rel, lp.Maximize)
		sol, err := simplex.Solve(p)
		require.NoError(t, err, "trial %d", trial)
		require.Equal(t, lp.Optimal, sol.Status, "trial %d", trial)

		// Feasibility round-trip.
		for i := range a {
			lhs := 0.0
			for j := range a[i] {
				lhs += a[i][j] * sol.X[j]
			}
			assert.LessOrEqual(t, lhs, b[i]+delta, "trial %d row %d", trial, i)
		}
		for j := range sol.X {
			assert.GreaterOrEqual(t, sol.X[j], -delta, "trial %d x%d non-negative", trial, j)
		}

		// Objective round-trip.
		dot := 0.0
		for j := range c {
			dot += c[j] * sol.X[j]
		}
		assert.InDelta(t, dot, sol.Objective, delta, "trial %d", trial)
		assert.False(t, math.IsNaN(sol.Objective), "trial %d", trial)
	}
}

// TestSolve_NilProblem returns ErrNilProblem instead of dereferencing.
func TestSolve_NilProblem(t *testing.T) {
	_, err := simplex.Solve(nil)
	assert.ErrorIs(t, err, simplex.ErrNilProblem)
}

// TestSolve_MalformedProblem propagates lp validation errors before any
// pivoting starts.
func TestSolve_MalformedProblem(t *testing.T) {
	p := &lp.Problem{NumVars: 2, Objective: []float64{1, 2}, NumConstraints: 1, A: [][]float64{{1}}, RHS: []float64{1}, Relations: []lp.Relation{lp.LE}}
	_, err := simplex.Solve(p)
	assert.ErrorIs(t, err, lp.ErrRowMismatch)
}

// TestOptions_PanicOnNonsense pins the option-constructor contract:
// invalid parameters are programmer errors and panic immediately.
func TestOptions_PanicOnNonsense(t *testing.T) {
	o := simplex.DefaultOptions()
	assert.Panics(t, func() { simplex.WithTolerance(0)(&o) })
	assert.Panics(t, func() { simplex.WithMaxIterations(-1)(&o) })
	assert.Panics(t, func() { simplex.WithBigMFactor(1)(&o) })
}
