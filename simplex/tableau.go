package simplex

import "math"

// tableau is the (m+1)×(cols+1) pivot matrix: m constraint rows plus one
// objective row (last), cols variable columns plus one RHS column (last).
// It is a single flat row-major buffer, exclusively owned by the pivot
// loop and mutated in place — no aliasing, no hidden copies, so each
// pivot costs exactly one linear sweep of the buffer.
//
// Invariant (pivot normal form): for every constraint row r, column
// basis[r] holds 1 in row r and 0 in every other row, including the
// objective row. The objective row stores reduced costs; its RHS entry
// stores the negated current objective value.
type tableau struct {
	m, cols    int       // constraint rows, variable columns
	width      int       // cols + 1, stride of the flat buffer
	data       []float64 // (m+1)×width, row-major; objective row last
	basis      []int     // length m, current basic column per row
	nStruct    int       // leading structural columns
	artificial []bool    // per-column artificial marker
}

// at returns the value at (row, col); row m is the objective row.
func (t *tableau) at(row, col int) float64 {
	return t.data[row*t.width+col]
}

// set writes the value at (row, col).
func (t *tableau) set(row, col int, v float64) {
	t.data[row*t.width+col] = v
}

// rhs returns the RHS entry of the given row.
func (t *tableau) rhs(row int) float64 {
	return t.data[row*t.width+t.cols]
}

// objective returns the current objective value, de-negating the stored
// z-row entry.
func (t *tableau) objective() float64 {
	return -t.rhs(t.m)
}

// newTableau allocates the pivot matrix for a standard form, copying its
// constraint rows and RHS and marking artificial columns. The objective
// row starts zeroed; the caller installs costs via loadCosts.
func newTableau(sf *standardForm) *tableau {
	t := &tableau{
		m:          sf.m,
		cols:       sf.cols,
		width:      sf.cols + 1,
		data:       make([]float64, (sf.m+1)*(sf.cols+1)),
		basis:      append([]int(nil), sf.basis...),
		nStruct:    sf.n,
		artificial: make([]bool, sf.cols),
	}
	for _, col := range sf.artificial {
		t.artificial[col] = true
	}
	for i := 0; i < sf.m; i++ {
		copy(t.data[i*t.width:i*t.width+sf.cols], sf.a[i*sf.cols:(i+1)*sf.cols])
		t.set(i, t.cols, sf.rhs[i])
	}

	return t
}

// loadCosts installs a minimization cost vector (one entry per variable
// column) into the objective row, then eliminates the cost of every basic
// column by subtracting cost[basis[r]] times row r. Afterwards the
// objective row holds pure reduced costs: basic columns are exactly zero
// and no symbolic penalty term survives into pivot arithmetic.
func (t *tableau) loadCosts(cost []float64) {
	obj := t.data[t.m*t.width:]
	for j := 0; j < t.cols; j++ {
		obj[j] = cost[j]
	}
	obj[t.cols] = 0

	for r := 0; r < t.m; r++ {
		cb := cost[t.basis[r]]
		if cb == 0 {
			continue
		}
		row := t.data[r*t.width:]
		for j := 0; j <= t.cols; j++ {
			obj[j] -= cb * row[j]
		}
		// Re-pin the basic column: it must be exactly 0, not a rounding
		// residue, or the optimality scan could re-enter it.
		obj[t.basis[r]] = 0
	}
}

// bigMCosts builds the Big-M minimization cost vector: the (already
// direction-normalized) structural costs, zero for slack/surplus columns,
// and the penalty M on every artificial column. M scales with the input,
// M = factor × (1 + Σ|c_j|), so it dominates every finite structural
// cost without a hard-coded magnitude.
func bigMCosts(t *tableau, objective []float64, factor float64) []float64 {
	scale := 1.0
	for _, c := range objective {
		scale += math.Abs(c)
	}
	bigM := factor * scale

	cost := make([]float64, t.cols)
	copy(cost, objective)
	for j := t.nStruct; j < t.cols; j++ {
		if t.artificial[j] {
			cost[j] = bigM
		}
	}

	return cost
}

// driveOutArtificials removes every artificial variable still basic at
// zero level after a feasible phase 1 by pivoting its row onto any
// non-artificial column with a nonzero entry. The pivot RHS is zero, so
// no row's RHS moves and feasibility is preserved regardless of the
// entry's sign. A row whose non-artificial entries are all zero is
// redundant; its artificial stays basic but can never leave zero, since
// every later pivot has a zero factor in that row.
//
// Without this sweep a later pivot with a negative entry in such a row
// would lift the artificial to a positive level and a feasible system
// would be misreported as infeasible.
// Returns the number of pivots performed.
func (t *tableau) driveOutArtificials(tol float64) int {
	pivots := 0
	for r := 0; r < t.m; r++ {
		if !t.artificial[t.basis[r]] {
			continue
		}
		for j := 0; j < t.cols; j++ {
			if t.artificial[j] {
				continue
			}
			if entry := t.at(r, j); math.Abs(entry) > tol {
				t.pivot(pivotResult{enter: j, leave: r, value: entry})
				pivots++

				break
			}
		}
	}

	return pivots
}

// phaseOneCosts builds the phase-1 feasibility objective: unit cost on
// every artificial column, zero elsewhere. Its optimal value is zero
// exactly when the original system is feasible.
func phaseOneCosts(t *tableau) []float64 {
	cost := make([]float64, t.cols)
	for j := range cost {
		if t.artificial[j] {
			cost[j] = 1
		}
	}

	return cost
}

// structuralCosts widens a length-nStruct objective to the full column
// count, with zero cost on every auxiliary column.
func structuralCosts(t *tableau, objective []float64) []float64 {
	cost := make([]float64, t.cols)
	copy(cost, objective)

	return cost
}
