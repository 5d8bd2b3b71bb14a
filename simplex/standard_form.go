package simplex

import "github.com/katalvlaran/linprog/lp"

// standardForm is the equality-only augmented system produced from a
// general-form problem: m rows over cols = n + slack/surplus/artificial
// columns, with every RHS non-negative and a feasible initial basis of
// slack or artificial columns. It is consumed exactly once, by the
// tableau builder, then discarded.
type standardForm struct {
	m, n       int       // constraint rows, structural variables
	cols       int       // total variable columns (n + added)
	a          []float64 // m×cols coefficients, row-major
	rhs        []float64 // length m, all non-negative
	basis      []int     // length m, initial basic column per row
	artificial []int     // ordered artificial column indices
}

// at returns the flat offset of (row, col). Bounds are guaranteed by
// construction; no runtime check in the hot path.
func (sf *standardForm) at(row, col int) int {
	return row*sf.cols + col
}

// standardize converts a validated general-form problem into standard form.
//
// Per row:
//   - LE: slack column (+1), which seeds the basis.
//   - GE: surplus column (−1) plus artificial column (+1); the artificial
//     seeds the basis — a negative surplus coefficient cannot.
//   - EQ: artificial column (+1), which seeds the basis.
//
// Rows with a negative RHS are negated first, flipping their relation, so
// every RHS is non-negative and the seeded basis is feasible.
// Complexity: O(m·(n+s)) time and memory.
func standardize(p *lp.Problem) (*standardForm, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	m, n := p.NumConstraints, p.NumVars

	// Resolve per-row sign flips and relations before sizing columns:
	// a flipped LE needs two extra columns, not one.
	rels := make([]lp.Relation, m)
	flip := make([]bool, m)
	extra := 0
	for i := 0; i < m; i++ {
		rels[i] = p.Relations[i]
		if p.RHS[i] < 0 {
			flip[i] = true
			rels[i] = rels[i].Flip()
		}
		if rels[i] == lp.GE {
			extra += 2
		} else {
			extra++
		}
	}

	sf := &standardForm{
		m:    m,
		n:    n,
		cols: n + extra,
		rhs:  make([]float64, m),
	}
	sf.a = make([]float64, m*sf.cols)
	sf.basis = make([]int, m)

	next := n // next free auxiliary column
	for i := 0; i < m; i++ {
		sign := 1.0
		if flip[i] {
			sign = -1
		}
		for j := 0; j < n; j++ {
			sf.a[sf.at(i, j)] = sign * p.A[i][j]
		}
		sf.rhs[i] = sign * p.RHS[i]

		switch rels[i] {
		case lp.LE:
			sf.a[sf.at(i, next)] = 1
			sf.basis[i] = next
			next++
		case lp.GE:
			sf.a[sf.at(i, next)] = -1
			next++
			sf.a[sf.at(i, next)] = 1
			sf.basis[i] = next
			sf.artificial = append(sf.artificial, next)
			next++
		case lp.EQ:
			sf.a[sf.at(i, next)] = 1
			sf.basis[i] = next
			sf.artificial = append(sf.artificial, next)
			next++
		}
	}

	return sf, nil
}
