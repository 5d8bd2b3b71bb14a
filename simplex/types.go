package simplex

import "errors"

// ErrNilProblem indicates that a nil *lp.Problem was passed to Solve.
var ErrNilProblem = errors.New("simplex: problem is nil")

// Numeric policy defaults — single source of truth.
const (
	// DefaultTolerance is the non-negative threshold under which reduced
	// costs, pivot entries and RHS values are treated as zero.
	DefaultTolerance = 1e-9

	// DefaultBigMFactor is the safety factor applied on top of the input
	// cost magnitude when sizing the Big-M penalty:
	// M = DefaultBigMFactor × (1 + Σ|c_j|). Large enough to dominate any
	// finite structural cost, small enough to avoid catastrophic
	// cancellation in the objective row.
	DefaultBigMFactor = 1e4

	// DefaultIterationFactor scales the default pivot cap with problem
	// size: MaxIterations = DefaultIterationFactor × (n + m).
	DefaultIterationFactor = 100
)

// Options configures a single call to Solve.
//
// Tolerance     – numeric zero threshold (> 0). Default 1e-9.
// MaxIterations – pivot cap; 0 means DefaultIterationFactor×(n+m).
// BigMFactor    – safety factor for the Big-M penalty (> 1). Default 1e4.
// TwoPhase      – replace Big-M with the two-phase formulation.
type Options struct {
	Tolerance     float64
	MaxIterations int
	BigMFactor    float64
	TwoPhase      bool
}

// Option is a functional option for configuring Solve.
type Option func(*Options)

// WithTolerance overrides the numeric zero threshold.
// Must be positive; non-positive values panic (programmer error).
func WithTolerance(tol float64) Option {
	return func(o *Options) {
		if tol <= 0 {
			panic("simplex: tolerance must be positive")
		}
		o.Tolerance = tol
	}
}

// WithMaxIterations sets an explicit pivot cap.
// Must be positive; non-positive values panic (programmer error).
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic("simplex: iteration cap must be positive")
		}
		o.MaxIterations = n
	}
}

// WithBigMFactor overrides the Big-M safety factor.
// Must exceed 1; otherwise the penalty cannot dominate structural costs.
func WithBigMFactor(f float64) Option {
	return func(o *Options) {
		if f <= 1 {
			panic("simplex: Big-M factor must exceed 1")
		}
		o.BigMFactor = f
	}
}

// WithTwoPhase switches the solver to the two-phase formulation: phase 1
// minimizes the artificial sum to find a feasible basis, phase 2 restores
// the true objective. Numerically safer than Big-M for badly scaled
// inputs, at the cost of a second pivot loop.
func WithTwoPhase() Option {
	return func(o *Options) {
		o.TwoPhase = true
	}
}

// DefaultOptions returns the documented defaults. MaxIterations is left 0
// and resolved against the problem size inside Solve.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: 0,
		BigMFactor:    DefaultBigMFactor,
		TwoPhase:      false,
	}
}
