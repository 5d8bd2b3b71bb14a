package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/linprog/lp"
	"github.com/katalvlaran/linprog/simplex"
)

var (
	scaleSizes  []int
	scaleTrials int
	scaleSeed   int64
	scaleOut    string
)

var scaleCmd = &cobra.Command{
	Use:   "scale",
	Short: "Benchmark solve time against problem size and plot the curve",
	Long: `scale solves random dense feasible bounded LPs of increasing size
(n = m = size), averages the wall time per size over --trials runs, and
renders a runtime-vs-size plot.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScale()
	},
}

func runScale() error {
	pts := make(plotter.XYs, 0, len(scaleSizes))
	for _, size := range scaleSizes {
		mean, err := timeSolve(size, scaleTrials, scaleSeed)
		if err != nil {
			return err
		}
		logger.Info("measured",
			zap.Int("size", size),
			zap.Duration("mean", mean))
		pts = append(pts, plotter.XY{X: float64(size), Y: mean.Seconds() * 1e3})
	}

	p := plot.New()
	p.Title.Text = "simplex runtime scaling"
	p.X.Label.Text = "problem size (n = m)"
	p.Y.Label.Text = "mean solve time (ms)"
	p.Add(plotter.NewGrid())

	line, points, err := plotter.NewLinePoints(pts)
	if err != nil {
		return fmt.Errorf("build plot: %w", err)
	}
	p.Add(line, points)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, scaleOut); err != nil {
		return fmt.Errorf("save plot: %w", err)
	}
	logger.Info("plot written", zap.String("path", scaleOut))

	return nil
}

// timeSolve averages the solve wall time of one random dense bounded LP
// of the given size over the requested trials. Generation happens once,
// outside the timed region, so every trial solves the identical problem.
func timeSolve(size, trials int, seed int64) (time.Duration, error) {
	p, err := randomProblem(size, seed)
	if err != nil {
		return 0, err
	}

	var total time.Duration
	for trial := 0; trial < trials; trial++ {
		start := time.Now()
		sol, err := simplex.Solve(p)
		total += time.Since(start)
		if err != nil {
			return 0, err
		}
		if sol.Status != lp.Optimal {
			return 0, fmt.Errorf("size %d: unexpected status %s", size, sol.Status)
		}
	}

	return total / time.Duration(trials), nil
}

// randomProblem builds a dense feasible bounded maximization: strictly
// positive coefficients bound the region, positive RHS keeps the origin
// feasible.
func randomProblem(size int, seed int64) (*lp.Problem, error) {
	rng := rand.New(rand.NewSource(seed + int64(size)))

	c := make([]float64, size)
	for j := range c {
		c[j] = rng.Float64() * 10
	}
	a := make([][]float64, size)
	rhs := make([]float64, size)
	rel := make([]lp.Relation, size)
	for i := range a {
		a[i] = make([]float64, size)
		for j := range a[i] {
			a[i][j] = 0.1 + rng.Float64()
		}
		rhs[i] = 1 + rng.Float64()*9
		rel[i] = lp.LE
	}

	return lp.NewProblem(c, a, rhs, rel, lp.Maximize)
}

func init() {
	scaleCmd.Flags().IntSliceVar(&scaleSizes, "sizes", []int{10, 20, 40, 80, 160}, "problem sizes to measure")
	scaleCmd.Flags().IntVar(&scaleTrials, "trials", 5, "solves per size")
	scaleCmd.Flags().Int64Var(&scaleSeed, "seed", 1, "generator seed")
	scaleCmd.Flags().StringVar(&scaleOut, "out", "scale.png", "plot output path")
}
