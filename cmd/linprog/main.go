// Command linprog is the command-line front end of the solver: it reads
// a problem file, runs the simplex pipeline, and writes the solution —
// plus a runtime-scaling benchmark that renders a plot.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/linprog/lp"
	"github.com/katalvlaran/linprog/lpio"
	"github.com/katalvlaran/linprog/presolve"
	"github.com/katalvlaran/linprog/simplex"
	"github.com/katalvlaran/linprog/verify"
)

var (
	verbose    bool
	maximize   bool
	runPre     bool
	runVerify  bool
	configPath string
	outPath    string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "linprog",
	Short: "linprog - deterministic simplex LP solver",
	Long: `linprog solves general-form linear programs (mixed <=, >=, = rows)
with the tableau simplex method, seeded by Big-M or an optional
two-phase formulation.

Problem files follow the lpio text format:

  n m
  c1 ... cn
  a11 ... a1n b1 <=|>=|=
  ...`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var solveCmd = &cobra.Command{
	Use:   "solve [problem-file]",
	Short: "Solve a problem file and print the solution",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSolve(args[0])
	},
}

func runSolve(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open problem: %w", err)
	}
	defer f.Close()

	dir := lp.Minimize
	if maximize {
		dir = lp.Maximize
	}
	p, err := lpio.ReadProblem(f, dir)
	if err != nil {
		return err
	}
	logger.Debug("problem loaded",
		zap.String("path", path),
		zap.Int("vars", p.NumVars),
		zap.Int("constraints", p.NumConstraints),
		zap.String("direction", p.Direction.String()))

	var opts []simplex.Option
	if configPath != "" {
		cfg, err := lpio.LoadConfig(configPath)
		if err != nil {
			return err
		}
		opts = cfg.Options()
	}

	if runPre {
		reduced, res, err := presolve.Run(p)
		if err != nil {
			return err
		}
		if res.Infeasible {
			logger.Info("presolve certified infeasibility",
				zap.Float64("projection_residue", res.ProjectionResidue))

			return writeSolution(lp.Solution{Status: lp.Infeasible})
		}
		logger.Debug("presolve done",
			zap.Int("kept_rows", len(res.KeptRows)),
			zap.Int("dropped_zero", res.DroppedZero),
			zap.Int("dropped_duplicate", res.DroppedDuplicate),
			zap.Int("dropped_dependent", res.DroppedDependent))
		p = reduced
	}

	sol, err := simplex.Solve(p, opts...)
	if err != nil {
		return err
	}
	logger.Info("solved",
		zap.String("status", sol.Status.String()),
		zap.Int("iterations", sol.Iterations))

	if runVerify {
		rep := verify.Check(p, sol, 0)
		for _, v := range rep.Violations {
			logger.Warn("constraint violated", zap.String("violation", v.String()))
		}
		if !rep.OK() {
			return fmt.Errorf("verification failed: max residual %g, objective gap %g",
				rep.MaxResidual, rep.ObjectiveGap)
		}
		logger.Debug("solution verified", zap.Float64("max_residual", rep.MaxResidual))
	}

	return writeSolution(sol)
}

func writeSolution(sol lp.Solution) error {
	w := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	return lpio.WriteSolution(w, sol)
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	solveCmd.Flags().BoolVar(&maximize, "maximize", false, "maximize the objective (default minimize)")
	solveCmd.Flags().BoolVar(&runPre, "presolve", false, "run the rank/feasibility pre-pass (equality form only)")
	solveCmd.Flags().BoolVar(&runVerify, "verify", false, "re-check the solution against the original problem")
	solveCmd.Flags().StringVar(&configPath, "config", "", "YAML solver config file")
	solveCmd.Flags().StringVarP(&outPath, "out", "o", "", "solution output file (default stdout)")

	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(scaleCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
