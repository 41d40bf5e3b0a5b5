package main

import (
	"github.com/spf13/cobra"

	"svw.info/sudoku-csp/internal/bench"
	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/infrastructure/corpus"
	"svw.info/sudoku-csp/internal/infrastructure/report"
	"svw.info/sudoku-csp/internal/ports"
	"svw.info/sudoku-csp/internal/validator"
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Solve a puzzle corpus and aggregate solve statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		s, name, err := buildSolver()
		if err != nil {
			return err
		}
		corpusPath, _ := cmd.Flags().GetString("corpus")
		diffStr, _ := cmd.Flags().GetString("difficulty")
		timeout, _ := cmd.Flags().GetDuration("timeout")
		reportDir, _ := cmd.Flags().GetString("report-dir")

		var c ports.Corpus = corpus.NewBuiltin()
		if corpusPath != "" {
			c = corpus.NewCSVFile(corpusPath)
		}
		ctx := cmd.Context()
		var puzzles []domain.Puzzle
		if diffStr != "" {
			puzzles, err = c.ListByDifficulty(ctx, domain.ParseDifficulty(diffStr))
		} else {
			puzzles, err = c.List(ctx)
		}
		if err != nil {
			return err
		}
		log.Info().Int("puzzles", len(puzzles)).Str("solver", name).Msg("bench start")

		runner := &bench.Runner{
			Solver:     s,
			Validator:  validator.New(),
			SolverName: name,
			Timeout:    timeout,
			Log:        log,
		}
		rep, err := runner.Run(ctx, puzzles)
		if err != nil {
			return err
		}
		log.Info().
			Int("puzzles", rep.Puzzles).
			Int("solved", rep.Solved).
			Int("totalNodes", rep.TotalNodes).
			Dur("totalDur", rep.TotalDuration).
			Dur("avgDur", rep.AvgDuration).
			Msg("bench done")

		if reportDir != "" {
			if err := report.NewFS(reportDir).Save(ctx, rep); err != nil {
				return err
			}
			log.Info().Str("id", rep.ID).Str("dir", reportDir).Msg("report saved")
		}
		return nil
	},
}

func init() {
	f := benchCmd.Flags()
	f.String("corpus", "", "CSV corpus file (default: built-in evil set)")
	f.String("difficulty", "", "only solve puzzles with this difficulty label")
	f.Duration("timeout", 0, "per-puzzle solve timeout (0 = none)")
	f.String("report-dir", "", "persist the run report under this directory")
	rootCmd.AddCommand(benchCmd)
}
