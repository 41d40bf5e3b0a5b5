package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/solver"
)

var solveCmd = &cobra.Command{
	Use:   "solve [clue-line...]",
	Short: "Solve 81-character clue lines from args or stdin",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		s, name, err := buildSolver()
		if err != nil {
			return err
		}
		timeout, _ := cmd.Flags().GetDuration("timeout")

		lines := args
		if len(lines) == 0 {
			sc := bufio.NewScanner(os.Stdin)
			for sc.Scan() {
				if l := strings.TrimSpace(sc.Text()); l != "" {
					lines = append(lines, l)
				}
			}
			if err := sc.Err(); err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
		}
		if len(lines) == 0 {
			return errors.New("no clue lines given")
		}

		for _, line := range lines {
			b, err := domain.ParseClueLine(line)
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			var cancel context.CancelFunc
			if timeout > 0 {
				ctx, cancel = context.WithTimeout(ctx, timeout)
			}
			out, st, err := s.Solve(ctx, b)
			if cancel != nil {
				cancel()
			}
			switch {
			case errors.Is(err, solver.ErrNoSolution):
				log.Warn().Str("clues", line).Int("nodes", st.Nodes).Dur("dur", st.Duration).Msg("no solution")
			case err != nil:
				return err
			default:
				log.Info().Str("solver", name).Int("nodes", st.Nodes).Dur("dur", st.Duration).Msg("solved")
				fmt.Print(out)
			}
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().Duration("timeout", 0, "per-puzzle solve timeout (0 = none)")
	rootCmd.AddCommand(solveCmd)
}
