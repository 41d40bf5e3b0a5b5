package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/generator"
	"svw.info/sudoku-csp/internal/solver"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a puzzle with a unique solution",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		seed, _ := cmd.Flags().GetInt64("seed")
		diffStr, _ := cmd.Flags().GetString("difficulty")
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		diff := domain.ParseDifficulty(diffStr)

		g := generator.NewUniqueGenerator(solver.NewBacktrackingSolver())
		p, st, err := g.Generate(cmd.Context(), seed, diff)
		if err != nil {
			return err
		}
		log.Info().
			Str("id", p.ID).
			Int64("seed", seed).
			Str("difficulty", diff.String()).
			Int("nodes", st.Nodes).
			Dur("dur", st.Duration).
			Msg("generated")
		fmt.Println(p.Board.ClueLine())
		fmt.Print(&p.Board)
		return nil
	},
}

func init() {
	generateCmd.Flags().Int64("seed", 0, "RNG seed (0 = current time)")
	generateCmd.Flags().String("difficulty", "medium", "easy|medium|hard|very-hard|evil")
	rootCmd.AddCommand(generateCmd)
}
