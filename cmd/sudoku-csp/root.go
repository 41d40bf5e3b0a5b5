package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"svw.info/sudoku-csp/internal/ports"
	"svw.info/sudoku-csp/internal/solver"
)

var rootCmd = &cobra.Command{
	Use:   "sudoku-csp",
	Short: "Heuristic Sudoku solver (MRV + degree + LCV backtracking)",
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("solver", "csp", "solver to use: csp|backtrack")
	pf.String("tie-break", "snapshot", "degree tie-break mode: snapshot|live")
	pf.String("log-level", "info", "debug|info|warn|error")
	cobra.OnInitialize(initConfig)
}

// initConfig lets SUDOKU_* environment variables back every root flag,
// e.g. SUDOKU_SOLVER=backtrack.
func initConfig() {
	viper.SetEnvPrefix("SUDOKU")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
	_ = viper.BindPFlags(rootCmd.PersistentFlags())
}

func newLogger() zerolog.Logger {
	lvl, err := zerolog.ParseLevel(viper.GetString("log-level"))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
}

// buildSolver picks the solver implementation from config. Returns the
// solver, its short name for logs and report buckets, and any config error.
func buildSolver() (ports.Solver, string, error) {
	tb := solver.TieBreakSnapshot
	switch mode := strings.ToLower(viper.GetString("tie-break")); mode {
	case "", "snapshot":
	case "live":
		tb = solver.TieBreakLive
	default:
		return nil, "", fmt.Errorf("unknown tie-break mode %q", mode)
	}
	switch kind := strings.ToLower(viper.GetString("solver")); kind {
	case "", "csp":
		return &solver.CSPSolver{TieBreak: tb}, "csp", nil
	case "backtrack", "backtracking":
		return solver.NewBacktrackingSolver(), "backtrack", nil
	default:
		return nil, "", fmt.Errorf("unknown solver %q", kind)
	}
}
