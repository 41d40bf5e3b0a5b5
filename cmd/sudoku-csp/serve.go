package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	httpadapter "svw.info/sudoku-csp/internal/adapters/http"
	"svw.info/sudoku-csp/internal/generator"
	"svw.info/sudoku-csp/internal/hint"
	"svw.info/sudoku-csp/internal/infrastructure/corpus"
	"svw.info/sudoku-csp/internal/infrastructure/report"
	"svw.info/sudoku-csp/internal/ports"
	"svw.info/sudoku-csp/internal/solver"
	"svw.info/sudoku-csp/internal/usecase"
	"svw.info/sudoku-csp/internal/validator"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the JSON API",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		s, name, err := buildSolver()
		if err != nil {
			return err
		}
		addr, _ := cmd.Flags().GetString("addr")
		corpusPath, _ := cmd.Flags().GetString("corpus")
		reportDir, _ := cmd.Flags().GetString("report-dir")

		var c ports.Corpus = corpus.NewBuiltin()
		if corpusPath != "" {
			c = corpus.NewCSVFile(corpusPath)
		}

		// Providers -> use cases -> HTTP adapter. The generator always
		// carves with the plain backtracker's uniqueness oracle.
		bt := solver.NewBacktrackingSolver()
		uc := usecase.NewService(s, generator.NewUniqueGenerator(bt), validator.New(), hint.NewSingles(), c, report.NewFS(reportDir))
		h := httpadapter.New(uc)

		mux := http.NewServeMux()
		h.Register(mux)

		srv := &http.Server{
			Addr:              addr,
			Handler:           httpadapter.RequestLogger(log, mux),
			ReadHeaderTimeout: 5 * time.Second,
		}
		log.Info().Str("addr", addr).Str("solver", name).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("corpus", "", "CSV corpus file served at /api/puzzles")
	serveCmd.Flags().String("report-dir", "./reports", "report storage directory")
	rootCmd.AddCommand(serveCmd)
}
