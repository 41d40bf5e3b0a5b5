package bench

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/ports"
)

// Runner solves a batch of puzzles and aggregates stats. No-solution and
// per-puzzle timeouts are recorded, not fatal; only a canceled run context
// aborts the batch.
type Runner struct {
	Solver     ports.Solver
	Validator  ports.Validator
	SolverName string
	// Timeout bounds each solve; zero means unbounded.
	Timeout time.Duration
	Log     zerolog.Logger
}

func (r *Runner) Run(ctx context.Context, puzzles []domain.Puzzle) (*domain.Report, error) {
	rep := &domain.Report{
		ID:        uuid.NewString(),
		Solver:    r.SolverName,
		CreatedAt: time.Now().Unix(),
		Results:   make([]domain.SolveResult, 0, len(puzzles)),
	}
	for i := range puzzles {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		p := &puzzles[i]
		res := r.solveOne(ctx, p)
		rep.Results = append(rep.Results, res)
		rep.Puzzles++
		rep.TotalNodes += res.Nodes
		rep.TotalDuration += res.Duration
		if res.Solved {
			rep.Solved++
		}
		r.Log.Debug().
			Str("puzzle", p.ID).
			Bool("solved", res.Solved).
			Int("nodes", res.Nodes).
			Dur("dur", res.Duration).
			Msg("bench puzzle")
	}
	if rep.Puzzles > 0 {
		rep.AvgDuration = rep.TotalDuration / time.Duration(rep.Puzzles)
	}
	return rep, nil
}

func (r *Runner) solveOne(ctx context.Context, p *domain.Puzzle) domain.SolveResult {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}
	res := domain.SolveResult{Clues: p.Board.ClueLine()}
	out, st, err := r.Solver.Solve(ctx, &p.Board)
	res.Nodes = st.Nodes
	res.Duration = st.Duration
	if err != nil {
		res.Error = err.Error()
		return res
	}
	if r.Validator != nil {
		if ok, _, verr := r.Validator.Validate(ctx, out); verr != nil || !ok {
			res.Error = "solver returned an invalid grid"
			return res
		}
	}
	res.Solved = true
	return res
}
