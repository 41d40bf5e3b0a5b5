package bench

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/solver"
	"svw.info/sudoku-csp/internal/validator"
)

func puzzleFrom(t *testing.T, id, line string) domain.Puzzle {
	t.Helper()
	b, err := domain.ParseClueLine(line)
	require.NoError(t, err)
	return domain.Puzzle{ID: id, Board: *b}
}

func TestRunnerAggregates(t *testing.T) {
	const (
		classic = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
		evil    = ".2.....7....5...4....1..........35...9..7..........1.81.5...6..4...2.......8....."
	)
	r := &Runner{
		Solver:     solver.NewCSPSolver(),
		Validator:  validator.New(),
		SolverName: "csp",
		Log:        zerolog.Nop(),
	}
	puzzles := []domain.Puzzle{
		puzzleFrom(t, "a", classic),
		puzzleFrom(t, "b", evil),
	}

	rep, err := r.Run(context.Background(), puzzles)
	require.NoError(t, err)
	require.NotEmpty(t, rep.ID)
	assert.Equal(t, "csp", rep.Solver)
	assert.Equal(t, 2, rep.Puzzles)
	assert.Equal(t, 2, rep.Solved)
	require.Len(t, rep.Results, 2)
	assert.Equal(t, classic, rep.Results[0].Clues)
	assert.Positive(t, rep.TotalNodes)
	assert.Equal(t, rep.AvgDuration, rep.TotalDuration/2)
}

func TestRunnerRecordsNoSolution(t *testing.T) {
	// solved grid with a duplicate planted in row 0 and the forced cell blanked
	solved := "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
	grid := []byte(solved)
	grid[1] = '5'
	grid[3*9+1] = '.'

	r := &Runner{
		Solver:     solver.NewCSPSolver(),
		Validator:  validator.New(),
		SolverName: "csp",
		Log:        zerolog.Nop(),
	}
	rep, err := r.Run(context.Background(), []domain.Puzzle{puzzleFrom(t, "bad", string(grid))})
	require.NoError(t, err, "no-solution puzzles do not abort the batch")
	assert.Equal(t, 1, rep.Puzzles)
	assert.Equal(t, 0, rep.Solved)
	require.Len(t, rep.Results, 1)
	assert.False(t, rep.Results[0].Solved)
	assert.NotEmpty(t, rep.Results[0].Error)
}

func TestRunnerCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &Runner{Solver: solver.NewCSPSolver(), SolverName: "csp", Log: zerolog.Nop()}
	_, err := r.Run(ctx, []domain.Puzzle{{}})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunnerTimeoutApplies(t *testing.T) {
	r := &Runner{
		Solver:     solver.NewCSPSolver(),
		SolverName: "csp",
		Timeout:    time.Nanosecond,
		Log:        zerolog.Nop(),
	}
	evil := ".2.....7....5...4....1..........35...9..7..........1.81.5...6..4...2.......8....."
	rep, err := r.Run(context.Background(), []domain.Puzzle{puzzleFrom(t, "a", evil)})
	require.NoError(t, err)
	assert.Equal(t, 0, rep.Solved)
	assert.NotEmpty(t, rep.Results[0].Error)
}
