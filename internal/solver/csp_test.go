package solver

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/validator"
)

// A classic, solvable Sudoku and its unique solution.
const (
	classicLine = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	evilLine    = ".2.....7....5...4....1..........35...9..7..........1.81.5...6..4...2.......8....."
)

var classicSolved = [9]string{
	"534678912",
	"672195348",
	"198342567",
	"859761423",
	"426853791",
	"713924856",
	"961537284",
	"287419635",
	"345286179",
}

func solvedLine() string { return strings.Join(classicSolved[:], "") }

func mustParse(t *testing.T, line string) *domain.Board {
	t.Helper()
	b, err := domain.ParseClueLine(line)
	require.NoError(t, err)
	return b
}

func requireValidSolution(t *testing.T, in, out *domain.Board) {
	t.Helper()
	ok, conf, err := validator.New().Validate(context.Background(), out)
	require.NoError(t, err)
	require.True(t, ok, "conflicts: %v", conf)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			require.NotZero(t, out.Values[r][c], "unsolved cell r=%d c=%d", r, c)
			if in.Fixed[r][c] {
				require.Equal(t, in.Values[r][c], out.Values[r][c],
					"clue overwritten at r=%d c=%d", r, c)
			}
		}
	}
}

func TestCSPSolveClassic(t *testing.T) {
	in := mustParse(t, classicLine)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	out, st, err := NewCSPSolver().Solve(ctx, in)
	require.NoError(t, err, "nodes=%d dur=%v", st.Nodes, st.Duration)
	requireValidSolution(t, in, out)
	assert.Equal(t, solvedLine(), out.ClueLine())
}

func TestCSPSolveEvil(t *testing.T) {
	in := mustParse(t, evilLine)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	out, st, err := NewCSPSolver().Solve(ctx, in)
	require.NoError(t, err, "nodes=%d dur=%v", st.Nodes, st.Duration)
	requireValidSolution(t, in, out)
}

func TestCSPSolveDeterministic(t *testing.T) {
	ctx := context.Background()
	first, _, err := NewCSPSolver().Solve(ctx, mustParse(t, evilLine))
	require.NoError(t, err)
	second, _, err := NewCSPSolver().Solve(ctx, mustParse(t, evilLine))
	require.NoError(t, err)
	require.Equal(t, first.Values, second.Values)
}

func TestCSPAgreesWithBacktrackOnUniquePuzzle(t *testing.T) {
	ctx := context.Background()
	csp, _, err := NewCSPSolver().Solve(ctx, mustParse(t, classicLine))
	require.NoError(t, err)
	bt, _, err := NewBacktrackingSolver().Solve(ctx, mustParse(t, classicLine))
	require.NoError(t, err)
	require.Equal(t, bt.Values, csp.Values)
}

func TestCSPSolvedInputZeroNodes(t *testing.T) {
	in := mustParse(t, solvedLine())
	out, st, err := NewCSPSolver().Solve(context.Background(), in)
	require.NoError(t, err)
	assert.Zero(t, st.Nodes, "no search steps on an already-solved grid")
	assert.Equal(t, in.Values, out.Values)
}

func TestCSPNoSolution(t *testing.T) {
	// Start from the solved grid, plant a duplicate 5 in row 0 (and box 0),
	// and blank the cell whose only candidate that 5 steals.
	grid := []byte(solvedLine())
	grid[1] = '5'     // (0,1): was 3, duplicates (0,0)
	grid[3*9+1] = '.' // (3,1): was 5, now forced to 5 but blocked by column
	in := mustParse(t, string(grid))

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, st, err := NewCSPSolver().Solve(ctx, in)
	require.ErrorIs(t, err, ErrNoSolution)
	assert.Zero(t, st.Nodes)
}

func TestCSPNoSolutionDuplicateClues(t *testing.T) {
	// duplicates that never empty a domain must still terminate promptly
	cases := []struct {
		name string
		line string
	}{
		{
			// two 5s in row 0, 79 blanks: every column still needs a 5,
			// but the row can only hold one more
			"row duplicate, open board",
			"5.......5" + strings.Repeat(".", 72),
		},
		{
			// two 5s confined to box 0: the rest of the grid is
			// completable around them, so without the up-front check the
			// search would fill it and claim success
			"box duplicate, open board",
			"5........" + ".5......." + strings.Repeat(".", 63),
		},
		{
			// fully assigned grid with a duplicate: no cell is ever
			// selected, so only the up-front check can reject it
			"duplicate in full grid",
			strings.Replace(solvedLine(), "534", "554", 1),
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := mustParse(t, tc.line)
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()

			_, st, err := NewCSPSolver().Solve(ctx, in)
			require.ErrorIs(t, err, ErrNoSolution)
			require.NotErrorIs(t, err, context.DeadlineExceeded)
			assert.Zero(t, st.Nodes)
		})
	}
}

func TestCSPTieBreakModes(t *testing.T) {
	for _, tc := range []struct {
		name string
		tb   TieBreak
	}{
		{"snapshot", TieBreakSnapshot},
		{"live", TieBreakLive},
	} {
		t.Run(tc.name, func(t *testing.T) {
			in := mustParse(t, evilLine)
			s := &CSPSolver{TieBreak: tc.tb}
			out, _, err := s.Solve(context.Background(), in)
			require.NoError(t, err)
			requireValidSolution(t, in, out)

			again, _, err := s.Solve(context.Background(), mustParse(t, evilLine))
			require.NoError(t, err)
			require.Equal(t, out.Values, again.Values)
		})
	}
}

func TestCSPCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err := NewCSPSolver().Solve(ctx, mustParse(t, evilLine))
	require.ErrorIs(t, err, context.Canceled)
	require.NotErrorIs(t, err, ErrNoSolution)
}
