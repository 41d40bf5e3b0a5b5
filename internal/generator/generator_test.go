package generator

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/solver"
)

func TestGenerateAllDifficulties(t *testing.T) {
	bt := solver.NewBacktrackingSolver()
	g := NewUniqueGenerator(bt)

	cases := []struct {
		name string
		diff domain.Difficulty
	}{
		{"easy", domain.Easy},
		{"medium", domain.Medium},
		{"hard", domain.Hard},
		{"very-hard", domain.VeryHard},
		{"evil", domain.Evil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()

			p, st, err := g.Generate(ctx, 12345, tc.diff)
			require.NoError(t, err)
			require.NotEmpty(t, p.ID)
			assert.Equal(t, tc.diff, p.Difficulty)
			assert.Less(t, st.Duration, 2*time.Second)

			givens := 0
			for r := 0; r < 9; r++ {
				for c := 0; c < 9; c++ {
					if p.Board.Values[r][c] != 0 {
						assert.True(t, p.Board.Fixed[r][c])
						givens++
					}
				}
			}
			require.GreaterOrEqual(t, givens, 17, "below minimum clue count")
			require.LessOrEqual(t, givens, 81)

			ok, _, err := bt.Unique(ctx, &p.Board)
			require.NoError(t, err)
			require.True(t, ok, "generated puzzle must have a unique solution")
		})
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	g := NewUniqueGenerator(solver.NewBacktrackingSolver())
	ctx := context.Background()

	a, _, err := g.Generate(ctx, 7, domain.Easy)
	require.NoError(t, err)
	b, _, err := g.Generate(ctx, 7, domain.Easy)
	require.NoError(t, err)
	// carving races the 900ms deadline, but the full grid is seed-driven
	assert.Equal(t, gridFromFull(a), gridFromFull(b))
}

// gridFromFull reconstructs the underlying solved grid by solving the
// puzzle back up.
func gridFromFull(p *domain.Puzzle) [9][9]uint8 {
	out, _, err := solver.NewBacktrackingSolver().Solve(context.Background(), &p.Board)
	if err != nil {
		return [9][9]uint8{}
	}
	return out.Values
}
