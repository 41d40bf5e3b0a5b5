package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-csp/internal/domain"
)

const (
	lineA = ".2.....7....5...4....1..........35...9..7..........1.81.5...6..4...2.......8....."
	lineB = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
)

func writeCorpus(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "puzzles.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSVList(t *testing.T) {
	path := writeCorpus(t,
		"id,source,puzzle,a,b,c,difficulty\n"+
			"1,x,"+lineA+",,,,Evil\n"+
			"2,x,"+lineB+",,,,Easy\n"+
			"3,x,short,,,,Easy\n")

	ps, err := NewCSVFile(path).List(context.Background())
	require.NoError(t, err)
	require.Len(t, ps, 2, "header and malformed rows are skipped")
	assert.Equal(t, lineA, ps[0].Board.ClueLine())
	assert.Equal(t, domain.Evil, ps[0].Difficulty)
	assert.Equal(t, domain.Easy, ps[1].Difficulty)
}

func TestCSVListByDifficulty(t *testing.T) {
	path := writeCorpus(t,
		"1,x,"+lineA+",,,,Evil\n"+
			"2,x,"+lineB+",,,,Very Hard\n")

	ps, err := NewCSVFile(path).ListByDifficulty(context.Background(), domain.VeryHard)
	require.NoError(t, err)
	require.Len(t, ps, 1)
	assert.Equal(t, lineB, ps[0].Board.ClueLine())
}

func TestCSVMissingFile(t *testing.T) {
	_, err := NewCSVFile(filepath.Join(t.TempDir(), "nope.csv")).List(context.Background())
	require.Error(t, err)
}

func TestBuiltinCorpus(t *testing.T) {
	ps, err := NewBuiltin().List(context.Background())
	require.NoError(t, err)
	require.Len(t, ps, 10)
	for _, p := range ps {
		assert.Equal(t, domain.Evil, p.Difficulty)
		assert.Len(t, p.Board.ClueLine(), domain.ClueLineLen)
	}

	evil, err := NewBuiltin().ListByDifficulty(context.Background(), domain.Evil)
	require.NoError(t, err)
	assert.Len(t, evil, 10)

	easy, err := NewBuiltin().ListByDifficulty(context.Background(), domain.Easy)
	require.NoError(t, err)
	assert.Empty(t, easy)
}
