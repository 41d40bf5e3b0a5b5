package hint

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svw.info/sudoku-csp/internal/domain"
)

func TestHintFindsNakedSingle(t *testing.T) {
	b := &domain.Board{}
	// (0,8) sees 1..8 in its row, leaving only 9
	for c := 0; c < 8; c++ {
		b.Values[0][c] = uint8(c + 1)
	}
	h, ok, err := NewSingles().Hint(context.Background(), b)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.CellCoord{Row: 0, Col: 8}, h.Cell)
	assert.EqualValues(t, 9, h.Value)
	assert.NotEmpty(t, h.Message)
}

func TestHintNoneOnOpenBoard(t *testing.T) {
	_, ok, err := NewSingles().Hint(context.Background(), &domain.Board{})
	require.NoError(t, err)
	assert.False(t, ok)
}
