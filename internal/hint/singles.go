package hint

import (
	"context"
	"fmt"
	"math/bits"

	"svw.info/sudoku-csp/internal/domain"
)

// Singles is a minimal Hinter that finds the first naked single: an
// unassigned cell whose candidate set has shrunk to one value.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

func (h *Singles) Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] != 0 {
				continue
			}
			m := candidates(b, r, c)
			if bits.OnesCount16(m) == 1 {
				v := uint8(bits.TrailingZeros16(m))
				return domain.Hint{
					Message: fmt.Sprintf("single: only %d fits here", v),
					Cell:    domain.CellCoord{Row: r, Col: c},
					Value:   v,
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}

// candidates masks out every value visible from (r, c); bit v set means v
// is still possible.
func candidates(b *domain.Board, r, c int) uint16 {
	m := uint16(0x3FE)
	for i := 0; i < 9; i++ {
		m &^= 1 << b.Values[r][i]
		m &^= 1 << b.Values[i][c]
	}
	br, bc := (r/3)*3, (c/3)*3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			m &^= 1 << b.Values[br+dr][bc+dc]
		}
	}
	return m &^ 1
}
