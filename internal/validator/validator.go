package validator

import (
	"context"

	"svw.info/sudoku-csp/internal/domain"
)

// FastValidator scans the 27 units (rows, columns, boxes) with bit masks
// and reports the coordinates of duplicated values.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

// units lists the 27 groups of 9 coordinates built once at init.
var units = buildUnits()

func buildUnits() [27][9]domain.CellCoord {
	var u [27][9]domain.CellCoord
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			// row i, col i, box i
			u[i][j] = domain.CellCoord{Row: i, Col: j}
			u[9+i][j] = domain.CellCoord{Row: j, Col: i}
			u[18+i][j] = domain.CellCoord{Row: (i/3)*3 + j/3, Col: (i%3)*3 + j%3}
		}
	}
	return u
}

func (v *FastValidator) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	conf := make([]domain.CellCoord, 0, 8)
	for _, unit := range units {
		m := uint16(0)
		for _, cc := range unit {
			val := b.Values[cc.Row][cc.Col]
			if val == 0 {
				continue
			}
			bit := uint16(1) << val
			if m&bit != 0 {
				conf = append(conf, cc)
			}
			m |= bit
		}
	}
	return len(conf) == 0, conf, nil
}

// Complete reports whether the board is fully assigned and conflict-free.
func (v *FastValidator) Complete(ctx context.Context, b *domain.Board) (bool, error) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if b.Values[r][c] == 0 {
				return false, nil
			}
		}
	}
	ok, _, err := v.Validate(ctx, b)
	return ok, err
}
