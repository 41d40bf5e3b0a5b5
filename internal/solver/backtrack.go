package solver

import (
	"context"
	"fmt"
	"time"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/ports"
)

// BacktrackingSolver is a plain first-empty-cell solver with incremental
// row/col/box masks. No heuristics; it exists as a baseline and as the
// uniqueness oracle for the generator.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

// masks tracks used values per unit, bit v set means v is taken.
type masks struct {
	row, col, box [9]uint16
}

func newMasks(g *[9][9]uint8) *masks {
	m := &masks{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := g[r][c]; v != 0 {
				m.place(r, c, v)
			}
		}
	}
	return m
}

func boxOf(r, c int) int { return (r/3)*3 + c/3 }

func (m *masks) place(r, c int, v uint8) {
	bit := uint16(1) << v
	m.row[r] |= bit
	m.col[c] |= bit
	m.box[boxOf(r, c)] |= bit
}

func (m *masks) remove(r, c int, v uint8) {
	bit := uint16(1) << v
	m.row[r] &^= bit
	m.col[c] &^= bit
	m.box[boxOf(r, c)] &^= bit
}

func (m *masks) free(r, c int, v uint8) bool {
	bit := uint16(1) << v
	return (m.row[r]|m.col[c]|m.box[boxOf(r, c)])&bit == 0
}

// hasClueConflict reports a value appearing twice in any row, column, or
// box of the given grid.
func hasClueConflict(g *[9][9]uint8) bool {
	var row, col, box [9]uint16
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := g[r][c]
			if v == 0 {
				continue
			}
			bit := uint16(1) << v
			b := boxOf(r, c)
			if (row[r]|col[c]|box[b])&bit != 0 {
				return true
			}
			row[r] |= bit
			col[c] |= bit
			box[b] |= bit
		}
	}
	return false
}

func findEmpty(g *[9][9]uint8) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

func (s *BacktrackingSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	if hasClueConflict(&grid) {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrNoSolution
	}
	m := newMasks(&grid)
	nodes := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			if !m.free(r, c, v) {
				continue
			}
			nodes++
			grid[r][c] = v
			m.place(r, c, v)
			if dfs() {
				return true
			}
			grid[r][c] = 0
			m.remove(r, c, v)
		}
		return false
	}

	if !dfs() {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, st, fmt.Errorf("solve canceled: %w", err)
		}
		return nil, st, ErrNoSolution
	}
	out := &domain.Board{Values: grid, Fixed: b.Fixed}
	return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}

// Unique counts solutions up to 2 and reports whether exactly one exists.
func (s *BacktrackingSolver) Unique(ctx context.Context, b *domain.Board) (bool, ports.Stats, error) {
	start := time.Now()
	grid := b.Values
	if hasClueConflict(&grid) {
		return false, ports.Stats{Duration: time.Since(start)}, nil
	}
	m := newMasks(&grid)
	nodes := 0
	count := 0

	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || count >= 2 {
			return true // stop early
		}
		r, c, ok := findEmpty(&grid)
		if !ok {
			count++
			return count >= 2
		}
		for v := uint8(1); v <= 9; v++ {
			if !m.free(r, c, v) {
				continue
			}
			nodes++
			grid[r][c] = v
			m.place(r, c, v)
			stop := dfs()
			grid[r][c] = 0
			m.remove(r, c, v)
			if stop {
				return true
			}
		}
		return false
	}
	_ = dfs()
	return count == 1, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, ctx.Err()
}
