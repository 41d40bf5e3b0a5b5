package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/ports"
)

// ErrNoSolution reports root exhaustion: no assignment satisfies the
// clues. A normal outcome, not a fault.
var ErrNoSolution = errors.New("no solution")

// CSPSolver is a backtracking solver guided by MRV variable selection,
// a degree tie-break, LCV value ordering, and per-step forward checking.
type CSPSolver struct {
	TieBreak TieBreak
}

func NewCSPSolver() *CSPSolver { return &CSPSolver{} }

// Solve returns the first solution found, ErrNoSolution on exhaustion, or
// the context error if canceled mid-search.
func (s *CSPSolver) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	start := time.Now()
	a := newArena(b)
	if a.conflicted() {
		return nil, ports.Stats{Duration: time.Since(start)}, ErrNoSolution
	}
	nodes := 0

	var search func() bool
	search = func() bool {
		if ctx.Err() != nil {
			return false
		}
		i := pickCell(a, s.TieBreak)
		if i < 0 {
			return true // all cells assigned
		}
		c := &a.cells[i]
		if a.forwardCheck(i) == 0 {
			return false // dead branch, undo at the caller
		}
		for _, v := range orderValues(a, i) {
			// Re-check against assigned neighbors; forward check already
			// pruned these but the domain may be stale after deeper undos.
			if !a.allowed(i, v) {
				continue
			}
			nodes++
			c.value = v
			if search() {
				return true
			}
		}
		c.value = 0
		return false
	}

	if !search() {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return nil, st, fmt.Errorf("solve canceled: %w", err)
		}
		return nil, st, ErrNoSolution
	}
	out := &domain.Board{Values: a.grid(), Fixed: b.Fixed}
	return out, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
