package corpus

import (
	"context"
	"fmt"

	"svw.info/sudoku-csp/internal/domain"
)

// evilLines is the built-in benchmark set; the last two are Arto Inkala
// puzzles.
var evilLines = []string{
	".2.....7....5...4....1..........35...9..7..........1.81.5...6..4...2.......8.....",
	"1.......2.9.4...5...6...7...5.9.3.......7.......85..4.7.....6...3...9.8...2.....1",
	".......7..6..1...4..34..2..8....3.5...29..7...4..8...9.2..6...7...1..9..7....8.6.",
	"1..5..4....9.3.....7...8..5..1....3.8..6..5...9...7..8..4.2..1.2..8..6.......1..2",
	".8......1..7..4.2.6..3..7....2..9...1...6...8.3.4.......17..6...9...8..5.......4.",
	"1..4..8...4..3...9..9..6.5..5.3..........16......7...2..4.1.9..7..8....4.2...4.8.",
	"..5..97...6.....2.1..8....6.1.7....4..7.6..3.6....32.......6.4..9..5.1..8..1....2",
	"6.....2...9...1..5..8.3..4......2..15..6..9....7.9.....7...3..2...4..5....6.7..8.",
	"8..........36......7..9.2...5...7.......457.....1...3...1....68..85...1..9....4..",
	"1....7.9..3..2...8..96..5....53..9...1..8...26....4...3......1..4......7..7...3..",
}

// Builtin serves the hardcoded evil list when no corpus file is given.
type Builtin struct{}

func NewBuiltin() *Builtin { return &Builtin{} }

func (b *Builtin) List(ctx context.Context) ([]domain.Puzzle, error) {
	out := make([]domain.Puzzle, 0, len(evilLines))
	for i, line := range evilLines {
		board, err := domain.ParseClueLine(line)
		if err != nil {
			return nil, fmt.Errorf("builtin puzzle %d: %w", i, err)
		}
		out = append(out, domain.Puzzle{
			ID:         fmt.Sprintf("builtin-%02d", i),
			Difficulty: domain.Evil,
			Board:      *board,
		})
	}
	return out, nil
}

func (b *Builtin) ListByDifficulty(ctx context.Context, d domain.Difficulty) ([]domain.Puzzle, error) {
	if d != domain.Evil {
		return nil, nil
	}
	return b.List(ctx)
}
