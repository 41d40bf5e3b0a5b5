package ports

import (
	"context"
	"time"

	"svw.info/sudoku-csp/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver finds the first solution of a board, or reports that none exists.
type Solver interface {
	Solve(ctx context.Context, b *domain.Board) (*domain.Board, Stats, error)
}

// Uniquer tests whether a board has exactly one solution. Kept separate
// from Solver: the heuristic solver only ever returns the first solution.
type Uniquer interface {
	Unique(ctx context.Context, b *domain.Board) (bool, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, b *domain.Board) (ok bool, conflicts []domain.CellCoord, err error)
}

// Hinter returns the next forced placement if one exists.
type Hinter interface {
	Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error)
}

// Corpus supplies puzzle batches for solving and benchmarking.
type Corpus interface {
	List(ctx context.Context) ([]domain.Puzzle, error)
	ListByDifficulty(ctx context.Context, d domain.Difficulty) ([]domain.Puzzle, error)
}

// ReportStore persists batch-run reports as JSON.
type ReportStore interface {
	Save(ctx context.Context, r *domain.Report) error
	Load(ctx context.Context, id string) (*domain.Report, error)
	List(ctx context.Context) ([]domain.ReportMeta, error)
}
