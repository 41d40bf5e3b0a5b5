package usecase

import (
	"context"
	"errors"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/ports"
)

// Service is the facade the adapters talk to; every dependency is optional
// and guarded.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Corpus    ports.Corpus
	Reports   ports.ReportStore
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, c ports.Corpus, rs ports.ReportStore) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h, Corpus: c, Reports: rs}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, b *domain.Board) (*domain.Board, ports.Stats, error) {
	if u.Solver == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, b)
}

// SolveClues parses a clue line and solves it.
func (u *Service) SolveClues(ctx context.Context, clues string) (*domain.Board, ports.Stats, error) {
	b, err := domain.ParseClueLine(clues)
	if err != nil {
		return nil, ports.Stats{}, err
	}
	return u.Solve(ctx, b)
}

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d)
}

func (u *Service) Validate(ctx context.Context, b *domain.Board) (bool, []domain.CellCoord, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, b)
}

func (u *Service) Hint(ctx context.Context, b *domain.Board) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, b)
}

func (u *Service) Puzzles(ctx context.Context) ([]domain.Puzzle, error) {
	if u.Corpus == nil {
		return nil, errNotConfigured
	}
	return u.Corpus.List(ctx)
}

func (u *Service) PuzzlesByDifficulty(ctx context.Context, d domain.Difficulty) ([]domain.Puzzle, error) {
	if u.Corpus == nil {
		return nil, errNotConfigured
	}
	return u.Corpus.ListByDifficulty(ctx, d)
}

func (u *Service) SaveReport(ctx context.Context, r *domain.Report) error {
	if u.Reports == nil {
		return errNotConfigured
	}
	return u.Reports.Save(ctx, r)
}

func (u *Service) LoadReport(ctx context.Context, id string) (*domain.Report, error) {
	if u.Reports == nil {
		return nil, errNotConfigured
	}
	return u.Reports.Load(ctx, id)
}

func (u *Service) ListReports(ctx context.Context) ([]domain.ReportMeta, error) {
	if u.Reports == nil {
		return nil, errNotConfigured
	}
	return u.Reports.List(ctx)
}
