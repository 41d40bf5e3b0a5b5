package corpus

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"svw.info/sudoku-csp/internal/domain"
)

// Default column layout of puzzle-rating CSV dumps: clue line in column 2,
// difficulty label in column 6.
const (
	defaultClueCol = 2
	defaultDiffCol = 6
)

// CSVFile reads a puzzle corpus from a CSV dataset. Rows whose clue column
// does not parse (headers included) are skipped, not fatal.
type CSVFile struct {
	Path    string
	ClueCol int
	DiffCol int
}

func NewCSVFile(path string) *CSVFile {
	return &CSVFile{Path: path, ClueCol: defaultClueCol, DiffCol: defaultDiffCol}
}

func (c *CSVFile) List(ctx context.Context) ([]domain.Puzzle, error) {
	return c.load(ctx, nil)
}

func (c *CSVFile) ListByDifficulty(ctx context.Context, d domain.Difficulty) ([]domain.Puzzle, error) {
	return c.load(ctx, &d)
}

func (c *CSVFile) load(ctx context.Context, want *domain.Difficulty) ([]domain.Puzzle, error) {
	f, err := os.Open(c.Path)
	if err != nil {
		return nil, fmt.Errorf("open corpus: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // ragged rows tolerated

	var out []domain.Puzzle
	row := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read corpus row %d: %w", row, err)
		}
		row++
		if len(rec) <= c.ClueCol {
			continue
		}
		board, err := domain.ParseClueLine(rec[c.ClueCol])
		if err != nil {
			if errors.Is(err, domain.ErrMalformedClues) {
				continue // header or junk row
			}
			return nil, err
		}
		diff := domain.Medium
		if len(rec) > c.DiffCol {
			diff = domain.ParseDifficulty(rec[c.DiffCol])
		}
		if want != nil && diff != *want {
			continue
		}
		out = append(out, domain.Puzzle{
			ID:         fmt.Sprintf("row-%d", row),
			Difficulty: diff,
			Board:      *board,
		})
	}
	return out, nil
}
