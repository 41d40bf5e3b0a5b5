package report

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/sudoku-csp/internal/domain"
)

// FS persists bench reports as indented JSON under <dir>/<solver>/<id>.json.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func solverDir(name string) string {
	s := strings.TrimSpace(strings.ToLower(name))
	if s == "" {
		return "unknown"
	}
	return s
}

func (s *FS) pathFor(r *domain.Report) string {
	return filepath.Join(s.dir, solverDir(r.Solver), r.ID+".json")
}

func (s *FS) Save(ctx context.Context, r *domain.Report) error {
	if r == nil || r.ID == "" {
		return errors.New("invalid report: missing ID")
	}
	target := s.pathFor(r)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Report, error) {
	ents, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}
	for _, e := range ents {
		if !e.IsDir() {
			continue
		}
		path := filepath.Join(s.dir, e.Name(), id+".json")
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var out domain.Report
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}
	return nil, os.ErrNotExist
}

func (s *FS) List(ctx context.Context) ([]domain.ReportMeta, error) {
	var out []domain.ReportMeta
	dirs, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	for _, d := range dirs {
		if !d.IsDir() {
			continue
		}
		ents, err := os.ReadDir(filepath.Join(s.dir, d.Name()))
		if err != nil {
			continue
		}
		for _, e := range ents {
			name := e.Name()
			if e.IsDir() || !strings.HasSuffix(name, ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(s.dir, d.Name(), name))
			if err != nil {
				continue
			}
			var r domain.Report
			if err := json.Unmarshal(data, &r); err != nil || r.ID == "" {
				continue
			}
			out = append(out, domain.ReportMeta{
				ID:        r.ID,
				Solver:    r.Solver,
				CreatedAt: r.CreatedAt,
				Puzzles:   r.Puzzles,
				Solved:    r.Solved,
			})
		}
	}
	return out, nil
}
