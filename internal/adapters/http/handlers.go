package httpadapter

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"svw.info/sudoku-csp/internal/domain"
	"svw.info/sudoku-csp/internal/solver"
	"svw.info/sudoku-csp/internal/usecase"
)

type Handler struct {
	UC *usecase.Service
}

func New(uc *usecase.Service) *Handler { return &Handler{UC: uc} }

func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("/api/solve", h.handleSolve)
	mux.HandleFunc("/api/validate", h.handleValidate)
	mux.HandleFunc("/api/generate", h.handleGenerate)
	mux.HandleFunc("/api/hint", h.handleHint)
	mux.HandleFunc("/api/puzzles", h.handlePuzzles)
	mux.HandleFunc("/api/reports", h.handleReports)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// boardReq accepts either an 81-char clue line or an explicit grid.
type boardReq struct {
	Clues string      `json:"clues,omitempty"`
	Board [9][9]uint8 `json:"board,omitempty"`
}

func (r *boardReq) board() (*domain.Board, error) {
	if r.Clues != "" {
		return domain.ParseClueLine(r.Clues)
	}
	return &domain.Board{Values: r.Board}, nil
}

// ---- Solve ----

type solveResp struct {
	Board      [9][9]uint8 `json:"board,omitempty"`
	Clues      string      `json:"clues,omitempty"`
	DurationMs int64       `json:"durationMs,omitempty"`
	Nodes      int         `json:"nodes,omitempty"`
	Error      string      `json:"error,omitempty"`
}

func (h *Handler) handleSolve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, solveResp{Error: "method not allowed"})
		return
	}
	var req boardReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	in, err := req.board()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, solveResp{Error: err.Error()})
		return
	}
	out, st, err := h.UC.Solve(r.Context(), in)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, solver.ErrNoSolution) {
			status = http.StatusUnprocessableEntity
		}
		writeJSON(w, status, solveResp{Error: err.Error(), DurationMs: st.Duration.Milliseconds(), Nodes: st.Nodes})
		return
	}
	writeJSON(w, http.StatusOK, solveResp{
		Board:      out.Values,
		Clues:      out.ClueLine(),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Validate ----

type validateResp struct {
	OK        bool               `json:"ok"`
	Conflicts []domain.CellCoord `json:"conflicts,omitempty"`
	Error     string             `json:"error,omitempty"`
}

func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, validateResp{Error: "method not allowed"})
		return
	}
	var req boardReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, validateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	b, err := req.board()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, validateResp{Error: err.Error()})
		return
	}
	ok, conflicts, err := h.UC.Validate(r.Context(), b)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, validateResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, validateResp{OK: ok, Conflicts: conflicts})
}

// ---- Generate ----

type generateReq struct {
	Difficulty string `json:"difficulty,omitempty"`
	Seed       int64  `json:"seed,omitempty"`
}

type generateResp struct {
	Board      domain.Board `json:"board,omitempty"`
	Clues      string       `json:"clues,omitempty"`
	Seed       int64        `json:"seed,omitempty"`
	Difficulty string       `json:"difficulty,omitempty"`
	DurationMs int64        `json:"durationMs,omitempty"`
	Nodes      int          `json:"nodes,omitempty"`
	Error      string       `json:"error,omitempty"`
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, generateResp{Error: "method not allowed"})
		return
	}
	var req generateReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err.Error() != "EOF" {
		writeJSON(w, http.StatusBadRequest, generateResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	diff := domain.ParseDifficulty(req.Difficulty)
	p, st, err := h.UC.Generate(r.Context(), seed, diff)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, generateResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, generateResp{
		Board:      p.Board,
		Clues:      p.Board.ClueLine(),
		Seed:       seed,
		Difficulty: diff.String(),
		DurationMs: st.Duration.Milliseconds(),
		Nodes:      st.Nodes,
	})
}

// ---- Hint ----

type hintResp struct {
	Found bool        `json:"found"`
	Hint  domain.Hint `json:"hint,omitempty"`
	Error string      `json:"error,omitempty"`
}

func (h *Handler) handleHint(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, hintResp{Error: "method not allowed"})
		return
	}
	var req boardReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, hintResp{Error: "invalid JSON: " + err.Error()})
		return
	}
	b, err := req.board()
	if err != nil {
		writeJSON(w, http.StatusBadRequest, hintResp{Error: err.Error()})
		return
	}
	hh, ok, err := h.UC.Hint(r.Context(), b)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, hintResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, hintResp{Found: ok, Hint: hh})
}

// ---- Puzzles ----

type puzzleEntry struct {
	ID         string `json:"id"`
	Clues      string `json:"clues"`
	Difficulty string `json:"difficulty"`
}

type puzzlesResp struct {
	Puzzles []puzzleEntry `json:"puzzles"`
	Error   string        `json:"error,omitempty"`
}

func (h *Handler) handlePuzzles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, puzzlesResp{Error: "method not allowed"})
		return
	}
	var (
		ps  []domain.Puzzle
		err error
	)
	if q := r.URL.Query().Get("difficulty"); q != "" {
		ps, err = h.UC.PuzzlesByDifficulty(r.Context(), domain.ParseDifficulty(q))
	} else {
		ps, err = h.UC.Puzzles(r.Context())
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, puzzlesResp{Error: err.Error()})
		return
	}
	resp := puzzlesResp{Puzzles: make([]puzzleEntry, 0, len(ps))}
	for i := range ps {
		resp.Puzzles = append(resp.Puzzles, puzzleEntry{
			ID:         ps[i].ID,
			Clues:      ps[i].Board.ClueLine(),
			Difficulty: ps[i].Difficulty.String(),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

// ---- Reports ----

type reportsResp struct {
	Reports []domain.ReportMeta `json:"reports"`
	Error   string              `json:"error,omitempty"`
}

func (h *Handler) handleReports(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, reportsResp{Error: "method not allowed"})
		return
	}
	metas, err := h.UC.ListReports(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, reportsResp{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, reportsResp{Reports: metas})
}
