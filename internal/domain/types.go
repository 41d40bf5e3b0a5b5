package domain

import "time"

// Board holds current values and which cells are fixed givens.
type Board struct {
	Values [9][9]uint8 `json:"board"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Hint suggests the next forced placement.
type Hint struct {
	Message string    `json:"message,omitempty"`
	Cell    CellCoord `json:"cell"`
	Value   uint8     `json:"value"`
}

// Puzzle is a clue set with metadata, as loaded from a corpus or produced
// by the generator.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Board      Board      `json:"board"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	Name       string     `json:"name,omitempty"`
}

// SolveResult records the outcome of one solve attempt in a batch run.
type SolveResult struct {
	Clues    string        `json:"clues"`
	Solved   bool          `json:"solved"`
	Nodes    int           `json:"nodes"`
	Duration time.Duration `json:"duration"`
	Error    string        `json:"error,omitempty"`
}

// Report aggregates a batch run over a puzzle corpus.
type Report struct {
	ID            string        `json:"id"`
	Solver        string        `json:"solver"`
	CreatedAt     int64         `json:"createdAt"`
	Results       []SolveResult `json:"results"`
	Puzzles       int           `json:"puzzles"`
	Solved        int           `json:"solved"`
	TotalNodes    int           `json:"totalNodes"`
	TotalDuration time.Duration `json:"totalDuration"`
	AvgDuration   time.Duration `json:"avgDuration"`
}

// ReportMeta is a lightweight listing entry for persisted reports.
type ReportMeta struct {
	ID        string `json:"id"`
	Solver    string `json:"solver"`
	CreatedAt int64  `json:"createdAt"`
	Puzzles   int    `json:"puzzles"`
	Solved    int    `json:"solved"`
}
