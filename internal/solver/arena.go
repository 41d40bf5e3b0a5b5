package solver

import (
	"math/bits"

	"svw.info/sudoku-csp/internal/domain"
)

// fullDomain has bits 1..9 set; bit v means value v is still a candidate.
const fullDomain uint16 = 0x3FE

// position is a cell's fixed (box, row, col) identity.
type position struct {
	box, row, col uint8
}

// cell is one arena slot. Neighbors are arena indices, never pointers:
// the arena owns all 81 cells and cells only back-reference each other.
type cell struct {
	pos        position
	value      uint8
	candidates uint16
	// neighbors lists the 20 cells sharing a row, column, or box.
	// Filled once by link and read-only afterwards.
	neighbors [20]uint8
	// assignedNeighbors is a snapshot of how many neighbors held a value
	// when the graph was linked. The degree tie-break reads it as-is; it
	// is not maintained across assignments.
	assignedNeighbors int
}

// arena is the mutable search state for a single solve attempt.
type arena struct {
	cells [81]cell
}

// newArena seeds the arena from a board (clues applied first) and links
// the constraint graph, so assigned-neighbor snapshots count the clues.
func newArena(b *domain.Board) *arena {
	a := &arena{}
	for i := range a.cells {
		r, c := i/9, i%9
		a.cells[i] = cell{
			pos: position{
				box: uint8((r/3)*3 + c/3),
				row: uint8(r),
				col: uint8(c),
			},
			value:      b.Values[r][c],
			candidates: fullDomain,
		}
	}
	a.link()
	return a
}

// link builds the constraint graph by brute comparison; at 81x81 that is
// cheap and runs once per arena.
func (a *arena) link() {
	for i := range a.cells {
		ci := &a.cells[i]
		n := 0
		assigned := 0
		for j := range a.cells {
			if i == j {
				continue
			}
			cj := &a.cells[j]
			if cj.pos.box != ci.pos.box && cj.pos.row != ci.pos.row && cj.pos.col != ci.pos.col {
				continue
			}
			ci.neighbors[n] = uint8(j)
			n++
			if cj.value != 0 {
				assigned++
			}
		}
		ci.assignedNeighbors = assigned
	}
}

// forwardCheck recomputes cell i's candidate set from its assigned
// neighbors. Full recomputation, not an incremental diff.
func (a *arena) forwardCheck(i int) uint16 {
	m := fullDomain
	c := &a.cells[i]
	for _, j := range c.neighbors {
		if v := a.cells[j].value; v != 0 {
			m &^= 1 << v
		}
	}
	c.candidates = m
	return m
}

// assignedCount is the live counterpart of the snapshot taken by link.
func (a *arena) assignedCount(i int) int {
	n := 0
	for _, j := range a.cells[i].neighbors {
		if a.cells[j].value != 0 {
			n++
		}
	}
	return n
}

// conflicted reports whether two assigned cells sharing a unit hold the
// same value. Such boards have no solution; rejecting them up front keeps
// the search from grinding through an enormous refutation (or accepting a
// fully assigned grid with a duplicate).
func (a *arena) conflicted() bool {
	for i := range a.cells {
		v := a.cells[i].value
		if v == 0 {
			continue
		}
		for _, j := range a.cells[i].neighbors {
			if int(j) > i && a.cells[j].value == v {
				return true
			}
		}
	}
	return false
}

// allowed reports whether no assigned neighbor of cell i already holds v.
func (a *arena) allowed(i int, v uint8) bool {
	for _, j := range a.cells[i].neighbors {
		if a.cells[j].value == v {
			return false
		}
	}
	return true
}

func (a *arena) grid() [9][9]uint8 {
	var g [9][9]uint8
	for i := range a.cells {
		g[i/9][i%9] = a.cells[i].value
	}
	return g
}

func domainSize(m uint16) int { return bits.OnesCount16(m) }
