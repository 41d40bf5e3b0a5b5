package solver

import "sort"

// TieBreak selects how the degree tie-break reads neighbor assignment
// counts when MRV finds equally small domains.
type TieBreak int

const (
	// TieBreakSnapshot compares the counts recorded at graph link time.
	// Counts drift from reality as the search assigns cells; this is the
	// behavior-compatible default.
	TieBreakSnapshot TieBreak = iota
	// TieBreakLive recomputes the counts at selection time.
	TieBreakLive
)

// pickCell scans all unassigned cells, forward-checking each, and returns
// the index of the one with the fewest remaining candidates. Ties go to
// the cell with MORE assigned neighbors, forcing constrained regions
// early. Returns -1 when every cell is assigned.
func pickCell(a *arena, tb TieBreak) int {
	best := -1
	bestLen := 10
	for i := range a.cells {
		if a.cells[i].value != 0 {
			continue
		}
		n := domainSize(a.forwardCheck(i))
		switch {
		case best < 0 || n < bestLen:
			best, bestLen = i, n
		case n == bestLen && degree(a, tb, i) > degree(a, tb, best):
			best = i
		}
	}
	return best
}

func degree(a *arena, tb TieBreak, i int) int {
	if tb == TieBreakLive {
		return a.assignedCount(i)
	}
	return a.cells[i].assignedNeighbors
}

// orderValues returns cell i's candidates least-constraining first: sorted
// ascending by how many unassigned neighbors still hold the value in their
// domain. The sort is stable, so ties keep ascending value order.
func orderValues(a *arena, i int) []uint8 {
	c := &a.cells[i]
	vals := make([]uint8, 0, 9)
	for v := uint8(1); v <= 9; v++ {
		if c.candidates&(1<<v) != 0 {
			vals = append(vals, v)
		}
	}
	if len(vals) < 2 {
		return vals
	}
	var score [10]int
	for _, v := range vals {
		for _, j := range c.neighbors {
			nb := &a.cells[j]
			if nb.value == 0 && nb.candidates&(1<<v) != 0 {
				score[v]++
			}
		}
	}
	sort.SliceStable(vals, func(x, y int) bool { return score[vals[x]] < score[vals[y]] })
	return vals
}
