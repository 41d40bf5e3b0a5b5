package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ClueLineLen is the length of a row-major clue line: 81 symbols over
// '.'/'0' (blank) and '1'..'9' (given).
const ClueLineLen = 81

// ErrMalformedClues reports a clue line outside the accepted alphabet or
// length. Surfaced at parse time, never mid-search.
var ErrMalformedClues = errors.New("malformed clue line")

// ParseClueLine builds a Board from an 81-character clue line. Givens are
// marked fixed.
func ParseClueLine(s string) (*Board, error) {
	if len(s) != ClueLineLen {
		return nil, fmt.Errorf("%w: %d characters, want %d", ErrMalformedClues, len(s), ClueLineLen)
	}
	b := &Board{}
	for i := 0; i < ClueLineLen; i++ {
		r, c := i/9, i%9
		switch ch := s[i]; {
		case ch == '.' || ch == '0':
			// blank
		case ch >= '1' && ch <= '9':
			b.Values[r][c] = ch - '0'
			b.Fixed[r][c] = true
		default:
			return nil, fmt.Errorf("%w: %q at position %d", ErrMalformedClues, ch, i)
		}
	}
	return b, nil
}

// ClueLine renders the board as an 81-character line, '.' for blanks.
func (b *Board) ClueLine() string {
	var sb strings.Builder
	sb.Grow(ClueLineLen)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := b.Values[r][c]; v == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + v)
			}
		}
	}
	return sb.String()
}

// String renders a box-drawn grid for terminal output.
func (b *Board) String() string {
	const border = "+-------+-------+-------+\n"
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r%3 == 0 {
			sb.WriteString(border)
		}
		for c := 0; c < 9; c++ {
			if c%3 == 0 {
				sb.WriteString("| ")
			}
			if v := b.Values[r][c]; v == 0 {
				sb.WriteString(". ")
			} else {
				sb.WriteByte('0' + v)
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("|\n")
	}
	sb.WriteString(border)
	return sb.String()
}
