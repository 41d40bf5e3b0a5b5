package domain

import "strings"

// Difficulty labels puzzle corpora and generation targets.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	VeryHard
	Evil
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case VeryHard:
		return "very-hard"
	case Evil:
		return "evil"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a label to a Difficulty. Unknown labels default to
// Medium; corpus files use spellings like "Very Hard".
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	case "very hard", "very-hard", "veryhard":
		return VeryHard
	case "evil", "expert":
		return Evil
	default:
		return Medium
	}
}
