package domain

import "strings"

// Difficulty labels target puzzle generation & grading.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a case-insensitive name to a Difficulty, defaulting
// to Medium for anything unrecognised.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(s) {
	case "easy":
		return Easy
	case "hard":
		return Hard
	case "expert":
		return Expert
	default:
		return Medium
	}
}
