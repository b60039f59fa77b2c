package analysis

import (
	"strings"

	"skillscan/internal/errors"
)

// Difficulty is a question difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty validates and normalizes a difficulty string.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium:
		return DifficultyMedium, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", errors.NewValidationError(errors.ErrCodeInvalidDifficulty,
			"difficulty must be one of easy, medium, hard", nil).
			WithContext("difficulty", s)
	}
}

// NextDifficulty maps a 0-100 score and the current level to the level of
// the next question. A score of 80 or more escalates, 50-79 stays, below 50
// de-escalates; transitions saturate at easy and hard. The function is
// memoryless: it depends only on its arguments.
func NextDifficulty(score int, current Difficulty) Difficulty {
	switch {
	case score >= 80:
		switch current {
		case DifficultyEasy:
			return DifficultyMedium
		default:
			return DifficultyHard
		}
	case score >= 50:
		return current
	default:
		switch current {
		case DifficultyHard:
			return DifficultyMedium
		default:
			return DifficultyEasy
		}
	}
}
