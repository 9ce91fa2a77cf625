package level

import "fmt"

// Variant identifies one of the four fixed mini-game rule sets.
type Variant string

const (
	VariantRunner  Variant = "runner"
	VariantPattern Variant = "pattern"
	VariantSnake   Variant = "snake"
	VariantMaze    Variant = "maze"
)

// Variants lists all game variants in display order.
var Variants = []Variant{VariantRunner, VariantPattern, VariantSnake, VariantMaze}

// ParseVariant converts a string to a Variant.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants {
		if string(v) == s {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown game variant %q", s)
}

// DisplayName returns the kid-facing name of a variant.
func (v Variant) DisplayName() string {
	switch v {
	case VariantRunner:
		return "Star Dodger"
	case VariantPattern:
		return "Echo Memory"
	case VariantSnake:
		return "Garden Snake"
	case VariantMaze:
		return "Maze Explorer"
	}
	return string(v)
}

// Difficulty grades a level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// ParseDifficulty converts a string to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return Difficulty(s), nil
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// Level holds the immutable tuning for one playable level.
// Loaded once per session and never mutated by the simulation.
type Level struct {
	ID            string     `json:"id"`
	Variant       Variant    `json:"variant"`
	Difficulty    Difficulty `json:"difficulty"`
	Speed         float64    `json:"speed"`
	ObstacleCount int        `json:"obstacle_count"`
	TimeLimitSecs int        `json:"time_limit_secs"`
	DisplayName   string     `json:"display_name"`
}
