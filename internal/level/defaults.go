package level

// defaultLevels is the built-in catalog used when no external catalog is
// configured or the configured one cannot be loaded.
var defaultLevels = []Level{
	{ID: "runner-easy", Variant: VariantRunner, Difficulty: DifficultyEasy, Speed: 1.0, ObstacleCount: 4, TimeLimitSecs: 60, DisplayName: "Gentle Breeze"},
	{ID: "runner-medium", Variant: VariantRunner, Difficulty: DifficultyMedium, Speed: 1.6, ObstacleCount: 7, TimeLimitSecs: 50, DisplayName: "Windy Day"},
	{ID: "runner-hard", Variant: VariantRunner, Difficulty: DifficultyHard, Speed: 2.4, ObstacleCount: 10, TimeLimitSecs: 45, DisplayName: "Meteor Storm"},

	{ID: "pattern-easy", Variant: VariantPattern, Difficulty: DifficultyEasy, Speed: 1.0, ObstacleCount: 0, TimeLimitSecs: 90, DisplayName: "First Echoes"},
	{ID: "pattern-medium", Variant: VariantPattern, Difficulty: DifficultyMedium, Speed: 1.4, ObstacleCount: 0, TimeLimitSecs: 75, DisplayName: "Quick Echoes"},
	{ID: "pattern-hard", Variant: VariantPattern, Difficulty: DifficultyHard, Speed: 1.8, ObstacleCount: 0, TimeLimitSecs: 60, DisplayName: "Lightning Echoes"},

	{ID: "snake-easy", Variant: VariantSnake, Difficulty: DifficultyEasy, Speed: 1.0, ObstacleCount: 0, TimeLimitSecs: 90, DisplayName: "Garden Stroll"},
	{ID: "snake-medium", Variant: VariantSnake, Difficulty: DifficultyMedium, Speed: 1.5, ObstacleCount: 3, TimeLimitSecs: 75, DisplayName: "Hedge Hunt"},
	{ID: "snake-hard", Variant: VariantSnake, Difficulty: DifficultyHard, Speed: 2.2, ObstacleCount: 6, TimeLimitSecs: 60, DisplayName: "Thorn Field"},

	{ID: "maze-easy", Variant: VariantMaze, Difficulty: DifficultyEasy, Speed: 1.0, ObstacleCount: 2, TimeLimitSecs: 60, DisplayName: "Hedge Path"},
	{ID: "maze-medium", Variant: VariantMaze, Difficulty: DifficultyMedium, Speed: 1.0, ObstacleCount: 4, TimeLimitSecs: 60, DisplayName: "Twisting Hedges"},
	{ID: "maze-hard", Variant: VariantMaze, Difficulty: DifficultyHard, Speed: 1.0, ObstacleCount: 6, TimeLimitSecs: 75, DisplayName: "The Labyrinth"},
}

// GridSize returns the play-field dimensions for grid variants at a
// given difficulty. The maze uses smaller grids so every cell stays
// visible in an 80x24 terminal.
func GridSize(v Variant, d Difficulty) (w, h int) {
	switch v {
	case VariantMaze:
		switch d {
		case DifficultyEasy:
			return 8, 6
		case DifficultyMedium:
			return 10, 7
		default:
			return 12, 8
		}
	case VariantSnake:
		return 16, 12
	case VariantRunner:
		return 24, 12
	}
	return 16, 12
}
