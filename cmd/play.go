package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atreya/mindplay/internal/config"
	"github.com/atreya/mindplay/internal/level"
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Open the game menu, or jump straight into a game",
	Long: `Open the game menu. With a game name (runner, pattern, snake, maze)
the menu is skipped and that game starts at the chosen difficulty.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return runApp(cmd, nil)
		}

		v, err := level.ParseVariant(args[0])
		if err != nil {
			return err
		}
		diffName, _ := cmd.Flags().GetString("level")
		diff, err := level.ParseDifficulty(diffName)
		if err != nil {
			return err
		}

		cfg := config.Load()
		catalog := level.LoadCatalog(cfg.LevelsPath)
		lvl, err := catalog.ByDifficulty(v, diff)
		if err != nil {
			return fmt.Errorf("pick level: %w", err)
		}
		return runApp(cmd, &lvl)
	},
}

func init() {
	playCmd.Flags().String("level", "easy", "Difficulty: easy, medium or hard")
}
