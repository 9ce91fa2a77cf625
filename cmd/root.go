package cmd

import (
	"github.com/atreya/mindplay/internal/config"
	"github.com/atreya/mindplay/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mindplay",
	Short: "Timed mini-games for kids, in the terminal",
	Long:  "MindPlay — a terminal arcade of short games that tracks streaks, daily quests and how each session felt.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, nil)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MINDPLAY_DB env var)")
	rootCmd.PersistentFlags().String("child", "", "Player profile name (overrides MINDPLAY_CHILD env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(dailyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then MINDPLAY_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}

// resolveChildID returns the active player profile.
func resolveChildID(cmd *cobra.Command, cfg config.Config) string {
	if c, _ := cmd.Flags().GetString("child"); c != "" {
		return c
	}
	return cfg.ChildID
}
