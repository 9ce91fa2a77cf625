package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/atreya/mindplay/internal/config"
	"github.com/atreya/mindplay/internal/level"
	"github.com/atreya/mindplay/internal/progression"
	"github.com/atreya/mindplay/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recent games and the current streak",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		cfg := config.Load()

		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		ctx := cmd.Context()
		childID := resolveChildID(cmd, cfg)

		catalog := level.LoadCatalog(cfg.LevelsPath)
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		prog := progression.New(catalog, st, rng, zerolog.Nop())

		streak, total, err := prog.Stats(ctx, childID, time.Now())
		if err != nil {
			return fmt.Errorf("load stats: %w", err)
		}
		fmt.Printf("Player: %s\n", childID)
		fmt.Printf("Streak: %d days    Games played: %d\n\n", streak, total)

		rows, err := st.ResultRepo().Recent(ctx, childID, limit)
		if err != nil {
			return fmt.Errorf("load recent games: %w", err)
		}
		if len(rows) == 0 {
			fmt.Println("No games recorded yet.")
			return nil
		}

		fmt.Printf("%-12s %-14s %6s %7s %6s %6s\n",
			"When", "Game", "Score", "Time", "Tries", "Mood")
		for _, r := range rows {
			v, err := level.ParseVariant(r.Variant)
			name := r.Variant
			if err == nil {
				name = v.DisplayName()
			}
			fmt.Printf("%-12s %-14s %6d %6.0fs %6d %+6.2f\n",
				r.FinishedAt.Local().Format("Jan 02 15:04"),
				name,
				r.Score,
				float64(r.CompletionMs)/1000,
				r.RetryCount,
				r.Overall,
			)
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().Int("limit", 10, "Number of recent games to show")
}
