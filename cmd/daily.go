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

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Show today's daily quest",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		catalog := level.LoadCatalog(cfg.LevelsPath)
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		prog := progression.New(catalog, st, rng, zerolog.Nop())

		childID := resolveChildID(cmd, cfg)
		challenge, err := prog.DailyChallenge(cmd.Context(), childID, time.Now())
		if err != nil {
			return fmt.Errorf("load daily challenge: %w", err)
		}

		v, err := level.ParseVariant(challenge.Variant)
		if err != nil {
			return err
		}
		lvl, err := catalog.Get(v, challenge.LevelID)
		if err != nil {
			return err
		}

		status := "open — run `mindplay play` to take it on!"
		if challenge.Completed {
			status = "done for today ★"
		}
		fmt.Printf("Today's quest for %s:\n", childID)
		fmt.Printf("  %s — %s (%s)\n", v.DisplayName(), lvl.DisplayName, lvl.Difficulty)
		fmt.Printf("  Status: %s\n", status)
		return nil
	},
}
