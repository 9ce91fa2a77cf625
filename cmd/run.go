package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/atreya/mindplay/internal/app"
	"github.com/atreya/mindplay/internal/config"
	"github.com/atreya/mindplay/internal/level"
	"github.com/atreya/mindplay/internal/logging"
	"github.com/atreya/mindplay/internal/progression"
	"github.com/atreya/mindplay/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// startLevel, when non-nil, opens straight into that level.
func runApp(cmd *cobra.Command, startLevel *level.Level) error {
	cfg := config.Load()

	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}

	log, logCloser, err := logging.Open(dbPath, cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logCloser.Close()

	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	catalog := level.LoadCatalog(cfg.LevelsPath)
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	prog := progression.New(catalog, st, rng, log)

	childID := resolveChildID(cmd, cfg)
	log.Info().Str("child", childID).Str("db", dbPath).Msg("starting")

	return app.Run(app.Options{
		Progression: prog,
		Catalog:     catalog,
		ChildID:     childID,
		StartLevel:  startLevel,
	})
}
