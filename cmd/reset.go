package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atreya/mindplay/internal/config"
	"github.com/atreya/mindplay/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete all saved data for a player",
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		cfg := config.Load()
		childID := resolveChildID(cmd, cfg)

		if !yes {
			fmt.Printf("This deletes every game, streak and trophy for %q.\n", childID)
			fmt.Println("Run again with --yes to confirm.")
			return nil
		}

		dbPath, err := resolveDBPath(cmd, cfg)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		if err := st.ResetChild(cmd.Context(), childID); err != nil {
			return err
		}
		fmt.Printf("All data for %q removed.\n", childID)
		return nil
	},
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}
