package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/ascend/internal/app"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	e.log.Info("starting tui", "db", e.cfg.DBPath)
	return app.Run(app.Options{
		Auth:      e.auth,
		Journey:   e.journey,
		Community: e.community,
		Bank:      e.bank,
		Logger:    e.log,
	})
}
