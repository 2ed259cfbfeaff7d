package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/abhisek/viralquiz/internal/app"
	"github.com/abhisek/viralquiz/internal/screens/compose"
	"github.com/abhisek/viralquiz/internal/screens/player"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command) error {
	if !isTerminal(cmd.OutOrStdout()) {
		return errors.New(`the terminal UI needs a TTY; use "viralquiz generate" or "viralquiz play" for plain output`)
	}

	d, err := loadDeps(cmd, true)
	if err != nil {
		return err
	}
	defer d.Close()

	return app.Run(app.Options{
		Generator: d.generator,
		Compose: compose.Config{
			Player: player.Config{Timings: d.cfg.Timings(), Logger: d.log},
			Logger: d.log,
		},
		Status: d.provider.ModelID(),
		Splash: true,
	})
}
