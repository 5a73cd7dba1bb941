package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open an 800x600 window and play Asteroids with vector graphics.

Controls:
  Left/A     - Rotate left
  Right/D    - Rotate right
  Space      - Fire
  Q/Esc      - Quit (closing the window works too)`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func runWindow(cmd *cobra.Command, _ []string) error {
	s, err := newSession(os.Stderr)
	if err != nil {
		return err
	}
	defer s.Close()

	state, err := window.Run(s.ctx, s.game)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Final score: %d\n", state.Score)
	return nil
}
