package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Play Asteroids in the terminal. The 800x600 playfield is scaled to fit.

Controls:
  Left/A     - Rotate left
  Right/D    - Rotate right
  Space      - Fire
  Ctrl+S     - Save a text screenshot
  Q/Esc      - Quit

Examples:
  asteroids play
  asteroids play --seed 42 --fps 30
  asteroids play --log-file asteroids.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	// The terminal belongs to Bubble Tea, so logs are dropped unless a file is given.
	s, err := newSession(io.Discard)
	if err != nil {
		return err
	}
	defer s.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	state, err := tui.Run(s.ctx, s.game, width, height)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Final score: %d\n", state.Score)
	return nil
}
