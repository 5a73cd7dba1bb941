package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

var (
	flagFrames   int
	flagCooldown int
)

var (
	summaryTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	summaryLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	summaryValue = lipgloss.NewStyle().Bold(true)
	summaryBox   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless autopilot session",
	Long: `Run the game without a display. An autopilot turns toward the nearest
asteroid and fires when aligned. With a fixed --seed the run is reproducible.

Examples:
  asteroids sim --seed 7
  asteroids sim --frames 36000 --cooldown 5 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Maximum number of frames to simulate")
	simCmd.Flags().IntVar(&flagCooldown, "cooldown", 10, "Minimum frames between autopilot shots")
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagFrames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", flagFrames)
	}

	s, err := newSession(os.Stderr)
	if err != nil {
		return err
	}
	defer s.Close()

	s.game.Reset(s.ctx.Config)
	rep := asteroids.Simulate(s.game, asteroids.NewAutopilot(flagCooldown), flagFrames)
	s.ctx.Logger.Info("simulation finished", "frames", rep.Frames, "score", rep.State.Score, "game_over", rep.State.GameOver)

	fmt.Fprintln(cmd.OutOrStdout(), renderSummary(rep, s.ctx.Config.Seed))
	return nil
}

// renderSummary formats a simulation report as a small boxed table.
func renderSummary(rep asteroids.SimReport, seed int64) string {
	outcome := "survived"
	if rep.State.GameOver {
		outcome = "game over"
	}
	row := func(label string, value any) string {
		return lipgloss.JoinHorizontal(lipgloss.Top, summaryLabel.Render(label), summaryValue.Render(fmt.Sprint(value)))
	}
	body := lipgloss.JoinVertical(lipgloss.Left,
		summaryTitle.Render("Simulation"),
		row("Seed", seed),
		row("Frames", rep.Frames),
		row("Shots", rep.Shots),
		row("Hits", rep.Hits),
		row("Score", rep.State.Score),
		row("Outcome", outcome),
	)
	return summaryBox.Render(body)
}
