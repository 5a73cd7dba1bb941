// asteroids is a minimal Asteroids arcade game for the terminal and the desktop.
//
// Usage:
//
//	asteroids play           - Play in the terminal
//	asteroids window         - Play in a desktop window
//	asteroids sim            - Run a headless autopilot session
//	asteroids config         - Print the default tuning file
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate from the config
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Path to a custom tuning YAML
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - rotate, shoot, survive",
	Long: `Asteroids is a minimal take on the arcade classic. A ship sits in the
middle of a wrapping 800x600 playfield; rotate it, shoot the drifting
asteroids and avoid touching any of them.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  sim      - Let the autopilot play without a display
  config   - Print the default tuning file

Examples:
  asteroids play
  asteroids window --seed 42
  asteroids sim --frames 3600 --log-level debug
  asteroids config > ~/.asteroids/configs/asteroids.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = value from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tuning YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}
