package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default tuning file",
	Long: `Print the built-in tuning YAML. Save it as
~/.asteroids/configs/asteroids.yaml or ./configs/asteroids.yaml and edit the
values you want to change; missing keys keep their defaults.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
