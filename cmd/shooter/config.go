package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in game configuration as YAML.

Save it as ~/.arcade/configs/shooter.yaml or ./configs/shooter.yaml and
edit it to change the playfield, speeds, fire cooldown or target layout.

Examples:
  shooter config > ~/.arcade/configs/shooter.yaml`,
	Args: cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		os.Stdout.Write(config.GetDefaultYAML())
	},
}
