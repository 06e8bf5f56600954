// shooter is a small arcade shooter: slide the craft along the bottom of the
// playfield and shoot down every target.
//
// Usage:
//
//	shooter play             - Play in the terminal
//	shooter play --window    - Play in a desktop window
//	shooter serve            - Start SSH server for remote play
//	shooter sessions         - Show recorded play sessions
//	shooter config           - Print the default game config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--db <path>          - Set database path (default: ~/.arcade/shooter.db)
//	--config <path>      - Use a custom game config YAML
//	--log-level <level>  - debug, info, warn or error (default: info)
//	--log-file <path>    - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
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
	Use:   "shooter",
	Short: "Shooter - Clear the sky in your terminal",
	Long: `Shooter is a minimal arcade game: a craft slides along the bottom of
the playfield and fires upward at a fixed formation of targets.

Available commands:
  play      - Play locally (terminal or window)
  serve     - Start SSH server for remote play
  sessions  - View recorded play sessions
  config    - Print the default game config

Examples:
  shooter play
  shooter play --window
  shooter serve --ssh :2222
  shooter sessions --limit 5`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/shooter.db", "Path to session database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger. Without --log-file logs go to
// fallback, which play mode sets to io.Discard because the game owns the
// terminal. The returned close function releases the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closeFn, nil
}
