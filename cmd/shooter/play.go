package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/core"
	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/platform/window"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagWindow bool
	flagScale  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the shooter",
	Long: `Start a game in the terminal, or in a desktop window with --window.

Controls:
  Left/Right (h/l, a/d)  - Move
  Space                  - Fire
  P                      - Pause
  R                      - Restart
  Q/Esc/Ctrl+C           - Quit

Terminals report key presses but not releases, so in the terminal the
craft keeps moving while the key auto-repeats and stops shortly after.
Tune this with terminal.initial_release_ms and terminal.repeat_release_ms.

Examples:
  shooter play
  shooter play --fps 30
  shooter play --window --scale 2
  shooter play --config ./my-shooter.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWindow, "window", false, "Play in a desktop window instead of the terminal")
	playCmd.Flags().IntVar(&flagScale, "scale", 2, "Window pixels per playfield unit (with --window)")
}

func runPlay(_ *cobra.Command, _ []string) {
	fallback := io.Discard
	if flagWindow {
		fallback = os.Stderr
	}
	logger, closeLog, err := newLogger("shooter", fallback)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open session database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	var runErr error
	if flagWindow {
		runErr = window.Run(window.Options{
			Config:   gameCfg,
			TickRate: flagFPS,
			Scale:    flagScale,
			Store:    store,
			Logger:   logger,
		})
	} else {
		width, height := 80, 24 // Defaults
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		runErr = tui.Run(tui.Options{
			Config: gameCfg,
			Runtime: core.RuntimeConfig{
				ScreenW:  width,
				ScreenH:  height,
				TickRate: flagFPS,
			},
			Store:  store,
			Logger: logger,
			Origin: "local",
		})
	}

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
