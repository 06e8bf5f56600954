package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-shooter/internal/platform/tui"
	"github.com/vovakirdan/tui-shooter/internal/storage"
)

var (
	flagLimit  int
	flagOrigin string
	flagClear  bool
	flagBrowse bool
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show recorded play sessions",
	Long: `Display the most recent play sessions and a summary of all of them.

Examples:
  shooter sessions
  shooter sessions --limit 5
  shooter sessions --origin ssh:alice
  shooter sessions --browse
  shooter sessions --clear`,
	Args: cobra.NoArgs,
	Run:  runSessions,
}

func init() {
	sessionsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
	sessionsCmd.Flags().StringVar(&flagOrigin, "origin", "", "Only show sessions from this origin (local, window, ssh:<user>)")
	sessionsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded session")
	sessionsCmd.Flags().BoolVarP(&flagBrowse, "browse", "b", false, "Browse sessions interactively")
}

func runSessions(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearSessions(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("All sessions deleted.")
		return
	}

	if flagBrowse {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var sessions []storage.SessionRecord
	if flagOrigin != "" {
		sessions, err = store.SessionsByOrigin(flagOrigin, flagLimit)
	} else {
		sessions, err = store.RecentSessions(flagLimit)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent Sessions")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'shooter play' to record the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-14s  %-8s  %-5s  %-7s  %s\n", "Date", "Origin", "Time", "Shots", "Left", "End")
	fmt.Printf("  %-16s  %-14s  %-8s  %-5s  %-7s  %s\n", "----", "------", "----", "-----", "----", "---")

	for _, s := range sessions {
		left := fmt.Sprintf("%d", s.TargetsRemaining)
		if s.Cleared {
			left = "cleared"
		}
		fmt.Printf("  %-16s  %-14s  %-8s  %-5d  %-7s  %s\n",
			s.StartedAt.Format("2006-01-02 15:04"),
			s.Origin,
			s.Duration.Truncate(time.Second),
			s.ShotsFired,
			left,
			s.EndReason,
		)
	}

	sum, err := store.Summarize()
	if err == nil {
		fmt.Println()
		fmt.Printf("Total: %d sessions, %d cleared, %d shots, %s played\n",
			sum.Sessions, sum.Cleared, sum.ShotsFired, sum.PlayTime.Truncate(time.Second))
	}
}
