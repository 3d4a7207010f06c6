package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dvd/internal/storage"
)

var (
	flagLimit   int
	flagCorners bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show recorded screensaver sessions",
	Long: `Display recent sessions and the totals across every session.

Examples:
  dvd stats
  dvd stats --corners
  dvd stats --limit 25`,
	Args: cobra.NoArgs,
	Run:  runStats,
}

func init() {
	statsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of sessions to show")
	statsCmd.Flags().BoolVar(&flagCorners, "corners", false, "Rank sessions by corner hits")
}

func runStats(cmd *cobra.Command, _ []string) {
	s, err := loadSettings(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(s.Config.Stats.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening stats database: %v\n", err)
		os.Exit(1)
	}

	err = printStats(os.Stdout, store, flagLimit, flagCorners)
	store.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// printStats writes the session table and totals to w.
func printStats(w io.Writer, store *storage.Store, limit int, byCorners bool) error {
	var sessions []storage.Session
	var err error
	if byCorners {
		sessions, err = store.TopCornerSessions(limit)
	} else {
		sessions, err = store.RecentSessions(limit)
	}
	if err != nil {
		return fmt.Errorf("retrieving sessions: %w", err)
	}

	if byCorners {
		fmt.Fprintln(w, "Most corner hits")
	} else {
		fmt.Fprintln(w, "Recent sessions")
	}
	fmt.Fprintln(w)

	if len(sessions) == 0 {
		fmt.Fprintln(w, "No sessions recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Run 'dvd' and wait for the logo to hit a corner!")
		return nil
	}

	fmt.Fprintf(w, "  %-16s  %-10s  %-8s  %-7s  %-7s  %-7s  %s\n", "Date", "Logo", "Screen", "Steps", "Bounces", "Corners", "Duration")
	fmt.Fprintf(w, "  %-16s  %-10s  %-8s  %-7s  %-7s  %-7s  %s\n", "----", "----", "------", "-----", "-------", "-------", "--------")

	for _, e := range sessions {
		dateStr := e.CreatedAt.Format("2006-01-02 15:04")
		screen := fmt.Sprintf("%dx%d", e.ScreenW, e.ScreenH)
		fmt.Fprintf(w, "  %-16s  %-10s  %-8s  %-7d  %-7d  %-7d  %s\n",
			dateStr, e.Logo, screen, e.Steps, e.Bounces, e.Corners, e.Duration.Round(time.Second))
	}

	totals, err := store.Totals()
	if err != nil {
		return fmt.Errorf("retrieving totals: %w", err)
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total: %d sessions, %d bounces, %d corner hits, %s watched\n",
		totals.Sessions, totals.Bounces, totals.Corners, totals.Duration.Round(time.Second))
	return nil
}
