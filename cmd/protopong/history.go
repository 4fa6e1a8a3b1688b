package main

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/proto-pong/internal/pong"
	"github.com/vovakirdan/proto-pong/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryMode  string
	flagHistoryStats bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded matches",
	Long: `Display the most recent matches, newest first, or per-mode statistics.

Examples:
  protopong history
  protopong history --limit 50 --mode versus
  protopong history --stats
  protopong history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of matches to show")
	historyCmd.Flags().StringVar(&flagHistoryMode, "mode", "", "Only show one mode: single, versus, demo")
	historyCmd.Flags().BoolVar(&flagHistoryStats, "stats", false, "Show per-mode statistics instead")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete the whole history")
}

func runHistory(_ *cobra.Command, _ []string) error {
	if flagHistoryMode != "" {
		if _, ok := pong.ParseMode(flagHistoryMode); !ok {
			return fmt.Errorf("unknown mode %q (want single, versus or demo)", flagHistoryMode)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening match history: %w", err)
	}
	defer store.Close()

	switch {
	case flagHistoryClear:
		if err := store.ClearMatches(); err != nil {
			return err
		}
		fmt.Println("Match history cleared.")
		return nil
	case flagHistoryStats:
		return printStats(store)
	}

	matches, err := store.RecentMatches(flagHistoryMode, flagHistoryLimit)
	if err != nil {
		return err
	}

	fmt.Println("Recent Matches")
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'protopong' or run 'protopong demo --save' to record one!")
		return nil
	}

	// Print header
	fmt.Printf("  %-5s  %-7s  %-7s  %-6s  %-9s  %s\n", "ID", "Mode", "Score", "Winner", "Result", "Date")
	fmt.Printf("  %-5s  %-7s  %-7s  %-6s  %-9s  %s\n", "--", "----", "-----", "------", "------", "----")

	for _, m := range matches {
		dateStr := m.CreatedAt.Format("2006-01-02 15:04")
		score := fmt.Sprintf("%d : %d", m.ScoreLeft, m.ScoreRight)
		fmt.Printf("  %-5d  %-7s  %-7s  %-6s  %-9s  %s\n", m.ID, m.Mode, score, m.Winner, m.EndReason, dateStr)
	}
	return nil
}

func printStats(store *storage.Store) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Println("Statistics")
	fmt.Println()

	if len(stats) == 0 {
		fmt.Println("No matches recorded yet.")
		return nil
	}

	modes := make([]string, 0, len(stats))
	for mode := range stats {
		modes = append(modes, mode)
	}
	slices.Sort(modes)

	fmt.Printf("  %-7s  %-7s  %-9s  %-7s  %-10s  %-10s  %s\n",
		"Mode", "Played", "Completed", "Aborted", "Left wins", "Right wins", "Avg ticks")
	for _, mode := range modes {
		st := stats[mode]
		fmt.Printf("  %-7s  %-7d  %-9d  %-7d  %-10d  %-10d  %.0f\n",
			st.Mode, st.Matches, st.Completed, st.Aborted(), st.LeftWins, st.RightWins, st.AvgTicks)
	}
	return nil
}
