package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the best runs",
	Long: `Display the best recorded runs with their tier and duration.

In a terminal the runs are shown as a scrollable table; otherwise they are
printed as plain text.

Examples:
  flappy scores
  flappy scores --limit 25
  flappy scores --limit 0
  flappy scores --clear`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show (0 = all)")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the run history and the best score")
}

func runScores(cmd *cobra.Command, args []string) error {
	logger, closeLog, err := newLogger(false)
	if err != nil {
		return err
	}
	defer closeLog()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(flappy.ID); err != nil {
			return err
		}
		logger.Info("scores cleared", "db", flagDBPath)
		return nil
	}

	scores, err := store.History(flappy.ID, flagLimit)
	if err != nil {
		return err
	}
	stats, err := store.GetGameStats(flappy.ID)
	if err != nil {
		return err
	}

	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(fd); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard("Flappy - best runs", scores, stats, width, height)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "High Scores - Flappy")
	fmt.Fprintln(out)
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'flappy play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-6s  %-4s  %-6s  %s\n", "Rank", "Score", "Tier", "Time", "Date")
	fmt.Fprintf(out, "  %-4s  %-6s  %-4s  %-6s  %s\n", "----", "-----", "----", "----", "----")
	for _, row := range tui.ScoreRows(scores) {
		fmt.Fprintf(out, "  %-4s  %-6s  %-4s  %-6s  %s\n", row[0], row[1], row[2], row[3], row[4])
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, tui.StatsLine(stats))
	return nil
}
