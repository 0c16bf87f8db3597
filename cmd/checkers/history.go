package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-checkers/internal/platform/tui"
	"github.com/vovakirdan/tui-checkers/internal/storage"
)

var (
	flagPlain bool
	flagLimit int
	flagClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show journaled sessions and their moves",
	Long: `Browse the sessions recorded in the move journal.

On a terminal this opens an interactive browser; with --plain, or when
output is piped, it prints the most recent sessions instead.

Examples:
  checkers history
  checkers history --plain --limit 5
  checkers history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print instead of opening the browser")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Sessions to print with --plain")
	historyCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every recorded session")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	path, err := cfg.DBPath()
	if err != nil {
		return fmt.Errorf("cannot resolve journal path: %w", err)
	}

	store, err := storage.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearHistory(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Cleared the journal at %s\n", path)
		return nil
	}

	fd := int(os.Stdout.Fd())
	if !flagPlain && term.IsTerminal(fd) {
		width, height, err := term.GetSize(fd)
		if err != nil {
			width, height = 80, 24
		}
		return tui.RunHistory(store, width, height)
	}
	return printHistory(cmd.OutOrStdout(), store, flagLimit)
}

// printHistory writes the recent sessions, each followed by its moves.
func printHistory(out io.Writer, source tui.HistorySource, limit int) error {
	sessions, err := source.RecentSessions(limit)
	if err != nil {
		return err
	}
	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'checkers' to start the journal!")
		return nil
	}

	t := newListTable("#", "Variant", "Moves", "Started", "Ended")

	for _, s := range sessions {
		ended := "-"
		if s.Finished() {
			ended = s.EndedAt.Format("2006-01-02 15:04")
		}
		t.Row(
			strconv.FormatInt(s.ID, 10),
			s.Variant,
			strconv.Itoa(s.Moves),
			s.StartedAt.Format("2006-01-02 15:04"),
			ended,
		)
	}
	fmt.Fprintln(out, t.Render())

	for _, s := range sessions {
		moves, err := source.SessionMoves(s.ID)
		if err != nil {
			return err
		}
		if len(moves) == 0 {
			continue
		}
		fmt.Fprintf(out, "\nSession %d:\n", s.ID)
		for _, mv := range moves {
			fmt.Fprintf(out, "  %s\n", tui.FormatMove(mv))
		}
	}
	return nil
}
