package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/jamesainslie/vouch/pkg/vouch/config"
	"github.com/jamesainslie/vouch/pkg/vouch/history"
	"github.com/jamesainslie/vouch/pkg/vouch/types"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "View past snapshot and verify runs",
	Long: `View the history of snapshot and verify runs recorded on this
machine, newest first.`,
	RunE: runHistory,
}

var historyLimit int

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "l", config.DefaultHistoryLimit, "maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

// resolveHistory loads the configuration layer and returns whether run
// recording is enabled and where the store lives. A broken config falls
// back to the defaults rather than losing the run.
func resolveHistory() (bool, string) {
	cfg, err := config.Load()
	if err != nil {
		return true, config.DefaultHistoryPath()
	}

	path := cfg.History.Path
	if path == "" {
		path = config.DefaultHistoryPath()
	}
	return cfg.History.Enabled, path
}

// runHistory lists recent runs.
func runHistory(cmd *cobra.Command, args []string) error {
	_, path := resolveHistory()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		printInfo("No history recorded yet.")
		printInfo("Run 'vouch snapshot' or 'vouch verify' to record a run.")
		return nil
	}

	store, err := history.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open history store: %w", err)
	}
	defer store.Close()

	records, err := store.List(historyLimit)
	if err != nil {
		return fmt.Errorf("failed to list history: %w", err)
	}

	if len(records) == 0 {
		printInfo("No history recorded yet.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tMODE\tROOT\tFILES\tHASHED\tRESULT")
	for _, rec := range records {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\n",
			rec.Time.Local().Format("2006-01-02 15:04:05"),
			rec.Mode,
			rec.Root,
			rec.Files,
			types.FormatSize(rec.BytesHashed),
			formatResult(rec))
	}
	return tw.Flush()
}

// formatResult summarizes the outcome column for one run.
func formatResult(rec history.RunRecord) string {
	if rec.Mode == history.ModeSnapshot {
		return "written"
	}
	if rec.Summary.HasMismatch() {
		return fmt.Sprintf("FAILED (%d mismatched)", rec.Summary.Mismatched)
	}
	return fmt.Sprintf("ok (%d matched, %d moved, %d extra)",
		rec.Summary.Matched, rec.Summary.Moved, rec.Summary.Extra)
}
