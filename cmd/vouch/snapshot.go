package main

import (
	"github.com/jamesainslie/vouch/pkg/vouch/history"
	"github.com/jamesainslie/vouch/pkg/vouch/snapshot"
	"github.com/jamesainslie/vouch/pkg/vouch/types"
	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot <directory> <output.json>",
	Short: "Fingerprint a directory tree and write a snapshot file",
	Long: `Snapshot computes a content fingerprint for every file under the
directory and writes the resulting path-to-fingerprint map as JSON.
The snapshot becomes the trusted reference for later verify runs.`,
	Args: cobra.ExactArgs(2),
	RunE: runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}

// runSnapshot is the snapshot command handler.
func runSnapshot(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(args[0])
	if err != nil {
		return err
	}
	outPath := args[1]

	outcome, err := runFingerprintScan(cmd.Context(), root)
	if err != nil {
		return err
	}

	if err := snapshot.Save(outPath, outcome.current); err != nil {
		return err
	}

	recordRun(history.RunRecord{
		Mode:         history.ModeSnapshot,
		Root:         root,
		SnapshotPath: outPath,
		Files:        outcome.stats.FilesScanned,
		FailedFiles:  outcome.stats.Failed,
		BytesHashed:  outcome.stats.BytesHashed,
	})

	printInfo("Snapshot of %d files (%s) written to %s",
		len(outcome.current),
		types.FormatSize(outcome.stats.BytesHashed),
		outPath)
	if outcome.stats.Failed > 0 {
		printInfo("%d unreadable files were skipped", outcome.stats.Failed)
	}

	return nil
}
