package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/jamesainslie/vouch/pkg/vouch/config"
	"github.com/jamesainslie/vouch/pkg/vouch/history"
	"github.com/jamesainslie/vouch/pkg/vouch/output"
	"github.com/jamesainslie/vouch/pkg/vouch/reconcile"
	"github.com/jamesainslie/vouch/pkg/vouch/snapshot"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// errMismatch signals that verification found at least one silently
// changed file. main maps it to a distinct exit code.
var errMismatch = errors.New("one or more mismatches found")

var verifyCmd = &cobra.Command{
	Use:   "verify <directory> <reference.json>",
	Short: "Verify a directory tree against a reference snapshot",
	Long: `Verify recomputes every file fingerprint under the directory and
reconciles it against the reference snapshot.

Per file, the outcome is one of:
  matched     path and content agree with the reference
  mismatched  content changed but the modification time did not (the
              failure signal: evidence of corruption or tampering)
  skipped     content and modification time both changed (a normal edit)
  moved       new path, content known under other reference paths
  extra       new path, content unknown to the reference

With --update, skipped, moved, and extra files are folded into the
reference snapshot and it is rewritten in full. Reference entries for
files no longer on disk are kept; vouch never forgets a fingerprint.`,
	Args: cobra.ExactArgs(2),
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().BoolP("update", "u", false, "fold accepted changes back into the reference snapshot")
	_ = viper.BindPFlag("update", verifyCmd.Flags().Lookup("update"))

	rootCmd.AddCommand(verifyCmd)
}

// runVerify is the verify command handler.
func runVerify(cmd *cobra.Command, args []string) error {
	root, err := resolveRoot(args[0])
	if err != nil {
		return err
	}
	refPath := args[1]

	// Load the reference before scanning: a malformed snapshot must
	// abort the run before any classification work.
	reference, err := snapshot.Load(refPath)
	if err != nil {
		return err
	}

	formatter, err := getFormatter()
	if err != nil {
		return err
	}

	outcome, err := runFingerprintScan(cmd.Context(), root)
	if err != nil {
		return err
	}

	// The index snapshots the pre-update reference state; move detection
	// never sees entries inserted by --update.
	idx := reconcile.BuildIndex(reference)

	update := viper.GetBool("update")
	result := reconcile.Run(outcome.current, reference, idx, reconcile.Options{
		Update:              update,
		MovedCandidateLimit: viper.GetInt("moved_display_limit"),
	})

	rendered := output.Result{
		Root:         root,
		SnapshotPath: refPath,
		Verdicts:     result.Verdicts,
		Summary:      result.Summary,
		Stats:        outcome.stats,
		Updated:      update,
		Quiet:        getQuiet(),
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, &rendered); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Print(buf.String())

	// The write-back replaces the snapshot in full with the mutated
	// reference map, after the result has been reported.
	if update {
		if err := snapshot.Save(refPath, reference); err != nil {
			return err
		}
	}

	recordRun(history.RunRecord{
		Mode:         history.ModeVerify,
		Root:         root,
		SnapshotPath: refPath,
		Updated:      update,
		Files:        outcome.stats.FilesScanned,
		FailedFiles:  outcome.stats.Failed,
		BytesHashed:  outcome.stats.BytesHashed,
		Summary:      result.Summary,
	})

	if result.HasMismatch() {
		return errMismatch
	}
	return nil
}

// recordRun persists a run record unless history is disabled. Failures
// are reported on stderr but never fail the run itself.
func recordRun(rec history.RunRecord) {
	if viper.GetBool("no_history") {
		return
	}
	enabled, path := resolveHistory()
	if !enabled {
		return
	}

	if err := config.EnsureDataDir(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		return
	}

	store, err := history.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: cannot open history store: %v\n", err)
		return
	}
	defer store.Close()

	if _, err := store.Record(rec); err != nil {
		fmt.Fprintf(os.Stderr, "warning: cannot record history: %v\n", err)
	}
}
