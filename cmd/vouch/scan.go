package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jamesainslie/vouch/pkg/vouch/config"
	"github.com/jamesainslie/vouch/pkg/vouch/output"
	"github.com/jamesainslie/vouch/pkg/vouch/progress"
	"github.com/jamesainslie/vouch/pkg/vouch/scanner"
	"github.com/jamesainslie/vouch/pkg/vouch/types"
	"github.com/jamesainslie/vouch/pkg/vouch/walk"
	"github.com/spf13/viper"
)

// scanOutcome bundles the snapshot of the current filesystem state with
// the statistics of the scan that produced it.
type scanOutcome struct {
	current types.Snapshot
	stats   output.Stats
}

// resolveRoot expands and validates the directory argument.
func resolveRoot(arg string) (string, error) {
	expanded, err := config.ExpandPath(arg)
	if err != nil {
		return "", fmt.Errorf("failed to expand path: %w", err)
	}

	absPath, err := filepath.Abs(expanded)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("path does not exist: %s", absPath)
		}
		return "", fmt.Errorf("cannot access path: %w", err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("path is not a directory: %s", absPath)
	}

	return absPath, nil
}

// runFingerprintScan walks root and fingerprints every file in parallel.
func runFingerprintScan(ctx context.Context, root string) (*scanOutcome, error) {
	startTime := time.Now()

	paths, err := walk.Files(walk.Options{
		Root:     root,
		SkipDirs: viper.GetStringSlice("skip_dirs"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	opts := scanner.Options{
		Workers: viper.GetInt("workers"),
	}

	var reporter *progress.Reporter
	if viper.GetBool("progress") {
		reporter = progress.New(os.Stderr)
		opts.OnProgress = reporter.Update
	}

	s := scanner.New(opts)
	current := s.Scan(ctx, paths)

	if reporter != nil {
		reporter.Finish()
	}

	prog := s.Progress()
	return &scanOutcome{
		current: current,
		stats: output.Stats{
			FilesScanned: prog.Total,
			Failed:       prog.Failed,
			BytesHashed:  prog.BytesHashed,
			Duration:     time.Since(startTime),
		},
	}, nil
}

// getFormatter resolves the configured output formatter.
func getFormatter() (output.Formatter, error) {
	name := viper.GetString("output")
	if name == "" {
		name = config.DefaultOutput
	}

	formatter, err := output.Get(name)
	if err != nil {
		return nil, fmt.Errorf("unknown output format %q: available formats are %v", name, output.Available())
	}
	return formatter, nil
}
