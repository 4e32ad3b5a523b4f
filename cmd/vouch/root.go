package main

import (
	"fmt"
	"strings"

	"github.com/jamesainslie/vouch/pkg/vouch/config"
	"github.com/jamesainslie/vouch/pkg/vouch/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	rootCmd = &cobra.Command{
		Use:   "vouch",
		Short: "Fingerprint directory trees and verify them against snapshots",
		Long: `Vouch computes content fingerprints for every file under a directory
tree and reconciles them against a saved snapshot to detect unchanged,
moved, silently corrupted, and newly added files.

Examples:
  vouch snapshot ~/photos photos.json        # Record a trusted snapshot
  vouch verify ~/photos photos.json          # Verify against the snapshot
  vouch verify ~/photos photos.json --update # Verify and refresh the snapshot
  vouch history                              # View past runs`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initLogging()
		},
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.config/vouch/config.yaml)")
	rootCmd.PersistentFlags().StringSliceP("skip", "k", nil, "directory names to skip (can be specified multiple times)")
	rootCmd.PersistentFlags().IntP("workers", "w", 0, "fingerprint worker count (0=one per CPU)")
	rootCmd.PersistentFlags().BoolP("progress", "p", false, "show progress while hashing")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "minimal output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "output format (pretty, plain, json, yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().Bool("no-history", false, "do not record this run in history")

	// Bind flags to viper
	_ = viper.BindPFlag("skip_dirs", rootCmd.PersistentFlags().Lookup("skip"))
	_ = viper.BindPFlag("workers", rootCmd.PersistentFlags().Lookup("workers"))
	_ = viper.BindPFlag("progress", rootCmd.PersistentFlags().Lookup("progress"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("no_history", rootCmd.PersistentFlags().Lookup("no-history"))
}

// initConfig reads in config file and environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")

		if dir, err := config.ConfigDir(); err == nil {
			viper.AddConfigPath(dir)
		}
	}

	viper.SetEnvPrefix("VOUCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	config.SetDefaults(viper.GetViper())

	// Read config file (ignore if not found)
	_ = viper.ReadInConfig()
}

// initLogging configures the logging system from config and flags.
func initLogging() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	level := cfg.Logging.Level
	if viper.GetBool("verbose") {
		level = "debug"
	}

	path := cfg.Logging.Path
	if path == "" {
		path = logging.DefaultLogPath()
	}

	err = logging.Init(logging.Config{
		Level:      level,
		Path:       path,
		Components: cfg.Logging.Components,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// getQuiet returns true if quiet mode is enabled.
func getQuiet() bool {
	return viper.GetBool("quiet")
}

// printInfo prints a message unless quiet mode is enabled.
func printInfo(format string, args ...interface{}) {
	if !getQuiet() {
		fmt.Printf(format+"\n", args...)
	}
}
