// Package logging provides component-scoped logging for vouch built on
// charmbracelet/log.
//
// Basic usage:
//
//	if err := logging.Init(logging.Config{Level: "info"}); err != nil {
//	    log.Fatal(err)
//	}
//	defer logging.Close()
//
//	logger := logging.Get("scanner")
//	logger.Info("scan started", "root", "/srv/data")
//
// Before Init is called all loggers are silent, so library packages may
// grab their logger at package init time.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// ErrInvalidLevel is returned when an invalid log level string is provided.
var ErrInvalidLevel = errors.New("invalid log level")

// ParseLevel parses a level name into a charmbracelet/log level.
func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return log.DebugLevel, nil
	case "info":
		return log.InfoLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	default:
		return log.InfoLevel, fmt.Errorf("%w: %s", ErrInvalidLevel, s)
	}
}

// Config configures the logging system.
type Config struct {
	// Level is the default log level (debug, info, warn, error).
	Level string

	// Path is an optional log file path. Empty logs to stderr only.
	Path string

	// Components maps component names to level overrides.
	Components map[string]string
}

// state holds the global logging state.
type state struct {
	mu          sync.RWMutex
	initialized bool
	level       log.Level
	components  map[string]log.Level
	file        io.WriteCloser
	loggers     map[string]*log.Logger
}

var globalState = &state{
	components: make(map[string]log.Level),
	loggers:    make(map[string]*log.Logger),
}

// Init initializes the logging system. It may be called again to
// reconfigure; existing loggers are recreated with the new settings.
func Init(cfg Config) error {
	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return err
	}
	globalState.level = level

	globalState.components = make(map[string]log.Level, len(cfg.Components))
	for comp, name := range cfg.Components {
		compLevel, err := ParseLevel(name)
		if err != nil {
			return fmt.Errorf("component %s: %w", comp, err)
		}
		globalState.components[comp] = compLevel
	}

	if globalState.file != nil {
		_ = globalState.file.Close()
		globalState.file = nil
	}
	if cfg.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
		globalState.file = f
	}

	globalState.initialized = true

	// Recreate existing loggers under the new configuration.
	for component := range globalState.loggers {
		globalState.loggers[component] = createLogger(component)
	}

	return nil
}

// Get returns the logger for a component, creating it on first use.
func Get(component string) *log.Logger {
	globalState.mu.RLock()
	if logger, ok := globalState.loggers[component]; ok {
		globalState.mu.RUnlock()
		return logger
	}
	globalState.mu.RUnlock()

	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	if logger, ok := globalState.loggers[component]; ok {
		return logger
	}
	logger := createLogger(component)
	globalState.loggers[component] = logger
	return logger
}

// createLogger builds a component logger. Must be called with
// globalState.mu held.
func createLogger(component string) *log.Logger {
	level := globalState.level
	if compLevel, ok := globalState.components[component]; ok {
		level = compLevel
	}

	var w io.Writer = io.Discard
	if globalState.initialized {
		w = os.Stderr
		if globalState.file != nil {
			w = io.MultiWriter(os.Stderr, globalState.file)
		}
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: globalState.file != nil,
		TimeFormat:      time.RFC3339,
		Prefix:          component,
	})
}

// Close flushes and closes the log file, if any.
func Close() error {
	globalState.mu.Lock()
	defer globalState.mu.Unlock()

	if globalState.file != nil {
		err := globalState.file.Close()
		globalState.file = nil
		if err != nil {
			return fmt.Errorf("closing log file: %w", err)
		}
	}
	globalState.initialized = false
	globalState.loggers = make(map[string]*log.Logger)
	return nil
}

// DefaultLogPath returns $XDG_STATE_HOME/vouch/vouch.log.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, "vouch", "vouch.log")
}
