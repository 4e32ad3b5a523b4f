package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jamesainslie/vouch/pkg/vouch/config"
)

func TestResolveHistoryDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	enabled, path := resolveHistory()
	if !enabled {
		t.Error("history should be enabled by default")
	}
	if path != config.DefaultHistoryPath() {
		t.Errorf("path: got %q, want %q", path, config.DefaultHistoryPath())
	}
}

func TestResolveHistoryFromConfigFile(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, "vouch")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	content := "history:\n  enabled: false\n  path: /srv/vouch-history\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	enabled, path := resolveHistory()
	if enabled {
		t.Error("configured history.enabled=false was ignored")
	}
	if path != "/srv/vouch-history" {
		t.Errorf("path: got %q, want /srv/vouch-history", path)
	}
}
