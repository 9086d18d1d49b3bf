package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(envPort, "")
	t.Setenv(envPollInterval, "")
	t.Setenv(envProvider, "")
	t.Setenv(envReportPath, "")
	t.Setenv(envOutputPath, "")

	cfg := Load()
	if cfg.Port != "4000" {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.PollInterval != 5*time.Minute {
		t.Fatalf("expected default poll interval, got %s", cfg.PollInterval)
	}
	if cfg.Provider != "file" {
		t.Fatalf("expected file provider, got %s", cfg.Provider)
	}
	if cfg.ReportPath != "fpl_set_piece_takers.txt" {
		t.Fatalf("unexpected report path %s", cfg.ReportPath)
	}
	if cfg.OutputPath != "set_piece_takers_structured.json" {
		t.Fatalf("unexpected output path %s", cfg.OutputPath)
	}
	if !cfg.Snapshots.Enabled || cfg.Snapshots.RetentionDays != 14 {
		t.Fatalf("unexpected snapshot config %+v", cfg.Snapshots)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "8080")
	t.Setenv(envPollInterval, "30s")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envMetricsOn, "true")
	t.Setenv(envWatchEnabled, "no")

	cfg := Load()
	if cfg.Port != "8080" {
		t.Fatalf("expected overridden port, got %s", cfg.Port)
	}
	if cfg.PollInterval != 30*time.Second {
		t.Fatalf("expected 30s interval, got %s", cfg.PollInterval)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected fixture provider, got %s", cfg.Provider)
	}
	if !cfg.Metrics.Enabled {
		t.Fatalf("expected metrics enabled")
	}
	if cfg.WatchEnabled {
		t.Fatalf("expected watch disabled")
	}
}

func TestLoadIgnoresInvalidDuration(t *testing.T) {
	t.Setenv(envPollInterval, "not-a-duration")
	cfg := Load()
	if cfg.PollInterval != 5*time.Minute {
		t.Fatalf("expected default interval for invalid value, got %s", cfg.PollInterval)
	}
}

func TestLoadRoster(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.txt")
	content := "# 2024-25 season\nArsenal\n\nChelsea\n  Spurs  \n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write roster: %v", err)
	}

	roster, err := LoadRoster(path)
	if err != nil {
		t.Fatalf("expected roster to load, got %v", err)
	}
	if want := []string{"Arsenal", "Chelsea", "Spurs"}; !reflect.DeepEqual(roster, want) {
		t.Fatalf("expected %v, got %v", want, roster)
	}
}

func TestLoadRosterMissingFile(t *testing.T) {
	if _, err := LoadRoster(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatalf("expected error for missing roster file")
	}
}

func TestLoadRosterEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, []byte("\n# only comments\n"), 0o644); err != nil {
		t.Fatalf("write roster: %v", err)
	}
	if _, err := LoadRoster(path); err == nil {
		t.Fatalf("expected error for empty roster")
	}
}
