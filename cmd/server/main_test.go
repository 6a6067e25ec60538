package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/preston-bernstein/rivalry-service/internal/config"
)

// Smoke test to ensure main honors SKIP_SERVER_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestCommandRejectsInvalidPort(t *testing.T) {
	cmd := newCmd(func() {})
	cmd.SetArgs([]string{"--port", "70000"})
	err := cmd.Execute()
	if err == nil || !strings.Contains(err.Error(), "invalid port") {
		t.Fatalf("expected invalid port error, got %v", err)
	}
}

func TestCommandRejectsStaticWithoutBaseURL(t *testing.T) {
	cmd := newCmd(func() {})
	cmd.SetArgs([]string{"--provider", "static"})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected static provider without base url to fail")
	}
}

func TestCommandReportsMissingConfigFile(t *testing.T) {
	cmd := newCmd(func() {})
	cmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml")})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected missing config file error")
	}
}

func TestLoadConfigLayers(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rivalry.yaml")
	if err := os.WriteFile(path, []byte("PORT: \"4100\"\nPROVIDER: file\nDATA_PATH: /srv/rivalry.json\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("PROVIDER", "fixture")

	cmd := newCmd(func() {})
	fs := cmd.Flags()
	if err := fs.Parse([]string{"--countup-duration", "3s"}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	cfg, err := loadConfig(config.NewViper(), fs, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "4100" {
		t.Fatalf("expected port from file, got %s", cfg.Port)
	}
	if cfg.Provider != config.ProviderFixture {
		t.Fatalf("expected env to win over file, got %s", cfg.Provider)
	}
	if cfg.DataPath != "/srv/rivalry.json" {
		t.Fatalf("expected data path from file, got %s", cfg.DataPath)
	}
	if cfg.CountupDuration.String() != "3s" {
		t.Fatalf("expected flag override, got %s", cfg.CountupDuration)
	}
	if cfg.Version != appVersion {
		t.Fatalf("expected version stamped, got %s", cfg.Version)
	}
}
