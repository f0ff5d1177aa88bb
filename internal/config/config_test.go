package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvAPIKey, "")

	cfg, err := Load("", ModeOffline, "", 0.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	wantDir := filepath.Join(home, DefaultConfigDir)
	if cfg.ConfigDir != wantDir {
		t.Errorf("ConfigDir = %q, want %q", cfg.ConfigDir, wantDir)
	}
	if cfg.LogPath != filepath.Join(wantDir, DefaultLogFile) {
		t.Errorf("LogPath = %q", cfg.LogPath)
	}
	if cfg.SnippetsPath != filepath.Join(wantDir, DefaultSnippetsFile) {
		t.Errorf("SnippetsPath = %q", cfg.SnippetsPath)
	}

	if _, err := os.Stat(wantDir); err != nil {
		t.Errorf("config dir not created: %v", err)
	}
}

func TestLoad_FlagOverridesLogPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("/tmp/custom.jsonl", ModeOffline, "", 0.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogPath != "/tmp/custom.jsonl" {
		t.Errorf("LogPath = %q, want /tmp/custom.jsonl", cfg.LogPath)
	}
}

func TestLoad_ReadsCredentialFromEnv(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv(EnvAPIKey, "  test-key-123  ")

	cfg, err := Load("", ModeOpenAI, "gpt-4o-mini", 0.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "test-key-123" {
		t.Errorf("APIKey = %q, want trimmed value", cfg.APIKey)
	}
	if cfg.Model != "gpt-4o-mini" || cfg.Mode != ModeOpenAI {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoad_DotEnvInConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvAPIKey, "")
	os.Unsetenv(EnvAPIKey)

	configDir := filepath.Join(home, DefaultConfigDir)
	if err := os.MkdirAll(configDir, 0700); err != nil {
		t.Fatal(err)
	}
	envFile := filepath.Join(configDir, ".env")
	if err := os.WriteFile(envFile, []byte(EnvAPIKey+"=dotenv-key\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load("", ModeOpenAI, "", 0.2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "dotenv-key" {
		t.Errorf("APIKey = %q, want value from config-dir .env", cfg.APIKey)
	}
}
