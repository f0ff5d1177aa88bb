// Package config resolves the runtime configuration: the config directory,
// file paths, and the API credential. Credential lookup happens here, in the
// bootstrap layer, never inside the llm package.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const (
	DefaultConfigDir    = ".bughound"
	DefaultLogFile      = "audit.jsonl"
	DefaultSnippetsFile = "snippets.yaml"

	// EnvAPIKey names the credential variable for the remote gateway.
	EnvAPIKey = "OPENAI_API_KEY"

	// EnvBaseURL optionally points the gateway at an OpenAI-compatible server.
	EnvBaseURL = "OPENAI_BASE_URL"
)

// Modes for selecting the gateway client.
const (
	ModeOffline = "offline" // mock gateway, no network
	ModeOpenAI  = "openai"  // remote gateway, requires credential
)

type Config struct {
	ConfigDir    string
	LogPath      string
	SnippetsPath string
	Mode         string
	Model        string
	Temperature  float64

	// APIKey is resolved from the environment (after .env loading) and is
	// empty when no credential is available.
	APIKey  string
	BaseURL string
}

// Load builds the configuration. Flag values win over defaults; the config
// dir is created if needed. A .env file in the working directory or the
// config dir is loaded before reading the environment, mirroring how the
// credential would be provisioned in a classroom setup.
func Load(logPath, mode, model string, temperature float64) (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configDir := filepath.Join(homeDir, DefaultConfigDir)
	if err := ensureDir(configDir); err != nil {
		return nil, err
	}

	// Missing .env files are fine; only explicit ones matter.
	_ = godotenv.Load()
	_ = godotenv.Load(filepath.Join(configDir, ".env"))

	cfg := &Config{
		ConfigDir:    configDir,
		SnippetsPath: filepath.Join(configDir, DefaultSnippetsFile),
		Mode:         mode,
		Model:        model,
		Temperature:  temperature,
		APIKey:       strings.TrimSpace(os.Getenv(EnvAPIKey)),
		BaseURL:      strings.TrimSpace(os.Getenv(EnvBaseURL)),
	}

	if logPath != "" {
		cfg.LogPath = logPath
	} else {
		cfg.LogPath = filepath.Join(configDir, DefaultLogFile)
	}

	return cfg, nil
}

func ensureDir(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, 0700)
	}
	return nil
}
